package notify

import "log"

// Event vira uma linha de notificação para o usuário. A entrega em si
// (push, e-mail) fica fora daqui; o app só lê a caixa de notificações.
type Event struct {
	UserID  string
	Title   string
	Message string
	Type    string
}

type Recorder interface {
	Record(ev Event) error
}

type Dispatcher struct {
	recorder Recorder
	queue    chan Event
}

func NewDispatcher(recorder Recorder) *Dispatcher {
	d := &Dispatcher{
		recorder: recorder,
		queue:    make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.recorder.Record(ev); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos a notificação (nunca quebrar o booking)
		log.Println("notify queue full, dropping event")
	}
}
