package appointment

import (
	"fmt"
	"time"
)

// DefaultSlotGrid é a grade fixa de horários de início do dia, igual para
// todos os barbeiros. O buraco entre 11:30 e 14:00 é pausa de almoço,
// política da casa.
var DefaultSlotGrid = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

// FallbackServiceDurationMin entra no lugar da duração de qualquer serviço
// que não resolver mais no catálogo (apagado, id desconhecido).
const FallbackServiceDurationMin = 30

// MinutesOfDay converte "HH:MM" em minutos desde a meia-noite.
func MinutesOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Interval é o intervalo ocupado [Start, End) em minutos do dia.
type Interval struct {
	Start int
	End   int
}

// Overlaps usa semântica meio-aberta: extremidades encostadas não conflitam.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && i.End > o.Start
}
