package appointment

import (
	"context"
	"fmt"
	"sort"

	"github.com/mamede573/BarberManager/internal/civil"
	domain "github.com/mamede573/BarberManager/internal/domain/appointment"
	"github.com/mamede573/BarberManager/internal/models"
	"github.com/mamede573/BarberManager/internal/notify"
)

// fakeRepo implementa domain.Repository em memória para os testes.
type fakeRepo struct {
	barbers      map[string]*models.Barber
	services     map[string]*models.Service
	appointments map[string]*models.Appointment

	serviceErr error // força falha de leitura do catálogo
	listErr    error // força falha de leitura da agenda

	createCalls int
	updateCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:      make(map[string]*models.Barber),
		services:     make(map[string]*models.Service),
		appointments: make(map[string]*models.Appointment),
	}
}

func (f *fakeRepo) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	if b, ok := f.barbers[id]; ok {
		return b, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	if ap, ok := f.appointments[id]; ok {
		return ap, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) GetAppointmentForClient(ctx context.Context, appointmentID, clientID string) (*models.Appointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok || ap.ClientID != clientID {
		return nil, domain.ErrNotFound
	}
	return ap, nil
}

func (f *fakeRepo) ListDayAppointments(ctx context.Context, barberID string, date civil.Date) ([]models.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID || ap.Date != date {
			continue
		}
		if !domain.Status(ap.Status).Occupies() {
			continue
		}
		out = append(out, *ap)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (f *fakeRepo) ListAppointmentsByClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.createCalls++
	if ap.ID == "" {
		ap.ID = fmt.Sprintf("ap-%d", f.createCalls)
	}
	clone := *ap
	f.appointments[ap.ID] = &clone
	return nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.updateCalls++
	clone := *ap
	f.appointments[ap.ID] = &clone
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeLocker conta aquisições para garantir lock sempre liberado.
type fakeLocker struct {
	acquired int
	released int
}

func (l *fakeLocker) Acquire(ctx context.Context, barberID string, date civil.Date) (func(), error) {
	l.acquired++
	return func() { l.released++ }, nil
}

type nopRecorder struct{}

func (nopRecorder) Record(notify.Event) error { return nil }

func newTestDispatcher() *notify.Dispatcher {
	return notify.NewDispatcher(nopRecorder{})
}
