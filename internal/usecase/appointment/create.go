package appointment

import (
	"context"
	"fmt"
	"slices"

	"github.com/lib/pq"

	"github.com/mamede573/BarberManager/internal/civil"
	domain "github.com/mamede573/BarberManager/internal/domain/appointment"
	"github.com/mamede573/BarberManager/internal/httperr"
	"github.com/mamede573/BarberManager/internal/models"
	"github.com/mamede573/BarberManager/internal/notify"
)

// Locker segura exclusão por (barbeiro, dia) durante o check-then-write.
type Locker interface {
	Acquire(ctx context.Context, barberID string, date civil.Date) (func(), error)
}

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID string
	BarberID string

	ServiceIDs []string

	Date string // YYYY-MM-DD
	Time string // HH:MM

	TotalPrice    float64
	PaymentMethod string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo         domain.Repository
	availability *GetAvailability
	locks        Locker
	notify       *notify.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	availability *GetAvailability,
	locks Locker,
	notify *notify.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:         repo,
		availability: availability,
		locks:        locks,
		notify:       notify,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Pré-condições de entrada
	// --------------------------------------------------
	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("empty_service_list")
	}

	date, err := civil.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if _, err := domain.MinutesOfDay(in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// 2. Barbeiro
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// --------------------------------------------------
	// 3. Lock por (barbeiro, dia) + revalidação + insert
	// --------------------------------------------------
	release, err := uc.locks.Acquire(ctx, in.BarberID, date)
	if err != nil {
		return nil, err
	}
	defer release()

	slots, err := uc.availability.Execute(ctx, domain.AvailabilityInput{
		BarberID:   in.BarberID,
		Date:       date,
		ServiceIDs: in.ServiceIDs,
	})
	if err != nil {
		return nil, err
	}

	if !slices.Contains(slots, in.Time) {
		return nil, httperr.ErrBusiness("time_conflict")
	}

	ap := &models.Appointment{
		ClientID:      in.ClientID,
		BarberID:      in.BarberID,
		ServiceIDs:    pq.StringArray(in.ServiceIDs),
		Date:          date,
		Time:          in.Time,
		TotalPrice:    in.TotalPrice,
		Status:        string(domain.InitialStatus()),
		PaymentStatus: domain.PaymentPending,
		PaymentMethod: in.PaymentMethod,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Notificação
	// --------------------------------------------------
	uc.notify.Dispatch(notify.Event{
		UserID:  in.ClientID,
		Title:   "Agendamento criado",
		Message: fmt.Sprintf("Seu horário com %s em %s às %s foi reservado.", barber.Name, date.String(), in.Time),
		Type:    "appointment",
	})

	return ap, nil
}
