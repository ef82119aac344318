package appointment

import (
	"context"
	"fmt"
	"slices"

	"github.com/mamede573/BarberManager/internal/civil"
	"github.com/mamede573/BarberManager/internal/domain/appointment"
	domain "github.com/mamede573/BarberManager/internal/domain/appointment"
	"github.com/mamede573/BarberManager/internal/httperr"
	"github.com/mamede573/BarberManager/internal/models"
	"github.com/mamede573/BarberManager/internal/notify"
)

type RescheduleAppointmentInput struct {
	ClientID      string
	AppointmentID string

	Date string // YYYY-MM-DD
	Time string // HH:MM
}

type RescheduleAppointment struct {
	repo         domain.Repository
	availability *GetAvailability
	locks        Locker
	notify       *notify.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	availability *GetAvailability,
	locks Locker,
	notify *notify.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:         repo,
		availability: availability,
		locks:        locks,
		notify:       notify,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForClient(ctx, in.AppointmentID, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	date, err := civil.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if _, err := domain.MinutesOfDay(in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// barbeiro e serviços vêm do agendamento gravado, nunca da requisição
	release, err := uc.locks.Acquire(ctx, ap.BarberID, date)
	if err != nil {
		return nil, err
	}
	defer release()

	slots, err := uc.availability.Execute(ctx, domain.AvailabilityInput{
		BarberID:   ap.BarberID,
		Date:       date,
		ServiceIDs: ap.ServiceIDs,

		// o próprio intervalo não conta como conflito contra si mesmo
		ExcludeAppointmentID: ap.ID,
	})
	if err != nil {
		return nil, err
	}

	if !slices.Contains(slots, in.Time) {
		return nil, httperr.ErrBusiness("time_conflict")
	}

	if err := appointment.Reschedule(ap, date, in.Time); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		UserID:  ap.ClientID,
		Title:   "Agendamento remarcado",
		Message: fmt.Sprintf("Seu horário foi movido para %s às %s.", date.String(), in.Time),
		Type:    "appointment",
	})

	return ap, nil
}
