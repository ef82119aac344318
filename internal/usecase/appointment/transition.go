package appointment

import (
	"context"

	"github.com/mamede573/BarberManager/internal/domain/appointment"
	domain "github.com/mamede573/BarberManager/internal/domain/appointment"
	"github.com/mamede573/BarberManager/internal/httperr"
	"github.com/mamede573/BarberManager/internal/models"
	"github.com/mamede573/BarberManager/internal/notify"
	"github.com/mamede573/BarberManager/internal/timezone"
)

// Transições do lado do barbeiro: pending → confirmed → completed.

type ConfirmAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewConfirmAppointment(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:   repo,
		notify: notify,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.Now()
	if err := appointment.Confirm(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		UserID:  ap.ClientID,
		Title:   "Agendamento confirmado",
		Message: "O barbeiro confirmou seu horário.",
		Type:    "appointment",
	})

	return ap, nil
}

type CompleteAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:   repo,
		notify: notify,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.Now()
	if err := appointment.Complete(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		UserID:  ap.ClientID,
		Title:   "Atendimento concluído",
		Message: "Obrigado pela visita! Até a próxima.",
		Type:    "appointment",
	})

	return ap, nil
}
