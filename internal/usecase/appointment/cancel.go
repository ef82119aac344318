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

type CancelAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		notify: notify,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	clientID string,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForClient(ctx, appointmentID, clientID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.Now()
	if err := appointment.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		UserID:  ap.ClientID,
		Title:   "Agendamento cancelado",
		Message: "Seu horário foi cancelado. O slot voltou a ficar disponível.",
		Type:    "appointment",
	})

	return ap, nil
}
