package appointment

import (
	"context"

	domain "github.com/mamede573/BarberManager/internal/domain/appointment"
	"github.com/mamede573/BarberManager/internal/httperr"
	"github.com/mamede573/BarberManager/internal/models"
)

// MarkAppointmentPaid é o pagamento mock: só vira o payment_status.
// Nenhum gateway é chamado aqui.
type MarkAppointmentPaid struct {
	repo domain.Repository
}

func NewMarkAppointmentPaid(repo domain.Repository) *MarkAppointmentPaid {
	return &MarkAppointmentPaid{repo: repo}
}

func (uc *MarkAppointmentPaid) Execute(
	ctx context.Context,
	clientID string,
	appointmentID string,
	method string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForClient(ctx, appointmentID, clientID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.PaymentStatus == domain.PaymentPaid {
		return nil, httperr.ErrBusiness("already_paid")
	}

	if !domain.Status(ap.Status).Occupies() && ap.Status != string(domain.StatusCompleted) {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	ap.PaymentStatus = domain.PaymentPaid
	if method != "" {
		ap.PaymentMethod = method
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
