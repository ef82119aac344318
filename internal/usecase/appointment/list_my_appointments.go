package appointment

import (
	"context"

	domain "github.com/mamede573/BarberManager/internal/domain/appointment"
	"github.com/mamede573/BarberManager/internal/dto"
)

type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	clientID string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			BarberID:      ap.BarberID,
			BarberName:    ap.Barber.Name,
			ServiceIDs:    ap.ServiceIDs,
			Date:          ap.Date,
			Time:          ap.Time,
			TotalPrice:    ap.TotalPrice,
			Status:        ap.Status,
			PaymentStatus: ap.PaymentStatus,
		})
	}

	return out, nil
}
