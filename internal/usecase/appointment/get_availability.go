package appointment

import (
	"context"

	"github.com/mamede573/BarberManager/internal/civil"
	domain "github.com/mamede573/BarberManager/internal/domain/appointment"
	"github.com/mamede573/BarberManager/internal/httperr"
)

// GetAvailability calcula os horários de início livres de um barbeiro num
// dia civil, filtrando a grade fixa contra os intervalos já ocupados.
//
// Erro de leitura do repositório sobe como erro mesmo: nunca devolvemos
// grade cheia nem lista vazia mascarando "dados indisponíveis".
type GetAvailability struct {
	repo      domain.Repository
	durations *DurationResolver
	grid      []string
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{
		repo:      repo,
		durations: NewDurationResolver(repo),
		grid:      domain.DefaultSlotGrid,
	}
}

// WithGrid troca a grade padrão (uso em testes e em grade por configuração).
func (uc *GetAvailability) WithGrid(grid []string) *GetAvailability {
	uc.grid = grid
	return uc
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	total, err := uc.durations.Execute(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	return uc.SlotsFor(ctx, in.BarberID, in.Date, total, in.ExcludeAppointmentID)
}

// SlotsFor é o mesmo filtro com a duração já resolvida; o gate de escrita
// entra por aqui na revalidação.
func (uc *GetAvailability) SlotsFor(
	ctx context.Context,
	barberID string,
	date civil.Date,
	durationMin int,
	excludeAppointmentID string,
) ([]string, error) {

	if durationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	occupied, err := uc.occupiedIntervals(ctx, barberID, date, excludeAppointmentID)
	if err != nil {
		return nil, err
	}

	slots := make([]string, 0, len(uc.grid))

	for _, hhmm := range uc.grid {
		start, err := domain.MinutesOfDay(hhmm)
		if err != nil {
			return nil, err
		}

		candidate := domain.Interval{Start: start, End: start + durationMin}

		conflict := false
		for _, oc := range occupied {
			if candidate.Overlaps(oc) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, hhmm)
		}
	}

	return slots, nil
}

func (uc *GetAvailability) occupiedIntervals(
	ctx context.Context,
	barberID string,
	date civil.Date,
	excludeAppointmentID string,
) ([]domain.Interval, error) {

	existing, err := uc.repo.ListDayAppointments(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	occupied := make([]domain.Interval, 0, len(existing))

	for _, ap := range existing {
		if ap.ID == excludeAppointmentID {
			continue
		}
		if !domain.Status(ap.Status).Occupies() {
			continue
		}

		start, err := domain.MinutesOfDay(ap.Time)
		if err != nil {
			return nil, err
		}

		duration := domain.FallbackServiceDurationMin
		if len(ap.ServiceIDs) > 0 {
			duration, err = uc.durations.Execute(ctx, ap.ServiceIDs)
			if err != nil {
				return nil, err
			}
		}

		occupied = append(occupied, domain.Interval{
			Start: start,
			End:   start + duration,
		})
	}

	return occupied, nil
}
