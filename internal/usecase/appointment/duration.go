package appointment

import (
	"context"
	"errors"

	domain "github.com/mamede573/BarberManager/internal/domain/appointment"
	"github.com/mamede573/BarberManager/internal/httperr"
)

// DurationResolver soma as durações de uma lista de serviços.
//
// Serviço que não resolve mais (apagado, id errado) entra com
// FallbackServiceDurationMin em vez de derrubar o cálculo inteiro — a
// disponibilidade precisa continuar computável com catálogo inconsistente.
// Falha de leitura do repositório NÃO é fallback: propaga.
type DurationResolver struct {
	repo domain.Repository
}

func NewDurationResolver(repo domain.Repository) *DurationResolver {
	return &DurationResolver{repo: repo}
}

func (r *DurationResolver) Execute(
	ctx context.Context,
	serviceIDs []string,
) (int, error) {

	if len(serviceIDs) == 0 {
		return 0, httperr.ErrBusiness("empty_service_list")
	}

	total := 0

	for _, id := range serviceIDs {
		svc, err := r.repo.GetService(ctx, id)

		switch {
		case errors.Is(err, domain.ErrNotFound):
			total += domain.FallbackServiceDurationMin
		case err != nil:
			return 0, err
		case svc.DurationMin <= 0:
			// duração corrompida no catálogo: mesmo tratamento de serviço sumido
			total += domain.FallbackServiceDurationMin
		default:
			total += svc.DurationMin
		}
	}

	return total, nil
}
