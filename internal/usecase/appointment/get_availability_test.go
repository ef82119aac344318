package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamede573/BarberManager/internal/civil"
	domain "github.com/mamede573/BarberManager/internal/domain/appointment"
	"github.com/mamede573/BarberManager/internal/httperr"
	"github.com/mamede573/BarberManager/internal/models"
)

func availabilityFixture() (*fakeRepo, *GetAvailability, civil.Date) {
	repo := newFakeRepo()

	repo.barbers["b1"] = &models.Barber{ID: "b1", Name: "João", Active: true}
	repo.services["svc-45"] = &models.Service{ID: "svc-45", BarberID: "b1", DurationMin: 45}
	repo.services["svc-30"] = &models.Service{ID: "svc-30", BarberID: "b1", DurationMin: 30}

	date, _ := civil.ParseDate("2024-06-10")
	return repo, NewGetAvailability(repo), date
}

func occupy(repo *fakeRepo, id, hhmm string, date civil.Date, status domain.Status, serviceIDs ...string) {
	repo.appointments[id] = &models.Appointment{
		ID:         id,
		ClientID:   "other-client",
		BarberID:   "b1",
		ServiceIDs: pq.StringArray(serviceIDs),
		Date:       date,
		Time:       hhmm,
		Status:     string(status),
	}
}

func TestAvailabilityEmptyDayReturnsFullGrid(t *testing.T) {
	_, uc, date := availabilityFixture()

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID:   "b1",
		Date:       date,
		ServiceIDs: []string{"svc-45"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSlotGrid, slots)
}

func TestAvailabilityExcludesOverlappingStarts(t *testing.T) {
	repo, uc, date := availabilityFixture()

	// 10:00 ocupado por 45min → [600, 645)
	occupy(repo, "ap-busy", "10:00", date, domain.StatusConfirmed, "svc-45")

	// pedido de 30min: 10:00 e 10:30 caem, 09:30 e 11:00 encostam e ficam
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID:   "b1",
		Date:       date,
		ServiceIDs: []string{"svc-30"},
	})
	require.NoError(t, err)

	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "11:00")
	assert.Len(t, slots, len(domain.DefaultSlotGrid)-2)
}

func TestAvailabilityLongRequestCollidesBackwards(t *testing.T) {
	repo, uc, date := availabilityFixture()

	occupy(repo, "ap-busy", "10:00", date, domain.StatusPending, "svc-30")

	// pedido de 45min começando 09:30 invade [600, 630): 09:30 cai também
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID:   "b1",
		Date:       date,
		ServiceIDs: []string{"svc-45"},
	})
	require.NoError(t, err)

	assert.NotContains(t, slots, "09:30")
	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "09:00") // [540, 585) termina antes do ocupado
	assert.Contains(t, slots, "10:30")
}

func TestAvailabilityIgnoresNonOccupyingStatuses(t *testing.T) {
	repo, uc, date := availabilityFixture()

	occupy(repo, "ap-cancelled", "10:00", date, domain.StatusCancelled, "svc-45")
	occupy(repo, "ap-done", "14:00", date, domain.StatusCompleted, "svc-45")

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID:   "b1",
		Date:       date,
		ServiceIDs: []string{"svc-30"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSlotGrid, slots)
}

func TestAvailabilityExcludeOwnAppointment(t *testing.T) {
	repo, uc, date := availabilityFixture()

	occupy(repo, "ap-mine", "10:00", date, domain.StatusConfirmed, "svc-45")

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID:             "b1",
		Date:                 date,
		ServiceIDs:           []string{"svc-45"},
		ExcludeAppointmentID: "ap-mine",
	})
	require.NoError(t, err)

	// contra si mesmo não há conflito: remarcar para o próprio horário é válido
	assert.Equal(t, domain.DefaultSlotGrid, slots)
}

func TestAvailabilityOccupiedRowWithGhostServiceUsesFallback(t *testing.T) {
	repo, uc, date := availabilityFixture()

	// linha antiga apontando para serviço apagado ocupa [600, 630)
	occupy(repo, "ap-ghost", "10:00", date, domain.StatusConfirmed, "ghost")

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID:   "b1",
		Date:       date,
		ServiceIDs: []string{"svc-30"},
	})
	require.NoError(t, err)

	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "10:30")
}

func TestAvailabilityIsIdempotentAndSubsetOfGrid(t *testing.T) {
	repo, uc, date := availabilityFixture()

	occupy(repo, "ap-a", "09:00", date, domain.StatusConfirmed, "svc-45")
	occupy(repo, "ap-b", "15:00", date, domain.StatusPending, "svc-30")

	in := domain.AvailabilityInput{
		BarberID:   "b1",
		Date:       date,
		ServiceIDs: []string{"svc-30"},
	}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	for _, hhmm := range first {
		assert.Contains(t, domain.DefaultSlotGrid, hhmm)
	}
}

func TestAvailabilityEmptyServiceListFails(t *testing.T) {
	_, uc, date := availabilityFixture()

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: "b1",
		Date:     date,
	})
	assert.True(t, httperr.IsBusiness(err, "empty_service_list"))
}

func TestAvailabilityRepoFailurePropagates(t *testing.T) {
	repo, uc, date := availabilityFixture()
	repo.listErr = errors.New("db down")

	// nunca responder grade cheia escondendo "dados indisponíveis"
	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID:   "b1",
		Date:       date,
		ServiceIDs: []string{"svc-30"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.listErr)
}

func TestAvailabilityCustomGrid(t *testing.T) {
	repo, _, date := availabilityFixture()
	uc := NewGetAvailability(repo).WithGrid([]string{"08:00", "08:30"})

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID:   "b1",
		Date:       date,
		ServiceIDs: []string{"svc-30"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "08:30"}, slots)
}
