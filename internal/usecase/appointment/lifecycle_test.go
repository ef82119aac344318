package appointment

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamede573/BarberManager/internal/civil"
	domain "github.com/mamede573/BarberManager/internal/domain/appointment"
	"github.com/mamede573/BarberManager/internal/httperr"
	"github.com/mamede573/BarberManager/internal/models"
)

func lifecycleFixture(status domain.Status) *fakeRepo {
	repo := newFakeRepo()
	date, _ := civil.ParseDate("2024-06-10")

	repo.appointments["ap-1"] = &models.Appointment{
		ID:         "ap-1",
		ClientID:   "c1",
		BarberID:   "b1",
		ServiceIDs: pq.StringArray{"svc-45"},
		Date:       date,
		Time:       "10:00",
		Status:     string(status),
	}
	return repo
}

func TestCancelAppointment(t *testing.T) {
	repo := lifecycleFixture(domain.StatusConfirmed)
	uc := NewCancelAppointment(repo, newTestDispatcher())

	ap, err := uc.Execute(context.Background(), "c1", "ap-1")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.False(t, domain.Status(ap.Status).Occupies(), "slot deve voltar a ficar livre")
}

func TestCancelAppointmentTwice(t *testing.T) {
	repo := lifecycleFixture(domain.StatusConfirmed)
	uc := NewCancelAppointment(repo, newTestDispatcher())

	_, err := uc.Execute(context.Background(), "c1", "ap-1")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), "c1", "ap-1")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelAppointmentWrongClient(t *testing.T) {
	repo := lifecycleFixture(domain.StatusPending)
	uc := NewCancelAppointment(repo, newTestDispatcher())

	_, err := uc.Execute(context.Background(), "c2", "ap-1")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestConfirmThenComplete(t *testing.T) {
	repo := lifecycleFixture(domain.StatusPending)

	ap, err := NewConfirmAppointment(repo, newTestDispatcher()).Execute(context.Background(), "ap-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	require.NotNil(t, ap.ConfirmedAt)

	ap, err = NewCompleteAppointment(repo, newTestDispatcher()).Execute(context.Background(), "ap-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	repo := lifecycleFixture(domain.StatusPending)

	_, err := NewCompleteAppointment(repo, newTestDispatcher()).Execute(context.Background(), "ap-1")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestMarkAppointmentPaid(t *testing.T) {
	repo := lifecycleFixture(domain.StatusConfirmed)
	uc := NewMarkAppointmentPaid(repo)

	ap, err := uc.Execute(context.Background(), "c1", "ap-1", "pix")
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentPaid, ap.PaymentStatus)
	assert.Equal(t, "pix", ap.PaymentMethod)

	_, err = uc.Execute(context.Background(), "c1", "ap-1", "pix")
	assert.True(t, httperr.IsBusiness(err, "already_paid"))
}

func TestMarkAppointmentPaidAfterCancel(t *testing.T) {
	repo := lifecycleFixture(domain.StatusCancelled)

	_, err := NewMarkAppointmentPaid(repo).Execute(context.Background(), "c1", "ap-1", "cash")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
