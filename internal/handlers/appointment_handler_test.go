package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamede573/BarberManager/internal/civil"
	domain "github.com/mamede573/BarberManager/internal/domain/appointment"
	"github.com/mamede573/BarberManager/internal/models"
	ucAppointment "github.com/mamede573/BarberManager/internal/usecase/appointment"
)

// stubRepo cobre só o que o endpoint de disponibilidade toca.
type stubRepo struct {
	barber     *models.Barber
	services   map[string]*models.Service
	dayRows    []models.Appointment
	listDayErr error
}

func (s *stubRepo) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	if s.barber != nil && s.barber.ID == id {
		return s.barber, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	if svc, ok := s.services[id]; ok {
		return svc, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepo) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) GetAppointmentForClient(ctx context.Context, appointmentID, clientID string) (*models.Appointment, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) ListDayAppointments(ctx context.Context, barberID string, date civil.Date) ([]models.Appointment, error) {
	if s.listDayErr != nil {
		return nil, s.listDayErr
	}
	return s.dayRows, nil
}

func (s *stubRepo) ListAppointmentsByClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error { return nil }
func (s *stubRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error { return nil }

var _ domain.Repository = (*stubRepo)(nil)

func availabilityRouter(repo *stubRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := &AppointmentHandler{
		repo:           repo,
		availabilityUC: ucAppointment.NewGetAvailability(repo),
	}

	r := gin.New()
	r.GET("/api/barbers/:id/availability", h.Availability)
	return r
}

func doGET(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testStubRepo() *stubRepo {
	return &stubRepo{
		barber: &models.Barber{ID: "b1", Name: "João", Active: true},
		services: map[string]*models.Service{
			"svc-30": {ID: "svc-30", DurationMin: 30},
		},
	}
}

func TestAvailabilityEndpoint(t *testing.T) {
	r := availabilityRouter(testStubRepo())

	w := doGET(t, r, "/api/barbers/b1/availability?date=2024-06-10&service_ids=svc-30")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Date  string   `json:"date"`
		Slots []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "2024-06-10", body.Date)
	assert.Equal(t, domain.DefaultSlotGrid, body.Slots)
}

func TestAvailabilityEndpointMissingParams(t *testing.T) {
	r := availabilityRouter(testStubRepo())

	w := doGET(t, r, "/api/barbers/b1/availability?date=2024-06-10")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doGET(t, r, "/api/barbers/b1/availability?service_ids=svc-30")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doGET(t, r, "/api/barbers/b1/availability?date=10-06-2024&service_ids=svc-30")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailabilityEndpointUnknownBarber(t *testing.T) {
	r := availabilityRouter(testStubRepo())

	w := doGET(t, r, "/api/barbers/ghost/availability?date=2024-06-10&service_ids=svc-30")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAvailabilityEndpointRepoFailureIs500(t *testing.T) {
	repo := testStubRepo()
	repo.listDayErr = errors.New("db down")
	r := availabilityRouter(repo)

	// dia lotado seria 200 com lista vazia; falha de leitura é 500
	w := doGET(t, r, "/api/barbers/b1/availability?date=2024-06-10&service_ids=svc-30")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
