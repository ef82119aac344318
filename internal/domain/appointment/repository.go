package appointment

import (
	"context"
	"errors"

	"github.com/mamede573/BarberManager/internal/civil"
	"github.com/mamede573/BarberManager/internal/models"
)

// ErrNotFound é o "registro não existe" neutro devolvido pela infra,
// para o usecase não depender do ORM.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		id string,
	) (*models.Barber, error)

	// -------- Service (catálogo, read-only aqui) --------
	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- Appointment (leitura) --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	GetAppointmentForClient(
		ctx context.Context,
		appointmentID string,
		clientID string,
	) (*models.Appointment, error)

	// ListDayAppointments devolve só pending/confirmed do barbeiro naquele
	// dia civil, ordenados por hora.
	ListDayAppointments(
		ctx context.Context,
		barberID string,
		date civil.Date,
	) ([]models.Appointment, error)

	ListAppointmentsByClient(
		ctx context.Context,
		clientID string,
	) ([]models.Appointment, error)

	// -------- Appointment (escrita) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
