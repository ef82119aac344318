package appointment

import (
	"time"

	"github.com/mamede573/BarberManager/internal/civil"
	"github.com/mamede573/BarberManager/internal/models"
)

// ===============================
// Availability Input
// ===============================

type AvailabilityInput struct {
	BarberID   string
	Date       civil.Date
	ServiceIDs []string

	// ExcludeAppointmentID tira o próprio agendamento do conjunto ocupado
	// durante um reagendamento.
	ExcludeAppointmentID string
}

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Reschedule(ap *models.Appointment, date civil.Date, hhmm string) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.Date = date
	ap.Time = hhmm
	return nil
}
