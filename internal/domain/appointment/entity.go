package appointment

import (
	"time"

	"github.com/barbearia-af/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func CancelByBarber(ap *models.Appointment, now time.Time) error {
	if err := CanCancelByBarber(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func CancelByClient(ap *models.Appointment, now time.Time) error {
	if err := CanCancelByClient(Status(ap.Status), ap.AppointmentTime, now); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}
