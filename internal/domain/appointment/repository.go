package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barbearia-af/booking-api/internal/models"
)

type Repository interface {
	// -------- Profile --------
	GetProfileByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Profile, error)

	ListBarbers(
		ctx context.Context,
	) ([]models.Profile, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	// -------- Availability (working window) --------
	GetAvailability(
		ctx context.Context,
		barberID uuid.UUID,
		date string,
	) (*models.BarberAvailability, error)

	UpsertAvailability(
		ctx context.Context,
		av *models.BarberAvailability,
	) error

	DeleteAvailability(
		ctx context.Context,
		barberID uuid.UUID,
		date string,
	) error

	ListAvailabilityDates(
		ctx context.Context,
		barberID uuid.UUID,
	) ([]models.BarberAvailability, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListScheduledForDay(
		ctx context.Context,
		barberID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListForClient(
		ctx context.Context,
		clientID uuid.UUID,
	) ([]models.Appointment, error)

	ListForBarberDay(
		ctx context.Context,
		barberID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Blocked slots --------
	CreateBlockedSlot(
		ctx context.Context,
		bs *models.BlockedSlot,
	) error

	GetBlockedSlot(
		ctx context.Context,
		id uuid.UUID,
	) (*models.BlockedSlot, error)

	DeleteBlockedSlot(
		ctx context.Context,
		id uuid.UUID,
	) error

	ListBlockedForDay(
		ctx context.Context,
		barberID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.BlockedSlot, error)
}
