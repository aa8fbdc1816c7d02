package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barbearia-af/booking-api/internal/audit"
	domain "github.com/barbearia-af/booking-api/internal/domain/appointment"
	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/models"
	"github.com/barbearia-af/booking-api/internal/timezone"
)

type CancelByBarber struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelByBarber(
	repo domain.Repository,
	auditd *audit.Dispatcher,
	tz string,
) *CancelByBarber {
	return &CancelByBarber{
		repo:  repo,
		audit: auditd,
		now:   func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *CancelByBarber) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil || ap.BarberID != barberID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CancelByBarber(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   "appointment_cancelled_by_barber",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
