package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barbearia-af/booking-api/internal/audit"
	domain "github.com/barbearia-af/booking-api/internal/domain/appointment"
	engine "github.com/barbearia-af/booking-api/internal/domain/schedule"
	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/models"
	"github.com/barbearia-af/booking-api/internal/timezone"
)

type UpsertWindowInput struct {
	BarberID  uuid.UUID
	Date      string // 2006-01-02
	StartTime string // 15:04
	EndTime   string // 15:04
}

// UpsertWindow cria ou atualiza a janela de expediente de uma data.
// Chave (barber_id, date): salvar de novo só move os horários.
type UpsertWindow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
	now   func() time.Time
}

func NewUpsertWindow(
	repo domain.Repository,
	auditd *audit.Dispatcher,
	tz string,
) *UpsertWindow {
	return &UpsertWindow{
		repo:  repo,
		audit: auditd,
		tz:    tz,
		now:   func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *UpsertWindow) Execute(
	ctx context.Context,
	in UpsertWindowInput,
) (*models.BarberAvailability, error) {

	date, err := timezone.ParseDate(uc.tz, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	todayStart, _ := timezone.DayRange(uc.now())
	if date.Before(todayStart) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	start, err := engine.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	end, err := engine.ParseTimeOfDay(in.EndTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	window := engine.WorkingWindow{Start: start, End: end}
	if !window.Valid() {
		return nil, httperr.ErrBusiness("invalid_window")
	}

	av := &models.BarberAvailability{
		BarberID:  in.BarberID,
		Date:      in.Date,
		StartTime: start.String(),
		EndTime:   end.String(),
	}

	if err := uc.repo.UpsertAvailability(ctx, av); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.BarberID,
		Action:   "availability_saved",
		Entity:   "barber_availability",
		EntityID: &av.ID,
		Metadata: map[string]string{
			"date":  in.Date,
			"start": start.String(),
			"end":   end.String(),
		},
	})

	return av, nil
}
