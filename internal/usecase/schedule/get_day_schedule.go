package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/barbearia-af/booking-api/internal/domain/appointment"
	engine "github.com/barbearia-af/booking-api/internal/domain/schedule"
	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/timezone"
)

// GetDaySchedule monta a agenda completa do barbeiro para uma data:
// busca janela, agendamentos e bloqueios e delega ao motor de slots.
// Janela ausente propaga availability_not_configured — o painel manda o
// barbeiro configurar o expediente, não mostra um dia vazio.
type GetDaySchedule struct {
	repo domain.Repository
	tz   string
	now  func() time.Time
}

func NewGetDaySchedule(repo domain.Repository, tz string) *GetDaySchedule {
	return &GetDaySchedule{
		repo: repo,
		tz:   tz,
		now:  func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *GetDaySchedule) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	dateStr string,
) ([]engine.Slot, error) {

	date, err := timezone.ParseDate(uc.tz, dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	var window *engine.WorkingWindow
	if av, err := uc.repo.GetAvailability(ctx, barberID, dateStr); err == nil {
		start, serr := engine.ParseTimeOfDay(av.StartTime)
		end, eerr := engine.ParseTimeOfDay(av.EndTime)
		if serr == nil && eerr == nil {
			window = &engine.WorkingWindow{Start: start, End: end}
		}
	}

	dayStart, dayEnd := timezone.DayRange(date)

	appointments, err := uc.repo.ListScheduledForDay(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	blockedSlots, err := uc.repo.ListBlockedForDay(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	booked := make([]engine.BookedEntry, 0, len(appointments))
	for _, ap := range appointments {
		booked = append(booked, engine.BookedEntry{
			At: ap.AppointmentTime,
			Details: engine.BookingDetails{
				AppointmentID: ap.ID,
				ClientName:    ap.ClientName,
				ClientPhone:   ap.ClientPhone,
				ServiceName:   ap.Service.Name,
			},
		})
	}

	blocked := make([]engine.BlockedEntry, 0, len(blockedSlots))
	for _, bs := range blockedSlots {
		blocked = append(blocked, engine.BlockedEntry{
			At: bs.StartTime,
			ID: bs.ID,
		})
	}

	return engine.BuildDaySchedule(
		window,
		booked,
		blocked,
		date,
		uc.now(),
		engine.SlotDuration,
	)
}
