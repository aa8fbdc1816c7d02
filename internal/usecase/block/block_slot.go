package block

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barbearia-af/booking-api/internal/audit"
	"github.com/barbearia-af/booking-api/internal/cache"
	domain "github.com/barbearia-af/booking-api/internal/domain/appointment"
	engine "github.com/barbearia-af/booking-api/internal/domain/schedule"
	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/models"
	"github.com/barbearia-af/booking-api/internal/timezone"
	scheduleuc "github.com/barbearia-af/booking-api/internal/usecase/schedule"
)

// BlockSlot retira um horário da agenda. Só um slot atualmente livre pode
// ser bloqueado: agendamento ganha de bloqueio, então bloquear por cima de
// uma reserva é recusado aqui, antes da escrita.
type BlockSlot struct {
	repo        domain.Repository
	daySchedule *scheduleuc.GetDaySchedule
	holder      *cache.SlotHolder
	audit       *audit.Dispatcher
	tz          string
}

func NewBlockSlot(
	repo domain.Repository,
	daySchedule *scheduleuc.GetDaySchedule,
	holder *cache.SlotHolder,
	auditd *audit.Dispatcher,
	tz string,
) *BlockSlot {
	return &BlockSlot{
		repo:        repo,
		daySchedule: daySchedule,
		holder:      holder,
		audit:       auditd,
		tz:          tz,
	}
}

func (uc *BlockSlot) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	dateStr string,
	timeStr string,
) (*models.BlockedSlot, error) {

	at, err := timezone.ParseDateTime(uc.tz, dateStr, timeStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	slots, err := uc.daySchedule.Execute(ctx, barberID, dateStr)
	if err != nil {
		return nil, err
	}

	status, found := statusAt(slots, at)
	switch {
	case !found:
		return nil, httperr.ErrBusiness("outside_working_hours")
	case status == engine.StatusBooked:
		return nil, httperr.ErrBusiness("slot_booked")
	case status == engine.StatusBlocked:
		return nil, httperr.ErrBusiness("already_blocked")
	}

	if uc.holder != nil {
		ok, herr := uc.holder.Acquire(ctx, barberID, at)
		if herr == nil && !ok {
			return nil, httperr.ErrBusiness("slot_taken")
		}
	}

	bs := &models.BlockedSlot{
		BarberID:  barberID,
		StartTime: at,
		EndTime:   at.Add(engine.SlotDuration),
	}

	if err := uc.repo.CreateBlockedSlot(ctx, bs); err != nil {
		if uc.holder != nil {
			uc.holder.Release(ctx, barberID, at)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   "slot_blocked",
		Entity:   "blocked_slot",
		EntityID: &bs.ID,
	})

	return bs, nil
}

func statusAt(slots []engine.Slot, at time.Time) (engine.Status, bool) {
	for _, s := range slots {
		if s.Time.Equal(at) {
			return s.Status, true
		}
	}
	return "", false
}
