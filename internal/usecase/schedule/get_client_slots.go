package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	engine "github.com/barbearia-af/booking-api/internal/domain/schedule"
	"github.com/barbearia-af/booking-api/internal/httperr"
)

// GetClientSlots é a visão do cliente: só os horários livres. Para o cliente,
// dia sem expediente configurado e dia lotado são a mesma coisa — lista vazia.
type GetClientSlots struct {
	daySchedule *GetDaySchedule
}

func NewGetClientSlots(daySchedule *GetDaySchedule) *GetClientSlots {
	return &GetClientSlots{daySchedule: daySchedule}
}

func (uc *GetClientSlots) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	dateStr string,
) ([]time.Time, error) {

	slots, err := uc.daySchedule.Execute(ctx, barberID, dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "availability_not_configured") {
			return []time.Time{}, nil
		}
		return nil, err
	}

	return engine.AvailableTimes(slots), nil
}
