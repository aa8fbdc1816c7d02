package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/barbearia-af/booking-api/internal/domain/appointment"
	"github.com/barbearia-af/booking-api/internal/dto"
	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/timezone"
)

// ListDayForBarber lista os agendamentos do dia, inclusive cancelados —
// histórico continua visível na agenda do barbeiro.
type ListDayForBarber struct {
	repo domain.Repository
	tz   string
}

func NewListDayForBarber(repo domain.Repository, tz string) *ListDayForBarber {
	return &ListDayForBarber{repo: repo, tz: tz}
}

func (uc *ListDayForBarber) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	dateStr string,
) ([]dto.AppointmentListDTO, error) {

	date, err := timezone.ParseDate(uc.tz, dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, end := timezone.DayRange(date)

	appointments, err := uc.repo.ListForBarberDay(ctx, barberID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			AppointmentTime: ap.AppointmentTime,
			Status:          ap.Status,
			ClientName:      ap.ClientName,
			ClientPhone:     ap.ClientPhone,
			ServiceName:     ap.Service.Name,
		})
	}

	return out, nil
}
