package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/barbearia-af/booking-api/internal/domain/appointment"
	"github.com/barbearia-af/booking-api/internal/dto"
)

type ListForClient struct {
	repo domain.Repository
}

func NewListForClient(repo domain.Repository) *ListForClient {
	return &ListForClient{repo: repo}
}

func (uc *ListForClient) Execute(
	ctx context.Context,
	clientID uuid.UUID,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListForClient(ctx, clientID)
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
			BarberName:      ap.Barber.FullName,
			PaymentURL:      ap.PaymentURL,
		})
	}

	return out, nil
}
