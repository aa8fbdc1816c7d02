package availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/barbearia-af/booking-api/internal/audit"
	domain "github.com/barbearia-af/booking-api/internal/domain/appointment"
	"github.com/barbearia-af/booking-api/internal/models"
)

// DeleteWindow remove a janela da data. Slots são derivados, então a
// remoção invalida o dia inteiro sem precisar tocar em mais nada.
type DeleteWindow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteWindow(
	repo domain.Repository,
	auditd *audit.Dispatcher,
) *DeleteWindow {
	return &DeleteWindow{repo: repo, audit: auditd}
}

func (uc *DeleteWindow) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
) error {

	if err := uc.repo.DeleteAvailability(ctx, barberID, date); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   "availability_removed",
		Entity:   "barber_availability",
		Metadata: map[string]string{"date": date},
	})

	return nil
}

// ListWindows devolve todas as datas configuradas do barbeiro (o
// calendário do painel destaca esses dias).
type ListWindows struct {
	repo domain.Repository
}

func NewListWindows(repo domain.Repository) *ListWindows {
	return &ListWindows{repo: repo}
}

func (uc *ListWindows) Execute(
	ctx context.Context,
	barberID uuid.UUID,
) ([]models.BarberAvailability, error) {
	return uc.repo.ListAvailabilityDates(ctx, barberID)
}
