package block

import (
	"context"

	"github.com/google/uuid"

	"github.com/barbearia-af/booking-api/internal/audit"
	domain "github.com/barbearia-af/booking-api/internal/domain/appointment"
	"github.com/barbearia-af/booking-api/internal/httperr"
)

// UnblockSlot é o outro lado do toggle: clicar num horário bloqueado
// devolve o slot para a agenda.
type UnblockSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUnblockSlot(
	repo domain.Repository,
	auditd *audit.Dispatcher,
) *UnblockSlot {
	return &UnblockSlot{repo: repo, audit: auditd}
}

func (uc *UnblockSlot) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	blockID uuid.UUID,
) error {

	bs, err := uc.repo.GetBlockedSlot(ctx, blockID)
	if err != nil || bs.BarberID != barberID {
		return httperr.ErrBusiness("block_not_found")
	}

	if err := uc.repo.DeleteBlockedSlot(ctx, blockID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   "slot_unblocked",
		Entity:   "blocked_slot",
		EntityID: &blockID,
	})

	return nil
}
