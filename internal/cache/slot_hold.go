package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Janela curta o suficiente para não prender um horário que o usuário
// abandonou, longa o suficiente para cobrir o round-trip da escrita.
const holdTTL = 30 * time.Second

// SlotHolder estreita a corrida entre snapshot e escrita: o primeiro ator a
// segurar (barbeiro, instante) prossegue, o segundo recebe slot_taken antes
// de bater no banco. O índice único continua sendo a garantia final.
type SlotHolder struct {
	rdb *redis.Client
}

func NewSlotHolder(rdb *redis.Client) *SlotHolder {
	return &SlotHolder{rdb: rdb}
}

func holdKey(barberID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("slot-hold:%s:%d", barberID, at.Unix())
}

// Acquire devolve false se outro ator já segura o slot.
func (h *SlotHolder) Acquire(ctx context.Context, barberID uuid.UUID, at time.Time) (bool, error) {
	return h.rdb.SetNX(ctx, holdKey(barberID, at), 1, holdTTL).Result()
}

// Release libera o hold após a escrita (sucesso ou falha definitiva).
func (h *SlotHolder) Release(ctx context.Context, barberID uuid.UUID, at time.Time) {
	h.rdb.Del(ctx, holdKey(barberID, at))
}
