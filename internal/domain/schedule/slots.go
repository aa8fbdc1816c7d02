package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/barbearia-af/booking-api/internal/httperr"
)

// Duração fixa de um slot em todo o sistema.
const SlotDuration = 45 * time.Minute

type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
	StatusBlocked   Status = "blocked"
)

// BookingDetails são os campos denormalizados exibidos na agenda do barbeiro.
type BookingDetails struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	ClientName    string    `json:"client_name"`
	ClientPhone   string    `json:"client_phone"`
	ServiceName   string    `json:"service_name"`
}

// Slot é derivado, nunca persistido.
type Slot struct {
	Time    time.Time       `json:"time"`
	Status  Status          `json:"status"`
	Booking *BookingDetails `json:"booking,omitempty"`
	BlockID *uuid.UUID      `json:"block_id,omitempty"`
}

// BookedEntry é um agendamento ativo cujo instante cai no dia alvo.
type BookedEntry struct {
	At      time.Time
	Details BookingDetails
}

// BlockedEntry é um bloqueio manual cujo início cai no dia alvo.
type BlockedEntry struct {
	At time.Time
	ID uuid.UUID
}

// LocalTimeOnDate reexpressa um instante absoluto como "a mesma hora de
// parede, no dia civil de date". Registros chegam do banco em UTC; antes de
// comparar com os limites do expediente (compostos em hora local) é preciso
// extrair hora/minuto locais do instante e recombinar com a data alvo.
// Interpretar o instante cru direto contra os slots desloca tudo pelo offset
// UTC da estação.
func LocalTimeOnDate(instant, date time.Time) time.Time {
	local := instant.In(date.Location())
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		local.Hour(), local.Minute(), 0, 0,
		date.Location(),
	)
}

// BuildDaySchedule gera a sequência ordenada de slots do dia alvo.
//
// Função pura: todo o estado vem dos parâmetros, inclusive now, então o
// resultado é determinístico e testável. Janela ausente é um erro de negócio
// (availability_not_configured) e não um dia vazio — o barbeiro precisa
// configurar o expediente, o cliente só vê "nada disponível".
//
// Regras por slot, em ordem de precedência:
//  1. agendado  — um Appointment ativo ocupa o instante (ganha de bloqueio);
//  2. bloqueado — um BlockedSlot ocupa o instante;
//  3. disponível — somente se estritamente no futuro; slots passados sem
//     agendamento nem bloqueio são omitidos.
func BuildDaySchedule(
	window *WorkingWindow,
	booked []BookedEntry,
	blocked []BlockedEntry,
	targetDate time.Time,
	now time.Time,
	slotDuration time.Duration,
) ([]Slot, error) {

	if window == nil {
		return nil, httperr.ErrBusiness("availability_not_configured")
	}
	if slotDuration <= 0 {
		slotDuration = SlotDuration
	}

	windowStart := window.Start.OnDate(targetDate).Truncate(time.Minute)
	windowEnd := window.End.OnDate(targetDate).Truncate(time.Minute)

	// Janela degenerada: o invariante Start < End falhou em algum lugar.
	if !windowStart.Before(windowEnd) {
		return []Slot{}, nil
	}

	bookedAt := make(map[int64]BookingDetails, len(booked))
	for _, b := range booked {
		bookedAt[LocalTimeOnDate(b.At, targetDate).UnixMilli()] = b.Details
	}

	blockedAt := make(map[int64]uuid.UUID, len(blocked))
	for _, b := range blocked {
		blockedAt[LocalTimeOnDate(b.At, targetDate).UnixMilli()] = b.ID
	}

	// Mesma precisão do caminho dos slots, senão now a meio segundo do
	// início do slot exclui o horário "de agora" por milissegundos.
	nowTrunc := now.Truncate(time.Minute)

	slots := make([]Slot, 0, int(windowEnd.Sub(windowStart)/slotDuration)+1)

	for cur := windowStart; cur.Before(windowEnd); cur = cur.Add(slotDuration).Truncate(time.Minute) {
		key := cur.UnixMilli()

		if details, ok := bookedAt[key]; ok {
			d := details
			slots = append(slots, Slot{Time: cur, Status: StatusBooked, Booking: &d})
			continue
		}
		if id, ok := blockedAt[key]; ok {
			blockID := id
			slots = append(slots, Slot{Time: cur, Status: StatusBlocked, BlockID: &blockID})
			continue
		}
		if cur.After(nowTrunc) {
			slots = append(slots, Slot{Time: cur, Status: StatusAvailable})
		}
	}

	return slots, nil
}

// AvailableTimes filtra a visão do cliente: só os horários livres.
func AvailableTimes(slots []Slot) []time.Time {
	times := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		if s.Status == StatusAvailable {
			times = append(times, s.Time)
		}
	}
	return times
}
