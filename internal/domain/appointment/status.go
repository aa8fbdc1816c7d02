package appointment

import (
	"time"

	"github.com/barbearia-af/booking-api/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

// Antecedência mínima para o cliente cancelar o próprio agendamento.
const ClientCancelWindow = 12 * time.Hour

func InitialStatus() Status {
	return StatusScheduled
}

// ===============================
// Validations
// ===============================

// CanCancelByBarber: barbeiro cancela a qualquer momento, desde que o
// agendamento ainda esteja ativo.
func CanCancelByBarber(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancelByClient: além do estado, o cliente só cancela com pelo menos
// 12 horas de antecedência.
func CanCancelByClient(current Status, appointmentTime, now time.Time) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	if now.Add(ClientCancelWindow).After(appointmentTime) {
		return httperr.ErrBusiness("cancel_window_closed")
	}
	return nil
}
