package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/httpresp"
	"github.com/barbearia-af/booking-api/internal/middleware"
	ucAppointment "github.com/barbearia-af/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC           *ucAppointment.Book
	cancelByClientUC *ucAppointment.CancelByClient
	cancelByBarberUC *ucAppointment.CancelByBarber
	listForClientUC  *ucAppointment.ListForClient
	listDayUC        *ucAppointment.ListDayForBarber
}

func NewAppointmentHandler(
	bookUC *ucAppointment.Book,
	cancelByClientUC *ucAppointment.CancelByClient,
	cancelByBarberUC *ucAppointment.CancelByBarber,
	listForClientUC *ucAppointment.ListForClient,
	listDayUC *ucAppointment.ListDayForBarber,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:           bookUC,
		cancelByClientUC: cancelByClientUC,
		cancelByBarberUC: cancelByBarberUC,
		listForClientUC:  listForClientUC,
		listDayUC:        listDayUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookRequest struct {
	BarberID  uuid.UUID `json:"barber_id" binding:"required"`
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	Time      string    `json:"time" binding:"required"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	clientID := middleware.UserID(c)

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookInput{
		ClientID:  clientID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		switch code := httperr.BusinessCode(err); code {
		case "service_not_found", "barber_not_found":
			httperr.BadRequest(c, code, "Serviço ou barbeiro não encontrado.")
		case "invalid_date_or_time":
			httperr.BadRequest(c, code, "Data ou hora inválida.")
		case "availability_not_configured", "slot_unavailable":
			httperr.BadRequest(c, "slot_unavailable", "Horário indisponível.")
		case "slot_taken":
			httperr.Conflict(c, code, "Outro cliente acabou de reservar este horário.")
		default:
			httperr.Internal(c, "failed_to_book", "Erro ao criar agendamento.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST (client)
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	clientID := middleware.UserID(c)

	out, err := h.listForClientUC.Execute(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// CANCEL (client)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	clientID := middleware.UserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	ap, err := h.cancelByClientUC.Execute(c.Request.Context(), clientID, id)
	if err != nil {
		switch code := httperr.BusinessCode(err); code {
		case "appointment_not_found":
			httperr.NotFound(c, code, "Agendamento não encontrado.")
		case "invalid_state":
			httperr.BadRequest(c, code, "Agendamento não pode ser cancelado.")
		case "cancel_window_closed":
			httperr.BadRequest(c, code, "Cancelamento só até 12 horas antes do horário.")
		default:
			httperr.Internal(c, "failed_to_cancel", "Erro ao cancelar agendamento.")
		}
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// BARBER: LIST BY DAY / CANCEL
// ======================================================

func (h *AppointmentHandler) ListDay(c *gin.Context) {
	barberID := middleware.UserID(c)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	out, err := h.listDayUC.Execute(c.Request.Context(), barberID, dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) CancelAsBarber(c *gin.Context) {
	barberID := middleware.UserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	ap, err := h.cancelByBarberUC.Execute(c.Request.Context(), barberID, id)
	if err != nil {
		switch code := httperr.BusinessCode(err); code {
		case "appointment_not_found":
			httperr.NotFound(c, code, "Agendamento não encontrado.")
		case "invalid_state":
			httperr.BadRequest(c, code, "Agendamento não pode ser cancelado.")
		default:
			httperr.Internal(c, "failed_to_cancel", "Erro ao cancelar agendamento.")
		}
		return
	}

	c.JSON(200, ap)
}
