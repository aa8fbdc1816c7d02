package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/httpresp"
	"github.com/barbearia-af/booking-api/internal/middleware"
	scheduleuc "github.com/barbearia-af/booking-api/internal/usecase/schedule"
)

// ScheduleHandler serve a agenda do dia no painel do barbeiro: todos os
// slots com status, nome do cliente e serviço nos agendados.
type ScheduleHandler struct {
	daySchedule *scheduleuc.GetDaySchedule
}

func NewScheduleHandler(daySchedule *scheduleuc.GetDaySchedule) *ScheduleHandler {
	return &ScheduleHandler{daySchedule: daySchedule}
}

// GET /me/schedule?date=2006-01-02
func (h *ScheduleHandler) GetDay(c *gin.Context) {
	barberID := middleware.UserID(c)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	slots, err := h.daySchedule.Execute(c.Request.Context(), barberID, dateStr)
	if err != nil {
		switch code := httperr.BusinessCode(err); code {
		case "invalid_date":
			httperr.BadRequest(c, code, "Data inválida.")
		case "availability_not_configured":
			// Dia sem expediente não é dia vazio: o painel manda
			// configurar em "Gerenciar Disponibilidade".
			httperr.NotFound(c, code, "Disponibilidade não definida para esta data.")
		default:
			httperr.Internal(c, "failed_to_build_schedule", "Erro ao montar agenda.")
		}
		return
	}

	httpresp.List(c, slots)
}
