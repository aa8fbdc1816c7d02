package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/httpresp"
	"github.com/barbearia-af/booking-api/internal/middleware"
	ucAvailability "github.com/barbearia-af/booking-api/internal/usecase/availability"
)

type AvailabilityHandler struct {
	upsertUC *ucAvailability.UpsertWindow
	deleteUC *ucAvailability.DeleteWindow
	listUC   *ucAvailability.ListWindows
}

func NewAvailabilityHandler(
	upsertUC *ucAvailability.UpsertWindow,
	deleteUC *ucAvailability.DeleteWindow,
	listUC *ucAvailability.ListWindows,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		upsertUC: upsertUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

type UpsertAvailabilityRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (h *AvailabilityHandler) List(c *gin.Context) {
	barberID := middleware.UserID(c)

	rows, err := h.listUC.Execute(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Erro ao buscar disponibilidades.")
		return
	}

	httpresp.List(c, rows)
}

func (h *AvailabilityHandler) Upsert(c *gin.Context) {
	barberID := middleware.UserID(c)

	var req UpsertAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	av, err := h.upsertUC.Execute(c.Request.Context(), ucAvailability.UpsertWindowInput{
		BarberID:  barberID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		switch code := httperr.BusinessCode(err); code {
		case "invalid_date", "invalid_time":
			httperr.BadRequest(c, code, "Data ou hora inválida.")
		case "date_in_past":
			httperr.BadRequest(c, code, "Não dá para configurar expediente em data passada.")
		case "invalid_window":
			httperr.BadRequest(c, code, "Início do expediente deve vir antes do fim.")
		default:
			httperr.Internal(c, "failed_to_save_availability", "Erro ao salvar horário.")
		}
		return
	}

	c.JSON(200, av)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	barberID := middleware.UserID(c)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), barberID, dateStr); err != nil {
		if httperr.IsBusiness(err, "availability_not_configured") {
			httperr.NotFound(c, "availability_not_configured", "Nenhum horário para remover nesta data.")
			return
		}
		httperr.Internal(c, "failed_to_delete_availability", "Erro ao remover horário.")
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
