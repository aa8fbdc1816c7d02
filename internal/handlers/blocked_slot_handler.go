package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/httpresp"
	"github.com/barbearia-af/booking-api/internal/middleware"
	ucBlock "github.com/barbearia-af/booking-api/internal/usecase/block"
)

type BlockedSlotHandler struct {
	blockUC   *ucBlock.BlockSlot
	unblockUC *ucBlock.UnblockSlot
}

func NewBlockedSlotHandler(
	blockUC *ucBlock.BlockSlot,
	unblockUC *ucBlock.UnblockSlot,
) *BlockedSlotHandler {
	return &BlockedSlotHandler{blockUC: blockUC, unblockUC: unblockUC}
}

type BlockSlotRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

func (h *BlockedSlotHandler) Block(c *gin.Context) {
	barberID := middleware.UserID(c)

	var req BlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	bs, err := h.blockUC.Execute(c.Request.Context(), barberID, req.Date, req.Time)
	if err != nil {
		switch code := httperr.BusinessCode(err); code {
		case "invalid_date_or_time":
			httperr.BadRequest(c, code, "Data ou hora inválida.")
		case "availability_not_configured":
			httperr.NotFound(c, code, "Disponibilidade não definida para esta data.")
		case "outside_working_hours":
			httperr.BadRequest(c, code, "Horário fora do expediente.")
		case "slot_booked":
			// Agendamento ganha de bloqueio; não se bloqueia por cima.
			httperr.Conflict(c, code, "Horário já tem agendamento.")
		case "already_blocked":
			httperr.Conflict(c, code, "Horário já está bloqueado.")
		case "slot_taken":
			httperr.Conflict(c, code, "Horário acabou de ser ocupado.")
		default:
			httperr.Internal(c, "failed_to_block", "Erro ao bloquear horário.")
		}
		return
	}

	httpresp.Created(c, bs)
}

func (h *BlockedSlotHandler) Unblock(c *gin.Context) {
	barberID := middleware.UserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_block_id", "Bloqueio inválido.")
		return
	}

	if err := h.unblockUC.Execute(c.Request.Context(), barberID, id); err != nil {
		if httperr.IsBusiness(err, "block_not_found") {
			httperr.NotFound(c, "block_not_found", "Bloqueio não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_unblock", "Erro ao desbloquear horário.")
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
