package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/barbearia-af/booking-api/internal/domain/appointment"
	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/httpresp"
	scheduleuc "github.com/barbearia-af/booking-api/internal/usecase/schedule"
)

// CatalogHandler serve o fluxo de novo agendamento do cliente:
// serviços, barbeiros e horários livres de um barbeiro numa data.
type CatalogHandler struct {
	repo        domain.Repository
	clientSlots *scheduleuc.GetClientSlots
}

func NewCatalogHandler(
	repo domain.Repository,
	clientSlots *scheduleuc.GetClientSlots,
) *CatalogHandler {
	return &CatalogHandler{repo: repo, clientSlots: clientSlots}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao buscar serviços.")
		return
	}
	httpresp.List(c, services)
}

func (h *CatalogHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao buscar barbeiros.")
		return
	}
	httpresp.List(c, barbers)
}

// GET /barbers/:id/slots?date=2006-01-02
func (h *CatalogHandler) ListSlots(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	times, err := h.clientSlots.Execute(c.Request.Context(), barberID, dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		httperr.Internal(c, "failed_to_list_slots", "Erro ao buscar horários.")
		return
	}

	httpresp.List(c, times)
}
