package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/middleware"
	"github.com/barbearia-af/booking-api/internal/models"
	"github.com/barbearia-af/booking-api/internal/storage"
)

type MeHandler struct {
	db      *gorm.DB
	avatars *storage.AvatarStore
}

func NewMeHandler(db *gorm.DB, avatars *storage.AvatarStore) *MeHandler {
	return &MeHandler{db: db, avatars: avatars}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.UserID(c)

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", userID).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Perfil não encontrado.")
		return
	}

	c.JSON(200, profile)
}

// UploadAvatar recebe multipart "avatar" (JPEG/PNG), publica no bucket
// e grava a URL no perfil.
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	if h.avatars == nil {
		httperr.Internal(c, "avatar_storage_disabled", "Upload de avatar não configurado.")
		return
	}

	userID := middleware.UserID(c)

	file, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar", "Envie o arquivo no campo 'avatar'.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_avatar", "Erro ao ler o arquivo.")
		return
	}
	defer src.Close()

	url, err := h.avatars.Upload(c.Request.Context(), userID, src)
	if err != nil {
		httperr.BadRequest(c, "invalid_avatar", "Arquivo inválido (use JPEG ou PNG).")
		return
	}

	if err := h.db.Model(&models.Profile{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_save_avatar", "Erro ao salvar avatar.")
		return
	}

	c.JSON(200, gin.H{"avatar_url": url})
}
