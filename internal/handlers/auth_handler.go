package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barbearia-af/booking-api/internal/config"
	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/models"
	"github.com/barbearia-af/booking-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token   string         `json:"token"`
	Profile models.Profile `json:"profile"`
}

// ======================================================
// REGISTER
// ======================================================

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsEmailFormatValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}
	if !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "Domínio do e-mail não existe.")
		return
	}

	var count int64
	h.db.Model(&models.Profile{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_taken", "E-mail já cadastrado.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar conta.")
		return
	}

	profile := models.Profile{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         models.RoleClient,
	}

	if err := h.db.Create(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_create_profile", "Erro ao criar conta.")
		return
	}

	token, err := h.signToken(&profile)
	if err != nil {
		httperr.Internal(c, "failed_to_sign_token", "Erro ao criar sessão.")
		return
	}

	c.JSON(201, AuthResponse{Token: token, Profile: profile})
}

// ======================================================
// LOGIN
// ======================================================

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var profile models.Profile
	if err := h.db.Where("email = ?", req.Email).First(&profile).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	if bcrypt.CompareHashAndPassword(
		[]byte(profile.PasswordHash),
		[]byte(req.Password),
	) != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	token, err := h.signToken(&profile)
	if err != nil {
		httperr.Internal(c, "failed_to_sign_token", "Erro ao criar sessão.")
		return
	}

	c.JSON(200, AuthResponse{Token: token, Profile: profile})
}

func (h *AuthHandler) signToken(profile *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":  profile.ID.String(),
		"role": profile.Role,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}
