package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barbearia-af/booking-api/internal/audit"
	"github.com/barbearia-af/booking-api/internal/cache"
	"github.com/barbearia-af/booking-api/internal/config"
	"github.com/barbearia-af/booking-api/internal/handlers"
	infraRepo "github.com/barbearia-af/booking-api/internal/infra/repository"
	"github.com/barbearia-af/booking-api/internal/middleware"
	"github.com/barbearia-af/booking-api/internal/payments"
	"github.com/barbearia-af/booking-api/internal/storage"
	ucAppointment "github.com/barbearia-af/booking-api/internal/usecase/appointment"
	ucAvailability "github.com/barbearia-af/booking-api/internal/usecase/availability"
	ucBlock "github.com/barbearia-af/booking-api/internal/usecase/block"
	ucSchedule "github.com/barbearia-af/booking-api/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var holder *cache.SlotHolder
	if rdb != nil {
		holder = cache.NewSlotHolder(rdb)
	}

	avatars := storage.NewAvatarStore(cfg)
	gateway := payments.NewGateway(cfg.MercadoPagoToken, log)

	tz := cfg.ShopTimezone

	// ======================================================
	// USE CASES
	// ======================================================
	daySchedule := ucSchedule.NewGetDaySchedule(repo, tz)
	clientSlots := ucSchedule.NewGetClientSlots(daySchedule)

	bookUC := ucAppointment.NewBook(repo, daySchedule, holder, gateway, auditDispatcher, tz)
	cancelByClientUC := ucAppointment.NewCancelByClient(repo, auditDispatcher, tz)
	cancelByBarberUC := ucAppointment.NewCancelByBarber(repo, auditDispatcher, tz)
	listForClientUC := ucAppointment.NewListForClient(repo)
	listDayUC := ucAppointment.NewListDayForBarber(repo, tz)

	upsertWindowUC := ucAvailability.NewUpsertWindow(repo, auditDispatcher, tz)
	deleteWindowUC := ucAvailability.NewDeleteWindow(repo, auditDispatcher)
	listWindowsUC := ucAvailability.NewListWindows(repo)

	blockUC := ucBlock.NewBlockSlot(repo, daySchedule, holder, auditDispatcher, tz)
	unblockUC := ucBlock.NewUnblockSlot(repo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, avatars)
	catalogHandler := handlers.NewCatalogHandler(repo, clientSlots)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelByClientUC,
		cancelByBarberUC,
		listForClientUC,
		listDayUC,
	)
	availabilityHandler := handlers.NewAvailabilityHandler(
		upsertWindowUC,
		deleteWindowUC,
		listWindowsUC,
	)
	scheduleHandler := handlers.NewScheduleHandler(daySchedule)
	blockedSlotHandler := handlers.NewBlockedSlotHandler(blockUC, unblockUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CLIENTE (autenticado)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/avatar", meHandler.UploadAvatar)

			secured.GET("/services", catalogHandler.ListServices)
			secured.GET("/barbers", catalogHandler.ListBarbers)
			secured.GET("/barbers/:id/slots", catalogHandler.ListSlots)

			secured.POST("/appointments", appointmentHandler.Book)
			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// PAINEL DO BARBEIRO
			// ------------------------------
			admin := secured.Group("/me")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/availability", availabilityHandler.List)
				admin.PUT("/availability", availabilityHandler.Upsert)
				admin.DELETE("/availability", availabilityHandler.Delete)

				admin.GET("/schedule", scheduleHandler.GetDay)
				admin.GET("/appointments/day", appointmentHandler.ListDay)
				admin.PATCH("/appointments/:id/cancel", appointmentHandler.CancelAsBarber)

				admin.POST("/blocked-slots", blockedSlotHandler.Block)
				admin.DELETE("/blocked-slots/:id", blockedSlotHandler.Unblock)
			}
		}
	}
}
