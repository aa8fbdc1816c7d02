package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barbearia-af/booking-api/internal/config"
	"github.com/barbearia-af/booking-api/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Service{},
		&models.BarberAvailability{},
		&models.Appointment{},
		&models.BlockedSlot{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// Dois agendamentos ativos nunca dividem o mesmo horário do mesmo
	// barbeiro; o índice parcial faz o banco rejeitar o segundo escritor.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_active_appointment_slot
        ON appointments (barber_id, appointment_time)
        WHERE status = 'scheduled'
    `)

	seedServices(db, log)

	return db
}

// Catálogo inicial da Barbearia AF. Idempotente: só insere o que falta.
func seedServices(db *gorm.DB, log *zap.Logger) {
	defaults := []models.Service{
		{Name: "Corte de Cabelo", Price: 35.00},
		{Name: "Barba", Price: 25.00},
		{Name: "Corte + Barba", Price: 55.00},
		{Name: "Pezinho", Price: 10.00},
	}

	for _, svc := range defaults {
		var count int64
		db.Model(&models.Service{}).Where("name = ?", svc.Name).Count(&count)
		if count > 0 {
			continue
		}
		s := svc
		s.Active = true
		if err := db.Create(&s).Error; err != nil {
			log.Warn("failed to seed service", zap.String("name", s.Name), zap.Error(err))
		}
	}
}
