package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BarberAvailability é a janela de expediente de um barbeiro para uma data
// específica. No máximo uma linha por (barber_id, date).
type BarberAvailability struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	BarberID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_barber_date;not null" json:"barber_id"`
	Date     string    `gorm:"size:10;uniqueIndex:idx_barber_date;not null" json:"date"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *BarberAvailability) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
