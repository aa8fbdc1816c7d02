package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentListDTO struct {
	ID              uuid.UUID `json:"id"`
	AppointmentTime time.Time `json:"appointment_time"`
	Status          string    `json:"status"`
	ClientName      string    `json:"client_name"`
	ClientPhone     string    `json:"client_phone"`
	ServiceName     string    `json:"service_name"`
	BarberName      string    `json:"barber_name,omitempty"`
	PaymentURL      string    `json:"payment_url,omitempty"`
}
