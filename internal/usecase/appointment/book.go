package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barbearia-af/booking-api/internal/audit"
	"github.com/barbearia-af/booking-api/internal/cache"
	domain "github.com/barbearia-af/booking-api/internal/domain/appointment"
	engine "github.com/barbearia-af/booking-api/internal/domain/schedule"
	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/models"
	"github.com/barbearia-af/booking-api/internal/payments"
	"github.com/barbearia-af/booking-api/internal/timezone"
	scheduleuc "github.com/barbearia-af/booking-api/internal/usecase/schedule"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	ClientID  uuid.UUID
	BarberID  uuid.UUID
	ServiceID uuid.UUID

	Date string // 2006-01-02
	Time string // 15:04
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo        domain.Repository
	daySchedule *scheduleuc.GetDaySchedule
	holder      *cache.SlotHolder
	gateway     *payments.Gateway
	audit       *audit.Dispatcher
	tz          string
	now         func() time.Time
}

func NewBook(
	repo domain.Repository,
	daySchedule *scheduleuc.GetDaySchedule,
	holder *cache.SlotHolder,
	gateway *payments.Gateway,
	auditd *audit.Dispatcher,
	tz string,
) *Book {
	return &Book{
		repo:        repo,
		daySchedule: daySchedule,
		holder:      holder,
		gateway:     gateway,
		audit:       auditd,
		tz:          tz,
		now:         func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	barber, err := uc.repo.GetProfileByID(ctx, in.BarberID)
	if err != nil || barber.Role != models.RoleAdmin {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	client, err := uc.repo.GetProfileByID(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	at, err := timezone.ParseDateTime(uc.tz, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// O horário pedido tem que ser um slot livre da agenda recalculada
	// agora — isso cobre expediente, conflito, bloqueio e passado de uma
	// vez, com as mesmas regras que o cliente viu na tela.
	slots, err := uc.daySchedule.Execute(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}
	if !slotIsAvailable(slots, at) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// Hold curto no Redis: o segundo ator falha aqui, antes do banco.
	if uc.holder != nil {
		ok, herr := uc.holder.Acquire(ctx, in.BarberID, at)
		if herr == nil && !ok {
			return nil, httperr.ErrBusiness("slot_taken")
		}
	}

	ap := &models.Appointment{
		BarberID:        in.BarberID,
		ClientID:        client.ID,
		ServiceID:       svc.ID,
		AppointmentTime: at,
		Status:          string(domain.InitialStatus()),
		ClientName:      client.FullName,
		ClientPhone:     client.Phone,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if uc.holder != nil {
			uc.holder.Release(ctx, in.BarberID, at)
		}
		return nil, err
	}

	if uc.gateway != nil {
		if url := uc.gateway.PaymentLink(ctx, ap, svc); url != "" {
			ap.PaymentURL = url
			_ = uc.repo.UpdateAppointment(ctx, ap)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	ap.Service = *svc
	return ap, nil
}

func slotIsAvailable(slots []engine.Slot, at time.Time) bool {
	for _, s := range slots {
		if s.Time.Equal(at) {
			return s.Status == engine.StatusAvailable
		}
	}
	return false
}
