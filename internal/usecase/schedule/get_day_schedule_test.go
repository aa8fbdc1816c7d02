package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/barbearia-af/booking-api/internal/domain/appointment"
	engine "github.com/barbearia-af/booking-api/internal/domain/schedule"
	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/models"
	"github.com/barbearia-af/booking-api/internal/timezone"
)

// fakeRepo implementa só o que os casos de uso de agenda consultam; o resto
// vem da interface embutida e estoura se for chamado por engano.
type fakeRepo struct {
	domain.Repository

	availability *models.BarberAvailability
	appointments []models.Appointment
	blocked      []models.BlockedSlot
}

func (f *fakeRepo) GetAvailability(
	_ context.Context,
	_ uuid.UUID,
	_ string,
) (*models.BarberAvailability, error) {
	if f.availability == nil {
		return nil, errors.New("record not found")
	}
	return f.availability, nil
}

func (f *fakeRepo) ListScheduledForDay(
	_ context.Context,
	_ uuid.UUID,
	_ time.Time,
	_ time.Time,
) ([]models.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeRepo) ListBlockedForDay(
	_ context.Context,
	_ uuid.UUID,
	_ time.Time,
	_ time.Time,
) ([]models.BlockedSlot, error) {
	return f.blocked, nil
}

const testDate = "2030-05-20"

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	loc := timezone.Location(timezone.DefaultTimezone)
	return time.Date(2030, 5, 20, 8, 0, 0, 0, loc)
}

func at(t *testing.T, hour, min int) time.Time {
	t.Helper()
	loc := timezone.Location(timezone.DefaultTimezone)
	return time.Date(2030, 5, 20, hour, min, 0, 0, loc)
}

func newDaySchedule(t *testing.T, repo *fakeRepo) *GetDaySchedule {
	t.Helper()
	uc := NewGetDaySchedule(repo, timezone.DefaultTimezone)
	uc.now = func() time.Time { return fixedNow(t) }
	return uc
}

func TestGetDaySchedule_MixedStatuses(t *testing.T) {
	barberID := uuid.New()
	blockID := uuid.New()

	repo := &fakeRepo{
		availability: &models.BarberAvailability{
			BarberID:  barberID,
			Date:      testDate,
			StartTime: "09:00",
			EndTime:   "11:15",
		},
		appointments: []models.Appointment{
			{
				ID:              uuid.New(),
				AppointmentTime: at(t, 9, 0),
				ClientName:      "João Silva",
				ClientPhone:     "11999990000",
				Service:         models.Service{Name: "Corte"},
			},
		},
		blocked: []models.BlockedSlot{
			{ID: blockID, StartTime: at(t, 9, 45)},
		},
	}

	slots, err := newDaySchedule(t, repo).Execute(context.Background(), barberID, testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}

	if slots[0].Status != engine.StatusBooked {
		t.Errorf("slot 09:00: expected booked, got %s", slots[0].Status)
	}
	if slots[0].Booking == nil || slots[0].Booking.ClientName != "João Silva" {
		t.Errorf("slot 09:00: booking details missing or wrong: %+v", slots[0].Booking)
	}

	if slots[1].Status != engine.StatusBlocked {
		t.Errorf("slot 09:45: expected blocked, got %s", slots[1].Status)
	}
	if slots[1].BlockID == nil || *slots[1].BlockID != blockID {
		t.Errorf("slot 09:45: expected block id %s", blockID)
	}

	if slots[2].Status != engine.StatusAvailable {
		t.Errorf("slot 10:30: expected available, got %s", slots[2].Status)
	}
	if !slots[2].Time.Equal(at(t, 10, 30)) {
		t.Errorf("slot 10:30: wrong time %s", slots[2].Time)
	}
}

func TestGetDaySchedule_NoWindowConfigured(t *testing.T) {
	repo := &fakeRepo{}

	_, err := newDaySchedule(t, repo).Execute(context.Background(), uuid.New(), testDate)
	if !httperr.IsBusiness(err, "availability_not_configured") {
		t.Fatalf("expected availability_not_configured, got %v", err)
	}
}

func TestGetDaySchedule_InvalidDate(t *testing.T) {
	repo := &fakeRepo{}

	_, err := newDaySchedule(t, repo).Execute(context.Background(), uuid.New(), "20/05/2030")
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}

func TestGetClientSlots_NoWindowIsEmptyList(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewGetClientSlots(newDaySchedule(t, repo))

	times, err := uc.Execute(context.Background(), uuid.New(), testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if times == nil || len(times) != 0 {
		t.Fatalf("expected empty list, got %v", times)
	}
}

func TestGetClientSlots_OnlyAvailableTimes(t *testing.T) {
	barberID := uuid.New()

	repo := &fakeRepo{
		availability: &models.BarberAvailability{
			BarberID:  barberID,
			Date:      testDate,
			StartTime: "09:00",
			EndTime:   "10:30",
		},
		appointments: []models.Appointment{
			{ID: uuid.New(), AppointmentTime: at(t, 9, 0)},
		},
	}

	uc := NewGetClientSlots(newDaySchedule(t, repo))

	times, err := uc.Execute(context.Background(), barberID, testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 1 || !times[0].Equal(at(t, 9, 45)) {
		t.Fatalf("expected only 09:45 free, got %v", times)
	}
}
