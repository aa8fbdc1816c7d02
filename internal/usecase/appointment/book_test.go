package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/barbearia-af/booking-api/internal/audit"
	domain "github.com/barbearia-af/booking-api/internal/domain/appointment"
	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/models"
	"github.com/barbearia-af/booking-api/internal/timezone"
	scheduleuc "github.com/barbearia-af/booking-api/internal/usecase/schedule"
)

const testDate = "2030-05-20"

// fakeRepo cobre os caminhos de agendamento; métodos não sobrescritos vêm da
// interface embutida e estouram se forem chamados por engano.
type fakeRepo struct {
	domain.Repository

	profiles     map[uuid.UUID]*models.Profile
	services     map[uuid.UUID]*models.Service
	availability *models.BarberAvailability
	scheduled    []models.Appointment
	stored       map[uuid.UUID]*models.Appointment

	created *models.Appointment
	updated bool
}

func (f *fakeRepo) GetProfileByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) GetService(_ context.Context, id uuid.UUID) (*models.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, errors.New("record not found")
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
	return f.scheduled, nil
}

func (f *fakeRepo) ListBlockedForDay(
	_ context.Context,
	_ uuid.UUID,
	_ time.Time,
	_ time.Time,
) ([]models.BlockedSlot, error) {
	return nil, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = uuid.New()
	f.created = ap
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	if ap, ok := f.stored[id]; ok {
		return ap, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, _ *models.Appointment) error {
	f.updated = true
	return nil
}

// ======================================================
// HELPERS
// ======================================================

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zap.NewNop())
}

func at(t *testing.T, hour, min int) time.Time {
	t.Helper()
	loc := timezone.Location(timezone.DefaultTimezone)
	return time.Date(2030, 5, 20, hour, min, 0, 0, loc)
}

func bookingRepo(t *testing.T) (*fakeRepo, uuid.UUID, uuid.UUID, uuid.UUID) {
	t.Helper()

	barberID := uuid.New()
	clientID := uuid.New()
	serviceID := uuid.New()

	repo := &fakeRepo{
		profiles: map[uuid.UUID]*models.Profile{
			barberID: {ID: barberID, FullName: "André Filho", Role: models.RoleAdmin},
			clientID: {
				ID:       clientID,
				FullName: "João Silva",
				Phone:    "11999990000",
				Role:     models.RoleClient,
			},
		},
		services: map[uuid.UUID]*models.Service{
			serviceID: {ID: serviceID, Name: "Corte", Price: 45},
		},
		availability: &models.BarberAvailability{
			BarberID:  barberID,
			Date:      testDate,
			StartTime: "09:00",
			EndTime:   "12:00",
		},
	}

	return repo, barberID, clientID, serviceID
}

func newBook(repo *fakeRepo) *Book {
	daySchedule := scheduleuc.NewGetDaySchedule(repo, timezone.DefaultTimezone)
	return NewBook(repo, daySchedule, nil, nil, testDispatcher(), timezone.DefaultTimezone)
}

// ======================================================
// BOOK
// ======================================================

func TestBook_HappyPath(t *testing.T) {
	repo, barberID, clientID, serviceID := bookingRepo(t)

	ap, err := newBook(repo).Execute(context.Background(), BookInput{
		ClientID:  clientID,
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      testDate,
		Time:      "09:45",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.created == nil {
		t.Fatal("expected appointment to be persisted")
	}
	if !ap.AppointmentTime.Equal(at(t, 9, 45)) {
		t.Errorf("wrong appointment time: %s", ap.AppointmentTime)
	}
	if ap.Status != string(domain.StatusScheduled) {
		t.Errorf("expected status scheduled, got %s", ap.Status)
	}
	if ap.ClientName != "João Silva" || ap.ClientPhone != "11999990000" {
		t.Errorf("client snapshot not captured: %q / %q", ap.ClientName, ap.ClientPhone)
	}
	if ap.Service.Name != "Corte" {
		t.Errorf("expected service attached, got %+v", ap.Service)
	}
}

func TestBook_SlotAlreadyTaken(t *testing.T) {
	repo, barberID, clientID, serviceID := bookingRepo(t)
	repo.scheduled = []models.Appointment{
		{ID: uuid.New(), AppointmentTime: at(t, 9, 45)},
	}

	_, err := newBook(repo).Execute(context.Background(), BookInput{
		ClientID:  clientID,
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      testDate,
		Time:      "09:45",
	})
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Fatalf("expected slot_unavailable, got %v", err)
	}
	if repo.created != nil {
		t.Fatal("appointment must not be persisted")
	}
}

func TestBook_OutsideWorkingWindow(t *testing.T) {
	repo, barberID, clientID, serviceID := bookingRepo(t)

	_, err := newBook(repo).Execute(context.Background(), BookInput{
		ClientID:  clientID,
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      testDate,
		Time:      "08:00",
	})
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Fatalf("expected slot_unavailable, got %v", err)
	}
}

func TestBook_ServiceNotFound(t *testing.T) {
	repo, barberID, clientID, _ := bookingRepo(t)

	_, err := newBook(repo).Execute(context.Background(), BookInput{
		ClientID:  clientID,
		BarberID:  barberID,
		ServiceID: uuid.New(),
		Date:      testDate,
		Time:      "09:45",
	})
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}

func TestBook_BarberMustBeAdmin(t *testing.T) {
	repo, _, clientID, serviceID := bookingRepo(t)

	// Cliente tentando agendar com outro cliente no lugar do barbeiro.
	_, err := newBook(repo).Execute(context.Background(), BookInput{
		ClientID:  clientID,
		BarberID:  clientID,
		ServiceID: serviceID,
		Date:      testDate,
		Time:      "09:45",
	})
	if !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("expected barber_not_found, got %v", err)
	}
}

// ======================================================
// CANCEL
// ======================================================

func storedAppointment(repo *fakeRepo, clientID, barberID uuid.UUID, when time.Time) *models.Appointment {
	ap := &models.Appointment{
		ID:              uuid.New(),
		BarberID:        barberID,
		ClientID:        clientID,
		AppointmentTime: when,
		Status:          string(domain.StatusScheduled),
	}
	if repo.stored == nil {
		repo.stored = map[uuid.UUID]*models.Appointment{}
	}
	repo.stored[ap.ID] = ap
	return ap
}

func TestCancelByClient(t *testing.T) {
	now := at(t, 8, 0)

	cases := []struct {
		name     string
		lead     time.Duration
		status   domain.Status
		wantCode string
	}{
		{"more than 12h ahead", 13 * time.Hour, domain.StatusScheduled, ""},
		{"exactly 12h ahead", 12 * time.Hour, domain.StatusScheduled, ""},
		{"less than 12h ahead", 11 * time.Hour, domain.StatusScheduled, "cancel_window_closed"},
		{"already cancelled", 13 * time.Hour, domain.StatusCancelled, "invalid_state"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			clientID := uuid.New()
			ap := storedAppointment(repo, clientID, uuid.New(), now.Add(tc.lead))
			ap.Status = string(tc.status)

			uc := NewCancelByClient(repo, testDispatcher(), timezone.DefaultTimezone)
			uc.now = func() time.Time { return now }

			got, err := uc.Execute(context.Background(), clientID, ap.ID)

			if tc.wantCode != "" {
				if !httperr.IsBusiness(err, tc.wantCode) {
					t.Fatalf("expected %s, got %v", tc.wantCode, err)
				}
				if repo.updated {
					t.Fatal("appointment must not be updated on refusal")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != string(domain.StatusCancelled) || got.CancelledAt == nil {
				t.Fatalf("expected cancelled with timestamp, got %+v", got)
			}
			if !repo.updated {
				t.Fatal("expected appointment to be updated")
			}
		})
	}
}

func TestCancelByClient_NotOwner(t *testing.T) {
	repo := &fakeRepo{}
	ap := storedAppointment(repo, uuid.New(), uuid.New(), at(t, 9, 45))

	uc := NewCancelByClient(repo, testDispatcher(), timezone.DefaultTimezone)
	uc.now = func() time.Time { return at(t, 8, 0) }

	_, err := uc.Execute(context.Background(), uuid.New(), ap.ID)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestCancelByBarber_IgnoresCancelWindow(t *testing.T) {
	repo := &fakeRepo{}
	barberID := uuid.New()

	// Horário daqui a uma hora: cliente já não poderia, barbeiro pode.
	ap := storedAppointment(repo, uuid.New(), barberID, at(t, 9, 0))

	uc := NewCancelByBarber(repo, testDispatcher(), timezone.DefaultTimezone)
	uc.now = func() time.Time { return at(t, 8, 0) }

	got, err := uc.Execute(context.Background(), barberID, ap.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != string(domain.StatusCancelled) {
		t.Fatalf("expected cancelled, got %s", got.Status)
	}
}

func TestCancelByBarber_NotOwner(t *testing.T) {
	repo := &fakeRepo{}
	ap := storedAppointment(repo, uuid.New(), uuid.New(), at(t, 9, 0))

	uc := NewCancelByBarber(repo, testDispatcher(), timezone.DefaultTimezone)
	uc.now = func() time.Time { return at(t, 8, 0) }

	_, err := uc.Execute(context.Background(), uuid.New(), ap.ID)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}
