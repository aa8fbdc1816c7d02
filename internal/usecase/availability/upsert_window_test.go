package availability

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/barbearia-af/booking-api/internal/audit"
	domain "github.com/barbearia-af/booking-api/internal/domain/appointment"
	"github.com/barbearia-af/booking-api/internal/httperr"
	"github.com/barbearia-af/booking-api/internal/models"
	"github.com/barbearia-af/booking-api/internal/timezone"
)

type fakeRepo struct {
	domain.Repository

	upserted  *models.BarberAvailability
	deleteErr error
}

func (f *fakeRepo) UpsertAvailability(_ context.Context, av *models.BarberAvailability) error {
	f.upserted = av
	return nil
}

func (f *fakeRepo) DeleteAvailability(_ context.Context, _ uuid.UUID, _ string) error {
	return f.deleteErr
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zap.NewNop())
}

func newUpsert(repo *fakeRepo, now time.Time) *UpsertWindow {
	uc := NewUpsertWindow(repo, testDispatcher(), timezone.DefaultTimezone)
	uc.now = func() time.Time { return now }
	return uc
}

func fixedNow() time.Time {
	loc := timezone.Location(timezone.DefaultTimezone)
	return time.Date(2030, 5, 20, 8, 0, 0, 0, loc)
}

func TestUpsertWindow(t *testing.T) {
	cases := []struct {
		name     string
		date     string
		start    string
		end      string
		wantCode string
	}{
		{"valid window", "2030-05-21", "09:00", "18:00", ""},
		{"same day is allowed", "2030-05-20", "09:00", "18:00", ""},
		{"past date", "2030-05-19", "09:00", "18:00", "date_in_past"},
		{"malformed date", "21/05/2030", "09:00", "18:00", "invalid_date"},
		{"malformed time", "2030-05-21", "9h", "18:00", "invalid_time"},
		{"start equals end", "2030-05-21", "09:00", "09:00", "invalid_window"},
		{"start after end", "2030-05-21", "18:00", "09:00", "invalid_window"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := newUpsert(repo, fixedNow())

			av, err := uc.Execute(context.Background(), UpsertWindowInput{
				BarberID:  uuid.New(),
				Date:      tc.date,
				StartTime: tc.start,
				EndTime:   tc.end,
			})

			if tc.wantCode != "" {
				if !httperr.IsBusiness(err, tc.wantCode) {
					t.Fatalf("expected %s, got %v", tc.wantCode, err)
				}
				if repo.upserted != nil {
					t.Fatal("window must not be persisted on refusal")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.upserted == nil {
				t.Fatal("expected window to be persisted")
			}
			if av.Date != tc.date || av.StartTime != tc.start || av.EndTime != tc.end {
				t.Fatalf("wrong row persisted: %+v", av)
			}
		})
	}
}

func TestDeleteWindow_NotConfigured(t *testing.T) {
	repo := &fakeRepo{deleteErr: httperr.ErrBusiness("availability_not_configured")}
	uc := NewDeleteWindow(repo, testDispatcher())

	err := uc.Execute(context.Background(), uuid.New(), "2030-05-21")
	if !httperr.IsBusiness(err, "availability_not_configured") {
		t.Fatalf("expected availability_not_configured, got %v", err)
	}
}

func TestDeleteWindow(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewDeleteWindow(repo, testDispatcher())

	if err := uc.Execute(context.Background(), uuid.New(), "2030-05-21"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
