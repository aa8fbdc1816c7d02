package timezone

import (
	"testing"
	"time"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	if got := Location("not/a/zone"); got.String() != DefaultTimezone {
		t.Fatalf("got %s", got)
	}
	if got := Location(""); got.String() != DefaultTimezone {
		t.Fatalf("got %s", got)
	}
	if got := Location("UTC"); got != time.UTC {
		t.Fatalf("got %s", got)
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("UTC", "2026-03-10", "09:45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, time.March, 10, 9, 45, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, err := ParseDateTime("UTC", "2026-03-10", "9h45"); err == nil {
		t.Fatal("expected error for malformed time")
	}
}

func TestDayRange(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	date := time.Date(2026, time.March, 10, 14, 30, 0, 0, loc)

	start, end := DayRange(date)
	if !start.Equal(time.Date(2026, time.March, 10, 0, 0, 0, 0, loc)) {
		t.Fatalf("start = %v", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Fatalf("range = %v", end.Sub(start))
	}
}
