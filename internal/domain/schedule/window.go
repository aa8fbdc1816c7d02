package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay é um horário civil (hora/minuto) sem data e sem fuso.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay aceita "15:04" e "15:04:05" (o banco devolve HH:MM:SS).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// OnDate compõe o horário com o dia civil de date, no fuso de date.
// Nunca passa por meia-noite UTC: expediente é definido em hora local e
// um desvio via UTC deslocaria todos os slots pelo offset do fuso.
func (t TimeOfDay) OnDate(date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour, t.Minute, 0, 0,
		date.Location(),
	)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}

// WorkingWindow é o expediente de um barbeiro para uma única data.
type WorkingWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Valid exige Start < End.
func (w WorkingWindow) Valid() bool {
	return w.Start.minutes() < w.End.minutes()
}
