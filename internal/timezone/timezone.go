package timezone

import "time"

// Fuso oficial da barbearia. Todas as composições de hora civil (janela de
// expediente, parsing de data/hora vindos do cliente) acontecem aqui.
const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDate interpreta "2006-01-02" como meia-noite civil no fuso da loja.
func ParseDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Location(tz))
}

// ParseDateTime interpreta data+hora civis no fuso da loja.
func ParseDateTime(tz string, dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		Location(tz),
	)
}

// DayRange devolve [início, fim) do dia civil que contém date.
func DayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	return start, start.Add(24 * time.Hour)
}
