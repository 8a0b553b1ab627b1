package timezone

import "time"

const (
	DefaultTimezone = "Europe/Paris"

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

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

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Clock permite fixar o "agora" nos testes.
type Clock func() time.Time

// ClockIn devolve um relógio no fuso informado.
func ClockIn(tz string) Clock {
	loc := Location(tz)
	return func() time.Time { return time.Now().In(loc) }
}

// StartOfDay zera a hora mantendo o fuso de t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay compara apenas ano/mês/dia.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// ParseDateLoose aceita "YYYY-MM-DD" ou RFC3339 e devolve meia-noite da
// data civil correspondente em loc.
func ParseDateLoose(s string, loc *time.Location) (time.Time, error) {
	if t, err := ParseDate(s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// DateOf reinterpreta uma data lida do banco (meia-noite UTC) no fuso loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// MinutesOf converte "HH:MM" em minutos desde a meia-noite.
func MinutesOf(hhmm string) (int, error) {
	t, err := time.Parse(TimeLayout, hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
