package timezone

import (
	"testing"
	"time"
)

func TestLocationFallback(t *testing.T) {
	if loc := Location("Not/AZone"); loc == nil {
		t.Fatal("expected fallback location")
	}
}

func TestParseDateLoose(t *testing.T) {
	loc := time.UTC

	cases := []struct {
		in   string
		want string
	}{
		{"2024-01-10", "2024-01-10"},
		{"2024-01-10T00:00:00Z", "2024-01-10"},
		{"2024-01-10T15:30:00+01:00", "2024-01-10"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDateLoose(tc.in, loc)
			if err != nil {
				t.Fatal(err)
			}
			if got.Format(DateLayout) != tc.want || got.Hour() != 0 {
				t.Fatalf("got %v, want %s at midnight", got, tc.want)
			}
		})
	}

	if _, err := ParseDateLoose("10/01/2024", loc); err == nil {
		t.Fatal("expected error for unsupported layout")
	}
}

func TestSameDayAndStartOfDay(t *testing.T) {
	a := time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 1, 10, 0, 1, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Fatal("expected same day")
	}
	if got := StartOfDay(a); got.Hour() != 0 || got.Minute() != 0 || got.Day() != 10 {
		t.Fatalf("unexpected start of day %v", got)
	}
}

func TestMinutesOf(t *testing.T) {
	got, err := MinutesOf("09:30")
	if err != nil || got != 570 {
		t.Fatalf("MinutesOf(09:30) = %d, %v", got, err)
	}
	if _, err := MinutesOf("9h30"); err == nil {
		t.Fatal("expected parse error")
	}
}
