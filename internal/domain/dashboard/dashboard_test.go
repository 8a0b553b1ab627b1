package dashboard

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/pause-manager/internal/models"
)

func TestNewWindows(t *testing.T) {
	paris, _ := time.LoadLocation("Europe/Paris")
	if paris == nil {
		paris = time.UTC
	}

	cases := []struct {
		name     string
		now      time.Time
		today    string
		week     string
		month    string
		tomorrow string
	}{
		{
			name:     "wednesday",
			now:      time.Date(2024, 1, 10, 15, 4, 0, 0, paris),
			today:    "2024-01-10",
			week:     "2024-01-07",
			month:    "2024-01-01",
			tomorrow: "2024-01-11",
		},
		{
			name:     "sunday starts its own week",
			now:      time.Date(2024, 1, 7, 8, 0, 0, 0, paris),
			today:    "2024-01-07",
			week:     "2024-01-07",
			month:    "2024-01-01",
			tomorrow: "2024-01-08",
		},
		{
			name:     "week crossing month",
			now:      time.Date(2024, 3, 1, 23, 59, 0, 0, paris),
			today:    "2024-03-01",
			week:     "2024-02-25",
			month:    "2024-03-01",
			tomorrow: "2024-03-02",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWindows(tc.now)
			if w.TodayKey() != tc.today {
				t.Errorf("today = %s, want %s", w.TodayKey(), tc.today)
			}
			if w.WeekKey() != tc.week {
				t.Errorf("week = %s, want %s", w.WeekKey(), tc.week)
			}
			if w.MonthKey() != tc.month {
				t.Errorf("month = %s, want %s", w.MonthKey(), tc.month)
			}
			if got := w.Tomorrow.Format("2006-01-02"); got != tc.tomorrow {
				t.Errorf("tomorrow = %s, want %s", got, tc.tomorrow)
			}
		})
	}
}

func TestFormatNext(t *testing.T) {
	now := time.Date(2024, 1, 31, 18, 0, 0, 0, time.UTC)
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		name string
		next *Occurrence
		want string
	}{
		{"absent", nil, "N/A"},
		{"today", &Occurrence{Date: day(2024, 1, 31), StartTime: "19:00"}, "Aujourd'hui, 19:00"},
		{"tomorrow across month", &Occurrence{Date: day(2024, 2, 1), StartTime: "08:30"}, "Demain, 08:30"},
		{"later", &Occurrence{Date: day(2024, 2, 14), StartTime: "12:00"}, "14/02/2024, 12:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatNext(tc.next, now); got != tc.want {
				t.Fatalf("FormatNext = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTallyEvents(t *testing.T) {
	events := []models.Event{
		{Type: "lunch", Participants: 12},
		{Type: "lunch", Participants: 3},
		{Type: "coffee", Participants: 11},
		{Type: "coffee", Participants: 10},
		{Type: "meeting", Service: models.EventService{Type: "coffee"}, Participants: 40},
	}

	got := TallyEvents(events)
	want := Tally{Coffee: 3, Lunch: 2, EnhancedCoffee: 1, LunchPlaces: 15}
	if got != want {
		t.Fatalf("TallyEvents = %+v, want %+v", got, want)
	}
}

func TestEventQueryMatches(t *testing.T) {
	ev := models.Event{
		Date:    "2024-01-10",
		Type:    "meeting",
		Service: models.EventService{Type: "coffee"},
		Status:  "confirmed",
	}

	cases := []struct {
		name string
		q    EventQuery
		want bool
	}{
		{"empty matches all", EventQuery{}, true},
		{"same day", EventQuery{Day: "2024-01-10"}, true},
		{"other day", EventQuery{Day: "2024-01-11"}, false},
		{"from before", EventQuery{FromDay: "2024-01-07"}, true},
		{"from after", EventQuery{FromDay: "2024-01-11"}, false},
		{"type only", EventQuery{Types: []string{"coffee"}}, false},
		{"type or service type", EventQuery{Types: []string{"coffee"}, MatchServiceType: true}, true},
		{"status filtered out", EventQuery{Statuses: []string{"scheduled"}}, false},
		{"status kept", EventQuery{Statuses: ActiveEventStatuses}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.q.Matches(ev); got != tc.want {
				t.Fatalf("Matches = %v, want %v", got, tc.want)
			}
		})
	}
}
