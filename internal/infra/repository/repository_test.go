package repository

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pause-manager/internal/domain/dashboard"
	"github.com/BruksfildServices01/pause-manager/internal/domain/reservation"
	"github.com/BruksfildServices01/pause-manager/internal/models"
)

// capturedStmt guarda o último SQL montado em modo DryRun.
type capturedStmt struct {
	mu   sync.Mutex
	sql  string
	vars []any
}

func (s *capturedStmt) record(tx *gorm.DB) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sql = tx.Statement.SQL.String()
	s.vars = append([]any(nil), tx.Statement.Vars...)
}

func (s *capturedStmt) get() (string, []any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sql, s.vars
}

// dryRunDB monta o SQL do dialeto postgres sem abrir conexão.
func dryRunDB(t *testing.T) (*gorm.DB, *capturedStmt) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=pause dbname=pause sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}

	stmt := &capturedStmt{}
	if err := db.Callback().Query().After("gorm:query").Register("test:capture_query", stmt.record); err != nil {
		t.Fatalf("register query callback: %v", err)
	}
	if err := db.Callback().Update().After("gorm:update").Register("test:capture_update", stmt.record); err != nil {
		t.Fatalf("register update callback: %v", err)
	}
	return db, stmt
}

func assertContains(t *testing.T, sql string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(sql, p) {
			t.Errorf("sql %q: missing %q", sql, p)
		}
	}
}

func assertNotContains(t *testing.T, sql string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if strings.Contains(sql, p) {
			t.Errorf("sql %q: unexpected %q", sql, p)
		}
	}
}

func TestHasConflict_Query(t *testing.T) {
	slot := reservation.Slot{
		Room:      "A",
		Date:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "10:00",
	}
	excluded := uint(7)

	base := []any{"A", "2024-01-10"}
	for _, s := range reservation.BlockingStatuses {
		base = append(base, s)
	}
	base = append(base, "10:00", "09:00")

	tests := []struct {
		name      string
		excludeID *uint
		wantVars  []any
		wantID    bool
	}{
		{name: "without exclude", wantVars: base},
		{name: "with exclude", excludeID: &excluded, wantVars: append(append([]any(nil), base...), uint(7)), wantID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, stmt := dryRunDB(t)
			repo := NewReservationGormRepository(db)

			if _, err := repo.HasConflict(context.Background(), slot, tt.excludeID); err != nil {
				t.Fatalf("HasConflict: %v", err)
			}

			sql, vars := stmt.get()
			assertContains(t, sql,
				`FROM "reservations"`,
				"room = $1",
				"date = $2",
				"status IN ($3,$4)",
				"start_time < $5",
				"end_time > $6",
			)
			if tt.wantID {
				assertContains(t, sql, "id <> $7")
			} else {
				assertNotContains(t, sql, "id <>")
			}
			if !reflect.DeepEqual(vars, tt.wantVars) {
				t.Errorf("vars = %#v, want %#v", vars, tt.wantVars)
			}
		})
	}
}

func TestCountEvents_Scope(t *testing.T) {
	tests := []struct {
		name     string
		q        dashboard.EventQuery
		want     []string
		absent   []string
		wantVars []any
	}{
		{
			name:     "day only",
			q:        dashboard.EventQuery{Day: "2024-01-10"},
			want:     []string{`FROM "events"`, "date = $1"},
			absent:   []string{"date >=", "type IN", "status IN"},
			wantVars: []any{"2024-01-10"},
		},
		{
			name:     "from day with statuses",
			q:        dashboard.EventQuery{FromDay: "2024-01-10", Statuses: []string{"scheduled", "confirmed"}},
			want:     []string{"date >= $1", "status IN ($2,$3)"},
			absent:   []string{"date = $", "type IN"},
			wantVars: []any{"2024-01-10", "scheduled", "confirmed"},
		},
		{
			name:     "types on event only",
			q:        dashboard.EventQuery{Day: "2024-01-10", Types: []string{"coffee", "lunch"}},
			want:     []string{"date = $1", "type IN ($2,$3)"},
			absent:   []string{"service_type"},
			wantVars: []any{"2024-01-10", "coffee", "lunch"},
		},
		{
			name: "types also match service type",
			q: dashboard.EventQuery{
				Day:              "2024-01-10",
				Types:            []string{"coffee", "lunch"},
				MatchServiceType: true,
				Statuses:         []string{"scheduled"},
			},
			want:     []string{"date = $1", "(type IN ($2,$3) OR service_type IN ($4,$5))", "status IN ($6)"},
			wantVars: []any{"2024-01-10", "coffee", "lunch", "coffee", "lunch", "scheduled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, stmt := dryRunDB(t)
			repo := NewDashboardGormRepository(db)

			if _, err := repo.CountEvents(context.Background(), tt.q); err != nil {
				t.Fatalf("CountEvents: %v", err)
			}

			sql, vars := stmt.get()
			assertContains(t, sql, tt.want...)
			assertNotContains(t, sql, tt.absent...)
			if !reflect.DeepEqual(vars, tt.wantVars) {
				t.Errorf("vars = %#v, want %#v", vars, tt.wantVars)
			}
		})
	}
}

func TestCountReservations_Scope(t *testing.T) {
	tests := []struct {
		name     string
		q        dashboard.ReservationQuery
		want     []string
		absent   []string
		wantVars []any
	}{
		{
			name:     "day and statuses",
			q:        dashboard.ReservationQuery{Day: "2024-01-10", Statuses: []string{"confirmed", "in-use"}},
			want:     []string{`FROM "reservations"`, "date = $1", "status IN ($2,$3)"},
			absent:   []string{"date >="},
			wantVars: []any{"2024-01-10", "confirmed", "in-use"},
		},
		{
			name:     "from day",
			q:        dashboard.ReservationQuery{FromDay: "2024-01-08"},
			want:     []string{"date >= $1"},
			absent:   []string{"date = $", "status IN"},
			wantVars: []any{"2024-01-08"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, stmt := dryRunDB(t)
			repo := NewDashboardGormRepository(db)

			if _, err := repo.CountReservations(context.Background(), tt.q); err != nil {
				t.Fatalf("CountReservations: %v", err)
			}

			sql, vars := stmt.get()
			assertContains(t, sql, tt.want...)
			assertNotContains(t, sql, tt.absent...)
			if !reflect.DeepEqual(vars, tt.wantVars) {
				t.Errorf("vars = %#v, want %#v", vars, tt.wantVars)
			}
		})
	}
}

func TestReservationUpdate_WritesOnlyListedColumns(t *testing.T) {
	db, stmt := dryRunDB(t)
	repo := NewReservationGormRepository(db)

	res := &models.Reservation{
		ID:        5,
		Room:      "A",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    "pending",
		Notes:     "projetor",
	}

	// DryRun não afeta linhas, então o caminho de "linha sumiu" é exercido.
	err := repo.Update(context.Background(), res, []string{"notes"})
	if !errors.Is(err, reservation.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	sql, vars := stmt.get()
	assertContains(t, sql, `UPDATE "reservations" SET`, `"notes"=$1`, `"updated_at"=$2`, `"id" = $3`)
	assertNotContains(t, sql, `"room"`, `"start_time"`, `"status"`, `"date"`)
	if len(vars) != 3 || vars[0] != "projetor" || vars[2] != uint(5) {
		t.Errorf("vars = %#v", vars)
	}
}
