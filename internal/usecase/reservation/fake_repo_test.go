package reservation

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/pause-manager/internal/audit"
	domain "github.com/BruksfildServices01/pause-manager/internal/domain/reservation"
	"github.com/BruksfildServices01/pause-manager/internal/models"
)

// fakeRepo imita o repositório gorm: lock por sala+dia e dados em memória.
type fakeRepo struct {
	mu      sync.Mutex
	locks   sync.Map // chave -> *sync.Mutex
	nextID  uint
	byID    map[uint]models.Reservation
	clients map[uint]bool
	events  map[uint]bool

	// afterGet roda uma vez, sob o lock, logo depois do próximo Get.
	afterGet func(byID map[uint]models.Reservation)
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:    map[uint]models.Reservation{},
		clients: map[uint]bool{1: true, 2: true},
		events:  map[uint]bool{10: true},
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) HasConflict(_ context.Context, slot domain.Slot, excludeID *uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, r := range f.byID {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if r.Room != slot.Room || r.Date.Format("2006-01-02") != slot.Day() {
			continue
		}
		if !domain.Status(r.Status).Blocking() {
			continue
		}
		if domain.Overlaps(slot.StartTime, slot.EndTime, r.StartTime, r.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) WithinSlotLock(_ context.Context, slot domain.Slot, fn func(tx domain.Repository) error) error {
	l, _ := f.locks.LoadOrStore(slot.LockKey(), &sync.Mutex{})
	m := l.(*sync.Mutex)
	m.Lock()
	defer m.Unlock()
	return fn(f)
}

func (f *fakeRepo) Create(_ context.Context, r *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	r.ID = f.nextID
	r.SyncMinutes()
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	f.byID[r.ID] = *r
	return nil
}

// Update copia só as colunas pedidas, como o repositório gorm.
func (f *fakeRepo) Update(_ context.Context, r *models.Reservation, columns []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.byID[r.ID]
	if !ok {
		return domain.ErrNotFound
	}
	r.SyncMinutes()
	for _, col := range columns {
		switch col {
		case "room":
			stored.Room = r.Room
		case "date":
			stored.Date = r.Date
		case "start_time":
			stored.StartTime = r.StartTime
		case "start_minute":
			stored.StartMinute = r.StartMinute
		case "end_time":
			stored.EndTime = r.EndTime
		case "end_minute":
			stored.EndMinute = r.EndMinute
		case "client_id":
			stored.ClientID = r.ClientID
		case "event_id":
			stored.EventID = r.EventID
		case "purpose":
			stored.Purpose = r.Purpose
		case "status":
			stored.Status = r.Status
		case "participants":
			stored.Participants = r.Participants
		case "equipment":
			stored.Equipment = r.Equipment
		case "notes":
			stored.Notes = r.Notes
		default:
			panic("fakeRepo: unknown column " + col)
		}
	}
	stored.UpdatedAt = time.Now()
	f.byID[r.ID] = stored
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id uint) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byID[id]
	if hook := f.afterGet; hook != nil {
		// simula outra requisição escrevendo entre a leitura e a escrita
		f.afterGet = nil
		defer hook(f.byID)
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	r.Client = &models.Client{ID: r.ClientID, Name: "Client"}
	return &r, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeRepo) List(_ context.Context) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Reservation, 0, len(f.byID))
	for _, r := range f.byID {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) ListUpcoming(_ context.Context, from time.Time, limit int) ([]models.Reservation, error) {
	all, _ := f.List(context.Background())
	var out []models.Reservation
	for _, r := range all {
		if r.Date.Before(from) {
			continue
		}
		if r.Status != string(domain.StatusPending) && r.Status != string(domain.StatusConfirmed) {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeRepo) WeeklyStats(_ context.Context, since time.Time) ([]domain.WeeklyStat, error) {
	all, _ := f.List(context.Background())
	var out []domain.WeeklyStat
	for _, r := range all {
		if r.Date.Before(since) {
			continue
		}
		out = append(out, domain.WeeklyStat{
			Day:               int(r.Date.Weekday()) + 1,
			Room:              r.Room,
			Count:             1,
			TotalParticipants: int64(r.Participants),
		})
	}
	return out, nil
}

func (f *fakeRepo) ClientExists(_ context.Context, id uint) (bool, error) {
	return f.clients[id], nil
}

func (f *fakeRepo) EventExists(_ context.Context, id uint) (bool, error) {
	return f.events[id], nil
}

// memorySink guarda os eventos de auditoria para asserção.
type memorySink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *memorySink) Log(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *memorySink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}
