package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Event struct {
	Actor    string
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

const (
	ActionReservationCreated  = "reservation_created"
	ActionReservationUpdated  = "reservation_updated"
	ActionReservationDeleted  = "reservation_deleted"
	ActionReservationConflict = "reservation_conflict"

	EntityReservation = "reservation"
	EntityClient      = "client"
	EntityService     = "service"
	EntityEvent       = "event"

	VerbCreated = "created"
	VerbUpdated = "updated"
	VerbDeleted = "deleted"
)

// ActionFor monta "<entity>_<verb>", no mesmo formato das ações de reserva.
func ActionFor(entity, verb string) string {
	return entity + "_" + verb
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
	wg    sync.WaitGroup
	once  sync.Once
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100), // buffer seguro
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.sink.Log(ctx, ev); err != nil {
			slog.Error("audit write failed", "action", ev.Action, "error", err)
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		slog.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close drena a fila; chamar só depois que o servidor HTTP parou.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}
