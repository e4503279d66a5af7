package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Event struct {
	ActorID  string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher persists events on a background worker so audit writes never
// slow down or fail an API request.
type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.String("entity", ev.Entity),
				zap.Error(err),
			)
		}
	}
}

// Dispatch enqueues ev, dropping it when the queue is full. Safe on a nil
// Dispatcher.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close drains pending events and stops the worker. Dispatch must not be
// called after Close.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
