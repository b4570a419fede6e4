package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Action names recorded in the audit log.
const (
	ActionLogin              = "login"
	ActionStoreCreated       = "store_created"
	ActionStoreTranslated    = "store_translated"
	ActionStoreDeleted       = "store_deleted"
	ActionReviewApproved     = "review_approval_changed"
	ActionReviewDeleted      = "review_deleted"
	ActionReviewsExported    = "reviews_exported"
	ActionSettingsUpdated    = "settings_updated"
	EntityUser               = "user"
	EntityStore              = "store"
	EntityReview             = "review"
	EntitySettings           = "settings"
	defaultDispatcherBacklog = 100
)

type Event struct {
	ActorID  string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Recorder accepts audit events without blocking the caller.
type Recorder interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger *Logger
	log    zerolog.Logger
	queue  chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(logger *Logger, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log.With().Str("component", "audit").Logger(),
		queue:  make(chan Event, defaultDispatcherBacklog),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

// Dispatch enqueues ev. When the queue is full the event is dropped:
// auditing never fails a request.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits until the queue is drained or
// ctx expires.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ Recorder = (*Dispatcher)(nil)
