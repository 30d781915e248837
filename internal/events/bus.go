package events

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/vault"
)

// Record is one committed event as kept in the event log
type Record struct {
	ID       uuid.UUID      `json:"id"`
	Seq      uint64         `json:"seq"`
	Name     string         `json:"name"`
	Contract models.Address `json:"contract"`
	Payload  vault.Event    `json:"payload"`
	At       time.Time      `json:"at"`
}

// PayloadJSON encodes the event body
func (r Record) PayloadJSON() ([]byte, error) {
	return json.Marshal(r.Payload)
}

// Handler receives records on the bus worker goroutine
type Handler func(Record)

// Filter selects records from the log. Zero values match everything.
type Filter struct {
	Contract models.Address
	Name     string
	AfterSeq uint64
	Limit    int
}

func (f Filter) match(r Record) bool {
	if !f.Contract.IsZero() && r.Contract != f.Contract {
		return false
	}
	if f.Name != "" && r.Name != f.Name {
		return false
	}
	return r.Seq > f.AfterSeq
}

// Bus records events synchronously into an append-only log and fans them out
// to subscribers asynchronously, in order, on a single worker goroutine.
// Emit never blocks on subscribers.
type Bus struct {
	mu       sync.RWMutex
	log      []Record
	handlers []Handler
	now      func() time.Time

	queueMu sync.Mutex
	queue   []Record
	closed  bool
	wake    chan struct{}
	done    chan struct{}
}

// NewBus starts the delivery worker. Close must be called to stop it.
func NewBus() *Bus {
	b := &Bus{
		now:  time.Now,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go b.run()
	return b
}

// Subscribe registers h for every record emitted after this call
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Emit implements vault.Emitter
func (b *Bus) Emit(e vault.Event) {
	b.queueMu.Lock()
	defer b.queueMu.Unlock()
	if b.closed {
		log.WithField("event", e.EventName()).Warn("event bus closed, event dropped")
		return
	}

	b.mu.Lock()
	rec := Record{
		ID:       uuid.New(),
		Seq:      uint64(len(b.log)) + 1,
		Name:     e.EventName(),
		Contract: e.Contract(),
		Payload:  e,
		At:       b.now(),
	}
	b.log = append(b.log, rec)
	b.mu.Unlock()

	b.queue = append(b.queue, rec)
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

func (b *Bus) run() {
	defer close(b.done)
	for range b.wake {
		for {
			b.queueMu.Lock()
			batch := b.queue
			b.queue = nil
			closed := b.closed
			b.queueMu.Unlock()

			if len(batch) == 0 {
				if closed {
					return
				}
				break
			}

			b.mu.RLock()
			handlers := b.handlers
			b.mu.RUnlock()
			for _, rec := range batch {
				for _, h := range handlers {
					h(rec)
				}
			}
		}
	}
}

// Records returns log entries matching f in sequence order
func (b *Bus) Records(f Filter) []Record {
	b.mu.RLock()
	defer b.mu.RUnlock()
	result := make([]Record, 0)
	for _, r := range b.log {
		if !f.match(r) {
			continue
		}
		result = append(result, r)
		if f.Limit > 0 && len(result) == f.Limit {
			break
		}
	}
	return result
}

// Len returns the number of recorded events
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.log)
}

// Close stops accepting events and waits until queued records reach every handler
func (b *Bus) Close() {
	b.queueMu.Lock()
	b.closed = true
	b.queueMu.Unlock()
	select {
	case b.wake <- struct{}{}:
	default:
	}
	<-b.done
}
