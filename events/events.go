package events

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBatchCompleted EventType = "batch_completed"
	EventTypeRunRecorded    EventType = "run_recorded"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// BatchCompletedEvent represents a Monte Carlo batch that finished
type BatchCompletedEvent struct {
	Gamblers        int
	Steps           int
	CompletedTrials int
	Partial         bool
	MeanFinalProfit float64
	Elapsed         time.Duration
}

func (e BatchCompletedEvent) Type() EventType {
	return EventTypeBatchCompleted
}

// RunRecordedEvent represents a batch summary that was persisted
type RunRecordedEvent struct {
	RunID int64
}

func (e RunRecordedEvent) Type() EventType {
	return EventTypeRunRecorded
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers synchronously, in
// subscription order, so the CLI's summary logging stays ordered with the
// run that produced it.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	for i, handler := range handlers {
		func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}
