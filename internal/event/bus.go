package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Handler reacts to one event
type Handler func(ctx context.Context, event Event) error

// Bus delivers published events to the handlers subscribed to their type
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus runs handlers in the publisher's goroutine, in subscription order
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewMemoryBus returns an empty bus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

// Publish calls every handler for the event's type. A failing handler does
// not stop the rest; all failures come back joined.
func (b *MemoryBus) Publish(ctx context.Context, evt Event) error {
	b.mu.RLock()
	handlers := b.handlers[evt.Type]
	b.mu.RUnlock()

	var failed []error
	for _, h := range handlers {
		if err := h(ctx, evt); err != nil {
			failed = append(failed, err)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %d of %d handlers failed: %w", evt.Type, len(failed), len(handlers), errors.Join(failed...))
}

// Subscribe adds handler for eventType
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	current := b.handlers[eventType]
	// capacity is pinned so append never writes into a slice Publish is ranging over
	b.handlers[eventType] = append(current[:len(current):len(current)], handler)
}
