package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/WolfJourney_Go/internal/event"
)

// BusPayload is the SSE payload for a bus event
type BusPayload struct {
	RequestID string      `json:"request_id,omitempty"`
	Data      interface{} `json:"data"`
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// StreamedTypes lists every bus event forwarded to browsers
func StreamedTypes() []event.Type {
	return append(append([]event.Type(nil), event.LifecycleTypes...), event.SessionUpdated)
}

// Subscribe registers the forwarder for every streamed event type
func (s *Subscriber) Subscribe() {
	types := StreamedTypes()
	for _, t := range types {
		s.bus.Subscribe(t, s.forward)
	}
	slog.Info(LogMsgSubscribed, "types", types)
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), BusPayload{Data: evt.Payload, RequestID: evt.RequestID()})
	return nil
}
