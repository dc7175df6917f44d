package metrics

import (
	"context"

	"github.com/osse101/WolfJourney_Go/internal/event"
	"github.com/osse101/WolfJourney_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every batch lifecycle event and session updates
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.LifecycleTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	bus.Subscribe(event.SessionUpdated, e.HandleEvent)
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.BatchEvaluated:
		payload, err := event.DecodePayload[event.BatchEvaluatedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		outcome := OutcomeFailed
		if payload.Passed {
			outcome = OutcomePassed
		}
		Evaluations.WithLabelValues(outcome).Inc()

	case event.GameStateRecorded:
		GameStatesRecorded.Inc()

	case event.SyncSucceeded:
		RemoteSyncs.WithLabelValues(ResultSuccess).Inc()

	case event.SyncFailed:
		RemoteSyncs.WithLabelValues(ResultFailure).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
