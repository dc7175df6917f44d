package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/WolfJourney_Go/internal/event"
	"github.com/osse101/WolfJourney_Go/internal/metrics"
	"github.com/osse101/WolfJourney_Go/internal/remotesync"
	"github.com/osse101/WolfJourney_Go/internal/scheduler"
	"github.com/osse101/WolfJourney_Go/internal/sse"
	"github.com/osse101/WolfJourney_Go/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus    event.Bus
	Hub         *sse.Hub
	SyncService remotesync.Service
	Workers     *worker.Pool
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event-based metrics)
// - SSE subscriber (pushes lifecycle and session events to browsers)
// - Remote sync subscriber (publishes each new game state in the background)
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
	slog.Info(LogMsgSSESubscriberRegistered, "types", sse.StreamedTypes())

	remotesync.NewSubscriber(deps.SyncService, deps.Workers).Subscribe(deps.EventBus)
	slog.Info(LogMsgSyncSubscriberRegistered)
}

// ScheduleBulkSync registers the recurring bulk sync. An empty spec disables it.
func ScheduleBulkSync(sched *scheduler.Scheduler, spec string, svc remotesync.Service) error {
	if spec == "" {
		slog.Info(LogMsgSyncScheduleDisabled)
		return nil
	}
	if err := sched.AddJob(spec, remotesync.NewSyncAllJob(svc)); err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedScheduleSync, spec, err)
	}
	slog.Info(LogMsgSyncScheduled, "schedule", spec)
	return nil
}
