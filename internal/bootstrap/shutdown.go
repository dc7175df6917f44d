package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/WolfJourney_Go/internal/repository"
	"github.com/osse101/WolfJourney_Go/internal/scheduler"
	"github.com/osse101/WolfJourney_Go/internal/server"
	"github.com/osse101/WolfJourney_Go/internal/sse"
	"github.com/osse101/WolfJourney_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Workers   *worker.Pool
	Hub       *sse.Hub
	Store     repository.Store
}

// GracefulShutdown stops the application in dependency order:
// 1. SSE hub (close event streams so the server can drain)
// 2. HTTP server (stop accepting new requests)
// 3. Scheduler (no new scheduled jobs)
// 4. Worker pool (drain queued syncs)
// 5. Storage
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Hub != nil {
		slog.Info(LogMsgStoppingSSEHub)
		components.Hub.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		components.Scheduler.Stop()
	}

	if components.Workers != nil {
		slog.Info(LogMsgDrainingWorkers)
		done := make(chan struct{})
		go func() {
			components.Workers.Stop()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			slog.Warn(LogMsgWorkerDrainIncomplete, "error", ctx.Err())
		}
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStorage)
		components.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
