package bootstrap

import (
	"log/slog"

	"github.com/osse101/WolfJourney_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus
func InitializeEventSystem() *event.MemoryBus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}
