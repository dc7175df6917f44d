package bootstrap

import (
	"log/slog"
	"slices"

	"github.com/osse101/WolfJourney_Go/internal/config"
	"github.com/osse101/WolfJourney_Go/internal/logger"
)

// SetupLogger initializes the default slog logger from config and logs the
// startup banner. Source locations are only added in development.
func SetupLogger(cfg *config.Config) *slog.Logger {
	addSource := slices.Contains(sourceLoggingEnvironments, cfg.Environment)

	l := logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		AddSource:   addSource,
	})

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingWolfJourney,
		"environment", cfg.Environment,
		"version", cfg.Version)

	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"data_dir", cfg.DataDir,
		"storage_backend", cfg.StorageBackend,
		"publisher_backend", cfg.PublisherBackend,
		"llm_base_url", cfg.LLMBaseURL,
		"llm_model", cfg.LLMModel,
		"judge_strict", cfg.JudgeStrict,
		"sync_schedule", cfg.SyncSchedule)

	return l
}
