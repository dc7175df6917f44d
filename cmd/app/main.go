package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/osse101/WolfJourney_Go/internal/adventure"
	"github.com/osse101/WolfJourney_Go/internal/bootstrap"
	"github.com/osse101/WolfJourney_Go/internal/config"
	"github.com/osse101/WolfJourney_Go/internal/evaluation"
	"github.com/osse101/WolfJourney_Go/internal/gamestate"
	"github.com/osse101/WolfJourney_Go/internal/handler"
	"github.com/osse101/WolfJourney_Go/internal/judge"
	"github.com/osse101/WolfJourney_Go/internal/llm"
	"github.com/osse101/WolfJourney_Go/internal/remotesync"
	"github.com/osse101/WolfJourney_Go/internal/scheduler"
	"github.com/osse101/WolfJourney_Go/internal/server"
	"github.com/osse101/WolfJourney_Go/internal/session"
	"github.com/osse101/WolfJourney_Go/internal/sse"
	"github.com/osse101/WolfJourney_Go/internal/tweets"
	"github.com/osse101/WolfJourney_Go/internal/validation"
	"github.com/osse101/WolfJourney_Go/internal/worker"
)

const shutdownTimeout = 30 * time.Second

// @title Wolf's Journey Home API
// @version 1.0
// @description Sentiment game backend: tweet batches judged by an LLM, game state snapshots and remote blob sync.
// @BasePath /
func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := config.ValidateEnv(); err != nil {
		return err
	}
	bootstrap.SetupLogger(cfg)
	handler.Version = cfg.Version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}

	completer := llm.NewClient(llm.Config{
		BaseURL:    cfg.LLMBaseURL,
		APIKey:     cfg.LLMAPIKey,
		Model:      cfg.LLMModel,
		MaxTokens:  cfg.LLMMaxTokens,
		HTTPClient: httpClient,
	})
	tweetSource := tweets.NewSource(filepath.Join(cfg.DataDir, tweets.FileName), cfg.TweetsCacheTTL, validation.NewSchemaValidator())
	bootstrap.CheckTweets(ctx, tweetSource)

	pub, err := bootstrap.NewPublisher(ctx, cfg, httpClient)
	if err != nil {
		store.Close()
		return err
	}

	bus := bootstrap.InitializeEventSystem()

	gameStateService := gamestate.NewService(store, store, bus)
	evaluationService := evaluation.NewService(
		evaluation.NewEvaluator(tweetSource, judge.New(completer, cfg.JudgeStrict)),
		store, store, gameStateService, bus,
	)
	syncService := remotesync.NewService(store, pub, bus)
	playerSession := session.New(bus)

	workers := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	workers.Start()

	hub := sse.NewHub()
	hub.Start()

	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:    bus,
		Hub:         hub,
		SyncService: syncService,
		Workers:     workers,
	})

	sched := scheduler.New(workers)
	if err := bootstrap.ScheduleBulkSync(sched, cfg.SyncSchedule, syncService); err != nil {
		bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{Workers: workers, Hub: hub, Store: store})
		return err
	}
	sched.Start()

	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		TrustedProxies:     cfg.TrustedProxies,
	}, server.Dependencies{
		Store:      store,
		Tweets:     tweetSource,
		Evaluation: evaluationService,
		GameState:  gameStateService,
		Sync:       syncService,
		Session:    playerSession,
		Adventure:  adventure.NewGenerator(completer),
		Hub:        hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Workers:   workers,
		Hub:       hub,
		Store:     store,
	})

	return err
}
