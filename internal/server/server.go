package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/WolfJourney_Go/internal/evaluation"
	"github.com/osse101/WolfJourney_Go/internal/gamestate"
	"github.com/osse101/WolfJourney_Go/internal/handler"
	"github.com/osse101/WolfJourney_Go/internal/logger"
	"github.com/osse101/WolfJourney_Go/internal/metrics"
	"github.com/osse101/WolfJourney_Go/internal/remotesync"
	"github.com/osse101/WolfJourney_Go/internal/sse"
)

// Session is the player session the API exposes
type Session interface {
	handler.SessionStore
	handler.SentimentRecorder
	handler.HealthReader
}

// Options configures the listener and middleware
type Options struct {
	Port               int
	CORSAllowedOrigins []string
	TrustedProxies     []string
}

// Dependencies are the services the routes call into
type Dependencies struct {
	Store      handler.Pinger
	Tweets     handler.TweetLister
	Evaluation evaluation.Service
	GameState  gamestate.Service
	Sync       remotesync.Service
	Session    Session
	Adventure  handler.StageGenerator
	Hub        *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the HTTP routes and middleware stack
func NewRouter(opts Options, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Last-Event-ID"},
		MaxAge:         CORSMaxAge,
	}))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, NewClientLimiter(RateLimitWindow, RateLimitMaxRequests)))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/tweets", handler.HandleGetTweets(deps.Tweets))

		r.Post("/evaluate", handler.HandleEvaluate(deps.Evaluation))
		r.Get("/evaluation", handler.HandleListEvaluations(deps.Evaluation))
		r.Post("/save-results", handler.HandleSaveResults(deps.Evaluation, deps.Session))

		r.Route("/game-state", func(r chi.Router) {
			r.Post("/", handler.HandleRecordGameState(deps.GameState))
			r.Get("/", handler.HandleListGameStates(deps.GameState))
		})

		r.Route("/walrus", func(r chi.Router) {
			r.Post("/", handler.HandleStorePayload(deps.Sync))
			r.Post("/latest", handler.HandleSyncLatest(deps.Sync))
			r.Post("/sync", handler.HandleSyncAll(deps.Sync))
			r.Get("/transactions", handler.HandleListTransactions(deps.Sync))
		})

		r.Route("/session", func(r chi.Router) {
			r.Get("/", handler.HandleGetSession(deps.Session))
			r.Post("/health", handler.HandleUpdateHealth(deps.Session))
			r.Post("/stage", handler.HandleSetStage(deps.Session))
			r.Post("/reset", handler.HandleResetSession(deps.Session))
		})

		r.Post("/adventure/stage", handler.HandleAdventureStage(deps.Adventure, deps.Session))

		r.Get("/events", sse.Handler(deps.Hub))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", metrics.StatusOf(ww),
			"bytes", ww.BytesWritten(),
			"duration_ms", elapsed.Milliseconds())
	})
}

func isQuietPath(path string) bool {
	return slices.ContainsFunc(QuietPaths, func(p string) bool { return strings.HasPrefix(path, p) })
}

var credentialHeaders = []string{HeaderAPIKey, HeaderAuthorization, HeaderCookie}

// sanitizeHeaders copies h with credential values replaced
func sanitizeHeaders(h http.Header) http.Header {
	out := h.Clone()
	for _, name := range credentialHeaders {
		if out.Get(name) != "" {
			out.Set(name, RedactedValue)
		}
	}
	return out
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
