package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WolfJourney_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	passedBefore := testutil.ToFloat64(Evaluations.WithLabelValues(OutcomePassed))
	failedBefore := testutil.ToFloat64(Evaluations.WithLabelValues(OutcomeFailed))
	statesBefore := testutil.ToFloat64(GameStatesRecorded)
	syncOKBefore := testutil.ToFloat64(RemoteSyncs.WithLabelValues(ResultSuccess))
	syncFailBefore := testutil.ToFloat64(RemoteSyncs.WithLabelValues(ResultFailure))

	require.NoError(t, bus.Publish(ctx, event.NewBatchEvaluatedEvent(ctx, 0, 3, true)))
	require.NoError(t, bus.Publish(ctx, event.NewBatchEvaluatedEvent(ctx, 1, 1, false)))
	require.NoError(t, bus.Publish(ctx, event.NewGameStateRecordedEvent(ctx, 4, 3, 75, time.Now())))
	require.NoError(t, bus.Publish(ctx, event.NewSyncSucceededEvent(ctx, "blob", "newlyCreated")))
	require.NoError(t, bus.Publish(ctx, event.NewSyncFailedEvent(ctx, errors.New("down"))))

	assert.Equal(t, passedBefore+1, testutil.ToFloat64(Evaluations.WithLabelValues(OutcomePassed)))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(Evaluations.WithLabelValues(OutcomeFailed)))
	assert.Equal(t, statesBefore+1, testutil.ToFloat64(GameStatesRecorded))
	assert.Equal(t, syncOKBefore+1, testutil.ToFloat64(RemoteSyncs.WithLabelValues(ResultSuccess)))
	assert.Equal(t, syncFailBefore+1, testutil.ToFloat64(RemoteSyncs.WithLabelValues(ResultFailure)))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/42", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items/{id}", "418")))
}

func TestMiddleware_UnmatchedAndImplicitStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/quiet", func(w http.ResponseWriter, r *http.Request) {})

	notFound := HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "404")
	implicitOK := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/quiet", "200")
	beforeNotFound, beforeOK := testutil.ToFloat64(notFound), testutil.ToFloat64(implicitOK)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/scan/wp-admin.php", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/quiet", nil))

	assert.Equal(t, beforeNotFound+1, testutil.ToFloat64(notFound))
	assert.Equal(t, beforeOK+1, testutil.ToFloat64(implicitOK))
}
