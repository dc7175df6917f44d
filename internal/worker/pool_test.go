package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WolfJourney_Go/internal/logger"
	"github.com/osse101/WolfJourney_Go/internal/metrics"
	"github.com/osse101/WolfJourney_Go/internal/testing/leaktest"
)

type testJob struct {
	name     string
	executed *int32
	err      error
	gotReqID *atomic.Value
}

func (j *testJob) Name() string { return j.name }

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	if j.gotReqID != nil {
		id, _ := logger.RequestIDFromContext(ctx)
		j.gotReqID.Store(id)
	}
	return j.err
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{name: "test", executed: &executed}
	require.NoError(t, pool.Enqueue(context.Background(), job))
	require.NoError(t, pool.Enqueue(context.Background(), job))

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != TestExpectedJobCount {
		t.Errorf("Expected %d jobs executed, got %d", TestExpectedJobCount, executed)
	}
}

func TestPool_CountsJobResults(t *testing.T) {
	var executed int32
	okBefore := testutil.ToFloat64(metrics.WorkerJobs.WithLabelValues("metric-job", metrics.ResultSuccess))
	failBefore := testutil.ToFloat64(metrics.WorkerJobs.WithLabelValues("metric-job", metrics.ResultFailure))

	pool := NewPool(1, TestQueueSize)
	pool.Start()
	require.NoError(t, pool.Enqueue(context.Background(), &testJob{name: "metric-job", executed: &executed}))
	require.NoError(t, pool.Enqueue(context.Background(), &testJob{name: "metric-job", executed: &executed, err: errors.New("boom")}))

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&executed) == 2 }, time.Second, 10*time.Millisecond)
	pool.Stop()

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.WorkerJobs.WithLabelValues("metric-job", metrics.ResultSuccess)) == okBefore+1 &&
			testutil.ToFloat64(metrics.WorkerJobs.WithLabelValues("metric-job", metrics.ResultFailure)) == failBefore+1
	}, time.Second, 10*time.Millisecond)
}

func TestPool_PropagatesRequestID(t *testing.T) {
	var executed int32
	var got atomic.Value
	pool := NewPool(1, 1)
	pool.Start()
	defer pool.Stop()

	ctx := logger.WithRequestID(context.Background(), "req-42")
	require.NoError(t, pool.Enqueue(ctx, &testJob{name: "rid", executed: &executed, gotReqID: &got}))

	assert.Eventually(t, func() bool { return got.Load() == "req-42" }, time.Second, 10*time.Millisecond)
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	pool.Stop()

	err := pool.Enqueue(context.Background(), &testJob{name: "late", executed: &executed})
	assert.ErrorIs(t, err, ErrPoolStopped)
}

func TestPool_EnqueueRespectsContext(t *testing.T) {
	var executed int32
	pool := NewPool(1, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// no workers started, so the unbuffered queue never drains
	err := pool.Enqueue(ctx, &testJob{name: "blocked", executed: &executed})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	pool.Stop()
}

func TestPool_TryEnqueueDoesNotWait(t *testing.T) {
	var executed int32
	// no workers started, so the single slot stays taken
	pool := NewPool(1, 1)
	defer pool.Stop()
	droppedBefore := testutil.ToFloat64(metrics.WorkerJobs.WithLabelValues("full", metrics.ResultDropped))

	require.NoError(t, pool.TryEnqueue(context.Background(), &testJob{name: "first", executed: &executed}))

	start := time.Now()
	err := pool.TryEnqueue(context.Background(), &testJob{name: "full", executed: &executed})
	assert.ErrorIs(t, err, ErrQueueFull)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
	assert.Equal(t, droppedBefore+1, testutil.ToFloat64(metrics.WorkerJobs.WithLabelValues("full", metrics.ResultDropped)))
}

func TestPool_TryEnqueueUnbufferedWithoutIdleWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, 0)
	defer pool.Stop()

	assert.ErrorIs(t, pool.TryEnqueue(context.Background(), &testJob{name: "unbuffered", executed: &executed}), ErrQueueFull)
}

func TestPool_TryEnqueueAfterStop(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1)
	pool.Stop()

	assert.ErrorIs(t, pool.TryEnqueue(context.Background(), &testJob{name: "late", executed: &executed}), ErrPoolStopped)
}

func TestPool_StopLeavesNoGoroutines(t *testing.T) {
	leaktest.Around(t, func() {
		var executed int32
		pool := NewPool(4, TestQueueSize)
		pool.Start()
		for i := 0; i < 4; i++ {
			require.NoError(t, pool.Enqueue(context.Background(), &testJob{name: "leak", executed: &executed}))
		}
		assert.Eventually(t, func() bool { return atomic.LoadInt32(&executed) == 4 }, time.Second, 10*time.Millisecond)
		pool.Stop()
	})
}

type panicJob struct{}

func (panicJob) Name() string { return "panics" }

func (panicJob) Process(ctx context.Context) error { panic("den collapsed") }

func TestProcess_RecoversPanic(t *testing.T) {
	err := process(context.Background(), panicJob{})

	assert.ErrorIs(t, err, ErrJobPanicked)
	assert.Contains(t, err.Error(), "den collapsed")
}

func TestPool_WorkerSurvivesPanickingJob(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	require.NoError(t, pool.Enqueue(context.Background(), panicJob{}))
	require.NoError(t, pool.Enqueue(context.Background(), &testJob{name: "after", executed: &executed}))

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&executed) == 1 }, time.Second, 10*time.Millisecond)
}
