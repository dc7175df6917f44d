package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/WolfJourney_Go/internal/logger"
	"github.com/osse101/WolfJourney_Go/internal/metrics"
)

// Enqueue errors
var (
	ErrPoolStopped = errors.New(ErrMsgPoolStopped)
	ErrQueueFull   = errors.New(ErrMsgQueueFull)
	ErrJobPanicked = errors.New(ErrMsgJobPanicked)
)

// Job represents a task to be executed by a worker
type Job interface {
	// Name labels the job in logs and metrics
	Name() string
	Process(ctx context.Context) error
}

// queued carries the submitter's request id into the worker
type queued struct {
	job       Job
	requestID string
}

// Pool represents a worker pool
type Pool struct {
	workers    int
	jobQueue   chan queued
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
	jobTimeout time.Duration
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan queued, queueSize),
		quit:       make(chan struct{}),
		jobTimeout: DefaultJobTimeout,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	slog.Default().Info(LogMsgPoolStarted, "workers", p.workers, "queue_size", cap(p.jobQueue))
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case q := <-p.jobQueue:
			p.run(q)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(q queued) {
	ctx, cancel := context.WithTimeout(context.Background(), p.jobTimeout)
	defer cancel()
	if q.requestID != "" {
		ctx = logger.WithRequestID(ctx, q.requestID)
	}
	log := logger.FromContext(ctx)

	if err := process(ctx, q.job); err != nil {
		metrics.WorkerJobs.WithLabelValues(q.job.Name(), metrics.ResultFailure).Inc()
		log.Error(LogMsgWorkerJobFailed, "job", q.job.Name(), "error", err)
		return
	}
	metrics.WorkerJobs.WithLabelValues(q.job.Name(), metrics.ResultSuccess).Inc()
	log.Debug(LogMsgWorkerJobCompleted, "job", q.job.Name())
}

// process turns a panicking job into a failure so the worker survives it
func process(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
		}
	}()
	return job.Process(ctx)
}

// Enqueue adds a job to the queue, blocking while it is full. It gives up
// when ctx is done or the pool is stopped.
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	requestID, _ := logger.RequestIDFromContext(ctx)
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}

	select {
	case p.jobQueue <- queued{job: job, requestID: requestID}:
		return nil
	case <-p.quit:
		return ErrPoolStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryEnqueue adds a job without waiting. It returns ErrQueueFull when no
// slot is free.
func (p *Pool) TryEnqueue(ctx context.Context, job Job) error {
	requestID, _ := logger.RequestIDFromContext(ctx)
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}

	select {
	case p.jobQueue <- queued{job: job, requestID: requestID}:
		return nil
	default:
		metrics.WorkerJobs.WithLabelValues(job.Name(), metrics.ResultDropped).Inc()
		return ErrQueueFull
	}
}

// Stop stops the workers and waits for in-flight jobs to finish. Jobs still
// queued are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
		if pending := len(p.jobQueue); pending > 0 {
			slog.Default().Warn(LogMsgPendingJobsDropped, "pending", pending)
		}
		slog.Default().Info(LogMsgPoolStopped)
	})
}
