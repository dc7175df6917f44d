// Package scheduler enqueues recurring jobs onto the worker pool.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/osse101/WolfJourney_Go/internal/worker"
)

// Log messages
const (
	LogMsgJobRegistered  = "Scheduled job registered"
	LogMsgEnqueueFailed  = "Failed to enqueue scheduled job"
	LogMsgSchedulerStart = "Scheduler started"
	LogMsgSchedulerStop  = "Scheduler stopped"
	enqueueTimeout       = 5 * time.Second
)

// Enqueuer accepts background jobs
type Enqueuer interface {
	Enqueue(ctx context.Context, job worker.Job) error
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	cron  *cron.Cron
	queue Enqueuer
}

// New creates a new scheduler using standard five-field cron specs and
// descriptors such as "@every 10m"
func New(queue Enqueuer) *Scheduler {
	return &Scheduler{
		cron:  cron.New(),
		queue: queue,
	}
}

// AddJob registers job under a cron spec
func (s *Scheduler) AddJob(spec string, job worker.Job) error {
	if _, err := s.cron.AddFunc(spec, s.enqueue(job)); err != nil {
		return err
	}
	slog.Info(LogMsgJobRegistered, "schedule", spec, "job", job.Name())
	return nil
}

// Schedule registers a job to run at a fixed interval, rounded up to a second
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.cron.Schedule(cron.Every(interval), cron.FuncJob(s.enqueue(job)))
	slog.Info(LogMsgJobRegistered, "interval", interval, "job", job.Name())
}

func (s *Scheduler) enqueue(job worker.Job) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
		defer cancel()
		if err := s.queue.Enqueue(ctx, job); err != nil {
			slog.Warn(LogMsgEnqueueFailed, "job", job.Name(), "error", err)
		}
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info(LogMsgSchedulerStart, "entries", len(s.cron.Entries()))
}

// Stop stops all scheduled jobs and waits for running enqueues
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info(LogMsgSchedulerStop)
}
