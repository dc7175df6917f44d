package remotesync

import (
	"context"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/event"
	"github.com/osse101/WolfJourney_Go/internal/logger"
	"github.com/osse101/WolfJourney_Go/internal/worker"
)

// Worker job names
const (
	JobNameSyncLatest   = "sync_latest"
	JobNameSyncSnapshot = "sync_snapshot"
	JobNameSyncAll      = "sync_all"
)

// Enqueuer accepts background jobs without blocking the caller
type Enqueuer interface {
	TryEnqueue(ctx context.Context, job worker.Job) error
}

// SyncLatestJob publishes the latest snapshot in the background
type SyncLatestJob struct {
	svc Service
}

// NewSyncLatestJob wraps svc.SyncLatest as a worker job
func NewSyncLatestJob(svc Service) *SyncLatestJob {
	return &SyncLatestJob{svc: svc}
}

func (j *SyncLatestJob) Name() string { return JobNameSyncLatest }

func (j *SyncLatestJob) Process(ctx context.Context) error {
	_, err := j.svc.SyncLatest(ctx)
	return err
}

// SyncSnapshotJob publishes one recorded snapshot
type SyncSnapshotJob struct {
	svc      Service
	snapshot domain.GameState
}

// NewSyncSnapshotJob binds gs to a worker job
func NewSyncSnapshotJob(svc Service, gs domain.GameState) *SyncSnapshotJob {
	return &SyncSnapshotJob{svc: svc, snapshot: gs}
}

func (j *SyncSnapshotJob) Name() string { return JobNameSyncSnapshot }

func (j *SyncSnapshotJob) Process(ctx context.Context) error {
	_, err := j.svc.SyncSnapshot(ctx, &j.snapshot)
	return err
}

// SyncAllJob republishes every snapshot; it backs the scheduled bulk sync
type SyncAllJob struct {
	svc Service
}

// NewSyncAllJob wraps svc.SyncAll as a worker job
func NewSyncAllJob(svc Service) *SyncAllJob {
	return &SyncAllJob{svc: svc}
}

func (j *SyncAllJob) Name() string { return JobNameSyncAll }

func (j *SyncAllJob) Process(ctx context.Context) error {
	_, err := j.svc.SyncAll(ctx)
	return err
}

// Subscriber enqueues a sync after every recorded snapshot
type Subscriber struct {
	svc   Service
	queue Enqueuer
}

// NewSubscriber creates a new sync subscriber
func NewSubscriber(svc Service, queue Enqueuer) *Subscriber {
	return &Subscriber{svc: svc, queue: queue}
}

// Subscribe registers the subscriber on the bus
func (s *Subscriber) Subscribe(bus event.Bus) {
	bus.Subscribe(event.GameStateRecorded, s.handleGameStateRecorded)
}

// handleGameStateRecorded runs on the publisher's goroutine and never
// blocks or fails it. A sync that finds the queue full is logged and dropped.
func (s *Subscriber) handleGameStateRecorded(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	var job worker.Job = NewSyncLatestJob(s.svc)
	payload, err := event.DecodePayload[event.GameStatePayloadV1](evt.Payload)
	switch {
	case err != nil:
		log.Warn(LogMsgDecodeFailed, "type", evt.Type, "error", err)
	case payload.RecordedAt.IsZero():
		log.Warn(LogMsgDecodeFailed, "type", evt.Type)
	default:
		job = NewSyncSnapshotJob(s.svc, domain.GameState{
			Timestamp:       payload.RecordedAt,
			TweetsAnswered:  payload.TweetsAnswered,
			HeartsRemaining: payload.HeartsRemaining,
			Accuracy:        payload.Accuracy,
		})
	}

	if err := s.queue.TryEnqueue(ctx, job); err != nil {
		log.Warn(LogMsgEnqueueFailed, "type", evt.Type, "job", job.Name(), "error", err)
	}
	return nil
}
