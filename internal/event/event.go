package event

import (
	"context"
	"time"

	"github.com/osse101/WolfJourney_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event is one fact published on the bus. Version is the payload schema.
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// RequestID is the id of the HTTP request that caused the event, if any
func (e Event) RequestID() string {
	id, _ := e.Metadata[MetadataKeyRequestID].(string)
	return id
}

// Batch lifecycle event types, in the order a client observes them.
const (
	BatchSubmitted    Type = "batch.submitted"
	BatchEvaluating   Type = "batch.evaluating"
	BatchEvaluated    Type = "batch.evaluated"
	GameStateRecorded Type = "gamestate.recorded"
	SyncSucceeded     Type = "sync.succeeded"
	SyncFailed        Type = "sync.failed"
)

// SessionUpdated is published whenever the player session changes.
const SessionUpdated Type = "session.updated"

// LifecycleTypes lists every batch lifecycle event type.
var LifecycleTypes = []Type{
	BatchSubmitted,
	BatchEvaluating,
	BatchEvaluated,
	GameStateRecorded,
	SyncSucceeded,
	SyncFailed,
}

// BatchPayloadV1 is the payload for submitted and evaluating events
type BatchPayloadV1 struct {
	BatchNumber int   `json:"batch_number"`
	Timestamp   int64 `json:"timestamp"`
}

// BatchEvaluatedPayloadV1 is the payload for evaluated events
type BatchEvaluatedPayloadV1 struct {
	BatchNumber  int   `json:"batch_number"`
	TotalCorrect int   `json:"total_correct"`
	Passed       bool  `json:"passed"`
	Timestamp    int64 `json:"timestamp"`
}

// GameStatePayloadV1 is the payload for game state recorded events
type GameStatePayloadV1 struct {
	TweetsAnswered  int       `json:"tweets_answered"`
	HeartsRemaining int       `json:"hearts_remaining"`
	Accuracy        int       `json:"accuracy"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// SyncPayloadV1 is the payload for sync outcome events
type SyncPayloadV1 struct {
	BlobID    string `json:"blob_id,omitempty"`
	Variant   string `json:"variant,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// SessionPayloadV1 is the payload for session updated events
type SessionPayloadV1 struct {
	Stage  string `json:"stage"`
	Level  int    `json:"level"`
	Health int    `json:"health"`
}

func newEvent(ctx context.Context, t Type, payload interface{}) Event {
	var md Metadata
	if id, ok := logger.RequestIDFromContext(ctx); ok {
		md = Metadata{MetadataKeyRequestID: id}
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: md,
	}
}

// NewBatchSubmittedEvent creates a batch submitted event
func NewBatchSubmittedEvent(ctx context.Context, batchNumber int) Event {
	return newEvent(ctx, BatchSubmitted, BatchPayloadV1{
		BatchNumber: batchNumber,
		Timestamp:   time.Now().Unix(),
	})
}

// NewBatchEvaluatingEvent creates a batch evaluating event
func NewBatchEvaluatingEvent(ctx context.Context, batchNumber int) Event {
	return newEvent(ctx, BatchEvaluating, BatchPayloadV1{
		BatchNumber: batchNumber,
		Timestamp:   time.Now().Unix(),
	})
}

// NewBatchEvaluatedEvent creates a batch evaluated event
func NewBatchEvaluatedEvent(ctx context.Context, batchNumber, totalCorrect int, passed bool) Event {
	return newEvent(ctx, BatchEvaluated, BatchEvaluatedPayloadV1{
		BatchNumber:  batchNumber,
		TotalCorrect: totalCorrect,
		Passed:       passed,
		Timestamp:    time.Now().Unix(),
	})
}

// NewGameStateRecordedEvent creates a game state recorded event
func NewGameStateRecordedEvent(ctx context.Context, tweetsAnswered, heartsRemaining, accuracy int, recordedAt time.Time) Event {
	return newEvent(ctx, GameStateRecorded, GameStatePayloadV1{
		TweetsAnswered:  tweetsAnswered,
		HeartsRemaining: heartsRemaining,
		Accuracy:        accuracy,
		RecordedAt:      recordedAt,
	})
}

// NewSyncSucceededEvent creates a sync succeeded event
func NewSyncSucceededEvent(ctx context.Context, blobID, variant string) Event {
	return newEvent(ctx, SyncSucceeded, SyncPayloadV1{
		BlobID:    blobID,
		Variant:   variant,
		Timestamp: time.Now().Unix(),
	})
}

// NewSyncFailedEvent creates a sync failed event
func NewSyncFailedEvent(ctx context.Context, err error) Event {
	return newEvent(ctx, SyncFailed, SyncPayloadV1{
		Error:     err.Error(),
		Timestamp: time.Now().Unix(),
	})
}

// NewSessionUpdatedEvent creates a session updated event
func NewSessionUpdatedEvent(ctx context.Context, stage string, level, health int) Event {
	return newEvent(ctx, SessionUpdated, SessionPayloadV1{
		Stage:  stage,
		Level:  level,
		Health: health,
	})
}
