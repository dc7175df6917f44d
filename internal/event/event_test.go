package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WolfJourney_Go/internal/logger"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType, Payload: "payload"})

	require.NoError(t, err)
	assert.True(t, handled)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}
	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody"}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	called := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		called = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
	assert.Contains(t, err.Error(), "1 of 2 handlers failed")
	assert.True(t, called, "later handlers still run after a failure")
}

func TestConstructors_CarryRequestID(t *testing.T) {
	ctx := logger.WithRequestID(context.Background(), "req-1")

	evt := NewBatchEvaluatedEvent(ctx, 2, 3, true)

	assert.Equal(t, BatchEvaluated, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, "req-1", evt.RequestID())

	payload, err := DecodePayload[BatchEvaluatedPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, 2, payload.BatchNumber)
	assert.True(t, payload.Passed)
}

func TestConstructors_WithoutRequestID(t *testing.T) {
	evt := NewSyncFailedEvent(context.Background(), errors.New("publisher down"))

	assert.Empty(t, evt.RequestID())
	assert.Nil(t, evt.Metadata)
	payload, err := DecodePayload[SyncPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "publisher down", payload.Error)
}

func TestDecodePayload_FromMap(t *testing.T) {
	recorded := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	raw := map[string]interface{}{
		"tweets_answered":  4,
		"hearts_remaining": 2,
		"accuracy":         75,
		"recorded_at":      recorded.Format(time.RFC3339),
	}

	payload, err := DecodePayload[GameStatePayloadV1](raw)

	require.NoError(t, err)
	assert.Equal(t, 4, payload.TweetsAnswered)
	assert.Equal(t, 2, payload.HeartsRemaining)
	assert.True(t, recorded.Equal(payload.RecordedAt))
}

func TestDecodePayload_Forms(t *testing.T) {
	want := SessionPayloadV1{Stage: "game", Level: 2, Health: 3}
	raw, err := json.Marshal(want)
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   interface{}
		wantErr error
	}{
		{"value", want, nil},
		{"pointer", &want, nil},
		{"raw json", json.RawMessage(raw), nil},
		{"bytes", raw, nil},
		{"nil", nil, ErrNoPayload},
		{"nil pointer", (*SessionPayloadV1)(nil), ErrNoPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePayload[SessionPayloadV1](tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodePayload_MismatchedJSON(t *testing.T) {
	_, err := DecodePayload[GameStatePayloadV1](json.RawMessage(`{"tweets_answered":"four"}`))
	assert.Error(t, err)
}
