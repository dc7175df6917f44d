// Package session holds the single player's in-memory game session.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/event"
	"github.com/osse101/WolfJourney_Go/internal/logger"
)

// SentimentResult is one submitted batch as the session remembers it
type SentimentResult struct {
	BatchNumber int       `json:"batchNumber"`
	Answers     []string  `json:"answers"`
	Timestamp   time.Time `json:"timestamp"`
}

// View is a copy of the session state
type View struct {
	Stage            string            `json:"currentStage"`
	Level            int               `json:"currentLevel"`
	Health           int               `json:"health"`
	MaxHealth        int               `json:"maxHealth"`
	SentimentResults []SentimentResult `json:"sentimentResults"`
}

// Session is the mutable player session. All methods are safe for
// concurrent use.
type Session struct {
	mu      sync.RWMutex
	stage   string
	level   int
	health  int
	results []SentimentResult
	bus     event.Bus
}

// New creates a session at the sentiment stage with full health
func New(bus event.Bus) *Session {
	s := &Session{bus: bus}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.stage = domain.StageSentiment
	s.level = InitialLevel
	s.health = domain.MaxHealth
	s.results = nil
}

// View returns a snapshot of the session
func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	results := make([]SentimentResult, len(s.results))
	for i, r := range s.results {
		r.Answers = append([]string(nil), r.Answers...)
		results[i] = r
	}
	return View{
		Stage:            s.stage,
		Level:            s.level,
		Health:           s.health,
		MaxHealth:        domain.MaxHealth,
		SentimentResults: results,
	}
}

// Health returns the current hearts
func (s *Session) Health() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.health
}

// SetStage switches between the sentiment and adventure stages
func (s *Session) SetStage(ctx context.Context, stage string) (View, error) {
	if stage != domain.StageSentiment && stage != domain.StageAdventure {
		return View{}, fmt.Errorf("%w: %q", domain.ErrInvalidStage, stage)
	}
	return s.mutate(ctx, func() { s.stage = stage }), nil
}

// SetLevel sets the current level
func (s *Session) SetLevel(ctx context.Context, level int) (View, error) {
	if level < InitialLevel {
		return View{}, fmt.Errorf("%w: level must be at least %d", domain.ErrInvalidInput, InitialLevel)
	}
	return s.mutate(ctx, func() { s.level = level }), nil
}

// SetHealth sets health, capped at the maximum and floored at zero
func (s *Session) SetHealth(ctx context.Context, health int) View {
	return s.mutate(ctx, func() { s.health = clampHealth(health) })
}

// UpdateHealth adds delta to health, clamped to [0, max]
func (s *Session) UpdateHealth(ctx context.Context, delta int) View {
	return s.mutate(ctx, func() { s.health = clampHealth(s.health + delta) })
}

// AddSentimentResults remembers a submitted batch
func (s *Session) AddSentimentResults(ctx context.Context, batch domain.AnswerBatch) View {
	return s.mutate(ctx, func() {
		s.results = append(s.results, SentimentResult{
			BatchNumber: batch.BatchNumber,
			Answers:     append([]string(nil), batch.Answers...),
			Timestamp:   batch.Timestamp,
		})
	})
}

// ClearSentimentResults forgets every submitted batch
func (s *Session) ClearSentimentResults(ctx context.Context) View {
	return s.mutate(ctx, func() { s.results = nil })
}

// Reset returns the session to its initial state
func (s *Session) Reset(ctx context.Context) View {
	logger.FromContext(ctx).Info(LogMsgSessionReset)
	return s.mutate(ctx, s.reset)
}

// mutate applies fn under the write lock and publishes the resulting view
// after the lock is released.
func (s *Session) mutate(ctx context.Context, fn func()) View {
	s.mu.Lock()
	fn()
	v := s.viewLocked()
	s.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgSessionUpdated, "stage", v.Stage, "level", v.Level, "health", v.Health)
	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewSessionUpdatedEvent(ctx, v.Stage, v.Level, v.Health)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "error", err)
		}
	}
	return v
}

func clampHealth(h int) int {
	if h < 0 {
		return 0
	}
	if h > domain.MaxHealth {
		return domain.MaxHealth
	}
	return h
}
