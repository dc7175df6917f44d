// Package gamestate derives progress snapshots from evaluations.
package gamestate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/event"
	"github.com/osse101/WolfJourney_Go/internal/logger"
	"github.com/osse101/WolfJourney_Go/internal/repository"
)

// Service defines the game state operations
type Service interface {
	// Record derives a snapshot from the latest evaluation and appends it.
	// A nil health records full hearts.
	Record(ctx context.Context, health *int) (*domain.GameState, error)
	List(ctx context.Context) ([]domain.GameState, error)
	Latest(ctx context.Context) (*domain.GameState, error)
}

type service struct {
	evaluations repository.Evaluations
	states      repository.GameStates
	bus         event.Bus
	now         func() time.Time
}

// NewService creates a new game state service
func NewService(evaluations repository.Evaluations, states repository.GameStates, bus event.Bus) Service {
	return &service{
		evaluations: evaluations,
		states:      states,
		bus:         bus,
		now:         time.Now,
	}
}

func (s *service) Record(ctx context.Context, health *int) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	ev, err := s.evaluations.LatestEvaluation(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoEvaluation) {
			log.Warn(LogMsgNoEvaluation)
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgLoadEvaluation, err)
	}
	if len(ev.Results) == 0 {
		log.Warn(LogMsgNoEvaluation, "batch", ev.BatchNumber)
		return nil, domain.ErrNoEvaluationResults
	}

	gs := domain.NewGameState(ev, health, s.now())
	if err := s.states.AppendGameState(ctx, gs); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveGameState, err)
	}
	log.Info(LogMsgGameStateRecorded,
		"tweets_answered", gs.TweetsAnswered,
		"hearts_remaining", gs.HeartsRemaining,
		"accuracy", gs.Accuracy)

	if s.bus != nil {
		evt := event.NewGameStateRecordedEvent(ctx, gs.TweetsAnswered, gs.HeartsRemaining, gs.Accuracy, gs.Timestamp)
		if err := s.bus.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgEventPublishFailed, "error", err)
		}
	}
	return gs, nil
}

func (s *service) List(ctx context.Context) ([]domain.GameState, error) {
	return s.states.ListGameStates(ctx)
}

func (s *service) Latest(ctx context.Context) (*domain.GameState, error) {
	return s.states.LatestGameState(ctx)
}
