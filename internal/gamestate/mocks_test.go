package gamestate

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/WolfJourney_Go/internal/domain"
)

// MockRepository implements repository.Evaluations and repository.GameStates
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) UpsertEvaluation(ctx context.Context, ev *domain.Evaluation) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockRepository) ListEvaluations(ctx context.Context) ([]domain.Evaluation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Evaluation), args.Error(1)
}

func (m *MockRepository) LatestEvaluation(ctx context.Context) (*domain.Evaluation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evaluation), args.Error(1)
}

func (m *MockRepository) AppendGameState(ctx context.Context, gs *domain.GameState) error {
	args := m.Called(ctx, gs)
	return args.Error(0)
}

func (m *MockRepository) ListGameStates(ctx context.Context) ([]domain.GameState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GameState), args.Error(1)
}

func (m *MockRepository) LatestGameState(ctx context.Context) (*domain.GameState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameState), args.Error(1)
}
