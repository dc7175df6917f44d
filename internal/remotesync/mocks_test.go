package remotesync

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/publisher"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) AppendGameState(ctx context.Context, gs *domain.GameState) error {
	args := m.Called(ctx, gs)
	return args.Error(0)
}

func (m *MockStore) ListGameStates(ctx context.Context) ([]domain.GameState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GameState), args.Error(1)
}

func (m *MockStore) LatestGameState(ctx context.Context) (*domain.GameState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameState), args.Error(1)
}

func (m *MockStore) AppendTransaction(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockStore) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, data []byte) (*publisher.Receipt, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*publisher.Receipt), args.Error(1)
}
