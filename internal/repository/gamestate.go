package repository

import (
	"context"

	"github.com/osse101/WolfJourney_Go/internal/domain"
)

// GameStates is an append-only snapshot log
type GameStates interface {
	AppendGameState(ctx context.Context, gs *domain.GameState) error
	ListGameStates(ctx context.Context) ([]domain.GameState, error)
	// LatestGameState returns domain.ErrNoGameState when the log is empty.
	LatestGameState(ctx context.Context) (*domain.GameState, error)
}

// Transactions is an append-only log of publisher receipts
type Transactions interface {
	AppendTransaction(ctx context.Context, tx *domain.Transaction) error
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}
