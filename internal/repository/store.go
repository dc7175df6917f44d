package repository

import "context"

// Store is a complete storage backend
type Store interface {
	Evaluations
	Submissions
	GameStates
	Transactions

	// Ping reports whether the backend is reachable
	Ping(ctx context.Context) error
	Close()
}
