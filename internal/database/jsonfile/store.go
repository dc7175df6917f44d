package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/repository"
)

var _ repository.Store = (*Store)(nil)

// Store keeps every collection as a whole JSON document in one directory.
// The layout is compatible with the documents the browser game shipped with.
type Store struct {
	dir          string
	evaluations  *document[domain.Evaluation]
	gameStates   *document[domain.GameState]
	transactions *document[domain.Transaction]
	// submissions are indexed by batch number; gaps encode as null
	submissions *document[*domain.AnswerBatch]
	now         func() time.Time
}

// NewStore creates the data directory and any missing documents.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorage, ErrMsgCreateDataDir, err)
	}

	s := &Store{
		dir:          dir,
		evaluations:  newDocument[domain.Evaluation](filepath.Join(dir, FileEvaluations), KeyEvaluations),
		gameStates:   newDocument[domain.GameState](filepath.Join(dir, FileGameStates), KeyGameStates),
		transactions: newDocument[domain.Transaction](filepath.Join(dir, FileTransactions), KeyTransactions),
		submissions:  newDocument[*domain.AnswerBatch](filepath.Join(dir, FileSubmissions), KeySubmissions),
		now:          time.Now,
	}

	for _, ensure := range []func() error{
		s.evaluations.ensure,
		s.gameStates.ensure,
		s.transactions.ensure,
		s.submissions.ensure,
	} {
		if err := ensure(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// UpsertEvaluation drops any evaluation for the same batch and appends ev
// with a fresh timestamp.
func (s *Store) UpsertEvaluation(_ context.Context, ev *domain.Evaluation) error {
	ev.Timestamp = s.now().UTC()
	stored := *ev
	return s.evaluations.update(func(items []domain.Evaluation) []domain.Evaluation {
		kept := items[:0]
		for _, existing := range items {
			if existing.BatchNumber != stored.BatchNumber {
				kept = append(kept, existing)
			}
		}
		return append(kept, stored)
	})
}

func (s *Store) ListEvaluations(_ context.Context) ([]domain.Evaluation, error) {
	items, err := s.evaluations.load()
	if err != nil {
		return nil, err
	}
	return nonNil(items), nil
}

func (s *Store) LatestEvaluation(_ context.Context) (*domain.Evaluation, error) {
	items, err := s.evaluations.load()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNoEvaluation
	}
	latest := items[len(items)-1]
	return &latest, nil
}

// UpsertSubmission stores batch at the index of its batch number.
func (s *Store) UpsertSubmission(_ context.Context, batch *domain.AnswerBatch) error {
	if !domain.ValidBatchNumber(batch.BatchNumber) {
		return fmt.Errorf("%w: batch number %d out of range", domain.ErrInvalidInput, batch.BatchNumber)
	}
	stored := *batch
	return s.submissions.update(func(items []*domain.AnswerBatch) []*domain.AnswerBatch {
		for len(items) <= stored.BatchNumber {
			items = append(items, nil)
		}
		items[stored.BatchNumber] = &stored
		return items
	})
}

func (s *Store) ListSubmissions(_ context.Context) ([]domain.AnswerBatch, error) {
	items, err := s.submissions.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.AnswerBatch, 0, len(items))
	for _, b := range items {
		if b != nil {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *Store) AppendGameState(_ context.Context, gs *domain.GameState) error {
	stored := *gs
	return s.gameStates.update(func(items []domain.GameState) []domain.GameState {
		return append(items, stored)
	})
}

func (s *Store) ListGameStates(_ context.Context) ([]domain.GameState, error) {
	items, err := s.gameStates.load()
	if err != nil {
		return nil, err
	}
	return nonNil(items), nil
}

func (s *Store) LatestGameState(_ context.Context) (*domain.GameState, error) {
	items, err := s.gameStates.load()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNoGameState
	}
	latest := items[len(items)-1]
	return &latest, nil
}

func (s *Store) AppendTransaction(_ context.Context, tx *domain.Transaction) error {
	stored := *tx
	return s.transactions.update(func(items []domain.Transaction) []domain.Transaction {
		return append(items, stored)
	})
}

func (s *Store) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	items, err := s.transactions.load()
	if err != nil {
		return nil, err
	}
	return nonNil(items), nil
}

// Ping checks that the data directory is still there.
func (s *Store) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrStorage, s.dir)
	}
	return nil
}

// Close is a no-op; every write is already durable.
func (s *Store) Close() {}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
