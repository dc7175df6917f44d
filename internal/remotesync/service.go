// Package remotesync publishes game state snapshots to the remote blob store
// and keeps the local log of receipts.
package remotesync

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/event"
	"github.com/osse101/WolfJourney_Go/internal/logger"
	"github.com/osse101/WolfJourney_Go/internal/publisher"
	"github.com/osse101/WolfJourney_Go/internal/repository"
)

// Store is the storage the sync service reads snapshots from and writes
// receipts to
type Store interface {
	repository.GameStates
	repository.Transactions
}

// Result is one successful publish and the record written for it
type Result struct {
	Variant     string
	Receipt     []byte
	Transaction *domain.Transaction
}

// SyncSummary counts the outcome of a bulk sync
type SyncSummary struct {
	Synced int `json:"synced"`
	Total  int `json:"total"`
}

// Message renders the summary the way clients expect it
func (s SyncSummary) Message() string {
	return fmt.Sprintf(MsgSyncedFormat, s.Synced, s.Total)
}

// Service defines the remote sync operations
type Service interface {
	// SyncLatest publishes the latest snapshot. Returns domain.ErrNoGameState
	// when none was recorded; no transaction is written in that case.
	SyncLatest(ctx context.Context) (*Result, error)
	// SyncSnapshot publishes the given snapshot.
	SyncSnapshot(ctx context.Context, gs *domain.GameState) (*Result, error)
	// SyncAll publishes every snapshot and counts successes. Individual
	// failures are logged and swallowed.
	SyncAll(ctx context.Context) (*SyncSummary, error)
	// Store publishes an arbitrary JSON document.
	Store(ctx context.Context, data json.RawMessage) (*Result, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

type service struct {
	store       Store
	publisher   publisher.Publisher
	bus         event.Bus
	concurrency int
	now         func() time.Time
}

// NewService creates a new remote sync service
func NewService(store Store, pub publisher.Publisher, bus event.Bus) Service {
	return &service{
		store:       store,
		publisher:   pub,
		bus:         bus,
		concurrency: DefaultSyncConcurrency,
		now:         time.Now,
	}
}

func (s *service) SyncLatest(ctx context.Context) (*Result, error) {
	gs, err := s.store.LatestGameState(ctx)
	if err != nil {
		return nil, err
	}
	return s.syncOne(ctx, gs)
}

func (s *service) SyncSnapshot(ctx context.Context, gs *domain.GameState) (*Result, error) {
	if gs == nil {
		return nil, domain.ErrNoGameState
	}
	return s.syncOne(ctx, gs)
}

func (s *service) SyncAll(ctx context.Context) (*SyncSummary, error) {
	log := logger.FromContext(ctx)

	states, err := s.store.ListGameStates(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadGameStates, err)
	}
	log.Info(LogMsgSyncStarted, "game_states", len(states))

	var synced atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range states {
		gs := states[i]
		g.Go(func() error {
			if _, err := s.syncOne(gctx, &gs); err == nil {
				synced.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	summary := &SyncSummary{Synced: int(synced.Load()), Total: len(states)}
	log.Info(LogMsgBulkSyncFinished, "synced", summary.Synced, "total", summary.Total)
	return summary, nil
}

func (s *service) Store(ctx context.Context, data json.RawMessage) (*Result, error) {
	res, err := s.publish(ctx, data)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgPayloadStored, "variant", res.Variant, "bytes", len(data))
	return res, nil
}

func (s *service) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.store.ListTransactions(ctx)
}

func (s *service) syncOne(ctx context.Context, gs *domain.GameState) (*Result, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(gs.Payload())
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEncodePayload, err)
	}

	res, err := s.publish(ctx, payload)
	if err != nil {
		log.Warn(LogMsgSyncFailed, "recorded_at", gs.Timestamp, "error", err)
		return nil, err
	}
	log.Info(LogMsgSyncSucceeded, "recorded_at", gs.Timestamp, "variant", res.Variant)
	return res, nil
}

// publish sends data, appends the receipt to the transaction log and
// announces the outcome. A failed append is logged only; the blob is already
// stored remotely.
func (s *service) publish(ctx context.Context, data []byte) (*Result, error) {
	log := logger.FromContext(ctx)

	receipt, err := s.publisher.Publish(ctx, data)
	if err != nil {
		s.emit(ctx, event.NewSyncFailedEvent(ctx, err))
		return nil, err
	}

	tx := domain.NewTransaction(receipt.Body, s.now())
	if err := s.store.AppendTransaction(ctx, tx); err != nil {
		log.Error(LogMsgTransactionFailed, "error", err)
	} else {
		log.Debug(LogMsgTransactionSaved, "blob_id", tx.BlobID())
	}

	s.emit(ctx, event.NewSyncSucceededEvent(ctx, tx.BlobID(), receipt.Variant))
	return &Result{Variant: receipt.Variant, Receipt: receipt.Body, Transaction: tx}, nil
}

func (s *service) emit(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", evt.Type, "error", err)
	}
}
