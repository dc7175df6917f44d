package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tidwall/gjson"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/repository"
)

var _ repository.Store = (*Store)(nil)

// Store keeps one row per batch, snapshot and receipt
type Store struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewStore wraps a migrated connection pool
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, now: time.Now}
}

const (
	upsertEvaluationSQL = `
		INSERT INTO evaluations (batch_number, seq, results, total_correct, passed, evaluated_at)
		VALUES ($1, nextval('evaluation_seq'), $2, $3, $4, $5)
		ON CONFLICT (batch_number) DO UPDATE SET
			seq = EXCLUDED.seq,
			results = EXCLUDED.results,
			total_correct = EXCLUDED.total_correct,
			passed = EXCLUDED.passed,
			evaluated_at = EXCLUDED.evaluated_at`
	selectEvaluationsSQL = `
		SELECT batch_number, results, total_correct, passed, evaluated_at
		FROM evaluations ORDER BY seq`
	latestEvaluationSQL = `
		SELECT batch_number, results, total_correct, passed, evaluated_at
		FROM evaluations ORDER BY seq DESC LIMIT 1`

	upsertSubmissionSQL = `
		INSERT INTO answer_submissions (batch_number, start_index, end_index, answers, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (batch_number) DO UPDATE SET
			start_index = EXCLUDED.start_index,
			end_index = EXCLUDED.end_index,
			answers = EXCLUDED.answers,
			submitted_at = EXCLUDED.submitted_at`
	selectSubmissionsSQL = `
		SELECT batch_number, start_index, end_index, answers, submitted_at
		FROM answer_submissions ORDER BY batch_number`

	insertGameStateSQL = `
		INSERT INTO game_states (recorded_at, tweets_answered, hearts_remaining, equipment, accuracy)
		VALUES ($1, $2, $3, $4, $5)`
	selectGameStatesSQL = `
		SELECT recorded_at, tweets_answered, hearts_remaining, equipment, accuracy
		FROM game_states ORDER BY id`
	latestGameStateSQL = `
		SELECT recorded_at, tweets_answered, hearts_remaining, equipment, accuracy
		FROM game_states ORDER BY id DESC LIMIT 1`

	insertTransactionSQL  = `INSERT INTO walrus_transactions (recorded_at, receipt) VALUES ($1, $2)`
	selectTransactionsSQL = `SELECT recorded_at, receipt FROM walrus_transactions ORDER BY id`
)

// UpsertEvaluation replaces the row for the batch and moves it to the end of
// the upsert order.
func (s *Store) UpsertEvaluation(ctx context.Context, ev *domain.Evaluation) error {
	results, err := json.Marshal(nonNil(ev.Results))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMarshalResults, err)
	}
	ev.Timestamp = s.now().UTC()

	_, err = s.pool.Exec(ctx, upsertEvaluationSQL,
		ev.BatchNumber, results, ev.TotalCorrect, ev.Passed, ev.Timestamp)
	if err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *Store) ListEvaluations(ctx context.Context) ([]domain.Evaluation, error) {
	rows, err := s.pool.Query(ctx, selectEvaluationsSQL)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	out := []domain.Evaluation{}
	for rows.Next() {
		ev, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ev)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func (s *Store) LatestEvaluation(ctx context.Context) (*domain.Evaluation, error) {
	ev, err := scanEvaluation(s.pool.QueryRow(ctx, latestEvaluationSQL))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoEvaluation
	}
	return ev, err
}

func (s *Store) UpsertSubmission(ctx context.Context, batch *domain.AnswerBatch) error {
	if !domain.ValidBatchNumber(batch.BatchNumber) {
		return fmt.Errorf("%w: batch number %d out of range", domain.ErrInvalidInput, batch.BatchNumber)
	}
	answers, err := json.Marshal(nonNil(batch.Answers))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMarshalAnswers, err)
	}

	_, err = s.pool.Exec(ctx, upsertSubmissionSQL,
		batch.BatchNumber, batch.StartIndex, batch.EndIndex, answers, batch.Timestamp.UTC())
	if err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *Store) ListSubmissions(ctx context.Context) ([]domain.AnswerBatch, error) {
	rows, err := s.pool.Query(ctx, selectSubmissionsSQL)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	out := []domain.AnswerBatch{}
	for rows.Next() {
		var (
			b       domain.AnswerBatch
			answers []byte
		)
		if err := rows.Scan(&b.BatchNumber, &b.StartIndex, &b.EndIndex, &answers, &b.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorage, ErrMsgScanFailed, err)
		}
		if err := json.Unmarshal(answers, &b.Answers); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorage, ErrMsgUnmarshalAnswers, err)
		}
		b.Timestamp = b.Timestamp.UTC()
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func (s *Store) AppendGameState(ctx context.Context, gs *domain.GameState) error {
	equipment, err := json.Marshal(nonNil(gs.Equipment))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMarshalEquipment, err)
	}

	_, err = s.pool.Exec(ctx, insertGameStateSQL,
		gs.Timestamp.UTC(), gs.TweetsAnswered, gs.HeartsRemaining, equipment, gs.Accuracy)
	if err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *Store) ListGameStates(ctx context.Context) ([]domain.GameState, error) {
	rows, err := s.pool.Query(ctx, selectGameStatesSQL)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	out := []domain.GameState{}
	for rows.Next() {
		gs, err := scanGameState(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *gs)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func (s *Store) LatestGameState(ctx context.Context) (*domain.GameState, error) {
	gs, err := scanGameState(s.pool.QueryRow(ctx, latestGameStateSQL))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoGameState
	}
	return gs, err
}

func (s *Store) AppendTransaction(ctx context.Context, tx *domain.Transaction) error {
	if !gjson.ValidBytes(tx.Receipt) || !gjson.ParseBytes(tx.Receipt).IsObject() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidReceipt)
	}
	if _, err := s.pool.Exec(ctx, insertTransactionSQL, tx.Timestamp.UTC(), tx.Receipt); err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := s.pool.Query(ctx, selectTransactionsSQL)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	out := []domain.Transaction{}
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.Timestamp, &tx.Receipt); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorage, ErrMsgScanFailed, err)
		}
		tx.Timestamp = tx.Timestamp.UTC()
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func scanEvaluation(row pgx.Row) (*domain.Evaluation, error) {
	var (
		ev      domain.Evaluation
		results []byte
	)
	if err := row.Scan(&ev.BatchNumber, &results, &ev.TotalCorrect, &ev.Passed, &ev.Timestamp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorage, ErrMsgScanFailed, err)
	}
	if err := json.Unmarshal(results, &ev.Results); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorage, ErrMsgUnmarshalResults, err)
	}
	ev.Timestamp = ev.Timestamp.UTC()
	return &ev, nil
}

func scanGameState(row pgx.Row) (*domain.GameState, error) {
	var (
		gs        domain.GameState
		equipment []byte
	)
	if err := row.Scan(&gs.Timestamp, &gs.TweetsAnswered, &gs.HeartsRemaining, &equipment, &gs.Accuracy); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorage, ErrMsgScanFailed, err)
	}
	gs.Equipment = []string{}
	if err := json.Unmarshal(equipment, &gs.Equipment); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorage, ErrMsgScanFailed, err)
	}
	gs.Timestamp = gs.Timestamp.UTC()
	return &gs, nil
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStorage, ErrMsgQueryFailed, err)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
