package repository

import (
	"context"

	"github.com/osse101/WolfJourney_Go/internal/domain"
)

// Evaluations stores one evaluation per batch number, last write wins
type Evaluations interface {
	// UpsertEvaluation replaces any evaluation for the same batch and stamps
	// the stored copy with a fresh timestamp. The latest upsert becomes the
	// latest evaluation.
	UpsertEvaluation(ctx context.Context, ev *domain.Evaluation) error
	// ListEvaluations returns evaluations in upsert order.
	ListEvaluations(ctx context.Context) ([]domain.Evaluation, error)
	// LatestEvaluation returns domain.ErrNoEvaluation when nothing was stored.
	LatestEvaluation(ctx context.Context) (*domain.Evaluation, error)
}

// Submissions stores the raw answers of each batch, last write wins
type Submissions interface {
	UpsertSubmission(ctx context.Context, batch *domain.AnswerBatch) error
	ListSubmissions(ctx context.Context) ([]domain.AnswerBatch, error)
}
