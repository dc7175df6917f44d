package evaluation

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

// GameStateRecorder records a snapshot from the latest evaluation
type GameStateRecorder interface {
	Record(ctx context.Context, health *int) (*domain.GameState, error)
}

// Service defines the evaluation and submission operations
type Service interface {
	// EvaluateBatch scores a batch and stores the result.
	EvaluateBatch(ctx context.Context, batchNumber int, answers []string) (*domain.Evaluation, error)
	// SubmitBatch stores raw answers. Submitting the first batch also runs
	// evaluation and records a game state; failures there are logged only.
	SubmitBatch(ctx context.Context, batch *domain.AnswerBatch, health *int) error
	ListEvaluations(ctx context.Context) ([]domain.Evaluation, error)
	LatestEvaluation(ctx context.Context) (*domain.Evaluation, error)
	ListSubmissions(ctx context.Context) ([]domain.AnswerBatch, error)
}

type service struct {
	evaluator   *Evaluator
	evaluations repository.Evaluations
	submissions repository.Submissions
	recorder    GameStateRecorder
	bus         event.Bus
	now         func() time.Time
}

// NewService creates a new evaluation service. recorder may be nil, in which
// case submissions never chain into the game state stage.
func NewService(evaluator *Evaluator, evaluations repository.Evaluations, submissions repository.Submissions, recorder GameStateRecorder, bus event.Bus) Service {
	return &service{
		evaluator:   evaluator,
		evaluations: evaluations,
		submissions: submissions,
		recorder:    recorder,
		bus:         bus,
		now:         time.Now,
	}
}

func (s *service) EvaluateBatch(ctx context.Context, batchNumber int, answers []string) (*domain.Evaluation, error) {
	log := logger.FromContext(ctx)

	if len(answers) != domain.BatchSize {
		return nil, domain.ErrInvalidAnswerCount
	}

	s.publish(ctx, event.NewBatchEvaluatingEvent(ctx, batchNumber))

	ev, err := s.evaluator.Evaluate(ctx, batchNumber, answers)
	if err != nil {
		if errors.Is(err, domain.ErrBatchNotFound) {
			log.Warn(LogMsgBatchWindowIncomplete, "batch", batchNumber)
		} else {
			log.Error(LogMsgEvaluationFailed, "batch", batchNumber, "error", err)
		}
		return nil, err
	}
	log.Info(LogMsgBatchEvaluated, "batch", batchNumber, "total_correct", ev.TotalCorrect, "passed", ev.Passed)

	if err := s.evaluations.UpsertEvaluation(ctx, ev); err != nil {
		log.Error(LogMsgEvaluationFailed, "batch", batchNumber, "error", err)
		return nil, fmt.Errorf(ErrMsgSaveEvaluation, err)
	}
	log.Debug(LogMsgEvaluationSaved, "batch", batchNumber)

	s.publish(ctx, event.NewBatchEvaluatedEvent(ctx, ev.BatchNumber, ev.TotalCorrect, ev.Passed))
	return ev, nil
}

func (s *service) SubmitBatch(ctx context.Context, batch *domain.AnswerBatch, health *int) error {
	log := logger.FromContext(ctx)

	if !domain.ValidBatchNumber(batch.BatchNumber) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgBatchOutOfRange)
	}

	batch.Timestamp = s.now().UTC()
	if err := s.submissions.UpsertSubmission(ctx, batch); err != nil {
		return fmt.Errorf(ErrMsgSaveSubmission, err)
	}
	log.Info(LogMsgSubmissionSaved, "batch", batch.BatchNumber, "answers", len(batch.Answers))
	s.publish(ctx, event.NewBatchSubmittedEvent(ctx, batch.BatchNumber))

	if batch.BatchNumber != ChainedBatchNumber {
		return nil
	}

	if _, err := s.EvaluateBatch(ctx, batch.BatchNumber, batch.Answers); err != nil {
		log.Warn(LogMsgChainedStageFailed, "stage", "evaluate", "batch", batch.BatchNumber, "error", err)
		return nil
	}
	if s.recorder == nil {
		return nil
	}
	if _, err := s.recorder.Record(ctx, health); err != nil {
		log.Warn(LogMsgChainedStageFailed, "stage", "game-state", "batch", batch.BatchNumber, "error", err)
	}
	return nil
}

func (s *service) ListEvaluations(ctx context.Context) ([]domain.Evaluation, error) {
	return s.evaluations.ListEvaluations(ctx)
}

func (s *service) LatestEvaluation(ctx context.Context) (*domain.Evaluation, error) {
	return s.evaluations.LatestEvaluation(ctx)
}

func (s *service) ListSubmissions(ctx context.Context) ([]domain.AnswerBatch, error) {
	return s.submissions.ListSubmissions(ctx)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", evt.Type, "error", err)
	}
}
