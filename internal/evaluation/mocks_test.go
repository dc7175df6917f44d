package evaluation

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/WolfJourney_Go/internal/domain"
)

type MockTweetSource struct {
	mock.Mock
}

func (m *MockTweetSource) Window(ctx context.Context, start, count int) ([]domain.Tweet, error) {
	args := m.Called(ctx, start, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tweet), args.Error(1)
}

type MockJudge struct {
	mock.Mock
}

func (m *MockJudge) Judge(ctx context.Context, content string) (string, error) {
	args := m.Called(ctx, content)
	return args.String(0), args.Error(1)
}

// MockRepository implements repository.Evaluations and repository.Submissions
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

func (m *MockRepository) UpsertSubmission(ctx context.Context, batch *domain.AnswerBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockRepository) ListSubmissions(ctx context.Context) ([]domain.AnswerBatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnswerBatch), args.Error(1)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, health *int) (*domain.GameState, error) {
	args := m.Called(ctx, health)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameState), args.Error(1)
}
