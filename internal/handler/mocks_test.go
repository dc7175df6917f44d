package handler

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/WolfJourney_Go/internal/adventure"
	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/remotesync"
	"github.com/osse101/WolfJourney_Go/internal/session"
)

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockTweetLister struct {
	mock.Mock
}

func (m *MockTweetLister) All(ctx context.Context) ([]domain.Tweet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tweet), args.Error(1)
}

type MockEvaluationService struct {
	mock.Mock
}

func (m *MockEvaluationService) EvaluateBatch(ctx context.Context, batchNumber int, answers []string) (*domain.Evaluation, error) {
	args := m.Called(ctx, batchNumber, answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evaluation), args.Error(1)
}

func (m *MockEvaluationService) SubmitBatch(ctx context.Context, batch *domain.AnswerBatch, health *int) error {
	return m.Called(ctx, batch, health).Error(0)
}

func (m *MockEvaluationService) ListEvaluations(ctx context.Context) ([]domain.Evaluation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Evaluation), args.Error(1)
}

func (m *MockEvaluationService) LatestEvaluation(ctx context.Context) (*domain.Evaluation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evaluation), args.Error(1)
}

func (m *MockEvaluationService) ListSubmissions(ctx context.Context) ([]domain.AnswerBatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnswerBatch), args.Error(1)
}

type MockGameStateService struct {
	mock.Mock
}

func (m *MockGameStateService) Record(ctx context.Context, health *int) (*domain.GameState, error) {
	args := m.Called(ctx, health)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameState), args.Error(1)
}

func (m *MockGameStateService) List(ctx context.Context) ([]domain.GameState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GameState), args.Error(1)
}

func (m *MockGameStateService) Latest(ctx context.Context) (*domain.GameState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameState), args.Error(1)
}

type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) SyncLatest(ctx context.Context) (*remotesync.Result, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remotesync.Result), args.Error(1)
}

func (m *MockSyncService) SyncSnapshot(ctx context.Context, gs *domain.GameState) (*remotesync.Result, error) {
	args := m.Called(ctx, gs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remotesync.Result), args.Error(1)
}

func (m *MockSyncService) SyncAll(ctx context.Context) (*remotesync.SyncSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remotesync.SyncSummary), args.Error(1)
}

func (m *MockSyncService) Store(ctx context.Context, data json.RawMessage) (*remotesync.Result, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*remotesync.Result), args.Error(1)
}

func (m *MockSyncService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

type MockSession struct {
	mock.Mock
}

func (m *MockSession) View() session.View {
	return m.Called().Get(0).(session.View)
}

func (m *MockSession) Health() int {
	return m.Called().Int(0)
}

func (m *MockSession) SetStage(ctx context.Context, stage string) (session.View, error) {
	args := m.Called(ctx, stage)
	return args.Get(0).(session.View), args.Error(1)
}

func (m *MockSession) SetLevel(ctx context.Context, level int) (session.View, error) {
	args := m.Called(ctx, level)
	return args.Get(0).(session.View), args.Error(1)
}

func (m *MockSession) SetHealth(ctx context.Context, health int) session.View {
	return m.Called(ctx, health).Get(0).(session.View)
}

func (m *MockSession) UpdateHealth(ctx context.Context, delta int) session.View {
	return m.Called(ctx, delta).Get(0).(session.View)
}

func (m *MockSession) AddSentimentResults(ctx context.Context, batch domain.AnswerBatch) session.View {
	return m.Called(ctx, batch).Get(0).(session.View)
}

func (m *MockSession) Reset(ctx context.Context) session.View {
	return m.Called(ctx).Get(0).(session.View)
}

type MockStageGenerator struct {
	mock.Mock
}

func (m *MockStageGenerator) Generate(ctx context.Context, hearts int) (*adventure.Stage, error) {
	args := m.Called(ctx, hearts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*adventure.Stage), args.Error(1)
}
