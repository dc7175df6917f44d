package evaluation

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WolfJourney_Go/internal/domain"
)

func batchTweets(contents ...string) []domain.Tweet {
	out := make([]domain.Tweet, len(contents))
	for i, c := range contents {
		out[i] = domain.Tweet{ID: domain.TweetID("1"), Content: c}
	}
	return out
}

func TestEvaluator_RejectsWrongAnswerCountBeforeJudging(t *testing.T) {
	for _, answers := range [][]string{
		{"Bullish", "Bearish", "Bullish"},
		{"Bullish", "Bearish", "Bullish", "Bearish", "Bullish"},
		nil,
	} {
		tweets := new(MockTweetSource)
		j := new(MockJudge)

		_, err := NewEvaluator(tweets, j).Evaluate(context.Background(), 0, answers)

		assert.ErrorIs(t, err, domain.ErrInvalidAnswerCount)
		tweets.AssertNotCalled(t, "Window", mock.Anything, mock.Anything, mock.Anything)
		j.AssertNotCalled(t, "Judge", mock.Anything, mock.Anything)
	}
}

func TestEvaluator_ShortWindowIsBatchNotFound(t *testing.T) {
	tweets := new(MockTweetSource)
	j := new(MockJudge)
	// six tweets total: batch 1 only has two left
	tweets.On("Window", mock.Anything, 4, 4).Return(batchTweets("t5", "t6"), nil)

	_, err := NewEvaluator(tweets, j).Evaluate(context.Background(), 1, []string{"Bullish", "Bullish", "Bullish", "Bullish"})

	assert.ErrorIs(t, err, domain.ErrBatchNotFound)
	j.AssertNotCalled(t, "Judge", mock.Anything, mock.Anything)
}

func TestEvaluator_BatchOutOfRange(t *testing.T) {
	for _, batch := range []int{-1, domain.MaxBatchNumber + 1, 1 << 62, math.MaxInt} {
		tweets := new(MockTweetSource)
		j := new(MockJudge)

		_, err := NewEvaluator(tweets, j).Evaluate(context.Background(), batch, []string{"a", "b", "c", "d"})

		assert.ErrorIs(t, err, domain.ErrBatchNotFound, "batch %d", batch)
		tweets.AssertNotCalled(t, "Window", mock.Anything, mock.Anything, mock.Anything)
		j.AssertNotCalled(t, "Judge", mock.Anything, mock.Anything)
	}
}

func TestEvaluator_ScoresByPosition(t *testing.T) {
	tests := []struct {
		name       string
		verdicts   []string
		answers    []string
		wantTotal  int
		wantPassed bool
	}{
		{
			name:       "all match",
			verdicts:   []string{"Bullish", "Bearish", "Bullish", "Bearish"},
			answers:    []string{"Bullish", "Bearish", "Bullish", "Bearish"},
			wantTotal:  4,
			wantPassed: true,
		},
		{
			name:       "exactly at threshold",
			verdicts:   []string{"Bullish", "Bullish", "Bullish", "Bullish"},
			answers:    []string{"Bullish", "Bullish", "Bullish", "Bearish"},
			wantTotal:  3,
			wantPassed: true,
		},
		{
			name:       "two correct fails",
			verdicts:   []string{"Bullish", "Bullish", "Bearish", "Bearish"},
			answers:    []string{"Bullish", "Bearish", "Bearish", "Bullish"},
			wantTotal:  2,
			wantPassed: false,
		},
		{
			name:       "timeouts never match",
			verdicts:   []string{"Bullish", "Bearish", "Bullish", "Bearish"},
			answers:    []string{"timeout", "timeout", "timeout", "timeout"},
			wantTotal:  0,
			wantPassed: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tweets := new(MockTweetSource)
			tweets.On("Window", mock.Anything, 8, 4).Return(batchTweets("t1", "t2", "t3", "t4"), nil)
			j := new(MockJudge)
			for i, c := range []string{"t1", "t2", "t3", "t4"} {
				// earlier tweets answer last so completion order differs from input order
				delay := time.Duration(4-i) * 5 * time.Millisecond
				j.On("Judge", mock.Anything, c).After(delay).Return(tt.verdicts[i], nil)
			}

			ev, err := NewEvaluator(tweets, j).Evaluate(context.Background(), 2, tt.answers)

			require.NoError(t, err)
			assert.Equal(t, 2, ev.BatchNumber)
			assert.Equal(t, tt.wantTotal, ev.TotalCorrect)
			assert.Equal(t, tt.wantPassed, ev.Passed)
			require.Len(t, ev.Results, 4)
			for i, r := range ev.Results {
				assert.Equal(t, []string{"t1", "t2", "t3", "t4"}[i], r.Tweet)
				assert.Equal(t, tt.answers[i], r.UserAnswer)
				assert.Equal(t, tt.verdicts[i], r.LLMAnswer)
			}
			j.AssertNumberOfCalls(t, "Judge", 4)
		})
	}
}

func TestEvaluator_JudgeFailureFailsBatch(t *testing.T) {
	tweets := new(MockTweetSource)
	tweets.On("Window", mock.Anything, 0, 4).Return(batchTweets("t1", "t2", "t3", "t4"), nil)
	j := new(MockJudge)
	upstream := errors.New("503 from llm")
	j.On("Judge", mock.Anything, "t3").Return("", upstream)
	j.On("Judge", mock.Anything, mock.Anything).Return("Bullish", nil)

	ev, err := NewEvaluator(tweets, j).Evaluate(context.Background(), 0, []string{"a", "b", "c", "d"})

	assert.Nil(t, ev)
	assert.ErrorIs(t, err, upstream)
}

func TestEvaluator_TweetSourceFailure(t *testing.T) {
	tweets := new(MockTweetSource)
	tweets.On("Window", mock.Anything, 0, 4).Return(nil, domain.ErrStorage)

	_, err := NewEvaluator(tweets, new(MockJudge)).Evaluate(context.Background(), 0, []string{"a", "b", "c", "d"})

	assert.ErrorIs(t, err, domain.ErrStorage)
}
