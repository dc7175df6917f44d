package evaluation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/judge"
)

// TweetSource provides ordered windows of the tweet collection
type TweetSource interface {
	Window(ctx context.Context, start, count int) ([]domain.Tweet, error)
}

// Evaluator scores a batch of answers against the judge. It does not persist.
type Evaluator struct {
	tweets TweetSource
	judge  judge.Judge
}

// NewEvaluator creates an evaluator
func NewEvaluator(tweets TweetSource, j judge.Judge) *Evaluator {
	return &Evaluator{tweets: tweets, judge: j}
}

// Evaluate judges the four tweets of batchNumber concurrently and compares
// each verdict with the answer at the same position.
func (e *Evaluator) Evaluate(ctx context.Context, batchNumber int, answers []string) (*domain.Evaluation, error) {
	if len(answers) != domain.BatchSize {
		return nil, domain.ErrInvalidAnswerCount
	}
	if !domain.ValidBatchNumber(batchNumber) {
		return nil, fmt.Errorf("%w: %s", domain.ErrBatchNotFound, ErrMsgBatchOutOfRange)
	}

	window, err := e.tweets.Window(ctx, batchNumber*domain.BatchSize, domain.BatchSize)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadTweets, err)
	}
	if len(window) != domain.BatchSize {
		return nil, fmt.Errorf("%w: batch %d has %d tweets", domain.ErrBatchNotFound, batchNumber, len(window))
	}

	results := make([]domain.TweetResult, domain.BatchSize)
	g, gctx := errgroup.WithContext(ctx)
	for i, tweet := range window {
		g.Go(func() error {
			verdict, err := e.judge.Judge(gctx, tweet.Content)
			if err != nil {
				return fmt.Errorf(ErrMsgJudgeTweetFailed, i, err)
			}
			results[i] = domain.TweetResult{
				Tweet:      tweet.Content,
				UserAnswer: answers[i],
				LLMAnswer:  verdict,
				Correct:    domain.ScoreAnswer(answers[i], verdict),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewEvaluation(batchNumber, results), nil
}
