package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/WolfJourney_Go/internal/domain"
)

// TweetLoader reads the tweet collection
type TweetLoader interface {
	All(ctx context.Context) ([]domain.Tweet, error)
}

// CheckTweets warms the tweet cache and reports how many full batches the
// collection holds. An unreadable collection is logged, not fatal; the file
// may be dropped in after startup.
func CheckTweets(ctx context.Context, source TweetLoader) {
	list, err := source.All(ctx)
	if err != nil {
		slog.Warn(LogMsgTweetsUnavailable, "error", err)
		return
	}

	slog.Info(LogMsgTweetsLoaded, "tweets", len(list), "batches", len(list)/domain.BatchSize)
	if rem := len(list) % domain.BatchSize; rem != 0 {
		slog.Warn(LogMsgTweetsPartialBatch, "leftover", rem)
	}
}
