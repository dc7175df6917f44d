package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/WolfJourney_Go/internal/config"
	"github.com/osse101/WolfJourney_Go/internal/publisher"
)

// NewPublisher builds the configured blob publisher
func NewPublisher(ctx context.Context, cfg *config.Config, client *http.Client) (publisher.Publisher, error) {
	switch cfg.PublisherBackend {
	case config.PublisherBackendWalrus:
		w := publisher.NewWalrus(cfg.WalrusPublisher, cfg.WalrusEpochs, client)
		slog.Info(LogMsgPublisherInitialized, "backend", cfg.PublisherBackend, "url", w.BlobURL())
		return w, nil

	case config.PublisherBackendS3:
		p, err := publisher.NewS3(ctx, publisher.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			Prefix:          cfg.S3Prefix,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreatePublisher, err)
		}
		slog.Info(LogMsgPublisherInitialized, "backend", cfg.PublisherBackend, "bucket", cfg.S3Bucket, "prefix", cfg.S3Prefix)
		return p, nil
	}

	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownPublisherBackend, cfg.PublisherBackend)
}
