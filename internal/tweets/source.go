package tweets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/logger"
	"github.com/osse101/WolfJourney_Go/internal/validation"
)

// Collection is the on-disk tweets document.
type Collection struct {
	Tweets []domain.Tweet `json:"tweets"`
}

type cachedCollection struct {
	Version  string
	Tweets   []domain.Tweet
	CachedAt time.Time
}

// Source serves the static tweet collection. The file is validated against
// the bundled schema and cached for a TTL so edits show up without a restart.
type Source struct {
	path      string
	validator validation.SchemaValidator
	cache     *expirable.LRU[string, *cachedCollection]
}

// NewSource creates a tweet source reading path. A zero ttl caches forever.
func NewSource(path string, ttl time.Duration, validator validation.SchemaValidator) *Source {
	return &Source{
		path:      path,
		validator: validator,
		cache:     expirable.NewLRU[string, *cachedCollection](1, nil, ttl),
	}
}

// All returns the full ordered collection.
func (s *Source) All(ctx context.Context) ([]domain.Tweet, error) {
	if entry, ok := s.cache.Get(cacheKey); ok && entry.Version == CacheSchemaVersion {
		return entry.Tweets, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorage, ErrMsgReadCollection, err)
	}

	if s.validator != nil {
		if err := s.validator.ValidateBytes(data, validation.SchemaTweets); err != nil {
			logger.FromContext(ctx).Warn(LogMsgCollectionInvalid, "path", s.path, "error", err)
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorage, ErrMsgDecodeCollection, err)
		}
	}

	var doc Collection
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorage, ErrMsgDecodeCollection, err)
	}

	s.cache.Add(cacheKey, &cachedCollection{
		Version:  CacheSchemaVersion,
		Tweets:   doc.Tweets,
		CachedAt: time.Now(),
	})
	logger.FromContext(ctx).Debug(LogMsgCollectionLoaded, "path", s.path, "count", len(doc.Tweets))

	return doc.Tweets, nil
}

// Window returns up to count tweets starting at start. The result is shorter
// than count when the collection runs out.
func (s *Source) Window(ctx context.Context, start, count int) ([]domain.Tweet, error) {
	if start < 0 || count < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidWindow)
	}

	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	if start >= len(all) {
		return []domain.Tweet{}, nil
	}
	end := start + count
	if end > len(all) {
		end = len(all)
	}

	window := make([]domain.Tweet, end-start)
	copy(window, all[start:end])
	return window, nil
}

// Invalidate drops the cached collection.
func (s *Source) Invalidate() {
	s.cache.Purge()
}
