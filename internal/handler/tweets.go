package handler

import (
	"context"
	"net/http"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/logger"
)

// TweetLister returns the full tweet collection
type TweetLister interface {
	All(ctx context.Context) ([]domain.Tweet, error)
}

// TweetsResponse wraps the tweet collection
type TweetsResponse struct {
	Tweets []domain.Tweet `json:"tweets"`
}

// HandleGetTweets returns every tweet the game can show
// @Summary List tweets
// @Tags tweets
// @Produce json
// @Success 200 {object} TweetsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/tweets [get]
func HandleGetTweets(source TweetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := source.All(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to load tweets", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgLoadTweetsFailed)
			return
		}
		if list == nil {
			list = []domain.Tweet{}
		}
		respondJSON(w, http.StatusOK, TweetsResponse{Tweets: list})
	}
}
