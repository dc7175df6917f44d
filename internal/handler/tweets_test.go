package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/WolfJourney_Go/internal/domain"
)

func TestHandleGetTweets(t *testing.T) {
	t.Run("Returns Collection", func(t *testing.T) {
		source := &MockTweetLister{}
		source.On("All", mock.Anything).Return([]domain.Tweet{
			{ID: "1", Content: "Loving the new update!"},
		}, nil)

		w := httptest.NewRecorder()
		HandleGetTweets(source).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tweets", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"content":"Loving the new update!"`)
	})

	t.Run("Unreadable Collection", func(t *testing.T) {
		source := &MockTweetLister{}
		source.On("All", mock.Anything).Return(nil, fmt.Errorf("%w: open tweets.json", domain.ErrStorage))

		w := httptest.NewRecorder()
		HandleGetTweets(source).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tweets", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgLoadTweetsFailed)
		assert.NotContains(t, w.Body.String(), "tweets.json")
	})
}
