package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WolfJourney_Go/internal/adventure"
	"github.com/osse101/WolfJourney_Go/internal/domain"
)

func TestHandleAdventureStage(t *testing.T) {
	t.Run("Generated Stage Uses Session Hearts", func(t *testing.T) {
		gen := &MockStageGenerator{}
		sess := &MockSession{}
		sess.On("Health").Return(2)
		gen.On("Generate", mock.Anything, 2).Return(adventure.NewStage(2, "The wolf wakes."), nil)

		w := httptest.NewRecorder()
		HandleAdventureStage(gen, sess).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/adventure/stage", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var stage adventure.Stage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stage))
		assert.Equal(t, adventure.StageID, stage.ID)
		assert.Equal(t, "The wolf wakes.", stage.Prompt)
		assert.Equal(t, 2, stage.Assets.Hearts)
		gen.AssertExpectations(t)
	})

	t.Run("Model Failure Serves Fallback", func(t *testing.T) {
		gen := &MockStageGenerator{}
		sess := &MockSession{}
		sess.On("Health").Return(3)
		gen.On("Generate", mock.Anything, 3).Return(nil, fmt.Errorf("%w: timeout", domain.ErrUpstream))

		w := httptest.NewRecorder()
		HandleAdventureStage(gen, sess).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/adventure/stage", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp AdventureFallbackResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, adventure.ErrMsgGenerateFailed, resp.Error)
		assert.Equal(t, adventure.FallbackNarrative, resp.Fallback)
	})
}
