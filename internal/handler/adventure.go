package handler

import (
	"context"
	"net/http"

	"github.com/osse101/WolfJourney_Go/internal/adventure"
	"github.com/osse101/WolfJourney_Go/internal/logger"
)

// StageGenerator builds the adventure stage for a heart count
type StageGenerator interface {
	Generate(ctx context.Context, hearts int) (*adventure.Stage, error)
}

// HealthReader reports the player's current hearts
type HealthReader interface {
	Health() int
}

// AdventureFallbackResponse is served when generation fails
type AdventureFallbackResponse struct {
	Error    string `json:"error"`
	Fallback string `json:"fallback"`
}

// HandleAdventureStage generates the opening adventure stage
// @Summary Generate adventure stage
// @Description Asks the model for the opening narrative; answers with a fixed fallback when it fails
// @Tags adventure
// @Produce json
// @Success 200 {object} adventure.Stage
// @Router /api/adventure/stage [post]
func HandleAdventureStage(gen StageGenerator, sess HealthReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stage, err := gen.Generate(r.Context(), sess.Health())
		if err != nil {
			logger.FromContext(r.Context()).Error(adventure.LogMsgGenerateFailed, "error", err)
			respondJSON(w, http.StatusOK, AdventureFallbackResponse{
				Error:    adventure.ErrMsgGenerateFailed,
				Fallback: adventure.FallbackNarrative,
			})
			return
		}
		respondJSON(w, http.StatusOK, stage)
	}
}
