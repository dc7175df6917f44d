package handler

import (
	"net/http"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/gamestate"
)

// RecordGameStateRequest is the optional body of POST /api/game-state
type RecordGameStateRequest struct {
	Health *int `json:"health,omitempty" validate:"omitempty,min=0,max=3"`
}

// RecordGameStateResponse carries the snapshot just appended
type RecordGameStateResponse struct {
	Success   bool              `json:"success"`
	GameState *domain.GameState `json:"gameState"`
}

// GameStatesResponse wraps every recorded snapshot
type GameStatesResponse struct {
	GameStates []domain.GameState `json:"gameStates"`
}

// HandleRecordGameState derives a snapshot from the latest evaluation
// @Summary Record a game state
// @Description Appends a snapshot built from the latest evaluation; health defaults to full hearts
// @Tags game-state
// @Accept json
// @Produce json
// @Param request body RecordGameStateRequest false "Player health"
// @Success 200 {object} RecordGameStateResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/game-state [post]
func HandleRecordGameState(svc gamestate.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecordGameStateRequest
		if err := DecodeOptionalRequest(r, w, &req, "Record game state"); err != nil {
			return
		}

		gs, err := svc.Record(r.Context(), req.Health)
		if err != nil {
			respondServiceError(w, r, "Record game state", err)
			return
		}

		respondJSON(w, http.StatusOK, RecordGameStateResponse{Success: true, GameState: gs})
	}
}

// HandleListGameStates returns every snapshot oldest first
// @Summary List game states
// @Tags game-state
// @Produce json
// @Success 200 {object} GameStatesResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/game-state [get]
func HandleListGameStates(svc gamestate.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		states, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, "List game states", err)
			return
		}
		if states == nil {
			states = []domain.GameState{}
		}
		respondJSON(w, http.StatusOK, GameStatesResponse{GameStates: states})
	}
}
