package handler

import (
	"context"
	"net/http"

	"github.com/osse101/WolfJourney_Go/internal/logger"
	"github.com/osse101/WolfJourney_Go/internal/session"
)

// SessionStore is the player session the session endpoints drive
type SessionStore interface {
	View() session.View
	SetStage(ctx context.Context, stage string) (session.View, error)
	SetLevel(ctx context.Context, level int) (session.View, error)
	SetHealth(ctx context.Context, health int) session.View
	UpdateHealth(ctx context.Context, delta int) session.View
	Reset(ctx context.Context) session.View
}

// UpdateHealthRequest either sets health or shifts it by delta
type UpdateHealthRequest struct {
	Delta  *int `json:"delta,omitempty" validate:"required_without=Health"`
	Health *int `json:"health,omitempty" validate:"required_without=Delta"`
}

// SetStageRequest switches stage and optionally level
type SetStageRequest struct {
	Stage string `json:"stage" validate:"required,stage"`
	Level *int   `json:"level,omitempty" validate:"omitempty,min=1"`
}

// HandleGetSession returns the current session
// @Summary Get session
// @Tags session
// @Produce json
// @Success 200 {object} session.View
// @Router /api/session [get]
func HandleGetSession(sess SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, sess.View())
	}
}

// HandleUpdateHealth applies a health change. health wins when both are sent.
// @Summary Update health
// @Description Sets health or adds delta; the result is clamped to [0, maxHealth]
// @Tags session
// @Accept json
// @Produce json
// @Param request body UpdateHealthRequest true "Health change"
// @Success 200 {object} session.View
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/session/health [post]
func HandleUpdateHealth(sess SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateHealthRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update health"); err != nil {
			return
		}

		var view session.View
		if req.Health != nil {
			view = sess.SetHealth(r.Context(), *req.Health)
		} else {
			view = sess.UpdateHealth(r.Context(), *req.Delta)
		}
		logger.FromContext(r.Context()).Info("Session health updated", "health", view.Health)
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleSetStage switches the session stage
// @Summary Set stage
// @Tags session
// @Accept json
// @Produce json
// @Param request body SetStageRequest true "Stage and optional level"
// @Success 200 {object} session.View
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/session/stage [post]
func HandleSetStage(sess SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetStageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set stage"); err != nil {
			return
		}

		if req.Level != nil {
			if _, err := sess.SetLevel(r.Context(), *req.Level); err != nil {
				respondServiceError(w, r, "Set level", err)
				return
			}
		}
		view, err := sess.SetStage(r.Context(), req.Stage)
		if err != nil {
			respondServiceError(w, r, "Set stage", err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleResetSession returns the session to its initial state
// @Summary Reset session
// @Tags session
// @Produce json
// @Success 200 {object} session.View
// @Router /api/session/reset [post]
func HandleResetSession(sess SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, sess.Reset(r.Context()))
	}
}
