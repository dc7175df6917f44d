package handler

import (
	"context"
	"net/http"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/evaluation"
	"github.com/osse101/WolfJourney_Go/internal/session"
)

// SentimentRecorder is the part of the session the submit endpoint updates
type SentimentRecorder interface {
	AddSentimentResults(ctx context.Context, batch domain.AnswerBatch) session.View
}

// EvaluateRequest is the body of POST /api/evaluate
type EvaluateRequest struct {
	BatchNumber int      `json:"batchNumber" validate:"gte=0,lte=10000"`
	Answers     []string `json:"answers" validate:"required,len=4,dive,required,max=32"`
}

// EvaluateResponse is a scored batch
type EvaluateResponse struct {
	Success      bool                 `json:"success"`
	BatchNumber  int                  `json:"batchNumber"`
	Results      []domain.TweetResult `json:"results"`
	TotalCorrect int                  `json:"totalCorrect"`
	Passed       bool                 `json:"passed"`
}

// EvaluationsResponse wraps every stored evaluation
type EvaluationsResponse struct {
	Evaluations []domain.Evaluation `json:"evaluations"`
}

// SaveResultsRequest is the body of POST /api/save-results
type SaveResultsRequest struct {
	BatchNumber int      `json:"batchNumber" validate:"gte=0,lte=10000"`
	StartIndex  int      `json:"startIndex" validate:"gte=0"`
	EndIndex    int      `json:"endIndex" validate:"gtefield=StartIndex"`
	Answers     []string `json:"answers" validate:"required,dive,required,max=32"`
	Health      *int     `json:"health,omitempty" validate:"omitempty,min=0,max=3"`
}

// HandleEvaluate judges a batch of four answers
// @Summary Evaluate a batch
// @Description Judges the tweets of a batch and scores the player's answers
// @Tags evaluation
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "Batch answers"
// @Success 200 {object} EvaluateResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/evaluate [post]
func HandleEvaluate(svc evaluation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EvaluateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Evaluate"); err != nil {
			return
		}

		ev, err := svc.EvaluateBatch(r.Context(), req.BatchNumber, req.Answers)
		if err != nil {
			respondServiceError(w, r, "Evaluate", err)
			return
		}

		respondJSON(w, http.StatusOK, EvaluateResponse{
			Success:      true,
			BatchNumber:  ev.BatchNumber,
			Results:      ev.Results,
			TotalCorrect: ev.TotalCorrect,
			Passed:       ev.Passed,
		})
	}
}

// HandleListEvaluations returns every stored evaluation in insertion order
// @Summary List evaluations
// @Tags evaluation
// @Produce json
// @Success 200 {object} EvaluationsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/evaluation [get]
func HandleListEvaluations(svc evaluation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		evs, err := svc.ListEvaluations(r.Context())
		if err != nil {
			respondServiceError(w, r, "List evaluations", err)
			return
		}
		if evs == nil {
			evs = []domain.Evaluation{}
		}
		respondJSON(w, http.StatusOK, EvaluationsResponse{Evaluations: evs})
	}
}

// HandleSaveResults stores a batch of raw answers. The first batch also runs
// evaluation and records a game state before responding.
// @Summary Save batch answers
// @Tags evaluation
// @Accept json
// @Produce json
// @Param request body SaveResultsRequest true "Submitted answers"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/save-results [post]
func HandleSaveResults(svc evaluation.Service, sess SentimentRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveResultsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save results"); err != nil {
			return
		}

		batch := &domain.AnswerBatch{
			BatchNumber: req.BatchNumber,
			StartIndex:  req.StartIndex,
			EndIndex:    req.EndIndex,
			Answers:     req.Answers,
		}
		if err := svc.SubmitBatch(r.Context(), batch, req.Health); err != nil {
			respondServiceError(w, r, "Save results", err)
			return
		}
		sess.AddSentimentResults(r.Context(), *batch)

		respondJSON(w, http.StatusOK, StatusResponse{Success: true})
	}
}
