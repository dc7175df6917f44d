package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/logger"
)

// tweet batches are small; a full catalogue response should not pin its buffer
const maxPooledBuffer = 64 << 10

var encodeBuffers = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

func releaseBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	encodeBuffers.Put(buf)
}

// StatusResponse is the bare success flag most write endpoints return
type StatusResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ValidationErrorResponse carries per-field validation failures
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer releaseBuffer(buf)

	// encode first so a failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondRawJSON writes an already encoded JSON object
func respondRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Success: false, Error: message})
}

// respondServiceError logs err and answers with its mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err)
	} else {
		log.Warn(op+" rejected", "error", err)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP responses.
// Not-found outcomes are reported as 200 with success=false, the contract the
// browser client was written against.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidAnswerCount):
		return http.StatusBadRequest, domain.ErrMsgInvalidAnswerCount
	case errors.Is(err, domain.ErrInvalidStage):
		return http.StatusBadRequest, ErrMsgInvalidStageHTTP
	case errors.Is(err, domain.ErrInvalidHealth), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrBatchNotFound):
		return http.StatusOK, domain.ErrMsgBatchNotFound
	case errors.Is(err, domain.ErrNoEvaluation):
		return http.StatusOK, domain.ErrMsgNoEvaluation
	case errors.Is(err, domain.ErrNoEvaluationResults):
		return http.StatusOK, domain.ErrMsgNoEvaluationResults
	case errors.Is(err, domain.ErrNoGameState):
		return http.StatusOK, ErrMsgNoGameStateFound
	case errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrUnparsableVerdict):
		return http.StatusInternalServerError, ErrMsgUpstreamFailed
	case errors.Is(err, domain.ErrStorage):
		return http.StatusInternalServerError, ErrMsgStorageFailed
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
