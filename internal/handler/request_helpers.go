package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/osse101/WolfJourney_Go/internal/logger"
)

// maxRequestBodyBytes bounds every JSON request body
const maxRequestBodyBytes = 1 << 20

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the response has already been written.
//
// Example usage:
//
//	var req EvaluateRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Evaluate"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	return decodeAndValidate(r, w, req, actionName, false)
}

// DecodeOptionalRequest is DecodeAndValidateRequest for endpoints whose body
// may be empty
func DecodeOptionalRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	return decodeAndValidate(r, w, req, actionName, true)
}

func decodeAndValidate(r *http.Request, w http.ResponseWriter, req interface{}, actionName string, allowEmpty bool) error {
	log := logger.FromContext(r.Context())

	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case allowEmpty && errors.Is(err, io.EOF):
		case errors.As(err, &tooLarge):
			log.Warn(fmt.Sprintf("Oversized %s request", actionName), "limit", tooLarge.Limit)
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
			return err
		default:
			log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return err
		}
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(fmt.Sprintf("Invalid %s request", actionName), "error", err)
		fields := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Success: false,
			Error:   validationSummary(fields),
			Fields:  fields,
		})
		return err
	}

	return nil
}

// validationSummary lifts a lone field message into the top-level error
func validationSummary(fields map[string]string) string {
	if len(fields) != 1 {
		return ErrMsgInvalidRequestSummary
	}
	for _, msg := range fields {
		return msg
	}
	return ErrMsgInvalidRequestSummary
}
