package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tidwall/sjson"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/logger"
	"github.com/osse101/WolfJourney_Go/internal/remotesync"
)

// StorePayloadRequest is the body of POST /api/walrus
type StorePayloadRequest struct {
	Data json.RawMessage `json:"data" validate:"required" swaggertype:"object"`
}

// SyncAllResponse reports a bulk sync
type SyncAllResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Synced  int    `json:"synced"`
	Total   int    `json:"total"`
}

// TransactionsResponse wraps the local receipt log
type TransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
}

// HandleSyncLatest publishes the latest game state
// @Summary Sync latest game state
// @Description Publishes the newest snapshot and returns the receipt fields
// @Tags walrus
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /api/walrus/latest [post]
func HandleSyncLatest(svc remotesync.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.SyncLatest(r.Context())
		if err != nil {
			respondServiceError(w, r, "Sync latest", err)
			return
		}
		respondReceipt(w, r, res.Receipt, remotesync.MsgLatestSynced)
	}
}

// HandleSyncAll publishes every recorded game state
// @Summary Sync all game states
// @Tags walrus
// @Produce json
// @Success 200 {object} SyncAllResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/walrus/sync [post]
func HandleSyncAll(svc remotesync.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.SyncAll(r.Context())
		if err != nil {
			respondServiceError(w, r, "Sync all", err)
			return
		}
		respondJSON(w, http.StatusOK, SyncAllResponse{
			Success: true,
			Message: summary.Message(),
			Synced:  summary.Synced,
			Total:   summary.Total,
		})
	}
}

// HandleStorePayload publishes an arbitrary JSON document
// @Summary Store a payload
// @Tags walrus
// @Accept json
// @Produce json
// @Param request body StorePayloadRequest true "Document to publish"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/walrus [post]
func HandleStorePayload(svc remotesync.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StorePayloadRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Store payload"); err != nil {
			return
		}

		res, err := svc.Store(r.Context(), req.Data)
		if err != nil {
			respondServiceError(w, r, "Store payload", err)
			return
		}
		respondReceipt(w, r, res.Receipt, "")
	}
}

// HandleListTransactions returns the local receipt log
// @Summary List sync transactions
// @Tags walrus
// @Produce json
// @Success 200 {object} TransactionsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/walrus/transactions [get]
func HandleListTransactions(svc remotesync.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txs, err := svc.ListTransactions(r.Context())
		if err != nil {
			respondServiceError(w, r, "List transactions", err)
			return
		}
		if txs == nil {
			txs = []domain.Transaction{}
		}
		respondJSON(w, http.StatusOK, TransactionsResponse{Transactions: txs})
	}
}

// respondReceipt flattens the receipt fields next to success and message
func respondReceipt(w http.ResponseWriter, r *http.Request, receipt []byte, message string) {
	body := receipt
	if len(body) == 0 {
		body = []byte("{}")
	}

	out, err := sjson.SetBytes(body, "success", true)
	if err == nil && message != "" {
		out, err = sjson.SetBytes(out, "message", message)
	}
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to build receipt response", "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}
	respondRawJSON(w, http.StatusOK, out)
}
