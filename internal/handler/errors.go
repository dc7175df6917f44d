package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"
	ErrMsgGenericServerError    = "Internal server error"
	ErrMsgUnknownError          = "Unknown error"

	ErrMsgLoadTweetsFailed       = "Failed to load tweets"
	ErrMsgReadEvaluationsFailed  = "Failed to read evaluation results"
	ErrMsgSaveResultsFailed      = "Failed to save results"
	ErrMsgUpdateGameStateFailed  = "Failed to update game state"
	ErrMsgReadGameStatesFailed   = "Failed to read game states"
	ErrMsgReadTransactionsFailed = "Failed to read transactions"
	ErrMsgUpstreamFailed         = "Upstream service failed. Please try again."
	ErrMsgStorageFailed          = "Storage is unavailable. Please try again."
	ErrMsgNoGameStateFound       = "No game state found"
	ErrMsgInvalidStageHTTP       = "Stage must be sentiment or adventure"
	ErrMsgHealthOrDeltaRequired  = "Either health or delta is required"
)

// Success messages
const (
	MsgHealthOK = "ok"
)
