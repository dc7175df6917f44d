package postgres

// Error Messages
const (
	ErrMsgMarshalResults   = "failed to marshal evaluation results"
	ErrMsgUnmarshalResults = "failed to unmarshal evaluation results"
	ErrMsgMarshalAnswers   = "failed to marshal answers"
	ErrMsgUnmarshalAnswers = "failed to unmarshal answers"
	ErrMsgMarshalEquipment = "failed to marshal equipment"
	ErrMsgInvalidReceipt   = "receipt is not a JSON object"
	ErrMsgQueryFailed      = "query failed"
	ErrMsgScanFailed       = "failed to scan row"
)
