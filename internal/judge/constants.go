package judge

// Metric label values
const (
	ReasonUpstream   = "upstream"
	ReasonUnparsable = "unparsable"
	VerdictOther     = "other"
)

// Log messages
const (
	LogMsgJudgeCallFailed = "Sentiment judge call failed"
	LogMsgUnexpectedReply = "Unexpected judge reply format"
)
