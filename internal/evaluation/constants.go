package evaluation

// ChainedBatchNumber is the batch whose submission also runs the evaluate and
// game-state stages.
const ChainedBatchNumber = 0

// Log messages
const (
	LogMsgBatchEvaluated        = "Batch evaluated"
	LogMsgEvaluationSaved       = "Evaluation saved"
	LogMsgEvaluationFailed      = "Batch evaluation failed"
	LogMsgSubmissionSaved       = "Answer submission saved"
	LogMsgChainedStageFailed    = "Chained stage after submission failed"
	LogMsgEventPublishFailed    = "Failed to publish evaluation event"
	LogMsgBatchWindowIncomplete = "Batch not found"
)

// Error messages
const (
	ErrMsgJudgeTweetFailed   = "judge tweet %d: %w"
	ErrMsgSaveEvaluation     = "save evaluation: %w"
	ErrMsgSaveSubmission     = "save submission: %w"
	ErrMsgLoadTweets         = "load tweets: %w"
	ErrMsgBatchOutOfRange    = "batch number out of range"
)
