package gamestate

// Log messages
const (
	LogMsgGameStateRecorded  = "Game state recorded"
	LogMsgNoEvaluation       = "No evaluation to derive game state from"
	LogMsgEventPublishFailed = "Failed to publish game state event"
)

// Error formats
const (
	ErrMsgLoadEvaluation = "load latest evaluation: %w"
	ErrMsgSaveGameState  = "save game state: %w"
)
