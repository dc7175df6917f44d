package jsonfile

// Document file names inside the data directory
const (
	FileEvaluations  = "evaluation-results.json"
	FileGameStates   = "game-state.json"
	FileTransactions = "walrus-transactions.json"
	FileSubmissions  = "tweets-response.json"
)

// Top-level keys of each document
const (
	KeyEvaluations  = "evaluations"
	KeyGameStates   = "gameStates"
	KeyTransactions = "transactions"
	KeySubmissions  = "batches"
)

// Log messages
const (
	LogMsgDocumentCreated = "Created empty store document"
	LogMsgDocumentCorrupt = "Store document is corrupt, starting from empty"
	LogMsgDocumentWritten = "Store document written"
)

// Error messages
const (
	ErrMsgCreateDataDir = "failed to create data directory"
	ErrMsgReadDocument  = "failed to read %s"
	ErrMsgWriteDocument = "failed to write %s"
)
