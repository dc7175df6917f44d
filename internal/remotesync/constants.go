package remotesync

// DefaultSyncConcurrency bounds concurrent publish calls during a bulk sync
const DefaultSyncConcurrency = 4

// Messages returned to clients
const (
	MsgLatestSynced    = "Latest game state synced to Walrus"
	MsgSyncedFormat    = "Synced %d of %d game states"
	ErrMsgSyncLatest   = "Failed to sync latest game state"
	ErrMsgSyncAll      = "Failed to sync game states"
	ErrMsgStorePayload = "Failed to process request"
)

// Log messages
const (
	LogMsgSyncStarted        = "Remote sync started"
	LogMsgSyncSucceeded      = "Game state synced"
	LogMsgSyncFailed         = "Game state sync failed"
	LogMsgBulkSyncFinished   = "Bulk sync finished"
	LogMsgTransactionSaved   = "Saved sync transaction"
	LogMsgTransactionFailed  = "Failed to save sync transaction"
	LogMsgEventPublishFailed = "Failed to publish sync event"
	LogMsgPayloadStored      = "Payload stored"
	LogMsgEnqueueFailed      = "Failed to enqueue background sync"
	LogMsgDecodeFailed       = "Unreadable game state event, syncing latest instead"
)

// Error formats
const (
	ErrMsgLoadGameStates = "load game states: %w"
	ErrMsgEncodePayload  = "encode payload: %w"
)
