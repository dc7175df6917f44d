package session

// InitialLevel is the level a fresh session starts at
const InitialLevel = 1

// Log messages
const (
	LogMsgSessionUpdated     = "Session updated"
	LogMsgSessionReset       = "Session reset"
	LogMsgEventPublishFailed = "Failed to publish session event"
)
