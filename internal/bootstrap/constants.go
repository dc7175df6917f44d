package bootstrap

// =============================================================================
// Logger
// =============================================================================

// Environments that log source locations
var sourceLoggingEnvironments = []string{"dev", "development"}

// ServiceName is attached to every log record
const ServiceName = "wolfjourney"

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingWolfJourney = "Starting WolfJourney"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgStorageOpened         = "Storage backend opened"
	LogMsgMigrationsApplied     = "Database migrations applied"
	ErrMsgFailedOpenFileStore   = "failed to open file store"
	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedMigrate         = "failed to apply migrations"
	ErrMsgUnknownStorageBackend = "unknown storage backend"
)

// =============================================================================
// Publisher
// =============================================================================

const (
	LogMsgPublisherInitialized    = "Blob publisher initialized"
	ErrMsgFailedCreatePublisher   = "failed to create publisher"
	ErrMsgUnknownPublisherBackend = "unknown publisher backend"
)

// =============================================================================
// Tweets
// =============================================================================

const (
	LogMsgTweetsLoaded       = "Tweet collection ready"
	LogMsgTweetsUnavailable  = "Tweet collection unavailable at startup"
	LogMsgTweetsPartialBatch = "Tweet collection ends with a partial batch"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	LogMsgSyncSubscriberRegistered   = "Remote sync subscriber registered"
	LogMsgSyncScheduled              = "Bulk sync scheduled"
	LogMsgSyncScheduleDisabled       = "Bulk sync schedule disabled"
	ErrMsgFailedScheduleSync         = "failed to schedule bulk sync"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgStoppingScheduler     = "Stopping scheduler..."
	LogMsgDrainingWorkers       = "Draining worker pool..."
	LogMsgStoppingSSEHub        = "Stopping SSE hub..."
	LogMsgClosingStorage        = "Closing storage..."
	LogMsgServerStopped         = "Server stopped"
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgWorkerDrainIncomplete = "Worker pool did not drain before the deadline"
)
