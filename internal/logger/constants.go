package logger

const (
	// LevelAliasWarning is accepted alongside slog's own "warn"
	LevelAliasWarning = "warning"
	// FormatJSON selects the JSON handler; anything else logs text
	FormatJSON = "json"
)

// Attribute keys on every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
