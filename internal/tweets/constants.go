package tweets

// FileName is the tweet collection document inside the data directory.
const FileName = "tweets.json"

// CacheSchemaVersion invalidates cached collections when the cached shape changes.
const CacheSchemaVersion = "1.0"

const cacheKey = "collection"

// Log messages
const (
	LogMsgCollectionLoaded  = "Tweet collection loaded"
	LogMsgCollectionInvalid = "Tweet collection failed schema validation"
)

// Error messages
const (
	ErrMsgReadCollection   = "failed to read tweet collection"
	ErrMsgDecodeCollection = "failed to decode tweet collection"
	ErrMsgInvalidWindow    = "window start and count must not be negative"
)
