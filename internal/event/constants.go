package event

// EventSchemaVersion is stamped on every event this build publishes
const EventSchemaVersion = "1.0"

// MetadataKeyRequestID carries the originating request id
const MetadataKeyRequestID = "request_id"
