package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize bounds events waiting for delivery
	BroadcastBufferSize = 100

	// ClientEventBuffer bounds events queued for one client
	ClientEventBuffer = 50
)

// KeepaliveInterval is how often to send keepalive pings
const KeepaliveInterval = 30 * time.Second

// Event types generated by the stream itself
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Request inputs
const (
	// TypesQueryParam selects a comma-separated subset of event types
	TypesQueryParam = "types"
	// HeaderLastEventID is sent by browsers when an EventSource reconnects
	HeaderLastEventID = "Last-Event-ID"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventDropped       = "Dropping SSE event, broadcast buffer full"
	LogMsgClientLagging      = "SSE client buffer full, event skipped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
	LogMsgHubStopped         = "SSE hub is stopped"
)
