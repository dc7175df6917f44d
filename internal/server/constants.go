package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertHighRate = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Rate limiting
const (
	RateLimitWindow      = 5 * time.Minute
	RateLimitMaxRequests = 1000
	// distinct client buckets held at once
	RateLimitMaxClients = 4096
	rateLimitLogEvery   = 100
)

// Server limits
const (
	MaxRequestBodyBytes = 1 << 20
	ReadHeaderTimeout   = 5 * time.Second
	CORSMaxAge          = 300
)

// QuietPaths are not logged per request
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
