package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Pipeline metric names
const (
	MetricNameJudgeVerdicts      = "judge_verdicts_total"
	MetricNameJudgeErrors        = "judge_errors_total"
	MetricNameJudgeDuration      = "judge_request_duration_seconds"
	MetricNameEvaluations        = "evaluations_total"
	MetricNameGameStatesRecorded = "game_states_recorded_total"
	MetricNameRemoteSyncs        = "remote_syncs_total"
	MetricNameWorkerJobs         = "worker_jobs_total"
	MetricNameSSEClients         = "sse_clients_connected"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Pipeline metric help text
const (
	HelpTextJudgeVerdicts      = "Total number of sentiment verdicts returned by the judge"
	HelpTextJudgeErrors        = "Total number of failed judge calls"
	HelpTextJudgeDuration      = "Latency of LLM judge calls in seconds"
	HelpTextEvaluations        = "Total number of evaluated batches"
	HelpTextGameStatesRecorded = "Total number of game state snapshots recorded"
	HelpTextRemoteSyncs        = "Total number of remote sync attempts"
	HelpTextWorkerJobs         = "Total number of background jobs processed"
	HelpTextSSEClients         = "Current number of connected SSE clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelVerdict = "verdict"
	LabelReason  = "reason"
	LabelOutcome = "outcome"
	LabelResult  = "result"
	LabelJob     = "job"
)

// Label values
const (
	OutcomePassed = "passed"
	OutcomeFailed = "failed"
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultDropped = "dropped"
	// path label for requests no route matched
	UnmatchedRoute = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LLMLatencyBuckets covers reasoning-model completions, which can take a minute.
var LLMLatencyBuckets = []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
