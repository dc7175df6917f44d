package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every series this service exports
const Namespace = "wolfjourney"

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventsPublished,
			Help:      HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventHandlerErrors,
			Help:      HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Pipeline Metrics
var (
	JudgeVerdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameJudgeVerdicts,
			Help:      HelpTextJudgeVerdicts,
		},
		[]string{LabelVerdict},
	)

	JudgeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameJudgeErrors,
			Help:      HelpTextJudgeErrors,
		},
		[]string{LabelReason},
	)

	JudgeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameJudgeDuration,
			Help:      HelpTextJudgeDuration,
			Buckets:   LLMLatencyBuckets,
		},
	)

	Evaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEvaluations,
			Help:      HelpTextEvaluations,
		},
		[]string{LabelOutcome},
	)

	GameStatesRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameGameStatesRecorded,
			Help:      HelpTextGameStatesRecorded,
		},
	)

	RemoteSyncs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRemoteSyncs,
			Help:      HelpTextRemoteSyncs,
		},
		[]string{LabelResult},
	)

	WorkerJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameWorkerJobs,
			Help:      HelpTextWorkerJobs,
		},
		[]string{LabelJob, LabelResult},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameSSEClients,
			Help:      HelpTextSSEClients,
		},
	)
)
