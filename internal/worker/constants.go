package worker

import "time"

// Log Messages - Worker Pool
const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobCompleted = "Worker job completed"
	LogMsgPoolStarted        = "Worker pool started"
	LogMsgPoolStopped        = "Worker pool stopped"
	LogMsgPendingJobsDropped = "Worker pool stopped with pending jobs"
)

// DefaultJobTimeout bounds a single job
const DefaultJobTimeout = 2 * time.Minute

// Error messages
const (
	ErrMsgPoolStopped = "worker pool is stopped"
	ErrMsgQueueFull   = "worker queue is full"
	ErrMsgJobPanicked = "job panicked"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
