// Package leaktest fails tests that leave goroutines running.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	pollInterval = 10 * time.Millisecond
	// DefaultWait is how long Verify lets goroutines wind down
	DefaultWait = time.Second
)

// Snapshot is the goroutine count observed before the code under test ran
type Snapshot struct {
	t    testing.TB
	base int
	wait time.Duration
}

// Take records the goroutine count once the scheduler has settled
func Take(t testing.TB) Snapshot {
	t.Helper()
	return Snapshot{t: t, base: settledCount(), wait: DefaultWait}
}

// WithWait changes how long Verify polls before failing
func (s Snapshot) WithWait(d time.Duration) Snapshot {
	s.wait = d
	return s
}

// Verify fails the test if more than slack goroutines outlive the snapshot
func (s Snapshot) Verify(slack int) {
	s.t.Helper()

	deadline := time.Now().Add(s.wait)
	extra := runtime.NumGoroutine() - s.base
	for extra > slack && time.Now().Before(deadline) {
		extra = settledCount() - s.base
	}
	if extra > slack {
		s.t.Errorf("%d goroutine(s) still running after %s (baseline %d, slack %d)", extra, s.wait, s.base, slack)
	}
}

// Around runs fn and verifies it left nothing running
func Around(t testing.TB, fn func()) {
	t.Helper()
	snap := Take(t)
	fn()
	snap.Verify(0)
}

func settledCount() int {
	runtime.Gosched()
	time.Sleep(pollInterval)
	return runtime.NumGoroutine()
}
