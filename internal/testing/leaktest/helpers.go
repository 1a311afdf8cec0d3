// Package leaktest checks that background goroutines wind down after a component stops.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultTimeout bounds how long Check waits for goroutines to exit.
const DefaultTimeout = time.Second

// GoroutineChecker records a goroutine baseline and verifies the count returns to it.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test if more than tolerance goroutines are still alive after DefaultTimeout.
// It polls rather than sleeping a fixed amount, so it returns as soon as things settle.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	if !waitFor(g.before+tolerance, DefaultTimeout) {
		after := runtime.NumGoroutine()
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, after-g.before, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires the goroutine count to return to its baseline.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

func waitFor(target int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		if runtime.NumGoroutine() <= target {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(5 * time.Millisecond)
	}
}
