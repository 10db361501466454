package search

import "time"

// Timer is a cancellable one-shot timer. Coordinators hold at most one
// debounce timer and one suppression-clear timer at a time; both are
// cancelled on Close so no callback can fire after teardown.
type Timer interface {
	Cancel()
}

// TimerFactory schedules fn after d and returns a handle to cancel it.
// Tests substitute a manual factory to fire timers deterministically.
type TimerFactory func(d time.Duration, fn func()) Timer

type stdTimer struct{ t *time.Timer }

func (s stdTimer) Cancel() { s.t.Stop() }

// StdTimers is the production TimerFactory, backed by time.AfterFunc.
func StdTimers(d time.Duration, fn func()) Timer {
	return stdTimer{t: time.AfterFunc(d, fn)}
}
