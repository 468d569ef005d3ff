package driven

import "time"

// Timer is a single pending debounce timer.
type Timer interface {
	// Stop cancels the timer. It reports whether the stop prevented
	// the callback from firing.
	Stop() bool
}

// TimerFactory schedules fn to run after d on some scheduler.
// The production implementation is time.AfterFunc; tests inject a
// manual implementation so debounce behaviour is verifiable without
// wall-clock waits.
type TimerFactory func(d time.Duration, fn func()) Timer

// stdTimer adapts *time.Timer to the Timer interface.
type stdTimer struct {
	t *time.Timer
}

func (s stdTimer) Stop() bool {
	return s.t.Stop()
}

// StdTimerFactory is the wall-clock TimerFactory backed by time.AfterFunc.
func StdTimerFactory(d time.Duration, fn func()) Timer {
	return stdTimer{t: time.AfterFunc(d, fn)}
}
