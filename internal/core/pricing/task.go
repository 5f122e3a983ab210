package pricing

import "time"

// Timer is the handle of a scheduled call. Stop reports whether the call
// was prevented from running.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d. time.AfterFunc satisfies it
// through RealAfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

// RealAfterFunc schedules f with the runtime timer.
func RealAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// task is one scheduled price computation. A task is current while its
// seq equals the estimator's seq; any later Update invalidates it, and a
// result it produces after that point is dropped.
type task struct {
	seq       uint64
	totalDays int
	currency  string
	timer     Timer
}

func (t *task) cancel() {
	if t != nil && t.timer != nil {
		t.timer.Stop()
	}
}
