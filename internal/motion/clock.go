package motion

import "time"

// Clock is the time source every animation, cooldown and timer is scheduled on.
// In the browser it is backed by window.setTimeout so callbacks run on the
// event loop; tests use motiontest.Clock.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback created by Clock.AfterFunc.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer, false if it already fired or was stopped.
	Stop() bool
}
