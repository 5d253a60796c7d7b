package session

import (
	"sync"
	"time"
)

// A Delay is a cancellable deferred action: the function passed at
// construction fires once the duration elapses unless Cancel wins the race.
//
// It resolves the blur-vs-click ambiguity: a blur starts a Delay carrying the
// submit, and a qualifying click inside the same form cancels it.
type Delay struct {
	mtx       sync.Mutex
	timer     *time.Timer
	fired     bool
	cancelled bool
}

// NewDelay constructs and returns a started Delay that calls fn after d.
func NewDelay(d time.Duration, fn func()) *Delay {
	delay := &Delay{}
	delay.timer = time.AfterFunc(d, func() {
		delay.mtx.Lock()
		if delay.cancelled {
			delay.mtx.Unlock()
			return
		}
		delay.fired = true
		delay.mtx.Unlock()

		fn()
	})
	return delay
}

// Cancel suppresses the deferred action.
// It returns whether it won, i.E. whether the action had neither fired nor
// already been cancelled.
func (d *Delay) Cancel() bool {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.fired || d.cancelled {
		return false
	}
	d.cancelled = true
	d.timer.Stop()
	return true
}
