// Package clock provides the timer hook used by the scan widget and the
// contact form state machines, so tests can fire timers on demand.
package clock

import (
	"sync"
	"time"
)

// Timer is a scheduled callback that can be stopped.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or the timer was already stopped.
	Stop() bool
}

// AfterFunc schedules f to run after d.
type AfterFunc func(d time.Duration, f func()) Timer

// Real schedules f with time.AfterFunc.
func Real(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Manual is an AfterFunc replacement whose timers only fire when Fire is called.
type Manual struct {
	mu      sync.Mutex
	pending []*manualTimer
}

// NewManual creates a Manual clock with no pending timers.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc records f as pending. The duration is kept for inspection only.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTimer{delay: d, f: f}
	m.pending = append(m.pending, t)
	return t
}

// Pending returns the number of timers that are neither fired nor stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.pending {
		if t.active() {
			n++
		}
	}
	return n
}

// Delays returns the durations of all timers ever scheduled, in order.
func (m *Manual) Delays() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	delays := make([]time.Duration, len(m.pending))
	for i, t := range m.pending {
		delays[i] = t.delay
	}
	return delays
}

// Fire runs every active timer in scheduling order and returns how many ran.
// Timers scheduled by the callbacks themselves are not run in the same call.
func (m *Manual) Fire() int {
	m.mu.Lock()
	timers := make([]*manualTimer, len(m.pending))
	copy(timers, m.pending)
	m.mu.Unlock()

	n := 0
	for _, t := range timers {
		if t.fire() {
			n++
		}
	}
	return n
}

// FireNext runs the oldest active timer. It returns false when none is pending.
func (m *Manual) FireNext() bool {
	m.mu.Lock()
	var next *manualTimer
	for _, t := range m.pending {
		if t.active() {
			next = t
			break
		}
	}
	m.mu.Unlock()

	if next == nil {
		return false
	}
	return next.fire()
}

type manualTimer struct {
	mu      sync.Mutex
	delay   time.Duration
	f       func()
	done    bool
	stopped bool
}

func (t *manualTimer) active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.done && !t.stopped
}

func (t *manualTimer) fire() bool {
	t.mu.Lock()
	if t.done || t.stopped {
		t.mu.Unlock()
		return false
	}
	t.done = true
	t.mu.Unlock()

	t.f()
	return true
}

// Stop implements Timer.
func (t *manualTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
