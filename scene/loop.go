// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"context"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
)

// Loop is the cooperative execution context of a scene.
//
// Deferred work (timers and frame callbacks) is queued and only runs from
// Step, on the goroutine calling it. Nothing scheduled through a Loop runs
// concurrently with anything else scheduled through the same Loop.
//
// Loop is NOT safe for concurrent use.
type Loop struct {
	clock  clockwork.Clock
	timers []*loopTimer
	frames []func(now time.Time)
	seq    uint64
}

type loopTimer struct {
	at   time.Time
	seq  uint64
	fn   func()
	done bool
}

// NewLoop creates a loop on the given clock. A nil clock uses the real one.
func NewLoop(clock clockwork.Clock) *Loop {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Loop{clock: clock}
}

// Clock returns the loop clock.
func (l *Loop) Clock() clockwork.Clock {
	return l.clock
}

// Now returns the loop clock's current time.
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// AfterFunc queues fn to run from the first Step at or after d from now.
// The returned function cancels it and reports whether it was still
// pending.
func (l *Loop) AfterFunc(d time.Duration, fn func()) (stop func() bool) {
	l.seq++
	t := &loopTimer{at: l.clock.Now().Add(d), seq: l.seq, fn: fn}
	l.timers = append(l.timers, t)
	return func() bool {
		if t.done {
			return false
		}
		t.done = true
		return true
	}
}

// RequestFrame queues fn for the next Step.
func (l *Loop) RequestFrame(fn func(now time.Time)) {
	l.frames = append(l.frames, fn)
}

// Idle reports whether no timers or frames are pending.
func (l *Loop) Idle() bool {
	if len(l.frames) > 0 {
		return false
	}
	for _, t := range l.timers {
		if !t.done {
			return false
		}
	}
	return true
}

// Step runs every due timer in deadline order, then every frame callback
// queued before the call. Frames requested while stepping wait for the
// next Step. It returns the number of callbacks run.
func (l *Loop) Step() int {
	now := l.clock.Now()
	n := 0

	var due, keep []*loopTimer
	for _, t := range l.timers {
		switch {
		case t.done:
		case !t.at.After(now):
			due = append(due, t)
		default:
			keep = append(keep, t)
		}
	}
	l.timers = keep
	sort.Slice(due, func(i, j int) bool {
		if due[i].at.Equal(due[j].at) {
			return due[i].seq < due[j].seq
		}
		return due[i].at.Before(due[j].at)
	})
	for _, t := range due {
		if t.done {
			continue
		}
		t.done = true
		t.fn()
		n++
	}

	frames := l.frames
	l.frames = nil
	for _, fn := range frames {
		fn(now)
		n++
	}
	return n
}

// Run steps the loop every interval until ctx is done.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	ticker := l.clock.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
			l.Step()
		}
	}
}

// RunUntilIdle steps the loop every interval until nothing is pending or
// ctx is done.
func (l *Loop) RunUntilIdle(ctx context.Context, interval time.Duration) error {
	l.Step()
	if l.Idle() {
		return nil
	}
	ticker := l.clock.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
			l.Step()
			if l.Idle() {
				return nil
			}
		}
	}
}
