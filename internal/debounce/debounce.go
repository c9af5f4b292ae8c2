// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package debounce coalesces bursts of calls into one trailing call.
package debounce

import "time"

// Scheduler runs fn once after d has elapsed on its clock.
// The returned stop function cancels the call if it has not run yet
// and reports whether it did so.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// Debouncer delays fn until no Trigger has happened for the wait period.
//
// The scheduler is looked up on every Trigger, so a Debouncer can follow
// an owner that moves between schedulers. When no scheduler is available
// fn runs synchronously.
//
// Debouncer is not safe for concurrent use.
type Debouncer struct {
	wait    time.Duration
	fn      func()
	source  func() Scheduler
	stop    func() bool
	stopped bool
}

// New returns a Debouncer calling fn wait after the last Trigger.
func New(wait time.Duration, fn func(), source func() Scheduler) *Debouncer {
	return &Debouncer{wait: wait, fn: fn, source: source}
}

// Trigger (re)starts the quiet period.
func (d *Debouncer) Trigger() {
	if d.stopped {
		return
	}
	d.cancel()

	var s Scheduler
	if d.source != nil {
		s = d.source()
	}
	if s == nil {
		d.fn()
		return
	}
	d.stop = s.AfterFunc(d.wait, func() {
		d.stop = nil
		if !d.stopped {
			d.fn()
		}
	})
}

// Pending reports whether a trailing call is scheduled.
func (d *Debouncer) Pending() bool {
	return d.stop != nil
}

// Flush runs a pending call now.
func (d *Debouncer) Flush() {
	if d.stop == nil || d.stopped {
		return
	}
	d.cancel()
	d.fn()
}

// Stop cancels any pending call. Further Triggers are ignored.
func (d *Debouncer) Stop() {
	d.cancel()
	d.stopped = true
}

func (d *Debouncer) cancel() {
	if d.stop != nil {
		d.stop()
		d.stop = nil
	}
}
