// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Deadline is a timer anchored to an absolute point in time.  A wakeup from the underlying
// timer is only trusted after Expired confirms it against the clock; if the timer fired early,
// Expired re-arms it for the remaining interval.  Retrying after a spurious wakeup therefore
// never extends the deadline.
//
// The zero time means no deadline: C returns a nil channel and Expired is always false.
type Deadline struct {
	clock Interface
	at    time.Time
	timer Timer
}

// NewDeadline starts a Deadline for the given absolute time.  A nil clock uses System().
func NewDeadline(c Interface, at time.Time) *Deadline {
	if c == nil {
		c = System()
	}

	d := &Deadline{
		clock: c,
		at:    at,
	}

	if !at.IsZero() {
		d.timer = c.NewTimer(d.remaining())
	}

	return d
}

func (d *Deadline) remaining() time.Duration {
	r := d.at.Sub(d.clock.Now())
	if r < 0 {
		return 0
	}

	return r
}

// At returns the absolute time of this deadline
func (d *Deadline) At() time.Time {
	return d.at
}

// C returns the channel that fires when the deadline may have passed
func (d *Deadline) C() <-chan time.Time {
	if d.timer == nil {
		return nil
	}

	return d.timer.C()
}

// Expired reports whether the clock has reached the deadline.  Call it after receiving from C.
// When the deadline has not yet been reached, the timer is re-armed.
func (d *Deadline) Expired() bool {
	if d.timer == nil {
		return false
	}

	r := d.remaining()
	if r > 0 {
		d.timer.Reset(r)
		return false
	}

	return true
}

// Stop releases the underlying timer
func (d *Deadline) Stop() {
	if d.timer != nil {
		d.timer.Stop()
	}
}
