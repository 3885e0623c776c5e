// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts the parts of the time package that wait deadlines and the background
// reclaimer depend on, so that tests can drive time explicitly.
package clock

import "time"

// Interface is the source of time for everything in ntsync that waits
type Interface interface {
	Now() time.Time
	NewTicker(time.Duration) Ticker
	NewTimer(time.Duration) Timer
}

// Timer is the subset of *time.Timer used here, with the channel exposed as a method
type Timer interface {
	C() <-chan time.Time
	Reset(time.Duration) bool
	Stop() bool
}

// Ticker is the subset of *time.Ticker used here.  Stop must be called to release it.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type system struct{}

// System returns the clock backed by the time package
func System() Interface {
	return system{}
}

func (system) Now() time.Time {
	return time.Now()
}

func (system) NewTicker(d time.Duration) Ticker {
	return systemTicker{time.NewTicker(d)}
}

func (system) NewTimer(d time.Duration) Timer {
	return systemTimer{time.NewTimer(d)}
}

type systemTimer struct {
	*time.Timer
}

func (st systemTimer) C() <-chan time.Time {
	return st.Timer.C
}

type systemTicker struct {
	*time.Ticker
}

func (st systemTicker) C() <-chan time.Time {
	return st.Ticker.C
}
