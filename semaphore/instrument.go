// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package semaphore

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
)

// InstrumentOption represents a configurable option for instrumenting a semaphore
type InstrumentOption func(*instrumentedSemaphore)

// WithResources establishes a metric that tracks the resource count of the semaphore.
// If a nil gauge is supplied, resource counts are discarded.
func WithResources(g metrics.Gauge) InstrumentOption {
	return func(i *instrumentedSemaphore) {
		if g != nil {
			i.resources = g
		} else {
			i.resources = discard.NewGauge()
		}
	}
}

// WithFailures establishes a metric that tracks how many times a resource was unable to
// be acquired.  If a nil counter is supplied, failures are discarded.
func WithFailures(c metrics.Counter) InstrumentOption {
	return func(i *instrumentedSemaphore) {
		if c != nil {
			i.failures = c
		} else {
			i.failures = discard.NewCounter()
		}
	}
}

// Instrument decorates an existing semaphore with instrumentation.
func Instrument(s Interface, o ...InstrumentOption) Interface {
	is := &instrumentedSemaphore{
		Interface: s,
		resources: discard.NewGauge(),
		failures:  discard.NewCounter(),
	}

	for _, f := range o {
		f(is)
	}

	return is
}

// instrumentedSemaphore is the internal decorator around Interface that applies appropriate metrics.
type instrumentedSemaphore struct {
	Interface
	resources metrics.Gauge
	failures  metrics.Counter
}

func (is *instrumentedSemaphore) record(err error) error {
	if err != nil {
		is.failures.Add(1.0)
	} else {
		is.resources.Add(1.0)
	}

	return err
}

func (is *instrumentedSemaphore) Acquire() error {
	return is.record(is.Interface.Acquire())
}

func (is *instrumentedSemaphore) AcquireWait(t <-chan time.Time) error {
	return is.record(is.Interface.AcquireWait(t))
}

func (is *instrumentedSemaphore) AcquireCtx(ctx context.Context) error {
	return is.record(is.Interface.AcquireCtx(ctx))
}

func (is *instrumentedSemaphore) TryAcquire() bool {
	acquired := is.Interface.TryAcquire()
	if acquired {
		is.resources.Add(1.0)
	} else {
		is.failures.Add(1.0)
	}

	return acquired
}

func (is *instrumentedSemaphore) Release() error {
	err := is.Interface.Release()
	if err == nil {
		is.resources.Add(-1.0)
	}

	return err
}
