// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sessionhttp

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/xmidt-org/ntsync/xmetrics"
)

const (
	WaitSlotsGauge      = "wait_slots_in_use"
	WaitRejectedCounter = "wait_rejected_total"
)

// Metrics is the module function for this package
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name: WaitSlotsGauge,
			Type: xmetrics.GaugeType,
			Help: "The number of waits currently holding a concurrency slot",
		},
		{
			Name: WaitRejectedCounter,
			Type: xmetrics.CounterType,
			Help: "The count of waits that gave up before a concurrency slot was available",
		},
	}
}

// Measures holds the metrics of the wait limiter
type Measures struct {
	WaitSlots    metrics.Gauge
	WaitRejected metrics.Counter
}

// NewMeasures constructs a Measures from a go-kit provider.  A nil provider discards everything.
func NewMeasures(p provider.Provider) Measures {
	if p == nil {
		p = provider.NewDiscardProvider()
	}

	return Measures{
		WaitSlots:    p.NewGauge(WaitSlotsGauge),
		WaitRejected: p.NewCounter(WaitRejectedCounter),
	}
}
