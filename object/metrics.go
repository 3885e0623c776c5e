// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/xmidt-org/ntsync/xmetrics"
)

const (
	ObjectGauge            = "object_count"
	ObjectCreatedCounter   = "object_created_count"
	ObjectReclaimedCounter = "object_reclaimed_count"
	ObjectRetiredGauge     = "object_retired_count"
)

// Metrics is the object module function that adds default object metrics
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name: ObjectGauge,
			Type: xmetrics.GaugeType,
			Help: "The number of synchronization objects with at least one reference",
		},
		{
			Name:       ObjectCreatedCounter,
			Type:       xmetrics.CounterType,
			Help:       "The total number of synchronization objects created",
			LabelNames: []string{"kind"},
		},
		{
			Name: ObjectReclaimedCounter,
			Type: xmetrics.CounterType,
			Help: "The total number of objects whose storage was recycled",
		},
		{
			Name: ObjectRetiredGauge,
			Type: xmetrics.GaugeType,
			Help: "The number of released objects waiting for a reclamation grace period",
		},
	}
}

// Measures holds the object-related metric objects for runtime consumption.
type Measures struct {
	Objects   metrics.Gauge
	Created   metrics.Counter
	Reclaimed metrics.Counter
	Retired   metrics.Gauge
}

// NewMeasures constructs a Measures given a go-kit metrics Provider
func NewMeasures(p provider.Provider) Measures {
	return Measures{
		Objects:   p.NewGauge(ObjectGauge),
		Created:   p.NewCounter(ObjectCreatedCounter),
		Reclaimed: p.NewCounter(ObjectReclaimedCounter),
		Retired:   p.NewGauge(ObjectRetiredGauge),
	}
}
