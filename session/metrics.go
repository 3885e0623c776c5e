// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/xmidt-org/ntsync/xmetrics"
)

const (
	SessionGauge               = "session_count"
	SessionLimitReachedCounter = "session_limit_reached_count"
	CommandCounter             = "command_count"
	WaitDurationHistogram      = "wait_duration_seconds"

	CommandLabel = "command"
	OutcomeLabel = "outcome"
)

// Metrics is the session module function that adds default session metrics
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name: SessionGauge,
			Type: xmetrics.GaugeType,
			Help: "The number of open sessions",
		},
		{
			Name: SessionLimitReachedCounter,
			Type: xmetrics.CounterType,
			Help: "The number of sessions refused because the session limit was reached",
		},
		{
			Name:       CommandCounter,
			Type:       xmetrics.CounterType,
			Help:       "The number of commands executed, by command and outcome",
			LabelNames: []string{CommandLabel, OutcomeLabel},
		},
		{
			Name:       WaitDurationHistogram,
			Type:       xmetrics.HistogramType,
			Help:       "The time waits spent between registration and completion",
			LabelNames: []string{OutcomeLabel},
			Buckets:    []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
		},
	}
}

// Measures is a convenient struct that holds all the session-related metric objects for runtime consumption.
type Measures struct {
	Sessions     metrics.Gauge
	LimitReached metrics.Counter
	Commands     metrics.Counter
	WaitDuration metrics.Histogram
}

// NewMeasures constructs a Measures given a go-kit metrics Provider
func NewMeasures(p provider.Provider) Measures {
	return Measures{
		Sessions:     p.NewGauge(SessionGauge),
		LimitReached: p.NewCounter(SessionLimitReachedCounter),
		Commands:     p.NewCounter(CommandCounter),
		WaitDuration: p.NewHistogram(WaitDurationHistogram, 50),
	}
}
