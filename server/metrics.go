// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/xmidt-org/ntsync/xmetrics"
)

const (
	ActiveConnectionsGauge   = "active_connections"
	InFlightRequestsGauge    = "in_flight_requests"
	RequestCounter           = "api_requests_total"
	RequestDurationHistogram = "request_duration_seconds"

	ServerLabel = "server"
	CodeLabel   = "code"
	MethodLabel = "method"
)

// Metrics is the module function for this package
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name:       ActiveConnectionsGauge,
			Type:       xmetrics.GaugeType,
			Help:       "The number of active connections associated with a listener",
			LabelNames: []string{ServerLabel},
		},
		{
			Name:       InFlightRequestsGauge,
			Type:       xmetrics.GaugeType,
			Help:       "A gauge of requests currently being served by the handler",
			LabelNames: []string{ServerLabel},
		},
		{
			Name:       RequestCounter,
			Type:       xmetrics.CounterType,
			Help:       "A counter for requests to the handler",
			LabelNames: []string{ServerLabel, CodeLabel, MethodLabel},
		},
		{
			Name:       RequestDurationHistogram,
			Type:       xmetrics.HistogramType,
			Help:       "A histogram of latencies for requests",
			LabelNames: []string{ServerLabel},
			Buckets:    []float64{.001, .01, .1, .25, .5, 1, 2.5, 5, 10},
		},
	}
}

// Measures holds the server metrics, curried for a single named server
type Measures struct {
	Connections metrics.Gauge
	InFlight    metrics.Gauge
	Requests    metrics.Counter
	Duration    metrics.Histogram
}

// NewMeasures produces the Measures for the server with the given name
func NewMeasures(p provider.Provider, name string) Measures {
	return Measures{
		Connections: p.NewGauge(ActiveConnectionsGauge).With(ServerLabel, name),
		InFlight:    p.NewGauge(InFlightRequestsGauge).With(ServerLabel, name),
		Requests:    p.NewCounter(RequestCounter).With(ServerLabel, name),
		Duration:    p.NewHistogram(RequestDurationHistogram, 10).With(ServerLabel, name),
	}
}
