// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/ntsync/logging"
	"github.com/xmidt-org/ntsync/object"
	"github.com/xmidt-org/ntsync/xmetrics"
)

func newTestRegistry(t *testing.T) xmetrics.Registry {
	r, err := xmetrics.NewRegistry(
		&xmetrics.Options{
			Pedantic:                true,
			DisableGoCollector:      true,
			DisableProcessCollector: true,
		},
		Metrics,
		object.Metrics,
	)

	require.NoError(t, err)
	return r
}

// metricValue gathers r and returns the counter or gauge value of name whose labels include every
// given label pair.  It returns -1 when no such metric exists.
func metricValue(t *testing.T, r xmetrics.Registry, name string, labels ...string) float64 {
	families, err := r.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != xmetrics.DefaultNamespace+"_"+xmetrics.DefaultSubsystem+"_"+name {
			continue
		}

	metrics:
		for _, m := range f.GetMetric() {
			pairs := make(map[string]string)
			for _, lp := range m.GetLabel() {
				pairs[lp.GetName()] = lp.GetValue()
			}

			for i := 0; i+1 < len(labels); i += 2 {
				if pairs[labels[i]] != labels[i+1] {
					continue metrics
				}
			}

			switch {
			case m.Counter != nil:
				return m.Counter.GetValue()
			case m.Gauge != nil:
				return m.Gauge.GetValue()
			case m.Histogram != nil:
				return float64(m.Histogram.GetSampleCount())
			}
		}
	}

	return -1
}

func newTestSession(t *testing.T, o *Options) *Session {
	if o == nil {
		o = new(Options)
	}

	if o.Logger == nil {
		o.Logger = logging.NewTestLogger(t)
	}

	s := New(o)
	t.Cleanup(func() { s.Close() })
	return s
}
