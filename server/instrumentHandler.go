// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
)

// InstrumentHandler is an alice-style constructor that records m's request metrics around next
func InstrumentHandler(m Measures) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			m.InFlight.Add(1.0)
			defer m.InFlight.Add(-1.0)

			snoop := httpsnoop.CaptureMetrics(next, rw, r)
			m.Requests.With(CodeLabel, strconv.Itoa(snoop.Code), MethodLabel, r.Method).Add(1.0)
			m.Duration.Observe(snoop.Duration.Seconds())
		})
	}
}
