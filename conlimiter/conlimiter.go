// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package conlimiter caps the number of connections an http.Server keeps open.
package conlimiter

import (
	"net"
	"net/http"
	"sync/atomic"
)

// ConLimiter closes any new connection that would take a server past Max open connections
type ConLimiter struct {
	Max int32

	// OnReject, if set, is called for each connection closed by the limiter
	OnReject func(net.Conn)

	current atomic.Int32
}

// Current returns the number of connections being tracked
func (l *ConLimiter) Current() int32 {
	return l.current.Load()
}

// Limit installs the limiter on s.  Any ConnState function already present still sees every transition.
func (l *ConLimiter) Limit(s *http.Server) {
	next := s.ConnState
	s.ConnState = func(c net.Conn, state http.ConnState) {
		switch state {
		case http.StateNew:
			if l.current.Add(1) > l.Max {
				c.Close()
				if l.OnReject != nil {
					l.OnReject(c)
				}
			}

		case http.StateHijacked, http.StateClosed:
			l.current.Add(-1)
		}

		if next != nil {
			next(c, state)
		}
	}
}
