// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"errors"

	"github.com/xmidt-org/ntsync/object"
)

var (
	// ErrTooManySessions is returned by Manager.Open when the configured maximum is reached
	ErrTooManySessions = errors.New("too many sessions")

	// ErrSessionNotFound is returned when a session id is malformed or names no open session
	ErrSessionNotFound = errors.New("session not found")
)

const (
	CodeTooManySessions = "too_many_sessions"
	CodeSessionNotFound = "session_not_found"
)

// Code extends object.Code with the outcomes of session management
func Code(err error) string {
	switch {
	case errors.Is(err, ErrTooManySessions):
		return CodeTooManySessions

	case errors.Is(err, ErrSessionNotFound):
		return CodeSessionNotFound

	default:
		return object.Code(err)
	}
}
