// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"errors"
)

var (
	// ErrInvalidArgument indicates malformed or out-of-range caller input.  It is always
	// detected before any state is mutated.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidHandle indicates a stale or unknown handle, or a handle of the wrong kind.
	ErrInvalidHandle = errors.New("invalid handle")

	// ErrOverflow is returned when a release would wrap the counter or exceed its maximum.
	// The object's state is left unchanged.
	ErrOverflow = errors.New("count overflow")

	// ErrTimedOut is returned when a wait's absolute deadline passes without any object
	// satisfying it.
	ErrTimedOut = errors.New("wait timed out")

	// ErrInterrupted is returned when a wait is cancelled while suspended.
	ErrInterrupted = errors.New("wait interrupted")

	// ErrNoSpace indicates that no further handles can be allocated.
	ErrNoSpace = errors.New("no handles available")

	// ErrClosed is returned by operations attempted on a closed session or table.
	ErrClosed = errors.New("closed")
)

// Outcome codes are the stable, transport-independent names of each result.
const (
	CodeOK              = "ok"
	CodeInvalidArgument = "invalid_argument"
	CodeInvalidHandle   = "invalid_handle"
	CodeOverflow        = "overflow"
	CodeTimedOut        = "timed_out"
	CodeInterrupted     = "interrupted"
	CodeNoSpace         = "no_space"
	CodeClosed          = "closed"
	CodeUnknown         = "unknown"
)

var codes = []struct {
	err  error
	code string
}{
	{ErrInvalidArgument, CodeInvalidArgument},
	{ErrInvalidHandle, CodeInvalidHandle},
	{ErrOverflow, CodeOverflow},
	{ErrTimedOut, CodeTimedOut},
	{ErrInterrupted, CodeInterrupted},
	{ErrNoSpace, CodeNoSpace},
	{ErrClosed, CodeClosed},
}

// Code maps an error onto its stable outcome code.  A nil error is CodeOK, and any
// error outside this package's taxonomy is CodeUnknown.
func Code(err error) string {
	if err == nil {
		return CodeOK
	}

	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}

	return CodeUnknown
}
