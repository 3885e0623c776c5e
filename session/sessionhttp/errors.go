// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sessionhttp

import (
	"context"
	"errors"
	"net/http"

	"github.com/ugorji/go/codec"
	"github.com/xmidt-org/ntsync/object"
	"github.com/xmidt-org/ntsync/session"
	"github.com/xmidt-org/ntsync/xhttp"
)

// ErrorResponse is the body written for every failed request
type ErrorResponse struct {
	Code    int    `json:"code" msgpack:"code"`
	Outcome string `json:"outcome" msgpack:"outcome"`
	Message string `json:"message" msgpack:"message"`
}

var statusCodes = []struct {
	err  error
	code int
}{
	{object.ErrInvalidArgument, http.StatusBadRequest},
	{object.ErrInvalidHandle, http.StatusNotFound},
	{object.ErrOverflow, http.StatusConflict},
	{object.ErrTimedOut, http.StatusRequestTimeout},
	{object.ErrInterrupted, http.StatusServiceUnavailable},
	{object.ErrClosed, http.StatusGone},
	{object.ErrNoSpace, http.StatusInsufficientStorage},
	{session.ErrTooManySessions, http.StatusTooManyRequests},
	{session.ErrSessionNotFound, http.StatusNotFound},
}

// StatusCodeForError maps the outcome carried by err onto an HTTP status.  Errors outside the
// command taxonomy fall back to any go-kit StatusCoder in the chain, then to 500.
func StatusCodeForError(err error) int {
	for _, sc := range statusCodes {
		if errors.Is(err, sc.err) {
			return sc.code
		}
	}

	return xhttp.StatusCodeForError(err, http.StatusInternalServerError)
}

// encodeError is the go-kit ErrorEncoder for every route
func encodeError(ctx context.Context, err error, rw http.ResponseWriter) {
	var (
		f    = formatFromContext(ctx)
		code = StatusCodeForError(err)
	)

	xhttp.HeadersForError(err, rw.Header())
	rw.Header().Set("Content-Type", f.ContentType())
	rw.WriteHeader(code)

	// the status has been written, so an encoding failure has nowhere to go
	_ = codec.NewEncoder(rw, f.handle()).Encode(ErrorResponse{
		Code:    code,
		Outcome: session.Code(err),
		Message: err.Error(),
	})
}
