// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"errors"
	"fmt"
	"net/http"

	gokithttp "github.com/go-kit/kit/transport/http"
)

// Error is an HTTP-specific carrier of error information.  In addition to implementing error,
// this type also implements go-kit's StatusCoder and Headerer.
type Error struct {
	Code   int
	Header http.Header
	Text   string
}

func (e *Error) StatusCode() int {
	return e.Code
}

func (e *Error) Headers() http.Header {
	return e.Header
}

func (e *Error) Error() string {
	return e.Text
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"code": %d, "text": %q}`, e.Code, e.Text)), nil
}

// StatusCodeForError returns the status code of the first error in err's chain that implements
// go-kit's StatusCoder.  If nothing in the chain does, defaultCode is returned.
func StatusCodeForError(err error, defaultCode int) int {
	var sc gokithttp.StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}

	return defaultCode
}

// HeadersForError copies the headers of any go-kit Headerer in err's chain into h
func HeadersForError(err error, h http.Header) {
	var hd gokithttp.Headerer
	if errors.As(err, &hd) {
		for name, values := range hd.Headers() {
			for _, value := range values {
				h.Add(name, value)
			}
		}
	}
}
