// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testErrorBasic(t *testing.T) {
	var (
		assert = assert.New(t)
		err    = &Error{Code: 415, Header: http.Header{"X-Test": {"1"}}, Text: `unsupported "type"`}
	)

	assert.Equal(415, err.StatusCode())
	assert.Equal(http.Header{"X-Test": {"1"}}, err.Headers())
	assert.Equal(`unsupported "type"`, err.Error())

	data, marshalErr := json.Marshal(err)
	assert.NoError(marshalErr)
	assert.JSONEq(`{"code": 415, "text": "unsupported \"type\""}`, string(data))
}

func testErrorStatusCode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(409, StatusCodeForError(fmt.Errorf("wrapped: %w", &Error{Code: 409}), 500))
	assert.Equal(500, StatusCodeForError(errors.New("plain"), 500))
	assert.Equal(400, StatusCodeForError(nil, 400))
}

func testErrorHeaders(t *testing.T) {
	var (
		assert = assert.New(t)
		h      = make(http.Header)
	)

	HeadersForError(errors.New("plain"), h)
	assert.Empty(h)

	HeadersForError(fmt.Errorf("wrapped: %w", &Error{Header: http.Header{"Retry-After": {"5"}}}), h)
	assert.Equal("5", h.Get("Retry-After"))
}

func TestError(t *testing.T) {
	t.Run("Basic", testErrorBasic)
	t.Run("StatusCode", testErrorStatusCode)
	t.Run("Headers", testErrorHeaders)
}
