// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logginghttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/ntsync/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPopulateLogger(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		core, logs = observer.New(zapcore.DebugLevel)
		called     bool

		handler = PopulateLogger(zap.New(core))(
			http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
				called = true
				logging.GetLogger(request.Context()).Info("in handler")
			}),
		)

		request = httptest.NewRequest("GET", "/test", nil)
	)

	handler.ServeHTTP(httptest.NewRecorder(), request)
	require.True(called)
	require.Equal(1, logs.Len())

	fields := logs.All()[0].ContextMap()
	assert.Equal("GET", fields[RequestMethodKey])
	assert.Equal("/test", fields[RequestURIKey])
	assert.Equal(request.RemoteAddr, fields[RemoteAddrKey])
	assert.Equal(request.Proto, fields[RequestProtoKey])
}
