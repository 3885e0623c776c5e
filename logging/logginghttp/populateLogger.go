// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logginghttp

import (
	"net/http"

	"github.com/xmidt-org/ntsync/logging"
	"go.uber.org/zap"
)

const (
	RequestProtoKey  = "requestProto"
	RequestMethodKey = "requestMethod"
	RequestURIKey    = "requestURI"
	RemoteAddrKey    = "remoteAddr"
)

// StandardFields returns the request fields every request-scoped logger carries
func StandardFields(request *http.Request) []zap.Field {
	return []zap.Field{
		zap.String(RequestProtoKey, request.Proto),
		zap.String(RequestMethodKey, request.Method),
		zap.String(RequestURIKey, request.RequestURI),
		zap.String(RemoteAddrKey, request.RemoteAddr),
	}
}

// PopulateLogger is an alice-style middleware that places a request-scoped logger in each request's context
func PopulateLogger(base *zap.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = logging.DefaultLogger()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, request *http.Request) {
			ctx := logging.WithLogger(
				request.Context(),
				base.With(StandardFields(request)...),
			)

			next.ServeHTTP(rw, request.WithContext(ctx))
		})
	}
}
