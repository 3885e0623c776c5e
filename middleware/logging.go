// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/xmidt-org/ntsync/logging"
	"github.com/xmidt-org/ntsync/session"
	"go.uber.org/zap"
)

// Logging produces a middleware that logs the outcome of each call through the logger found
// in the context.  Successful calls are logged at debug, failures at info, since every
// failure of the command surface is a recoverable caller error.
func Logging(name string) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, value interface{}) (interface{}, error) {
			response, err := next(ctx, value)

			logger := logging.GetLogger(ctx)
			if err != nil {
				logger.Info("endpoint failed", zap.String("endpoint", name), zap.String("code", session.Code(err)), zap.Error(err))
			} else {
				logger.Debug("endpoint succeeded", zap.String("endpoint", name))
			}

			return response, err
		}
	}
}
