// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/xmidt-org/ntsync/semaphore"
)

// Concurrent produces a middleware that allows only as many concurrent calls to the decorated
// endpoint as s has resources.  A call that cannot acquire a resource before its context is
// cancelled fails with timeoutError, or ctx.Err() if timeoutError is nil.
func Concurrent(s semaphore.Interface, timeoutError error) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, value interface{}) (interface{}, error) {
			if err := s.AcquireCtx(ctx); err != nil {
				if timeoutError != nil {
					return nil, timeoutError
				}

				return nil, err
			}

			defer s.Release()
			return next(ctx, value)
		}
	}
}
