// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package concurrent

import (
	"context"
	"sync"

	"go.uber.org/fx"
)

// Hook binds a Runnable to an fx lifecycle.  The runnable starts in OnStart.  OnStop signals
// shutdown and waits for its goroutines, bounded by the stop context.
func Hook(runnable Runnable) fx.Hook {
	var (
		waitGroup *sync.WaitGroup
		shutdown  chan struct{}
	)

	return fx.Hook{
		OnStart: func(context.Context) (err error) {
			waitGroup, shutdown, err = Execute(runnable)
			return
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}

			close(shutdown)
			return WaitContext(ctx, waitGroup)
		},
	}
}
