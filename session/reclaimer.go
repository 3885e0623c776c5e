// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"sync"

	"github.com/xmidt-org/ntsync/concurrent"
	"github.com/xmidt-org/ntsync/reclaim"
	"go.uber.org/zap"
)

// NewReclaimer produces a concurrent.Runnable that periodically advances a reclamation domain,
// so that objects retired while readers were pinned are eventually recycled even when no further
// objects are released.  On shutdown, the reclaimer drains everything still pending.
func NewReclaimer(d *reclaim.Domain, o *Options) concurrent.Runnable {
	var (
		logger   = o.logger()
		c        = o.clock()
		interval = o.reclaimInterval()
	)

	return concurrent.RunnableFunc(func(waitGroup *sync.WaitGroup, shutdown <-chan struct{}) error {
		ticker := c.NewTicker(interval)
		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()
			defer ticker.Stop()

			for {
				select {
				case <-shutdown:
					d.Synchronize()
					logger.Debug("reclaimer stopped", zap.Uint64("epoch", d.Epoch()))
					return

				case <-ticker.C():
					if d.Pending() > 0 {
						d.Advance()
					}
				}
			}
		}()

		return nil
	})
}
