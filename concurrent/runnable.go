// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package concurrent

import (
	"context"
	"sync"
)

// Runnable is a background task.  Run must not block: any goroutines it starts are added to
// waitGroup and must exit once shutdown is closed.
type Runnable interface {
	Run(waitGroup *sync.WaitGroup, shutdown <-chan struct{}) error
}

// RunnableFunc is a function type that implements Runnable
type RunnableFunc func(*sync.WaitGroup, <-chan struct{}) error

func (r RunnableFunc) Run(waitGroup *sync.WaitGroup, shutdown <-chan struct{}) error {
	return r(waitGroup, shutdown)
}

// Execute starts a runnable with a fresh wait group and shutdown channel.  Close the returned
// channel to signal shutdown, then wait on the group.
func Execute(runnable Runnable) (waitGroup *sync.WaitGroup, shutdown chan struct{}, err error) {
	waitGroup = new(sync.WaitGroup)
	shutdown = make(chan struct{})
	err = runnable.Run(waitGroup, shutdown)
	return
}

// WaitContext waits on a sync.WaitGroup until it drains or ctx is done, in which case ctx.Err()
// is returned.  An abandoned wait leaves one goroutine behind until the group drains.
func WaitContext(ctx context.Context, waitGroup *sync.WaitGroup) error {
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		waitGroup.Wait()
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
