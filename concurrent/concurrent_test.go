// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package concurrent

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// success returns a Runnable that simulates a successfully started task
func success(runCount *int32) Runnable {
	return RunnableFunc(func(waitGroup *sync.WaitGroup, shutdown <-chan struct{}) error {
		atomic.AddInt32(runCount, 1)
		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()
			<-shutdown
		}()

		return nil
	})
}

// fail returns a Runnable that simulates a task that failed to start
func fail(runCount *int32) Runnable {
	return RunnableFunc(func(*sync.WaitGroup, <-chan struct{}) error {
		atomic.AddInt32(runCount, 1)
		return errors.New("expected")
	})
}

func waitTimeout(t *testing.T, waitGroup *sync.WaitGroup) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return WaitContext(ctx, waitGroup)
}

func TestExecute(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var (
			assert   = assert.New(t)
			runCount int32
		)

		waitGroup, shutdown, err := Execute(success(&runCount))
		assert.NoError(err)
		assert.Equal(int32(1), atomic.LoadInt32(&runCount))

		close(shutdown)
		assert.NoError(waitTimeout(t, waitGroup))
	})

	t.Run("Fail", func(t *testing.T) {
		var (
			assert   = assert.New(t)
			runCount int32
		)

		waitGroup, shutdown, err := Execute(fail(&runCount))
		assert.Error(err)
		assert.NotNil(shutdown)
		assert.NoError(waitTimeout(t, waitGroup))
	})
}

func TestWaitContext(t *testing.T) {
	t.Run("Drained", func(t *testing.T) {
		waitGroup := new(sync.WaitGroup)
		waitGroup.Add(1)
		go func() {
			time.Sleep(10 * time.Millisecond)
			waitGroup.Done()
		}()

		assert.NoError(t, waitTimeout(t, waitGroup))
	})

	t.Run("Timeout", func(t *testing.T) {
		waitGroup := new(sync.WaitGroup)
		waitGroup.Add(1)
		defer waitGroup.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, WaitContext(ctx, waitGroup), context.DeadlineExceeded)
	})

	t.Run("Cancelled", func(t *testing.T) {
		waitGroup := new(sync.WaitGroup)
		waitGroup.Add(1)
		defer waitGroup.Done()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, WaitContext(ctx, waitGroup), context.Canceled)
	})
}

func TestHook(t *testing.T) {
	var (
		require  = require.New(t)
		runCount int32
		lc       = fxtest.NewLifecycle(t)
	)

	lc.Append(Hook(success(&runCount)))
	lc.RequireStart()
	require.Equal(int32(1), atomic.LoadInt32(&runCount))
	lc.RequireStop()

	// stopping a hook that never started is a no-op
	require.NoError(Hook(success(&runCount)).OnStop(context.Background()))
}
