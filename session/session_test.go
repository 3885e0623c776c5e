// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/ntsync/object"
	"github.com/xmidt-org/ntsync/table"
)

func assertState(a *assert.Assertions, s *Session, h table.Handle, expectedCount, expectedMax uint32) {
	count, max, err := s.ReadSemaphore(h)
	a.NoError(err)
	a.Equal(expectedCount, count, "count")
	a.Equal(expectedMax, max, "max")
}

// testSessionSemaphoreState follows the semaphore state scenario of the reference selftest
func testSessionSemaphoreState(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		registry = newTestRegistry(t)
		s        = newTestSession(t, &Options{MetricsProvider: registry})
		ctx      = context.Background()
	)

	_, err := s.CreateSemaphore(3, 2)
	assert.ErrorIs(err, object.ErrInvalidArgument)

	h, err := s.CreateSemaphore(2, 2)
	require.NoError(err)
	assert.NotEqual(table.InvalidHandle, h)
	assertState(assert, s, h, 2, 2)

	prev, err := s.ReleaseSemaphore(h, 0)
	assert.NoError(err)
	assert.Equal(uint32(2), prev)
	assertState(assert, s, h, 2, 2)

	_, err = s.ReleaseSemaphore(h, 1)
	assert.ErrorIs(err, object.ErrOverflow)
	assertState(assert, s, h, 2, 2)

	index, err := s.WaitAny(ctx, []table.Handle{h}, 123, time.Time{})
	assert.NoError(err)
	assert.Zero(index)
	assertState(assert, s, h, 1, 2)

	index, err = s.WaitAny(ctx, []table.Handle{h}, 123, time.Time{})
	assert.NoError(err)
	assert.Zero(index)
	assertState(assert, s, h, 0, 2)

	_, err = s.WaitAny(ctx, []table.Handle{h}, 123, time.Now())
	assert.ErrorIs(err, object.ErrTimedOut)
	assertState(assert, s, h, 0, 2)

	_, err = s.ReleaseSemaphore(h, 3)
	assert.ErrorIs(err, object.ErrOverflow)
	assertState(assert, s, h, 0, 2)

	prev, err = s.ReleaseSemaphore(h, 2)
	assert.NoError(err)
	assert.Zero(prev)
	assertState(assert, s, h, 2, 2)

	prev, err = s.ReleaseSemaphore(h, 0)
	assert.NoError(err)
	assert.Equal(uint32(2), prev)
	assertState(assert, s, h, 2, 2)

	require.NoError(s.Delete(h))
	assert.Equal(0, s.Len())

	assert.Equal(2.0, metricValue(t, registry, CommandCounter, CommandLabel, "wait_any", OutcomeLabel, object.CodeOK))
	assert.Equal(1.0, metricValue(t, registry, CommandCounter, CommandLabel, "wait_any", OutcomeLabel, object.CodeTimedOut))
	assert.Equal(2.0, metricValue(t, registry, CommandCounter, CommandLabel, "put_sem", OutcomeLabel, object.CodeOverflow))
	assert.Equal(1.0, metricValue(t, registry, CommandCounter, CommandLabel, "create_sem", OutcomeLabel, object.CodeInvalidArgument))
	assert.Equal(1.0, metricValue(t, registry, CommandCounter, CommandLabel, "delete", OutcomeLabel, object.CodeOK))
	assert.Equal(2.0, metricValue(t, registry, WaitDurationHistogram, OutcomeLabel, object.CodeOK))
	assert.Equal(1.0, metricValue(t, registry, WaitDurationHistogram, OutcomeLabel, object.CodeTimedOut))
}

func testSessionStaleHandle(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		s       = newTestSession(t, nil)
	)

	h, err := s.CreateSemaphore(1, 1)
	require.NoError(err)
	require.NoError(s.Delete(h))

	assert.ErrorIs(s.Delete(h), object.ErrInvalidHandle)
	_, _, err = s.ReadSemaphore(h)
	assert.ErrorIs(err, object.ErrInvalidHandle)
	_, err = s.ReleaseSemaphore(h, 1)
	assert.ErrorIs(err, object.ErrInvalidHandle)
	_, err = s.WaitAny(context.Background(), []table.Handle{h}, 1, time.Time{})
	assert.ErrorIs(err, object.ErrInvalidHandle)

	_, _, err = s.ReadSemaphore(table.InvalidHandle)
	assert.ErrorIs(err, object.ErrInvalidHandle)
}

func testSessionIndependentNamespaces(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		first   = newTestSession(t, nil)
		second  = newTestSession(t, nil)
	)

	h1, err := first.CreateSemaphore(1, 5)
	require.NoError(err)
	h2, err := second.CreateSemaphore(3, 5)
	require.NoError(err)

	// both tables allocate from the same starting point
	assert.Equal(h1, h2)
	assertState(assert, first, h1, 1, 5)
	assertState(assert, second, h2, 3, 5)

	require.NoError(first.Delete(h1))
	assertState(assert, second, h2, 3, 5)
}

func testSessionClose(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		s       = newTestSession(t, nil)
		ctx     = context.Background()
	)

	h, err := s.CreateSemaphore(0, 1)
	require.NoError(err)
	_, err = s.CreateSemaphore(0, 1)
	require.NoError(err)
	assert.Equal(2, s.Len())
	assert.False(s.Closed())

	require.NoError(s.Close())
	assert.True(s.Closed())
	assert.Zero(s.Len())
	assert.ErrorIs(s.Close(), object.ErrClosed)

	_, err = s.CreateSemaphore(0, 1)
	assert.ErrorIs(err, object.ErrClosed)
	assert.ErrorIs(s.Delete(h), object.ErrClosed)
	_, err = s.ReleaseSemaphore(h, 1)
	assert.ErrorIs(err, object.ErrClosed)
	_, _, err = s.ReadSemaphore(h)
	assert.ErrorIs(err, object.ErrClosed)
	_, err = s.WaitAny(ctx, []table.Handle{h}, 1, time.Time{})
	assert.ErrorIs(err, object.ErrClosed)
}

func testSessionCloseWithWaiter(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		s       = newTestSession(t, nil)
		result  = make(chan error, 1)

		ctx, cancel = context.WithCancel(context.Background())
	)

	defer cancel()
	h, err := s.CreateSemaphore(0, 1)
	require.NoError(err)

	go func() {
		_, err := s.WaitAny(ctx, []table.Handle{h}, 1, time.Time{})
		result <- err
	}()

	require.Eventually(func() bool { return waiters(s, h) == 1 }, 5*time.Second, time.Millisecond)
	require.NoError(s.Close())

	// the waiter holds its own reference, so it is still suspended
	select {
	case err := <-result:
		assert.Fail("the wait completed when its session closed", "%v", err)
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-result:
		assert.ErrorIs(err, object.ErrInterrupted)
	case <-time.After(5 * time.Second):
		assert.Fail("the wait was not interrupted")
	}
}

// waiters returns the number of tickets registered on h, or -1 if h cannot be looked up
func waiters(s *Session, h table.Handle) int {
	obj, err := s.table.Lookup(h)
	if err != nil {
		return -1
	}

	defer obj.Put()
	return obj.Waiters()
}

func TestSession(t *testing.T) {
	t.Run("SemaphoreState", testSessionSemaphoreState)
	t.Run("StaleHandle", testSessionStaleHandle)
	t.Run("IndependentNamespaces", testSessionIndependentNamespaces)
	t.Run("Close", testSessionClose)
	t.Run("CloseWithWaiter", testSessionCloseWithWaiter)
}

func TestCommand(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("create_sem", CommandCreateSemaphore.String())
	assert.Equal("delete", CommandDelete.String())
	assert.Equal("put_sem", CommandReleaseSemaphore.String())
	assert.Equal("wait_any", CommandWaitAny.String())
	assert.Equal("read_sem", CommandReadSemaphore.String())
	assert.Equal("command_5", Command(5).String())
}
