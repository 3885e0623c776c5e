// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/ntsync/clock/clocktest"
	"github.com/xmidt-org/ntsync/object"
	"github.com/xmidt-org/ntsync/table"
)

func testWaitAnyInvalidArguments(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		s       = newTestSession(t, nil)
		ctx     = context.Background()
	)

	h, err := s.CreateSemaphore(1, 1)
	require.NoError(err)

	tooMany := make([]table.Handle, MaxWaitCount+1)
	for i := range tooMany {
		tooMany[i] = h
	}

	_, err = s.WaitAny(ctx, nil, 1, time.Time{})
	assert.ErrorIs(err, object.ErrInvalidArgument)
	_, err = s.WaitAny(ctx, tooMany, 1, time.Time{})
	assert.ErrorIs(err, object.ErrInvalidArgument)
	_, err = s.WaitAny(ctx, []table.Handle{h}, 0, time.Time{})
	assert.ErrorIs(err, object.ErrInvalidArgument)

	// nothing was consumed by the rejected calls
	assertState(assert, s, h, 1, 1)

	index, err := s.WaitAny(ctx, tooMany[:MaxWaitCount], 1, time.Time{})
	assert.NoError(err)
	assert.Zero(index)
	assertState(assert, s, h, 0, 1)
}

func testWaitAnySetupUnwinds(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		s       = newTestSession(t, nil)
	)

	a, err := s.CreateSemaphore(0, 1)
	require.NoError(err)
	b, err := s.CreateSemaphore(0, 1)
	require.NoError(err)

	_, err = s.WaitAny(context.Background(), []table.Handle{a, b, 999}, 1, time.Time{})
	assert.ErrorIs(err, object.ErrInvalidHandle)

	for _, h := range []table.Handle{a, b} {
		obj, err := s.table.Lookup(h)
		require.NoError(err)
		assert.Equal(int32(2), obj.Refs(), "only the table and this lookup may hold references")
		assert.Zero(obj.Waiters())
		obj.Put()
	}
}

func testWaitAnySelfSatisfied(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		s       = newTestSession(t, nil)
	)

	empty, err := s.CreateSemaphore(0, 1)
	require.NoError(err)
	full, err := s.CreateSemaphore(1, 1)
	require.NoError(err)

	// satisfaction takes priority over an expired deadline and a cancelled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	index, err := s.WaitAny(ctx, []table.Handle{empty, full}, 1, time.Unix(1, 0))
	assert.NoError(err)
	assert.Equal(uint32(1), index)
	assertState(assert, s, empty, 0, 1)
	assertState(assert, s, full, 0, 1)
}

func testWaitAnyPastDeadline(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		s       = newTestSession(t, nil)
		result  = make(chan error, 1)
	)

	h, err := s.CreateSemaphore(0, 1)
	require.NoError(err)

	go func() {
		_, err := s.WaitAny(context.Background(), []table.Handle{h}, 1, time.Now().Add(-time.Minute))
		result <- err
	}()

	select {
	case err := <-result:
		assert.ErrorIs(err, object.ErrTimedOut)
	case <-time.After(5 * time.Second):
		assert.Fail("a wait with a past deadline did not return")
	}

	assert.Zero(waiters(s, h))
}

func testWaitAnyWokenByRelease(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		s       = newTestSession(t, nil)
		result  = make(chan uint32, 1)
	)

	a, err := s.CreateSemaphore(0, 1)
	require.NoError(err)
	b, err := s.CreateSemaphore(0, 1)
	require.NoError(err)

	go func() {
		index, err := s.WaitAny(context.Background(), []table.Handle{a, b}, 1, time.Now().Add(time.Minute))
		assert.NoError(err)
		result <- index
	}()

	require.Eventually(func() bool { return waiters(s, b) == 1 }, 5*time.Second, time.Millisecond)
	prev, err := s.ReleaseSemaphore(b, 1)
	require.NoError(err)
	assert.Zero(prev)

	select {
	case index := <-result:
		assert.Equal(uint32(1), index)
	case <-time.After(5 * time.Second):
		assert.Fail("the wait was not woken by the release")
	}

	assertState(assert, s, a, 0, 1)
	assertState(assert, s, b, 0, 1)
	assert.Zero(waiters(s, a))
	assert.Zero(waiters(s, b))
}

func testWaitAnyInterrupted(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		s       = newTestSession(t, nil)
		result  = make(chan error, 1)

		ctx, cancel = context.WithCancel(context.Background())
	)

	h, err := s.CreateSemaphore(0, 1)
	require.NoError(err)

	go func() {
		_, err := s.WaitAny(ctx, []table.Handle{h}, 1, time.Time{})
		result <- err
	}()

	require.Eventually(func() bool { return waiters(s, h) == 1 }, 5*time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-result:
		assert.ErrorIs(err, object.ErrInterrupted)
		assert.ErrorContains(err, context.Canceled.Error())
	case <-time.After(5 * time.Second):
		assert.Fail("the wait was not interrupted")
	}

	assert.Zero(waiters(s, h))

	// the unit released afterward is not lost to the abandoned wait
	_, err = s.ReleaseSemaphore(h, 1)
	require.NoError(err)
	assertState(assert, s, h, 1, 1)
}

func testWaitAnyDeadlineClock(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		c      = new(clocktest.Mock)
		timer  = new(clocktest.MockTimer)
		timerC = make(chan time.Time)
		start  = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		at     = start.Add(10 * time.Second)
		result = make(chan error, 1)
	)

	// opening the session, starting the wait, the early deadline check, arming the timer
	c.OnNow(start).Times(4)
	c.OnNow(start.Add(6 * time.Second)).Once()
	c.OnNow(at)
	c.OnNewTimer(10*time.Second, timer).Once()
	timer.OnC(timerC)
	timer.OnReset(4*time.Second, false).Once()
	timer.OnStop(true).Once()

	s := newTestSession(t, &Options{Clock: c})
	h, err := s.CreateSemaphore(0, 1)
	require.NoError(err)

	go func() {
		_, err := s.WaitAny(context.Background(), []table.Handle{h}, 1, at)
		result <- err
	}()

	// an early wakeup must re-arm rather than time out
	timerC <- start.Add(6 * time.Second)
	select {
	case err := <-result:
		assert.Fail("the wait ended on an early timer", "%v", err)
	case <-time.After(20 * time.Millisecond):
	}

	timerC <- at
	select {
	case err := <-result:
		assert.ErrorIs(err, object.ErrTimedOut)
	case <-time.After(5 * time.Second):
		assert.Fail("the wait did not time out")
	}

	c.AssertExpectations(t)
	timer.AssertExpectations(t)
}

func testWaitAnyDeletedWhileWaiting(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		s       = newTestSession(t, nil)
		result  = make(chan error, 1)
	)

	h, err := s.CreateSemaphore(0, 1)
	require.NoError(err)
	obj, err := s.table.Lookup(h)
	require.NoError(err)

	go func() {
		_, err := s.WaitAny(context.Background(), []table.Handle{h}, 1, time.Now().Add(50*time.Millisecond))
		result <- err
	}()

	require.Eventually(func() bool { return obj.Waiters() == 1 }, 5*time.Second, time.Millisecond)
	require.NoError(s.Delete(h))

	select {
	case err := <-result:
		assert.ErrorIs(err, object.ErrTimedOut)
	case <-time.After(5 * time.Second):
		assert.Fail("the wait on a deleted object did not time out")
	}

	// the test's reference is now the only one left
	assert.Zero(obj.Waiters())
	assert.Equal(int32(1), obj.Refs())
	obj.Put()

	s.pool.Domain().Synchronize()
	assert.Zero(s.pool.Domain().Pending())
}

func testWaitAnyExactlyOnce(t *testing.T) {
	const (
		waiters  = 20
		releases = 30
	)

	var (
		assert  = assert.New(t)
		require = require.New(t)
		s       = newTestSession(t, nil)
		wg      sync.WaitGroup
		indexes = make(chan uint32, waiters)
	)

	h, err := s.CreateSemaphore(0, releases)
	require.NoError(err)

	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func(owner uint32) {
			defer wg.Done()
			index, err := s.WaitAny(context.Background(), []table.Handle{h}, owner, time.Now().Add(time.Minute))
			assert.NoError(err)
			indexes <- index
		}(uint32(i + 1))
	}

	var releasers sync.WaitGroup
	for i := 0; i < releases; i++ {
		releasers.Add(1)
		go func() {
			defer releasers.Done()
			_, err := s.ReleaseSemaphore(h, 1)
			assert.NoError(err)
		}()
	}

	releasers.Wait()
	wg.Wait()
	close(indexes)

	satisfied := 0
	for index := range indexes {
		assert.Zero(index)
		satisfied++
	}

	assert.Equal(waiters, satisfied)
	assertState(assert, s, h, releases-waiters, releases)
}

func TestWaitAny(t *testing.T) {
	t.Run("InvalidArguments", testWaitAnyInvalidArguments)
	t.Run("SetupUnwinds", testWaitAnySetupUnwinds)
	t.Run("SelfSatisfied", testWaitAnySelfSatisfied)
	t.Run("PastDeadline", testWaitAnyPastDeadline)
	t.Run("WokenByRelease", testWaitAnyWokenByRelease)
	t.Run("Interrupted", testWaitAnyInterrupted)
	t.Run("DeadlineClock", testWaitAnyDeadlineClock)
	t.Run("DeletedWhileWaiting", testWaitAnyDeletedWhileWaiting)
	t.Run("ExactlyOnce", testWaitAnyExactlyOnce)
}
