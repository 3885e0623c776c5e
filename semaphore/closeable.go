// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package semaphore

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/xmidt-org/ntsync/object"
)

// ErrClosed is returned when a closeable semaphore has been closed
var ErrClosed = errors.New("the semaphore has been closed")

// Closeable represents a semaphore than can be closed.  Closing deletes the backing handle and
// interrupts every goroutine blocked acquiring, which then receives ErrClosed.
type Closeable interface {
	io.Closer
	Interface

	// Closed returns a channel that is closed when this semaphore has been closed
	Closed() <-chan struct{}
}

// NewCloseable returns a closeable semaphore with the given count.
func NewCloseable(s Session, count int) (Closeable, error) {
	i, err := New(s, count)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &closeable{
		semaphore: i.(*semaphore),
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// CloseableMutex returns a Closeable binary semaphore
func CloseableMutex(s Session) (Closeable, error) {
	return NewCloseable(s, 1)
}

type closeable struct {
	*semaphore

	state  atomic.Bool
	ctx    context.Context
	cancel context.CancelFunc
}

func (cs *closeable) Close() error {
	if !cs.state.CompareAndSwap(false, true) {
		return ErrClosed
	}

	cs.cancel()
	return cs.session.Delete(cs.handle)
}

func (cs *closeable) Closed() <-chan struct{} {
	return cs.ctx.Done()
}

func (cs *closeable) checkClosed() bool {
	return cs.state.Load()
}

// wait acquires bound to both ctx and the lifetime of this semaphore
func (cs *closeable) wait(ctx context.Context, deadline time.Time) error {
	if cs.checkClosed() {
		return ErrClosed
	}

	waitCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(cs.ctx, cancel)
	defer stop()

	err := cs.semaphore.wait(waitCtx, deadline)
	switch {
	case err == nil && cs.checkClosed():
		// the unit belongs to a deleted handle, so there is nothing to return it to
		return ErrClosed
	case errors.Is(err, object.ErrInterrupted) && cs.checkClosed():
		return ErrClosed
	case errors.Is(err, object.ErrInvalidHandle) && cs.checkClosed():
		return ErrClosed
	default:
		return err
	}
}

func (cs *closeable) Acquire() error {
	return cs.wait(context.Background(), time.Time{})
}

func (cs *closeable) AcquireWait(t <-chan time.Time) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-t:
			cancel()
		case <-ctx.Done():
		}
	}()

	err := cs.wait(ctx, time.Time{})
	if errors.Is(err, object.ErrInterrupted) {
		return ErrTimeout
	}

	return err
}

func (cs *closeable) AcquireCtx(ctx context.Context) error {
	err := cs.wait(ctx, time.Time{})
	if errors.Is(err, object.ErrInterrupted) {
		return ctx.Err()
	}

	return err
}

func (cs *closeable) TryAcquire() bool {
	return cs.wait(context.Background(), past) == nil
}

func (cs *closeable) Release() error {
	if cs.checkClosed() {
		return ErrClosed
	}

	return cs.semaphore.Release()
}
