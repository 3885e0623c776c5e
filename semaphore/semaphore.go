// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package semaphore

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/xmidt-org/ntsync/object"
	"github.com/xmidt-org/ntsync/table"
)

var (
	// ErrTimeout is returned when a timeout occurs when waiting on a semaphore resource.
	ErrTimeout = errors.New("The semaphore could not be acquired within the timeout")

	// past is a deadline that has always elapsed, used for nonblocking acquisition
	past = time.Unix(1, 0)

	// owners hands out the nonzero wait owner of each semaphore
	owners atomic.Uint32
)

// Session is the subset of a session's command surface a semaphore needs
type Session interface {
	CreateSemaphore(count, max uint32) (table.Handle, error)
	ReleaseSemaphore(h table.Handle, count uint32) (uint32, error)
	WaitAny(ctx context.Context, handles []table.Handle, owner uint32, deadline time.Time) (uint32, error)
	Delete(h table.Handle) error
}

// Interface represents a semaphore, either binary or counting.  When any acquire method is successful,
// Release *must* be called to return the resource to the semaphore.
type Interface interface {
	// Acquire acquires a resource, blocking indefinitely.
	Acquire() error

	// AcquireWait attempts to acquire a resource before the given time channel becomes signaled.
	// If the resource was acquired, this method returns nil.  If the time channel gets signaled
	// before a resource is available, ErrTimeout is returned.
	AcquireWait(<-chan time.Time) error

	// AcquireCtx attempts to acquire a resource before the given context is canceled.  If the resource
	// was acquired, this method returns nil.  Otherwise, this method returns ctx.Err().
	AcquireCtx(context.Context) error

	// TryAcquire attempts to acquire a resource, without blocking.  This method returns true
	// if the resource was acquired, false otherwise.
	TryAcquire() bool

	// Release relinquishes control of a resource.  Releasing more resources than were acquired
	// returns an error wrapping object.ErrOverflow.
	Release() error
}

// New constructs a semaphore with the given count, backed by a new handle in s.
func New(s Session, count int) (Interface, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: the count must be positive", object.ErrInvalidArgument)
	}

	if uint64(count) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: the count %d does not fit in 32 bits", object.ErrInvalidArgument, count)
	}

	h, err := s.CreateSemaphore(uint32(count), uint32(count))
	if err != nil {
		return nil, err
	}

	return &semaphore{
		session: s,
		handle:  h,
		owner:   nextOwner(),
	}, nil
}

// Mutex is just syntactic sugar for New(s, 1).  The returned object is a binary semaphore.
func Mutex(s Session) (Interface, error) {
	return New(s, 1)
}

func nextOwner() uint32 {
	for {
		if o := owners.Add(1); o != 0 {
			return o
		}
	}
}

// semaphore is the internal Interface implementation
type semaphore struct {
	session Session
	handle  table.Handle
	owner   uint32
}

func (s *semaphore) wait(ctx context.Context, deadline time.Time) error {
	_, err := s.session.WaitAny(ctx, []table.Handle{s.handle}, s.owner, deadline)
	return err
}

func (s *semaphore) Acquire() error {
	return s.wait(context.Background(), time.Time{})
}

func (s *semaphore) AcquireWait(t <-chan time.Time) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-t:
			cancel()
		case <-ctx.Done():
		}
	}()

	err := s.wait(ctx, time.Time{})
	if errors.Is(err, object.ErrInterrupted) {
		return ErrTimeout
	}

	return err
}

func (s *semaphore) AcquireCtx(ctx context.Context) error {
	err := s.wait(ctx, time.Time{})
	if errors.Is(err, object.ErrInterrupted) {
		return ctx.Err()
	}

	return err
}

func (s *semaphore) TryAcquire() bool {
	return s.wait(context.Background(), past) == nil
}

func (s *semaphore) Release() error {
	_, err := s.session.ReleaseSemaphore(s.handle, 1)
	return err
}
