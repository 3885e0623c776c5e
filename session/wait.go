// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/xmidt-org/ntsync/clock"
	"github.com/xmidt-org/ntsync/object"
	"github.com/xmidt-org/ntsync/table"
)

// WaitAny blocks until one of the objects named by handles satisfies the wait, the absolute
// deadline passes, or ctx is cancelled.  A zero deadline waits indefinitely.  On success, the
// position in handles of the satisfying object is returned and one unit of that object has been
// consumed on the caller's behalf.
//
// A wait that was satisfied is always reported as such, even when the deadline or a cancellation
// arrived at the same moment.  Otherwise object.ErrTimedOut or object.ErrInterrupted is returned.
func (s *Session) WaitAny(ctx context.Context, handles []table.Handle, owner uint32, deadline time.Time) (index uint32, err error) {
	started := s.clock.Now()
	defer func() {
		s.record(CommandWaitAny, err)
		s.measures.WaitDuration.With(OutcomeLabel, object.Code(err)).Observe(s.clock.Now().Sub(started).Seconds())
	}()

	if s.closed.Load() {
		return 0, object.ErrClosed
	}

	if len(handles) == 0 || len(handles) > MaxWaitCount {
		return 0, fmt.Errorf("%w: a wait requires between 1 and %d objects, not %d", object.ErrInvalidArgument, MaxWaitCount, len(handles))
	}

	if owner == 0 {
		return 0, fmt.Errorf("%w: a wait requires a nonzero owner", object.ErrInvalidArgument)
	}

	objs := make([]*object.Object, 0, len(handles))
	for _, h := range handles {
		obj, err := s.table.Lookup(h)
		if err != nil {
			for _, acquired := range objs {
				acquired.Put()
			}

			return 0, err
		}

		objs = append(objs, obj)
	}

	t := object.NewTicket(owner, objs)
	t.Register()
	t.Check()
	reason := s.suspend(ctx, t, deadline)
	t.Unregister()

	if i, ok := t.Signaled(); ok {
		return uint32(i), nil
	}

	return 0, reason
}

// suspend parks the calling goroutine until the ticket is signaled, returning the reason it
// stopped waiting otherwise.  The result is provisional: a claim may still land before the
// ticket is unregistered.
func (s *Session) suspend(ctx context.Context, t *object.Ticket, deadline time.Time) error {
	if _, ok := t.Signaled(); ok {
		return nil
	}

	if !deadline.IsZero() && !s.clock.Now().Before(deadline) {
		return object.ErrTimedOut
	}

	d := clock.NewDeadline(s.clock, deadline)
	defer d.Stop()

	for {
		select {
		case <-t.Woken():
			if _, ok := t.Signaled(); ok {
				return nil
			}

		case <-d.C():
			if d.Expired() {
				return object.ErrTimedOut
			}

		case <-ctx.Done():
			return fmt.Errorf("%w: %s", object.ErrInterrupted, ctx.Err())
		}
	}
}
