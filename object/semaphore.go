// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"fmt"
)

// ReadSemaphore returns a consistent snapshot of the semaphore's count and maximum.
func (o *Object) ReadSemaphore() (count, max uint32, err error) {
	if o.kind != KindSemaphore {
		return 0, 0, fmt.Errorf("%w: object is a %s", ErrInvalidHandle, o.kind)
	}

	o.mu.Lock()
	count, max = o.sem.count, o.sem.max
	o.mu.Unlock()
	return
}

// ReleaseSemaphore adds n units to the semaphore and offers them to registered waiters,
// returning the count as it was before the release.  A release that would wrap the counter
// or exceed the maximum fails with ErrOverflow and changes nothing.
//
// The increment and the wake attempt happen under a single critical section, so a released
// unit is always offered to every eligible waiter before any other goroutine can observe it.
func (o *Object) ReleaseSemaphore(n uint32) (prev uint32, err error) {
	if o.kind != KindSemaphore {
		return 0, fmt.Errorf("%w: object is a %s", ErrInvalidHandle, o.kind)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	prev = o.sem.count
	if err = o.putSemState(n); err != nil {
		return 0, err
	}

	o.wake()
	return prev, nil
}

// putSemState applies a release of n units.  The lock must be held.
func (o *Object) putSemState(n uint32) error {
	sum := o.sem.count + n
	if sum < o.sem.count || sum > o.sem.max {
		return fmt.Errorf("%w: %d + %d exceeds maximum %d", ErrOverflow, o.sem.count, n, o.sem.max)
	}

	o.sem.count = sum
	return nil
}
