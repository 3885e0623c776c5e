// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Kind is the type tag of a synchronization object.
type Kind uint8

const (
	// KindSemaphore is a counting semaphore with a fixed maximum.
	KindSemaphore Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindSemaphore:
		return "semaphore"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// semState is the semaphore payload.  Both fields are guarded by Object.mu.
type semState struct {
	count uint32
	max   uint32
}

// Object is a reference-counted synchronization object.  The zero value is not usable;
// objects are created with NewSemaphore or through a Pool.
//
// References are shared between the handle table, every registered ticket entry, and any
// in-flight lookup.  When the last reference is released the object is handed back to its
// Pool, which recycles the storage only once no concurrent lookup can still observe it.
type Object struct {
	refs atomic.Int32
	kind Kind

	// pool is nil for objects created outside of a Pool
	pool *Pool

	mu      sync.Mutex
	sem     semState
	waiters waitQueue
}

func checkSemaphore(count, max uint32) error {
	if count > max {
		return fmt.Errorf("%w: initial count %d exceeds maximum %d", ErrInvalidArgument, count, max)
	}

	return nil
}

// newSemaphore initializes storage that has already passed checkSemaphore
func newSemaphore(o *Object, count, max uint32) *Object {
	o.kind = KindSemaphore
	o.sem = semState{count: count, max: max}
	o.refs.Store(1)
	return o
}

// NewSemaphore creates a standalone semaphore holding one reference owned by the caller.
// Standalone objects are reclaimed by the garbage collector rather than a Pool.
func NewSemaphore(count, max uint32) (*Object, error) {
	if err := checkSemaphore(count, max); err != nil {
		return nil, err
	}

	return newSemaphore(new(Object), count, max), nil
}

// Kind returns the type tag of this object.
func (o *Object) Kind() Kind {
	return o.kind
}

// Refs returns a snapshot of the reference count.  It is only useful for diagnostics and tests.
func (o *Object) Refs() int32 {
	return o.refs.Load()
}

// Get takes an additional reference.  The caller must already own a reference.
func (o *Object) Get() {
	for {
		n := o.refs.Load()
		if n <= 0 {
			panic("object: reference taken on a released object")
		}

		if o.refs.CompareAndSwap(n, n+1) {
			return
		}
	}
}

// TryGet takes a reference only if the count has not already dropped to zero.  A false
// return means the object is being destroyed and must not be used.
func (o *Object) TryGet() bool {
	for {
		n := o.refs.Load()
		if n <= 0 {
			return false
		}

		if o.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Put releases one reference.  Releasing the last reference returns the object to its pool.
func (o *Object) Put() {
	n := o.refs.Add(-1)
	switch {
	case n < 0:
		o.refs.Add(1)
		panic("object: reference count underflow")
	case n == 0 && o.pool != nil:
		o.pool.retire(o)
	}
}

// available reports whether the object can satisfy one more waiter.  The lock must be held.
func (o *Object) available() bool {
	switch o.kind {
	case KindSemaphore:
		return o.sem.count > 0
	default:
		return false
	}
}

// consume takes the unit granted to a winning waiter.  The lock must be held.
func (o *Object) consume() {
	switch o.kind {
	case KindSemaphore:
		o.sem.count--
	}
}

// reset clears all state prior to recycling.  No other goroutine may reference o.
func (o *Object) reset() {
	o.kind = 0
	o.sem = semState{}
	o.waiters = waitQueue{}
}
