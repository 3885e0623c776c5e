// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"sync/atomic"
)

// Signaled is the write-once cell recording which entry satisfied a ticket.  The zero value
// is unset.  The only transition it exposes is Claim, which succeeds for exactly one caller.
type Signaled struct {
	// v holds index+1, so that zero means unset
	v atomic.Uint32
}

// Claim attempts to move the cell from unset to index.  Only the first successful Claim
// authorizes its caller to treat the corresponding object as the satisfying one.
func (s *Signaled) Claim(index int) bool {
	return s.v.CompareAndSwap(0, uint32(index)+1)
}

// Load returns the claimed index, or false if the cell is still unset.
func (s *Signaled) Load() (int, bool) {
	v := s.v.Load()
	if v == 0 {
		return -1, false
	}

	return int(v - 1), true
}

// entry is one object's view of a ticket.  The list links are guarded by the lock of obj.
type entry struct {
	prev, next *entry
	linked     bool

	obj    *Object
	ticket *Ticket
	index  int
}

// waitQueue is an intrusive FIFO list of entries.  It is guarded by the owning object's lock.
type waitQueue struct {
	head, tail *entry
	len        int
}

func (q *waitQueue) pushBack(e *entry) {
	e.prev, e.next = q.tail, nil
	if q.tail != nil {
		q.tail.next = e
	} else {
		q.head = e
	}

	q.tail = e
	e.linked = true
	q.len++
}

func (q *waitQueue) remove(e *entry) {
	if !e.linked {
		return
	}

	if e.prev != nil {
		e.prev.next = e.next
	} else {
		q.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		q.tail = e.prev
	}

	e.prev, e.next, e.linked = nil, nil, false
	q.len--
}

// Ticket tracks a single wait for any of several objects.  A ticket is used by exactly one
// waiting goroutine; the objects it is registered against only ever touch it through Claim
// under their own locks.
type Ticket struct {
	owner    uint32
	signaled Signaled
	woken    chan struct{}
	entries  []entry
}

// NewTicket builds a ticket over objs.  The ticket takes ownership of one reference per
// object, which Unregister releases.  Nothing is registered until Register is called.
func NewTicket(owner uint32, objs []*Object) *Ticket {
	t := &Ticket{
		owner:   owner,
		woken:   make(chan struct{}, 1),
		entries: make([]entry, len(objs)),
	}

	for i, obj := range objs {
		t.entries[i] = entry{
			obj:    obj,
			ticket: t,
			index:  i,
		}
	}

	return t
}

// Owner returns the identity of the requester.
func (t *Ticket) Owner() uint32 {
	return t.owner
}

// Len returns the number of objects this ticket waits on.
func (t *Ticket) Len() int {
	return len(t.entries)
}

// Register places one entry on each object's waiter list.  Each object is locked on its own;
// no two objects are ever locked at the same time.
func (t *Ticket) Register() {
	for i := range t.entries {
		e := &t.entries[i]
		e.obj.mu.Lock()
		e.obj.waiters.pushBack(e)
		e.obj.mu.Unlock()
	}
}

// Check lets the ticket satisfy itself from objects whose state already qualifies.  It stops
// as soon as the ticket is signaled.
func (t *Ticket) Check() {
	for i := range t.entries {
		if _, ok := t.signaled.Load(); ok {
			return
		}

		obj := t.entries[i].obj
		obj.mu.Lock()
		obj.wake()
		obj.mu.Unlock()
	}
}

// Unregister removes every entry from its object's waiter list and releases the ticket's
// references.  Once Unregister returns no object can claim this ticket, so Signaled is final.
func (t *Ticket) Unregister() {
	for i := range t.entries {
		e := &t.entries[i]
		if e.obj == nil {
			continue
		}

		e.obj.mu.Lock()
		e.obj.waiters.remove(e)
		e.obj.mu.Unlock()

		e.obj.Put()
		e.obj = nil
	}
}

// Woken returns the channel that receives a value when the ticket is claimed.  Receiving from
// it does not by itself mean the ticket is signaled; callers must check Signaled.
func (t *Ticket) Woken() <-chan struct{} {
	return t.woken
}

// Signaled returns the index of the object that satisfied this ticket, if any.
func (t *Ticket) Signaled() (int, bool) {
	return t.signaled.Load()
}

// claim is the single-winner transition used by the wake protocol.
func (t *Ticket) claim(index int) bool {
	if !t.signaled.Claim(index) {
		return false
	}

	select {
	case t.woken <- struct{}{}:
	default:
	}

	return true
}
