// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package object

// wake offers the object's available units to its waiters in registration order.  The lock
// must be held.
//
// A unit is consumed only when this object wins the claim on a waiter's ticket.  A failed
// claim means another object already satisfied that ticket, so the walk moves on without
// consuming anything.
func (o *Object) wake() {
	for e := o.waiters.head; e != nil; e = e.next {
		if !o.available() {
			return
		}

		if e.ticket.claim(e.index) {
			o.consume()
		}
	}
}

// Waiters returns the number of tickets registered against this object.
func (o *Object) Waiters() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.waiters.len
}
