// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package object implements reference-counted synchronization objects and the
wait/wake handshake used to satisfy "wait for any" requests.

An Object is shared by the handle table that names it and by every wait ticket
registered against it.  Mutable state is guarded by the object's own lock.  A
Ticket is claimed at most once: the first object that wins the compare-and-swap
on the ticket's signaled cell consumes a unit and resumes the waiting goroutine.
Every other object that races for the same ticket simply moves on to its next
waiter without consuming anything.
*/
package object
