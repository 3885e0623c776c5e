// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package reclaim provides deferred reclamation for objects that are read without locks.

The garbage collector keeps memory alive, but it cannot stop a recycled object from being
handed to a new owner while a stale reader still holds a pointer to it.  A Domain delays
recycling until every reader that could have seen the old incarnation has left its pinned
section.

	g := domain.Pin()
	obj := lookup(id)
	ok := obj.TryGet()
	g.Unpin()
*/
package reclaim
