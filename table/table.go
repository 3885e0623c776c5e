// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"fmt"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/xmidt-org/ntsync/object"
	"github.com/xmidt-org/ntsync/reclaim"
)

// shard is a single partition of the handle space.  The lock only keeps the map consistent;
// object lifetime is governed by reference counts and the reclamation domain.
type shard struct {
	sync.RWMutex
	data map[Handle]*object.Object
}

func (s *shard) load(h Handle) *object.Object {
	s.RLock()
	defer s.RUnlock()
	return s.data[h]
}

func (s *shard) tryAdd(h Handle, obj *object.Object) bool {
	if _, ok := s.data[h]; ok {
		return false
	}

	s.data[h] = obj
	return true
}

func (s *shard) remove(h Handle) *object.Object {
	s.Lock()
	defer s.Unlock()
	obj := s.data[h]
	delete(s.data, h)
	return obj
}

func (s *shard) drain() map[Handle]*object.Object {
	s.Lock()
	defer s.Unlock()
	data := s.data
	s.data = make(map[Handle]*object.Object)
	return data
}

func (s *shard) visit(visitor func(Handle, *object.Object)) {
	s.RLock()
	defer s.RUnlock()
	for h, obj := range s.data {
		visitor(h, obj)
	}
}

// Table is a concurrent handle table.  Lookups may race freely with inserts and removals,
// including removal of the very handle being looked up.
type Table struct {
	domain *reclaim.Domain
	shards []shard

	maxHandles uint32
	cursor     atomic.Uint32
	size       atomic.Int64
	closed     atomic.Bool
}

// New creates a Table whose lookups pin the given reclamation domain.  The domain must be the
// one that retires the table's objects, usually the domain of their object.Pool.
func New(domain *reclaim.Domain, o *Options) *Table {
	if domain == nil {
		domain = reclaim.New()
	}

	t := &Table{
		domain:     domain,
		shards:     make([]shard, o.shards()),
		maxHandles: o.maxHandles(),
	}

	capacity := o.initialCapacity()
	for i := range t.shards {
		t.shards[i].data = make(map[Handle]*object.Object, capacity)
	}

	return t
}

func (t *Table) shardFor(h Handle) *shard {
	hasher := fnv.New32a()
	hasher.Write(h.Bytes())
	return &t.shards[hasher.Sum32()%uint32(len(t.shards))]
}

// next advances the allocation cursor, wrapping around within 1..maxHandles
func (t *Table) next() Handle {
	for {
		c := t.cursor.Load()
		n := c + 1
		if n == 0 || n > t.maxHandles {
			n = 1
		}

		if t.cursor.CompareAndSwap(c, n) {
			return Handle(n)
		}
	}
}

// Insert stores obj under a freshly allocated handle.  The table takes over the caller's
// reference.  On error the caller still owns its reference.
func (t *Table) Insert(obj *object.Object) (Handle, error) {
	if t.closed.Load() {
		return InvalidHandle, object.ErrClosed
	}

	if t.size.Add(1) > int64(t.maxHandles) {
		t.size.Add(-1)
		return InvalidHandle, fmt.Errorf("%w: all %d handles are in use", object.ErrNoSpace, t.maxHandles)
	}

	for {
		h := t.next()
		s := t.shardFor(h)

		s.Lock()
		if t.closed.Load() {
			s.Unlock()
			t.size.Add(-1)
			return InvalidHandle, object.ErrClosed
		}

		added := s.tryAdd(h, obj)
		s.Unlock()

		if added {
			return h, nil
		}
	}
}

// Lookup returns the object for h with a new reference held on the caller's behalf.  An object
// whose last reference is being dropped concurrently is reported as missing.
func (t *Table) Lookup(h Handle) (*object.Object, error) {
	g := t.domain.Pin()
	defer g.Unpin()

	obj := t.shardFor(h).load(h)
	if obj == nil || !obj.TryGet() {
		return nil, fmt.Errorf("%w: %s", object.ErrInvalidHandle, h)
	}

	return obj, nil
}

// LookupTyped is Lookup restricted to objects of one kind
func (t *Table) LookupTyped(h Handle, kind object.Kind) (*object.Object, error) {
	obj, err := t.Lookup(h)
	if err != nil {
		return nil, err
	}

	if obj.Kind() != kind {
		obj.Put()
		return nil, fmt.Errorf("%w: %s is not a %s", object.ErrInvalidHandle, h, kind)
	}

	return obj, nil
}

// Remove detaches h so that no later Lookup can find it, and returns the table's reference.
// The caller must Put the returned object.
func (t *Table) Remove(h Handle) (*object.Object, error) {
	obj := t.shardFor(h).remove(h)
	if obj == nil {
		return nil, fmt.Errorf("%w: %s", object.ErrInvalidHandle, h)
	}

	t.size.Add(-1)
	return obj, nil
}

// Close removes and releases every handle.  Further inserts fail with object.ErrClosed.
// Close returns the number of handles that were released.
func (t *Table) Close() int {
	t.closed.Store(true)

	released := 0
	for i := range t.shards {
		for _, obj := range t.shards[i].drain() {
			t.size.Add(-1)
			obj.Put()
			released++
		}
	}

	return released
}

// Len returns the number of handles currently allocated
func (t *Table) Len() int {
	return int(t.size.Load())
}

// Visit applies visitor to each handle.  The visitor must not call back into the table, and must
// take its own reference if the object escapes the call.
func (t *Table) Visit(visitor func(Handle, *object.Object)) {
	for i := range t.shards {
		t.shards[i].visit(visitor)
	}
}
