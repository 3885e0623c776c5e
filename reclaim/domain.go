// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package reclaim

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Domain is an epoch-based reclamation domain.  Readers Pin the domain around any access to
// shared pointers they did not take a reference on.  Writers Retire a callback once an object
// is unreachable; the callback runs only after every reader that could have observed the
// object has unpinned.
//
// Readers are tracked per epoch parity.  The epoch may advance from e to e+1 only when no
// reader pinned at e-1 remains, at which point everything retired during e-1 is released.
type Domain struct {
	epoch   atomic.Uint64
	readers [2]atomic.Int64
	pending atomic.Int64

	mu      sync.Mutex
	retired [2][]func()
}

// New creates an empty domain.
func New() *Domain {
	return new(Domain)
}

// Guard is a pinned reader section.  It must be unpinned exactly once.
type Guard struct {
	d      *Domain
	parity uint64
}

// Pin enters a reader section.  Pin never blocks and never takes a lock.
func (d *Domain) Pin() Guard {
	for {
		e := d.epoch.Load()
		d.readers[e&1].Add(1)
		if d.epoch.Load() == e {
			return Guard{d: d, parity: e & 1}
		}

		// the epoch moved while registering; retry so the count lands on the right parity
		d.readers[e&1].Add(-1)
	}
}

// Unpin leaves the reader section.
func (g Guard) Unpin() {
	if g.d.readers[g.parity].Add(-1) < 0 {
		panic("reclaim: unbalanced Unpin")
	}
}

// Retire schedules fn to run once no pinned reader can observe whatever fn releases.  The
// caller must have already made the object unreachable for new readers.
func (d *Domain) Retire(fn func()) {
	d.mu.Lock()
	e := d.epoch.Load()
	d.retired[e&1] = append(d.retired[e&1], fn)
	d.pending.Add(1)
	d.mu.Unlock()

	d.Advance()
}

// Advance attempts to move the domain one epoch forward, running every callback that became
// safe.  It returns false if a reader from the previous epoch is still pinned.
func (d *Domain) Advance() bool {
	d.mu.Lock()
	e := d.epoch.Load()
	old := (e + 1) & 1
	if d.readers[old].Load() != 0 {
		d.mu.Unlock()
		return false
	}

	ready := d.retired[old]
	d.retired[old] = nil
	d.epoch.Store(e + 1)
	d.mu.Unlock()

	for _, fn := range ready {
		fn()
	}

	d.pending.Add(-int64(len(ready)))
	return true
}

// Synchronize blocks until every callback retired before the call has run.  Reader sections
// are expected to be short, so this spins with Gosched rather than parking.
func (d *Domain) Synchronize() {
	target := d.epoch.Load() + 2
	for d.epoch.Load() < target {
		if !d.Advance() {
			runtime.Gosched()
		}
	}
}

// Epoch returns the current epoch.
func (d *Domain) Epoch() uint64 {
	return d.epoch.Load()
}

// Pending returns the number of retired callbacks that have not yet run.
func (d *Domain) Pending() int {
	return int(d.pending.Load())
}
