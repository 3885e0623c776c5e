// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"sync"

	"github.com/go-kit/kit/metrics/provider"
	"github.com/xmidt-org/ntsync/reclaim"
)

// PoolOption configures a Pool
type PoolOption func(*Pool)

// WithDomain sets the reclamation domain shared with the tables that hold this pool's objects.
// A nil domain reverts to a private one.
func WithDomain(d *reclaim.Domain) PoolOption {
	return func(p *Pool) {
		if d != nil {
			p.domain = d
		} else {
			p.domain = reclaim.New()
		}
	}
}

// WithMeasures establishes the metrics a Pool reports to.
func WithMeasures(m Measures) PoolOption {
	return func(p *Pool) {
		p.measures = m
	}
}

// Pool allocates objects and recycles their storage once it is provably unobservable.
// Objects released to zero references are retired through the pool's reclamation domain and
// only become available for reuse after a grace period.
type Pool struct {
	domain   *reclaim.Domain
	measures Measures
	free     sync.Pool
}

// NewPool creates a Pool.  Without options, the pool has a private reclamation domain and
// discards its metrics.
func NewPool(options ...PoolOption) *Pool {
	p := &Pool{
		domain:   reclaim.New(),
		measures: NewMeasures(provider.NewDiscardProvider()),
	}

	for _, o := range options {
		o(p)
	}

	p.free.New = func() interface{} {
		return &Object{pool: p}
	}

	return p
}

// Domain returns the reclamation domain readers must pin before dereferencing an object they
// have not taken a reference on.
func (p *Pool) Domain() *reclaim.Domain {
	return p.domain
}

// NewSemaphore creates a semaphore holding one reference owned by the caller.
func (p *Pool) NewSemaphore(count, max uint32) (*Object, error) {
	if err := checkSemaphore(count, max); err != nil {
		return nil, err
	}

	o := newSemaphore(p.free.Get().(*Object), count, max)

	p.measures.Objects.Add(1.0)
	p.measures.Created.With("kind", KindSemaphore.String()).Add(1.0)
	return o, nil
}

// retire hands an object that just dropped to zero references to the reclamation domain.
func (p *Pool) retire(o *Object) {
	p.measures.Objects.Add(-1.0)
	p.measures.Retired.Add(1.0)
	p.domain.Retire(func() {
		o.reset()
		p.measures.Retired.Add(-1.0)
		p.measures.Reclaimed.Add(1.0)
		p.free.Put(o)
	})
}
