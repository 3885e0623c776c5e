// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"testing"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/generic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/ntsync/reclaim"
)

// labeledCounter records every observation on one counter regardless of labels
type labeledCounter struct {
	*generic.Counter
	labelValues []string
}

func (c *labeledCounter) With(labelValues ...string) metrics.Counter {
	c.labelValues = append(c.labelValues, labelValues...)
	return c
}

func newTestMeasures() Measures {
	return Measures{
		Objects:   generic.NewGauge(ObjectGauge),
		Created:   &labeledCounter{Counter: generic.NewCounter(ObjectCreatedCounter)},
		Reclaimed: generic.NewCounter(ObjectReclaimedCounter),
		Retired:   generic.NewGauge(ObjectRetiredGauge),
	}
}

func testPoolDefaults(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		p       = NewPool()
	)

	require.NotNil(p.Domain())
	o, err := p.NewSemaphore(1, 1)
	require.NoError(err)
	assert.Equal(int32(1), o.Refs())
	o.Put()
	p.Domain().Synchronize()
}

func testPoolInvalid(t *testing.T) {
	var (
		assert   = assert.New(t)
		measures = newTestMeasures()
		p        = NewPool(WithMeasures(measures))
	)

	o, err := p.NewSemaphore(5, 1)
	assert.Nil(o)
	assert.ErrorIs(err, ErrInvalidArgument)
	assert.Zero(measures.Objects.(*generic.Gauge).Value())
	assert.Zero(measures.Created.(*labeledCounter).Value())
}

func testPoolValidAfterInvalid(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		p       = NewPool()
	)

	for i := 0; i < 3; i++ {
		o, err := p.NewSemaphore(3, 2)
		assert.Nil(o)
		assert.ErrorIs(err, ErrInvalidArgument)
	}

	for i := 0; i < 3; i++ {
		o, err := p.NewSemaphore(1, 1)
		require.NoError(err)
		require.NotNil(o)

		count, max, err := o.ReadSemaphore()
		assert.NoError(err)
		assert.Equal(uint32(1), count)
		assert.Equal(uint32(1), max)
		o.Put()
	}

	p.Domain().Synchronize()
}

func testPoolReclaimAfterGracePeriod(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		domain   = reclaim.New()
		measures = newTestMeasures()
		p        = NewPool(WithDomain(domain), WithMeasures(measures))
	)

	require.Equal(domain, p.Domain())
	o, err := p.NewSemaphore(0, 2)
	require.NoError(err)
	assert.Equal(1.0, measures.Objects.(*generic.Gauge).Value())
	assert.Equal(1.0, measures.Created.(*labeledCounter).Value())
	assert.Equal([]string{"kind", KindSemaphore.String()}, measures.Created.(*labeledCounter).labelValues)

	// a concurrent reader is pinned, so the object cannot be recycled yet
	g := domain.Pin()
	o.Put()
	assert.Zero(measures.Objects.(*generic.Gauge).Value())
	assert.Equal(1.0, measures.Retired.(*generic.Gauge).Value())
	assert.Equal(1, domain.Pending())

	assert.False(o.TryGet())
	assert.Equal(KindSemaphore, o.Kind(), "storage must not be reset while a reader is pinned")

	g.Unpin()
	domain.Synchronize()
	assert.Zero(domain.Pending())
	assert.Zero(measures.Retired.(*generic.Gauge).Value())
	assert.Equal(1.0, measures.Reclaimed.(*generic.Counter).Value())
}

func testPoolNilDomain(t *testing.T) {
	p := NewPool(WithDomain(nil))
	assert.NotNil(t, p.Domain())
}

func TestPool(t *testing.T) {
	t.Run("Defaults", testPoolDefaults)
	t.Run("Invalid", testPoolInvalid)
	t.Run("ValidAfterInvalid", testPoolValidAfterInvalid)
	t.Run("ReclaimAfterGracePeriod", testPoolReclaimAfterGracePeriod)
	t.Run("NilDomain", testPoolNilDomain)
}
