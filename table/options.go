// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package table

import "math"

const (
	DefaultShards          = 16
	DefaultInitialCapacity = 8
	DefaultMaxHandles      = math.MaxUint32
)

// Options is the configurable set of table settings
type Options struct {
	// Shards is the number of independently locked partitions
	Shards int

	// InitialCapacity is the starting size of each shard's map
	InitialCapacity int

	// MaxHandles is the largest handle a table will allocate.  Handles run from 1 through this value.
	MaxHandles uint32
}

func (o *Options) shards() int {
	if o != nil && o.Shards > 0 {
		return o.Shards
	}

	return DefaultShards
}

func (o *Options) initialCapacity() int {
	if o != nil && o.InitialCapacity > 0 {
		return o.InitialCapacity
	}

	return DefaultInitialCapacity
}

func (o *Options) maxHandles() uint32 {
	if o != nil && o.MaxHandles > 0 {
		return o.MaxHandles
	}

	return DefaultMaxHandles
}
