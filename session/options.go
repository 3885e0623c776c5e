// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"time"

	"github.com/go-kit/kit/metrics/provider"
	"github.com/xmidt-org/ntsync/clock"
	"github.com/xmidt-org/ntsync/logging"
	"github.com/xmidt-org/ntsync/table"
	"go.uber.org/zap"
)

const (
	DefaultReclaimInterval = 100 * time.Millisecond
)

// Options represents the configurable options for a Manager and the sessions it opens
type Options struct {
	// MaxSessions is the maximum number of concurrently open sessions.  If nonpositive, there is no limit.
	MaxSessions int

	// TableShards is the number of shards in each session's handle table
	TableShards int

	// MaxHandles is the largest handle a session will allocate.  If zero, the full 32-bit range is used.
	MaxHandles uint32

	// ReclaimInterval is how often the reclaimer advances the reclamation epoch
	ReclaimInterval time.Duration

	// Listeners receive session lifecycle events
	Listeners []Listener

	// Logger is the zap logger used by the manager and its sessions.  If not set, the default logger is used.
	Logger *zap.Logger `json:"-"`

	// MetricsProvider is the go-kit factory for metrics.  If not set, metrics are discarded.
	MetricsProvider provider.Provider `json:"-"`

	// Clock drives wait deadlines and the reclaimer.  If not set, the system clock is used.
	Clock clock.Interface `json:"-"`
}

func (o *Options) maxSessions() int {
	if o != nil && o.MaxSessions > 0 {
		return o.MaxSessions
	}

	return 0
}

func (o *Options) tableOptions() *table.Options {
	if o != nil {
		return &table.Options{
			Shards:     o.TableShards,
			MaxHandles: o.MaxHandles,
		}
	}

	return nil
}

func (o *Options) reclaimInterval() time.Duration {
	if o != nil && o.ReclaimInterval > 0 {
		return o.ReclaimInterval
	}

	return DefaultReclaimInterval
}

func (o *Options) listeners() []Listener {
	if o != nil {
		return o.Listeners
	}

	return nil
}

func (o *Options) logger() *zap.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}

	return logging.DefaultLogger()
}

func (o *Options) metricsProvider() provider.Provider {
	if o != nil && o.MetricsProvider != nil {
		return o.MetricsProvider
	}

	return provider.NewDiscardProvider()
}

func (o *Options) clock() clock.Interface {
	if o != nil && o.Clock != nil {
		return o.Clock
	}

	return clock.System()
}
