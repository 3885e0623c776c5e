// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"strings"
	"testing"
	"time"

	"github.com/go-kit/kit/metrics/provider"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/ntsync/clock"
	"go.uber.org/zap"
)

func testOptionsDefaults(t *testing.T) {
	for _, o := range []*Options{nil, new(Options)} {
		assert := assert.New(t)
		assert.Zero(o.maxSessions())
		assert.Equal(DefaultReclaimInterval, o.reclaimInterval())
		assert.Empty(o.listeners())
		assert.NotNil(o.logger())
		assert.NotNil(o.metricsProvider())
		assert.Equal(clock.System(), o.clock())
	}

	assert.Nil(t, (*Options)(nil).tableOptions())
}

func testOptionsCustom(t *testing.T) {
	var (
		assert = assert.New(t)
		logger = zap.NewNop()
		p      = provider.NewDiscardProvider()
		o      = &Options{
			MaxSessions:     10,
			TableShards:     3,
			MaxHandles:      100,
			ReclaimInterval: time.Second,
			Listeners:       []Listener{func(*Event) {}},
			Logger:          logger,
			MetricsProvider: p,
		}
	)

	assert.Equal(10, o.maxSessions())
	assert.Equal(time.Second, o.reclaimInterval())
	assert.Len(o.listeners(), 1)
	assert.Equal(logger, o.logger())
	assert.Equal(p, o.metricsProvider())

	to := o.tableOptions()
	assert.Equal(3, to.Shards)
	assert.Equal(uint32(100), to.MaxHandles)
}

func testNewOptionsFromViper(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		logger  = zap.NewNop()
		v       = viper.New()
	)

	v.SetConfigType("json")
	require.NoError(v.ReadConfig(strings.NewReader(`{
		"session": {
			"maxSessions": 25,
			"tableShards": 8,
			"maxHandles": 1000,
			"reclaimInterval": "250ms"
		}
	}`)))

	o, err := NewOptions(logger, nil, v)
	require.NoError(err)
	assert.Equal(25, o.MaxSessions)
	assert.Equal(8, o.TableShards)
	assert.Equal(uint32(1000), o.MaxHandles)
	assert.Equal(250*time.Millisecond, o.ReclaimInterval)
	assert.Equal(logger, o.Logger)

	o, err = NewOptions(logger, nil, nil)
	require.NoError(err)
	assert.Zero(o.MaxSessions)
	assert.Equal(DefaultReclaimInterval, o.reclaimInterval())
}

func TestOptions(t *testing.T) {
	t.Run("Defaults", testOptionsDefaults)
	t.Run("Custom", testOptionsCustom)
	t.Run("NewOptionsFromViper", testNewOptionsFromViper)
}
