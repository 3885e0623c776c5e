// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/xmidt-org/ntsync/xhttp"
)

const (
	// ServerKey is the viper subtree holding Options
	ServerKey = "server"

	PrimaryName = "primary"
	MetricsName = "metrics"

	DefaultPrimaryAddress = ":8080"
	DefaultMetricsAddress = ":9090"

	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultIdleTimeout       = 2 * time.Minute
)

// Options holds the configuration of each of the daemon's servers.  Write timeouts are left
// unset by default, since a wait may legitimately hold its response open until its deadline.
type Options struct {
	Primary xhttp.ServerOptions `mapstructure:"primary"`
	Metrics xhttp.ServerOptions `mapstructure:"metrics"`
}

// NewOptions unmarshals Options from the server subtree of v, filling in defaults
func NewOptions(v *viper.Viper) (*Options, error) {
	o := &Options{
		Primary: xhttp.ServerOptions{
			Address:           DefaultPrimaryAddress,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			IdleTimeout:       DefaultIdleTimeout,
		},
		Metrics: xhttp.ServerOptions{
			Address:           DefaultMetricsAddress,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			IdleTimeout:       DefaultIdleTimeout,
		},
	}

	if v == nil {
		return o, nil
	}

	sub := v.Sub(ServerKey)
	if sub == nil {
		return o, nil
	}

	err := sub.Unmarshal(o, viper.DecodeHook(
		mapstructure.StringToTimeDurationHookFunc(),
	))

	return o, err
}
