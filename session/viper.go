// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"github.com/go-kit/kit/metrics/provider"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	// SessionKey is the Viper subkey under which session configuration is stored
	SessionKey = "session"
)

// NewOptions unmarshals the SessionKey subtree of v into an Options, then attaches the
// non-configurable collaborators.  A nil Viper yields the defaults.
func NewOptions(logger *zap.Logger, p provider.Provider, v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v != nil {
		if sub := v.Sub(SessionKey); sub != nil {
			err := sub.Unmarshal(o, viper.DecodeHook(
				mapstructure.ComposeDecodeHookFunc(
					mapstructure.StringToTimeDurationHookFunc(),
					mapstructure.StringToSliceHookFunc(","),
				),
			))

			if err != nil {
				return nil, err
			}
		}
	}

	o.Logger = logger
	o.MetricsProvider = p
	return o, nil
}
