// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	// LoggingKey is the Viper subkey under which logging should be stored.
	LoggingKey = "log"
)

// Sub returns the standard child Viper, using LoggingKey, for this package.
// If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(LoggingKey)
	}

	return nil
}

// FromViper produces an Options from a (possibly nil) Viper instance.
func FromViper(v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v != nil {
		if err := v.Unmarshal(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// NewFromViper builds a Logger from the LoggingKey subtree of v
func NewFromViper(v *viper.Viper) (*zap.Logger, error) {
	o, err := FromViper(Sub(v))
	if err != nil {
		return nil, err
	}

	return New(o)
}
