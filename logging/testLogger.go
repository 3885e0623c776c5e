// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// NewTestLogger produces a Logger that writes through the testing log, at the debug level unless
// a level is supplied.
func NewTestLogger(t zaptest.TestingT, level ...zapcore.Level) *zap.Logger {
	l := zapcore.DebugLevel
	if len(level) > 0 {
		l = level[0]
	}

	return zaptest.NewLogger(t, zaptest.Level(l))
}
