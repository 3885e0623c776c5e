// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"log"

	"go.uber.org/zap"
)

// NewErrorLog adapts a zap Logger for APIs that require a stdlib logger, such as http.Server.ErrorLog.
// Everything written to the returned logger goes out at the error level.
func NewErrorLog(serverName string, logger *zap.Logger) *log.Logger {
	if logger == nil {
		logger = DefaultLogger()
	}

	l, err := zap.NewStdLogAt(logger.With(zap.String("serverName", serverName)), zap.ErrorLevel)
	if err != nil {
		// only possible with an invalid level
		return zap.NewStdLog(logger)
	}

	return l
}
