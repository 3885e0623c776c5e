// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"fmt"

	"github.com/go-kit/log"
	"go.uber.org/zap"
)

const (
	// MessageKey is the go-kit key whose value becomes the zap message
	MessageKey = "msg"

	// ErrorKey is the go-kit key whose value is logged at the error level
	ErrorKey = "err"

	// MissingValue fills in the value of a trailing key with no value
	MissingValue = "(MISSING)"
)

// Logger exposes a zap Logger as a go-kit log.Logger, for libraries such as go-kit transports
// that only accept the latter.
type Logger struct {
	*zap.Logger
}

var _ log.Logger = Logger{}

// Log implements log.Logger.  An entry carrying an ErrorKey is written at the error level,
// all others at info.
func (l Logger) Log(keyvals ...interface{}) error {
	var (
		message string
		isError bool
		fields  = make([]zap.Field, 0, (len(keyvals)+1)/2)
	)

	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		var value interface{} = MissingValue
		if i+1 < len(keyvals) {
			value = keyvals[i+1]
		}

		switch key {
		case MessageKey:
			message = fmt.Sprint(value)
			continue
		case ErrorKey:
			isError = true
		}

		fields = append(fields, zap.Any(key, value))
	}

	if isError {
		l.Logger.Error(message, fields...)
	} else {
		l.Logger.Info(message, fields...)
	}

	return nil
}
