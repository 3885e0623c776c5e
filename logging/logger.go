// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultLogger returns the logger used when no other logger has been configured
func DefaultLogger() *zap.Logger {
	return sallust.Default()
}

// New constructs a zap Logger from a set of Options.  A nil Options produces a production
// JSON logger writing to stdout at the info level.
func New(o *Options) (*zap.Logger, error) {
	config := o.config()
	if !o.rotate() {
		return config.Build()
	}

	level, err := zap.ParseAtomicLevel(o.level())
	if err != nil {
		return nil, err
	}

	var encoder zapcore.Encoder
	if config.Encoding == ConsoleEncoding {
		encoder = zapcore.NewConsoleEncoder(config.EncoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(config.EncoderConfig)
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   o.File,
		MaxSize:    o.MaxSize,
		MaxAge:     o.MaxAge,
		MaxBackups: o.MaxBackups,
	})

	options := []zap.Option{zap.AddCaller()}
	if o.Development {
		options = append(options, zap.Development())
	}

	return zap.New(zapcore.NewCore(encoder, sink, level), options...), nil
}
