// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"go.uber.org/zap"
)

const (
	StdoutFile = "stdout"

	JSONEncoding    = "json"
	ConsoleEncoding = "console"

	DefaultLevel = "info"
)

// Options stores the configuration of a Logger.
type Options struct {
	// File is the system file path for the log file.  If set to "stdout", this will log to os.Stdout.
	// Otherwise, the log is written to this file and rotated according to MaxSize, MaxAge and MaxBackups.
	File string `json:"file"`

	// MaxSize is the lumberjack MaxSize
	MaxSize int `json:"maxsize"`

	// MaxAge is the lumberjack MaxAge
	MaxAge int `json:"maxage"`

	// MaxBackups is the lumberjack MaxBackups
	MaxBackups int `json:"maxbackups"`

	// Encoding is either "json" or "console".  The default is "json".
	Encoding string `json:"encoding"`

	// Development turns on zap's development mode, which includes stacktraces on warnings
	Development bool `json:"development"`

	// Level is the error level to output: ERROR, INFO, WARN, or DEBUG.  Any unrecognized string,
	// including the empty string, is equivalent to passing INFO.
	Level string `json:"level"`
}

func (o *Options) rotate() bool {
	return o != nil && len(o.File) > 0 && o.File != StdoutFile
}

func (o *Options) level() string {
	if o != nil {
		switch o.Level {
		case "DEBUG", "debug", "INFO", "info", "WARN", "warn", "ERROR", "error":
			return o.Level
		}
	}

	return DefaultLevel
}

func (o *Options) encoding() string {
	if o != nil && o.Encoding == ConsoleEncoding {
		return ConsoleEncoding
	}

	return JSONEncoding
}

func (o *Options) config() zap.Config {
	var c zap.Config
	if o != nil && o.Development {
		c = zap.NewDevelopmentConfig()
	} else {
		c = zap.NewProductionConfig()
	}

	c.Encoding = o.encoding()
	c.Level, _ = zap.ParseAtomicLevel(o.level())
	c.OutputPaths = []string{StdoutFile}
	c.ErrorOutputPaths = []string{"stderr"}
	return c
}
