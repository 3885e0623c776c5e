// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// FileFlagName is the name of the command-line flag naming the configuration file
	FileFlagName = "file"

	// FileFlagShorthand is the short form of FileFlagName
	FileFlagShorthand = "f"
)

// NewViper creates a Viper that looks for a configuration file named after the application in
// /etc/<application>, $HOME/.<application>, and the working directory, in that order.  Environment
// variables prefixed with the application name override file values.
func NewViper(applicationName string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(applicationName)
	v.AddConfigPath(fmt.Sprintf("/etc/%s", applicationName))
	v.AddConfigPath(fmt.Sprintf("$HOME/.%s", applicationName))
	v.AddConfigPath(".")

	v.SetEnvPrefix(applicationName)
	v.AutomaticEnv()

	return v
}

// ParseAndBind parses the arguments, os.Args[1:] if nil, and binds the resulting flags to viper
func ParseAndBind(v *viper.Viper, flagSet *pflag.FlagSet, arguments []string) error {
	if arguments == nil {
		arguments = os.Args[1:]
	}

	if err := flagSet.Parse(arguments); err != nil {
		return err
	}

	return v.BindPFlags(flagSet)
}

// Configure adds the file flag to flagSet, parses the arguments, and reads the configuration.
// An explicitly named file must exist.  Without one, a missing configuration file just leaves
// every setting at its default.
func Configure(v *viper.Viper, flagSet *pflag.FlagSet, arguments []string) error {
	file := flagSet.StringP(FileFlagName, FileFlagShorthand, "", "the configuration file to use")
	if err := ParseAndBind(v, flagSet, arguments); err != nil {
		return err
	}

	if len(*file) > 0 {
		v.SetConfigFile(*file)
		return v.ReadInConfig()
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return err
}
