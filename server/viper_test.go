// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfigureParseError(t *testing.T) {
	var (
		v = NewViper("ntsync_test")
		f = pflag.NewFlagSet("ntsync_test", pflag.ContinueOnError)
	)

	assert.Error(t, Configure(v, f, []string{"--unknown"}))
}

func testConfigureMissingFile(t *testing.T) {
	var (
		v = NewViper("ntsync_test")
		f = pflag.NewFlagSet("ntsync_test", pflag.ContinueOnError)
	)

	assert.Error(t, Configure(v, f, []string{"-f", filepath.Join(t.TempDir(), "nosuch.yaml")}))
}

func testConfigureNoFile(t *testing.T) {
	var (
		v = NewViper("ntsync_test_nosuchapp")
		f = pflag.NewFlagSet("ntsync_test", pflag.ContinueOnError)
	)

	f.Int("maxSessions", 10, "")
	require.NoError(t, Configure(v, f, []string{"--maxSessions", "5"}))
	assert.Equal(t, 5, v.GetInt("maxSessions"))
}

func testConfigureFile(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		file    = filepath.Join(t.TempDir(), "ntsync.yaml")
		v       = NewViper("ntsync_test")
		f       = pflag.NewFlagSet("ntsync_test", pflag.ContinueOnError)
	)

	require.NoError(os.WriteFile(file, []byte("server:\n  primary:\n    address: \":1234\"\n"), 0600))
	require.NoError(Configure(v, f, []string{"--file", file}))
	assert.Equal(":1234", v.GetString("server.primary.address"))
	assert.Equal(file, v.ConfigFileUsed())
}

func TestConfigure(t *testing.T) {
	t.Run("ParseError", testConfigureParseError)
	t.Run("MissingFile", testConfigureMissingFile)
	t.Run("NoFile", testConfigureNoFile)
	t.Run("File", testConfigureFile)
}
