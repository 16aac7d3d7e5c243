// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

func TestConfigurationDefaults(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return {}`)
	defer cleanup()

	c, err := getConfiguration(fileName, nil)
	require.Nil(t, err, "get configuration")

	dir := filepath.Dir(fileName)
	assert.Equal(t, defaultWorkers, c.Workers, "workers")
	assert.Equal(t, defaultReaders, c.Readers, "readers")
	assert.Equal(t, defaultOperations, c.Operations, "operations")
	assert.Equal(t, uint64(defaultKeyRange), c.KeyRange, "key range")
	assert.Equal(t, defaultCheckInterval, c.CheckInterval, "check interval")
	assert.Equal(t, 0.0, c.Rate, "rate")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), c.Logging.Directory, "log directory")
	assert.Equal(t, "", c.PidFile, "pid file")
}

func TestConfigurationValues(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
local M = {}
M.pidfile = "avlsoak.pid"
M.workers = 2
M.readers = 0
M.operations = 500
M.key_range = tonumber(arg[1]) or 10
M.seed = 99
M.rate = 1000
M.check_interval = 50
M.duration = 30
M.logging = {
    directory = "/var/log/avlsoak",
    file = "soak.log",
    size = 4096,
    count = 12,
    levels = {
        main = "debug",
    },
}
return M
`)
	defer cleanup()

	c, err := getConfiguration(fileName, []string{"256"})
	require.Nil(t, err, "get configuration")

	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "avlsoak.pid"), c.PidFile, "pid file")
	assert.Equal(t, 2, c.Workers, "workers")
	assert.Equal(t, 0, c.Readers, "readers")
	assert.Equal(t, 500, c.Operations, "operations")
	assert.Equal(t, uint64(256), c.KeyRange, "key range")
	assert.Equal(t, int64(99), c.Seed, "seed")
	assert.Equal(t, 1000.0, c.Rate, "rate")
	assert.Equal(t, 50, c.CheckInterval, "check interval")
	assert.Equal(t, 30, c.Duration, "duration")
	assert.Equal(t, "/var/log/avlsoak", c.Logging.Directory, "absolute log directory kept")
	assert.Equal(t, "soak.log", c.Logging.File, "log file")
	assert.Equal(t, "debug", c.Logging.Levels["main"], "main level")
}

func TestConfigurationInvalid(t *testing.T) {
	cases := []struct {
		text string
		err  error
	}{
		{`return { workers = 0 }`, fault.ErrInvalidWorkerCount},
		{`return { readers = -1 }`, fault.ErrInvalidReaderCount},
		{`return { operations = 0 }`, fault.ErrInvalidOperationCount},
		{`return { key_range = 0 }`, fault.ErrInvalidKeyRange},
		{`return { rate = -2 }`, fault.ErrInvalidRate},
		{`return { check_interval = 0 }`, fault.ErrInvalidCheckInterval},
		{`return { duration = -1 }`, fault.ErrInvalidDuration},
		{`return "text"`, fault.ErrInvalidConfigurationResult},
	}

	for i, item := range cases {
		fileName, cleanup := writeConfiguration(t, item.text)
		_, err := getConfiguration(fileName, nil)
		cleanup()
		assert.Equal(t, item.err, err, "%d: %s", i, item.text)
	}
}
