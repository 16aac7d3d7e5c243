// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type nested struct {
	Directory string            `gluamapper:"directory"`
	Levels    map[string]string `gluamapper:"levels"`
}

type testConfiguration struct {
	Workers  int     `gluamapper:"workers"`
	KeyRange uint64  `gluamapper:"key_range"`
	Rate     float64 `gluamapper:"rate"`
	Name     string  `gluamapper:"name"`
	Nested   nested  `gluamapper:"nested"`
}

func writeFile(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err, "temporary directory")
	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	require.Nil(t, err, "write configuration")
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParse(t *testing.T) {
	fileName, cleanup := writeFile(t, `
local M = {}
M.workers = 4
M.key_range = 1000
M.rate = 2.5
M.name = arg[1] or "default"
M.nested = {
    directory = "log",
    levels = {
        main = "info",
        DEFAULT = "critical",
    },
}
return M
`)
	defer cleanup()

	c := testConfiguration{
		Workers: 1,
	}
	err := configuration.ParseConfigurationFile(fileName, &c, "from-argument")
	require.Nil(t, err, "parse")

	assert.Equal(t, 4, c.Workers, "workers")
	assert.Equal(t, uint64(1000), c.KeyRange, "key range")
	assert.Equal(t, 2.5, c.Rate, "rate")
	assert.Equal(t, "from-argument", c.Name, "name")
	assert.Equal(t, "log", c.Nested.Directory, "directory")
	assert.Equal(t, "info", c.Nested.Levels["main"], "main level")
}

func TestDefaultsKept(t *testing.T) {
	fileName, cleanup := writeFile(t, `return { name = arg[1] or "default" }`)
	defer cleanup()

	c := testConfiguration{
		Workers: 3,
	}
	err := configuration.ParseConfigurationFile(fileName, &c)
	require.Nil(t, err, "parse")
	assert.Equal(t, 3, c.Workers, "default overwritten")
	assert.Equal(t, "default", c.Name, "name")
}

func TestInvalid(t *testing.T) {
	fileName, cleanup := writeFile(t, `return 42`)
	defer cleanup()

	c := testConfiguration{}
	assert.Equal(t, fault.ErrInvalidConfigurationResult, configuration.ParseConfigurationFile(fileName, &c), "non-table result")
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, c), "not a pointer")

	n := 5
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, &n), "not a struct")

	err := configuration.ParseConfigurationFile(filepath.Join(os.TempDir(), "no-such-file.conf"), &c)
	assert.NotNil(t, err, "missing file")
}
