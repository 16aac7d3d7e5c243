// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "avlsoak")
	if nil != err {
		panic(fmt.Sprintf("temporary directory error: %s", err))
	}

	err = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "avlsoak.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if nil != err {
		panic(fmt.Sprintf("logger initialise error: %s", err))
	}
	if err = fault.Initialise(); nil != err {
		panic(fmt.Sprintf("fault initialise error: %s", err))
	}

	rc := m.Run()

	fault.Finalise()
	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

// write a configuration file into a fresh directory
func writeConfiguration(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "avlsoak-conf")
	require.Nil(t, err, "temporary directory")
	fileName := filepath.Join(dir, "avlsoak.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	require.Nil(t, err, "write configuration")
	return fileName, func() { os.RemoveAll(dir) }
}
