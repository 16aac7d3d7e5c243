// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultWorkers       = 4
	defaultReaders       = 2
	defaultOperations    = 10000
	defaultKeyRange      = 4096
	defaultCheckInterval = 1000

	defaultLogDirectory = "log"
	defaultLogFile      = "avlsoak.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - the soak run parameters
type Configuration struct {
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Workers       int                  `gluamapper:"workers" json:"workers"`
	Readers       int                  `gluamapper:"readers" json:"readers"`
	Operations    int                  `gluamapper:"operations" json:"operations"`
	KeyRange      uint64               `gluamapper:"key_range" json:"key_range"`
	Seed          int64                `gluamapper:"seed" json:"seed"`
	Rate          float64              `gluamapper:"rate" json:"rate"`
	CheckInterval int                  `gluamapper:"check_interval" json:"check_interval"`
	Duration      int                  `gluamapper:"duration" json:"duration"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, arguments []string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		Workers:       defaultWorkers,
		Readers:       defaultReaders,
		Operations:    defaultOperations,
		KeyRange:      defaultKeyRange,
		CheckInterval: defaultCheckInterval,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				"main":            "info",
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, arguments...); err != nil {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// force all relevant items to be absolute paths
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}
	if "" != options.PidFile && !filepath.IsAbs(options.PidFile) {
		options.PidFile = filepath.Join(dataDirectory, options.PidFile)
	}

	return options, nil
}

// check ranges of all numeric values
func (c *Configuration) validate() error {
	switch {
	case c.Workers < 1:
		return fault.ErrInvalidWorkerCount
	case c.Readers < 0:
		return fault.ErrInvalidReaderCount
	case c.Operations < 1:
		return fault.ErrInvalidOperationCount
	case c.KeyRange < 1:
		return fault.ErrInvalidKeyRange
	case c.Rate < 0:
		return fault.ErrInvalidRate
	case c.CheckInterval < 1:
		return fault.ErrInvalidCheckInterval
	case c.Duration < 0:
		return fault.ErrInvalidDuration
	}
	return nil
}
