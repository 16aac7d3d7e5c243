// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/ratelimit"
)

// re-reads the configuration file when it changes and applies the new
// rate to every worker; other settings only take effect on restart
type reloader struct {
	log       *logger.L
	watcher   *fsnotify.Watcher
	filePath  string
	arguments []string
	workers   []*worker
}

// the directory is watched rather than the file so that editors
// replacing the file by rename are still seen
func newReloader(fileName string, arguments []string, workers []*worker, log *logger.L) (*reloader, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(filePath)); nil != err {
		watcher.Close()
		return nil, err
	}

	return &reloader{
		log:       log,
		watcher:   watcher,
		filePath:  filePath,
		arguments: arguments,
		workers:   workers,
	}, nil
}

// Run - process file events until shutdown
func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Infof("watching: %q", r.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-r.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != r.filePath {
				continue loop
			}
			if !eventIsChange(event) {
				r.log.Debugf("ignored event: %v", event)
				continue loop
			}
			r.reload()

		case err, ok := <-r.watcher.Errors:
			if !ok {
				break loop
			}
			r.log.Errorf("watcher error: %s", err)
		}
	}

	r.watcher.Close()
	r.log.Info("stopped")
}

// apply the rate from the current file, a bad file keeps the old rate
func (r *reloader) reload() {
	c, err := getConfiguration(r.filePath, r.arguments)
	if nil != err {
		if fault.IsErrInvalid(err) {
			r.log.Warnf("reload: %q  rejected configuration: %s", r.filePath, err)
		} else {
			r.log.Errorf("reload: %q  load error: %s", r.filePath, err)
		}
		return
	}

	for _, w := range r.workers {
		if err := ratelimit.Adjust(w.limiter, c.Rate); nil != err {
			r.log.Errorf("worker: %d  adjust rate error: %s", w.id, err)
		}
	}
	r.log.Infof("rate: %g", c.Rate)
}

func eventIsChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
