// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// a running set of workers and readers
type soak struct {
	stats    *counter.Group
	slots    []*snapshot
	list     []*worker
	workers  *background.T
	readers  *background.T
	reloader *background.T
}

// start all background processes
func startSoak(c *Configuration) (*soak, error) {
	seed := c.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	logger.New("main").Infof("seed: %d", seed)

	s := &soak{
		stats: counter.NewGroup(statNames...),
		slots: make([]*snapshot, c.Workers),
		list:  make([]*worker, c.Workers),
	}

	workers := make(background.Processes, c.Workers)
	for i := 0; i < c.Workers; i += 1 {
		s.slots[i] = &snapshot{}
		w, err := newWorker(i, c, seed+int64(i), s.slots[i], s.stats, logger.New(fmt.Sprintf("worker-%d", i)))
		if nil != err {
			return nil, err
		}
		s.list[i] = w
		workers[i] = w
	}

	readers := make(background.Processes, c.Readers)
	for i := 0; i < c.Readers; i += 1 {
		readers[i] = newReader(i, s.slots, s.stats, logger.New(fmt.Sprintf("reader-%d", i)))
	}

	s.workers = background.Start(workers, nil)
	s.readers = background.Start(readers, nil)
	logger.New("main").Infof("workers: %d  readers: %d", s.workers.Count(), s.readers.Count())
	return s, nil
}

// follow changes to the configuration file
func (s *soak) watch(fileName string, arguments []string) error {
	r, err := newReloader(fileName, arguments, s.list, logger.New("reload"))
	if nil != err {
		return err
	}
	s.reloader = background.Start(background.Processes{r}, nil)
	return nil
}

// stop writers before readers so the final snapshots are still verified
func (s *soak) stop() {
	if nil != s.reloader {
		s.reloader.Stop()
	}
	s.workers.Stop()
	s.readers.Stop()
}

// log all counters, returns the failure count
func (s *soak) report(log *logger.L) uint64 {
	s.stats.Each(func(name string, value uint64) {
		log.Infof("%s: %d", name, value)
	})
	for i, slot := range s.slots {
		tree, generation := slot.take()
		if nil != tree {
			log.Infof("worker: %d  generation: %d  count: %d  height: %d", i, generation, tree.Count(), tree.Height())
		}
	}
	return s.stats.Get(statFailure).Uint64()
}

// short description of an error's class for failure messages
func classify(err error) string {
	switch {
	case fault.IsErrInvalid(err):
		return "structure"
	case fault.IsErrProcess(err):
		return "model"
	case fault.IsErrNotFound(err):
		return "missing"
	case fault.IsErrExists(err):
		return "extra"
	default:
		return "unclassified"
	}
}
