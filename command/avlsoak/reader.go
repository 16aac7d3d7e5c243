// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// time a snapshot is held before it is compared with itself
const holdTime = 5 * time.Millisecond

// takes the workers' published trees while they keep writing and
// verifies that a taken tree never changes
type reader struct {
	id    int
	log   *logger.L
	slots []*snapshot
	stats *counter.Group
	seen  []uint64 // last generation verified per slot
}

func newReader(id int, slots []*snapshot, stats *counter.Group, log *logger.L) *reader {
	return &reader{
		id:    id,
		log:   log,
		slots: slots,
		stats: stats,
		seen:  make([]uint64, len(slots)),
	}
}

// Run - verify snapshots until shutdown
func (r *reader) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Infof("reader: %d starting", r.id)
	r.stats.Get(statActive).Increment()
	defer r.stats.Get(statActive).Decrement()

loop:
	for {
		for i, slot := range r.slots {
			select {
			case <-shutdown:
				break loop
			default:
			}

			tree, generation := slot.take()
			if nil == tree || generation == r.seen[i] {
				continue
			}
			r.seen[i] = generation

			if err := r.verify(tree, holdTime); nil != err {
				r.stats.Get(statFailure).Increment()
				fault.Criticalf("reader: %d  slot: %d  generation: %d  %s error: %s", r.id, i, generation, classify(err), err)
			}
		}

		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
		}
	}

	r.log.Infof("reader: %d stopped", r.id)
}

// check a tree, wait, then confirm its content is as before
func (r *reader) verify(tree *avl.Tree, hold time.Duration) error {
	r.stats.Get(statSnapshot).Increment()

	keys := tree.Keys()
	count := tree.Count()
	if len(keys) != count {
		return fault.ErrCountMismatch
	}
	if err := tree.Check(); nil != err {
		return err
	}

	time.Sleep(hold)

	if tree.Count() != count {
		return fault.ErrSnapshotChanged
	}
	i := 0
	changed := false
	tree.Walk(func(p *avl.Node) bool {
		if i >= len(keys) || 0 != p.Key().Compare(keys[i]) {
			changed = true
			return false
		}
		i += 1
		return true
	})
	if changed || i != len(keys) {
		return fault.ErrSnapshotChanged
	}
	return nil
}
