// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/ratelimit"
)

// names of the statistics counters
const (
	statInsert    = "insert"
	statRemove    = "remove"
	statLookup    = "lookup"
	statCheck     = "check"
	statPublish   = "publish"
	statSnapshot  = "snapshot"
	statFailure   = "failure"
	statRateLimit = "rate-limit"
	statActive    = "active"
)

var statNames = []string{
	statInsert, statRemove, statLookup, statCheck,
	statPublish, statSnapshot, statFailure, statRateLimit,
	statActive,
}

// one writer: a private tree and the map it must agree with
type worker struct {
	id            int
	log           *logger.L
	random        *rand.Rand
	limiter       *rate.Limiter
	stats         *counter.Group
	slot          *snapshot
	operations    int
	keyRange      uint64
	checkInterval int

	tree   *avl.Tree
	model  map[avl.Uint64]uint64
	serial uint64
}

func newWorker(id int, c *Configuration, seed int64, slot *snapshot, stats *counter.Group, log *logger.L) (*worker, error) {
	limiter, err := ratelimit.Adjustable(c.Rate)
	if nil != err {
		return nil, err
	}
	return &worker{
		id:            id,
		log:           log,
		random:        rand.New(rand.NewSource(seed)),
		limiter:       limiter,
		stats:         stats,
		slot:          slot,
		operations:    c.Operations,
		keyRange:      c.KeyRange,
		checkInterval: c.CheckInterval,
		tree:          avl.New(),
		model:         make(map[avl.Uint64]uint64),
	}, nil
}

// Run - rounds of random operations until shutdown
func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {
	w.log.Infof("worker: %d starting", w.id)
	w.stats.Get(statActive).Increment()
	defer w.stats.Get(statActive).Decrement()

	round := 0
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}

		failures := w.round(shutdown)
		generation := w.slot.publish(w.tree)
		w.stats.Get(statPublish).Increment()

		round += 1
		w.log.Debugf("worker: %d round: %d  count: %d  height: %d  generation: %d  failures: %d",
			w.id, round, w.tree.Count(), w.tree.Height(), generation, failures)
	}

	w.log.Infof("worker: %d stopped after: %d rounds", w.id, round)
}

// one round of operations, returns the number of failures
//
// operations run in batches of at most one second's worth at the
// current rate so a lowered rate or a shutdown is noticed promptly
func (w *worker) round(shutdown <-chan struct{}) int {
	failures := 0
	for done := 0; done < w.operations; {
		select {
		case <-shutdown:
			return failures
		default:
		}

		n := w.batchSize(w.operations - done)
		if err := ratelimit.LimitN(w.limiter, n, w.operations); nil != err {
			w.stats.Get(statRateLimit).Increment()
		}
		failures += w.batch(n)
		done += n
	}
	return failures
}

// operations allowed in the next batch
func (w *worker) batchSize(remaining int) int {
	if rate.Inf == w.limiter.Limit() {
		return remaining
	}
	n := w.limiter.Burst()
	if perSecond := int(w.limiter.Limit()); perSecond < n {
		n = perSecond
	}
	if n < 1 {
		n = 1
	}
	if n > remaining {
		n = remaining
	}
	return n
}

// run n operations, the operation counts are added to the shared
// statistics once at the end
func (w *worker) batch(n int) int {
	counts := make(map[string]uint64, 4)
	defer func() {
		for name, c := range counts {
			w.stats.Get(name).Add(c)
		}
	}()

	failures := 0
	for i := 0; i < n; i += 1 {
		if err := w.step(counts); nil != err {
			failures += 1
			w.stats.Get(statFailure).Increment()
			fault.Criticalf("worker: %d  serial: %d  %s error: %s", w.id, w.serial, classify(err), err)
			w.resync()
		}
	}
	return failures
}

// a single random operation and its verification
func (w *worker) step(counts map[string]uint64) error {
	w.serial += 1
	k := avl.Uint64(w.random.Uint64() % w.keyRange)

	switch n := w.random.Intn(100); {
	case n < 50:
		w.tree = w.tree.Insert(k, w.serial)
		w.model[k] = w.serial
		counts[statInsert] += 1

		v, ok := w.tree.Lookup(k)
		if !ok {
			return fault.ErrMissingKey
		}
		if v != w.serial {
			return fault.ErrLookupMismatch
		}

	case n < 80:
		w.tree = w.tree.Remove(k)
		delete(w.model, k)
		counts[statRemove] += 1

		if _, ok := w.tree.Lookup(k); ok {
			return fault.ErrUnexpectedKey
		}

	default:
		counts[statLookup] += 1

		v, ok := w.tree.Lookup(k)
		expected, present := w.model[k]
		if ok != present {
			if present {
				return fault.ErrMissingKey
			}
			return fault.ErrUnexpectedKey
		}
		if ok && v != expected {
			return fault.ErrLookupMismatch
		}
	}

	if w.tree.Count() != len(w.model) {
		return fault.ErrCountMismatch
	}

	if 0 == w.serial%uint64(w.checkInterval) {
		counts[statCheck] += 1
		if err := w.tree.Check(); nil != err {
			return err
		}
	}
	return nil
}

// rebuild the tree from the model after a failure so that one fault
// is reported once
func (w *worker) resync() {
	tree := avl.New()
	for k, v := range w.model {
		tree = tree.Insert(k, v)
	}
	fault.PanicIfError("resynchronised tree check", tree.Check())
	w.tree = tree
	w.log.Warnf("worker: %d resynchronised: %d keys", w.id, tree.Count())
}
