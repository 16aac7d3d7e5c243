// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sort"
	"sync/atomic"
)

// Counter - type to denote a counter that can be synchronously increments or decremented
// just a 64 bit unsigned integer
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Add - add n to a counter, returns new value
func (ic *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(ic), n)
}

// Decrement - subtract 1 from a counter, returns new value
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

// Group - a fixed set of named counters
//
// the set of names is decided at creation so lookups need no lock
type Group struct {
	names    []string
	counters map[string]*Counter
}

// NewGroup - create a zeroed counter for each name
func NewGroup(names ...string) *Group {
	g := &Group{
		names:    make([]string, 0, len(names)),
		counters: make(map[string]*Counter, len(names)),
	}
	for _, name := range names {
		if _, ok := g.counters[name]; ok {
			continue
		}
		g.names = append(g.names, name)
		g.counters[name] = new(Counter)
	}
	sort.Strings(g.names)
	return g
}

// Get - the named counter, nil if the name was not in the group
func (g *Group) Get(name string) *Counter {
	return g.counters[name]
}

// Each - call f for every counter in name order
func (g *Group) Each(f func(name string, value uint64)) {
	for _, name := range g.names {
		f(name, g.counters[name].Uint64())
	}
}
