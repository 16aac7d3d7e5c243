// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sync"

	"github.com/bitmark-inc/avltree/avl"
)

// a worker's most recently published tree
//
// the tree itself is immutable, only the reference is guarded
type snapshot struct {
	sync.RWMutex
	tree       *avl.Tree
	generation uint64
}

// replace the published tree
func (s *snapshot) publish(tree *avl.Tree) uint64 {
	s.Lock()
	defer s.Unlock()

	s.tree = tree
	s.generation += 1
	return s.generation
}

// the published tree, nil before the first publish
func (s *snapshot) take() (*avl.Tree, uint64) {
	s.RLock()
	defer s.RUnlock()

	return s.tree, s.generation
}
