// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a persistent AVL balanced tree
//
// Every node carries a balance tag (left taller, balanced, right
// taller) and the tree is never modified in place: Insert and Remove
// return a new tree that shares all untouched sub-trees with the old
// one.  Any number of goroutines may read a tree value concurrently;
// to keep a single "current" tree, hold the *Tree behind a mutex and
// swap it after each update.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.  The rebuild of each
// node on the way back up the recursion only uses the old balance tag
// and the height change reported by the child, so subtree heights are
// never recomputed.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.
package avl
