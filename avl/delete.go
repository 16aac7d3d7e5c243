// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the tree
//
// returns the receiver itself if the key is not present
func (tree *Tree) Remove(key Item) *Tree {
	root, _, removed := remove(key, tree.root)
	if !removed {
		return tree
	}
	return newTree(root)
}

// internal delete routine
func remove(key Item, p *Node) (*Node, delta, bool) {
	if nil == p { // key not in tree
		return nil, unchanged, false
	}

	switch p.key.Compare(key) {
	case +1: // p.key > key
		left, d, removed := remove(key, p.left)
		if !removed {
			return p, unchanged, false
		}
		n, d := renode(p.balance, change{side: leftSide, delta: d}, left, p.key, p.value, p.right)
		return n, d, true

	case -1: // p.key < key
		right, d, removed := remove(key, p.right)
		if !removed {
			return p, unchanged, false
		}
		n, d := renode(p.balance, change{side: rightSide, delta: d}, p.left, p.key, p.value, right)
		return n, d, true

	default: // found: delete p
		if nil == p.right {
			return p.left, shrunk, true
		}
		right, d, minKey, minValue := removeMin(p.right)
		n, d := renode(p.balance, change{side: rightSide, delta: d}, p.left, minKey, minValue, right)
		return n, d, true
	}
}

// delete: detach the lowest node of a sub-tree
//
// returns the remaining sub-tree, its height change and the key/value
// of the removed node; an empty sub-tree yields nil key and value
func removeMin(p *Node) (*Node, delta, Item, interface{}) {
	if nil == p {
		return nil, unchanged, nil, nil
	}
	if nil == p.left {
		return p.right, shrunk, p.key, p.value
	}
	left, d, key, value := removeMin(p.left)
	n, d := renode(p.balance, change{side: leftSide, delta: d}, left, p.key, p.value, p.right)
	return n, d, key, value
}
