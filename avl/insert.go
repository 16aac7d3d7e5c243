// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value of
// an existing key; returns the updated tree, the receiver is unchanged
func (tree *Tree) Insert(key Item, value interface{}) *Tree {
	root, _ := insert(key, value, tree.root)
	return newTree(root)
}

// internal routine for insert
func insert(key Item, value interface{}, p *Node) (*Node, delta) {
	if nil == p { // insert new node
		return newNode(Balanced, nil, key, value, nil), grown
	}

	switch p.key.Compare(key) {
	case +1: // p.key > key
		left, d := insert(key, value, p.left)
		return renode(p.balance, change{side: leftSide, delta: d}, left, p.key, p.value, p.right)

	case -1: // p.key < key
		right, d := insert(key, value, p.right)
		return renode(p.balance, change{side: rightSide, delta: d}, p.left, p.key, p.value, right)

	default:
		return newNode(p.balance, p.left, key, value, p.right), unchanged
	}
}
