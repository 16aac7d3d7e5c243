// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - return the node with the lowest key greater than key, or nil
// if no more nodes; key need not be present in the tree
func (tree *Tree) Next(key Item) *Node {
	var candidate *Node
	p := tree.root
	for nil != p {
		if +1 == p.key.Compare(key) { // p.key > key
			candidate = p
			p = p.left
		} else {
			p = p.right
		}
	}
	return candidate
}

// Prev - return the node with the highest key less than key, or nil
// if no more nodes
func (tree *Tree) Prev(key Item) *Node {
	var candidate *Node
	p := tree.root
	for nil != p {
		if -1 == p.key.Compare(key) { // p.key < key
			candidate = p
			p = p.right
		} else {
			p = p.left
		}
	}
	return candidate
}

// Walk - visit every node in increasing key order until f returns false
func (tree *Tree) Walk(f func(*Node) bool) {
	walk(tree.root, f)
}

func walk(p *Node, f func(*Node) bool) bool {
	if nil == p {
		return true
	}
	return walk(p.left, f) && f(p) && walk(p.right, f)
}

// Keys - all keys in increasing order
func (tree *Tree) Keys() []Item {
	keys := make([]Item, 0, tree.Count())
	tree.Walk(func(p *Node) bool {
		keys = append(keys, p.key)
		return true
	})
	return keys
}
