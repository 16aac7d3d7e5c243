// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
//
// a Tree value is never modified after it is returned, so it can be
// shared freely between goroutines
type Tree struct {
	root *Node
}

// Node - a branch of the tree, a nil *Node is the empty tree
type Node struct {
	left    *Node       // left sub-tree
	right   *Node       // right sub-tree
	key     Item        // key part for ordering
	value   interface{} // value part for data storage
	balance Balance     // -1, 0, +1
	size    int         // nodes in this sub-tree including this one
}

// the canonical empty tree
var emptyTree = &Tree{}

// New - create an initially empty tree
func New() *Tree {
	return emptyTree
}

// Empty - same as New
func Empty() *Tree {
	return emptyTree
}

// wrap a root node, re-using the empty tree
func newTree(root *Node) *Tree {
	if nil == root {
		return emptyTree
	}
	return &Tree{
		root: root,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.root.Size()
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - number of levels in the tree
//
// only follows the taller child at each level as given by the
// balance tags
func (tree *Tree) Height() int {
	h := 0
	for p := tree.root; nil != p; h += 1 {
		if LeftTaller == p.balance {
			p = p.left
		} else if RightTaller == p.balance {
			p = p.right
		} else if nil != p.left {
			p = p.left
		} else {
			p = p.right
		}
	}
	return h
}

// build a new node, only the size is derived
func newNode(balance Balance, left *Node, key Item, value interface{}, right *Node) *Node {
	return &Node{
		left:    left,
		right:   right,
		key:     key,
		value:   value,
		balance: balance,
		size:    1 + left.Size() + right.Size(),
	}
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Balance - read the balance tag of a node
func (p *Node) Balance() Balance {
	return p.balance
}

// Left - the left sub-tree, nil if empty
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right sub-tree, nil if empty
func (p *Node) Right() *Node {
	return p.right
}

// Size - number of nodes in the sub-tree, zero for the empty tree
func (p *Node) Size() int {
	if nil == p {
		return 0
	}
	return p.size
}
