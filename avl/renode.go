// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// renode - rebuild a node after one of its children was rebuilt
//
// balance is the node's old tag, c reports which child changed and by
// how much, left and right are the new children.  Returns the new
// sub-tree and its own height change for the parent.
func renode(balance Balance, c change, left *Node, key Item, value interface{}, right *Node) (*Node, delta) {
	if unchanged == c.delta {
		return newNode(balance, left, key, value, right), unchanged
	}

	shrink := shrunk == c.delta
	switch candidate := int(balance) + c.tilt(); candidate {
	case -2:
		return rotateLeft(shrink, left, key, value, right)
	case +2:
		return rotateRight(shrink, left, key, value, right)
	default:
		b := Balance(candidate)
		p := newNode(b, left, key, value, right)

		// a grown child that evened the node, or a shrunk child
		// under a node that is still tilted, does not change the
		// height of the node
		if !shrink && Balanced == b {
			return p, unchanged
		}
		if shrink && Balanced != b {
			return p, unchanged
		}
		return p, c.delta
	}
}
