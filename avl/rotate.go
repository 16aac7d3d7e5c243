// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// called whenever a rotation is asked to pivot on an empty sub-tree;
// the balance invariant makes this unreachable from Insert and Remove
var degenerateRotation = func() {}

// rotateRight - the right branch is two levels taller than the left
//
// shrink is true when the imbalance was caused by a delete on the
// left, the returned delta is the height change of the whole sub-tree
// relative to its height before that delete or insert
func rotateRight(shrink bool, left *Node, key Item, value interface{}, right *Node) (*Node, delta) {
	p1 := right
	if nil == p1 {
		return noRotation(left, key, value, right)
	}

	if LeftTaller != p1.balance {
		// single RR rotation
		if Balanced == p1.balance {
			// only possible on delete
			p := newNode(RightTaller, left, key, value, p1.left)
			return newNode(LeftTaller, p, p1.key, p1.value, p1.right), unchanged
		}
		p := newNode(Balanced, left, key, value, p1.left)
		p1 = newNode(Balanced, p, p1.key, p1.value, p1.right)
		if shrink {
			return p1, shrunk
		}
		return p1, unchanged
	}

	// double RL rotation
	p2 := p1.left
	if nil == p2 {
		return noRotation(left, key, value, right)
	}
	pBalance, p1Balance := split(p2.balance.Negate())
	p := newNode(pBalance, left, key, value, p2.left)
	p1 = newNode(p1Balance, p2.right, p1.key, p1.value, p1.right)
	p2 = newNode(Balanced, p, p2.key, p2.value, p1)
	if shrink {
		return p2, shrunk
	}
	return p2, unchanged
}

// rotateLeft - the left branch is two levels taller than the right
func rotateLeft(shrink bool, left *Node, key Item, value interface{}, right *Node) (*Node, delta) {
	p1 := left
	if nil == p1 {
		return noRotation(left, key, value, right)
	}

	if RightTaller != p1.balance {
		// single LL rotation
		if Balanced == p1.balance {
			p := newNode(LeftTaller, p1.right, key, value, right)
			return newNode(RightTaller, p1.left, p1.key, p1.value, p), unchanged
		}
		p := newNode(Balanced, p1.right, key, value, right)
		p1 = newNode(Balanced, p1.left, p1.key, p1.value, p)
		if shrink {
			return p1, shrunk
		}
		return p1, unchanged
	}

	// double LR rotation
	p2 := p1.right
	if nil == p2 {
		return noRotation(left, key, value, right)
	}
	p1Balance, pBalance := split(p2.balance.Negate())
	p1 = newNode(p1Balance, p1.left, p1.key, p1.value, p2.left)
	p := newNode(pBalance, p2.right, key, value, right)
	p2 = newNode(Balanced, p1, p2.key, p2.value, p)
	if shrink {
		return p2, shrunk
	}
	return p2, unchanged
}

// split the negated pivot balance of a double rotation into the
// balances of the new left and right children
func split(b Balance) (Balance, Balance) {
	switch b {
	case LeftTaller:
		return LeftTaller, Balanced
	case RightTaller:
		return Balanced, RightTaller
	default:
		return Balanced, Balanced
	}
}

// fallback for a rotation without a pivot: rebuild the node as is
func noRotation(left *Node, key Item, value interface{}, right *Node) (*Node, delta) {
	degenerateRotation()
	b := Balanced
	if nil == left && nil != right {
		b = RightTaller
	} else if nil != left && nil == right {
		b = LeftTaller
	}
	return newNode(b, left, key, value, right), unchanged
}
