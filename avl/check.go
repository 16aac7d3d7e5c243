// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the ordering, balance and size of every node
//
// walks the whole tree, intended for tests and debugging
func (tree *Tree) Check() error {
	_, err := check(tree.root, nil, nil)
	return err
}

// internal: consistency checker, returns the true height of p
//
// low and high are the exclusive key bounds inherited from the
// ancestors, nil for unbounded
func check(p *Node, low Item, high Item) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low {
		switch p.key.Compare(low) {
		case 0:
			return 0, fault.ErrDuplicateKey
		case -1:
			return 0, fault.ErrKeyOrder
		}
	}
	if nil != high {
		switch p.key.Compare(high) {
		case 0:
			return 0, fault.ErrDuplicateKey
		case +1:
			return 0, fault.ErrKeyOrder
		}
	}

	lh, err := check(p.left, low, p.key)
	if nil != err {
		return 0, err
	}
	rh, err := check(p.right, p.key, high)
	if nil != err {
		return 0, err
	}

	diff := rh - lh
	if diff < -1 || diff > +1 {
		return 0, fault.ErrHeightDifference
	}
	if Balance(diff) != p.balance {
		return 0, fault.ErrBalanceMismatch
	}
	if p.size != 1+p.left.Size()+p.right.Size() {
		return 0, fault.ErrSizeMismatch
	}

	if lh > rh {
		return 1 + lh, nil
	}
	return 1 + rh, nil
}
