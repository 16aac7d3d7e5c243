// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Balance - which child sub-tree of a node, if either, is one level taller
type Balance int8

// possible balance tags
const (
	LeftTaller  Balance = -1
	Balanced    Balance = 0
	RightTaller Balance = +1
)

// Negate - swap left and right
func (b Balance) Negate() Balance {
	return -b
}

// String - for debug output
func (b Balance) String() string {
	switch b {
	case LeftTaller:
		return "left"
	case Balanced:
		return "balanced"
	case RightTaller:
		return "right"
	default:
		return "*invalid*"
	}
}

// which child reported a height change
type side int8

const (
	leftSide  side = iota
	rightSide side = iota
)

// height change of a rebuilt sub-tree: -1, 0 or +1
type delta int8

const (
	shrunk    delta = -1
	unchanged delta = 0
	grown     delta = +1
)

// height change signal passed from a rebuilt child to its parent
type change struct {
	side  side
	delta delta
}

// tilt - the balance contribution of this change, i.e. a grown left
// child tilts the node towards the left
func (c change) tilt() int {
	if leftSide == c.side {
		return -int(c.delta)
	}
	return int(c.delta)
}
