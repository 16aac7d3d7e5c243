// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strconv"
)

// Item - a key item must implement the Compare function
//
// Compare must define a total order and return -1, 0 or +1 when the
// receiver is less than, equal to or greater than the argument.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Uint64 - an unsigned integer key
type Uint64 uint64

// Compare - numeric ordering, the argument must also be a Uint64
func (u Uint64) Compare(x interface{}) int {
	v := x.(Uint64)
	switch {
	case u < v:
		return -1
	case u > v:
		return +1
	default:
		return 0
	}
}

// String - decimal representation
func (u Uint64) String() string {
	return strconv.FormatUint(uint64(u), 10)
}
