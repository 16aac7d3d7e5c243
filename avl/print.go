// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
)

// which link led to a node
type branch int

const (
	root branch = iota
	left
	right
)

// drawn in front of a node's key
var connector = [...]string{
	root:  "|------+ ",
	left:  "\\------+ ",
	right: "/------+ ",
}

// Print - display an ASCII graphic representation of the tree on
// stdout, returns the depth of the tree
func (tree *Tree) Print(printData bool) int {
	return tree.Fprint(os.Stdout, printData)
}

// Fprint - write the tree rotated a quarter turn: right sub-trees above
// their parent, left sub-trees below; returns the depth of the tree
func (tree *Tree) Fprint(w io.Writer, printData bool) int {
	pr := printer{w: w, data: printData}
	return pr.subtree(tree.root, "", root)
}

type printer struct {
	w    io.Writer
	data bool
}

// a vertical bar continues the line from a parent on the far side
func indent(from branch, towards branch) string {
	if from == towards {
		return "|      "
	}
	return "       "
}

func (pr printer) subtree(p *Node, prefix string, from branch) int {
	if nil == p {
		return 0
	}
	above := pr.subtree(p.right, prefix+indent(from, left), right)
	pr.line(prefix+connector[from], p)
	below := pr.subtree(p.left, prefix+indent(from, right), left)

	if above > below {
		return 1 + above
	}
	return 1 + below
}

func (pr printer) line(lead string, p *Node) {
	if pr.data {
		fmt.Fprintf(pr.w, "%s%v → %v %+2d/[%d]\n", lead, p.key, p.value, p.balance, p.size)
		return
	}
	fmt.Fprintf(pr.w, "%s%v\n", lead, p.key)
}
