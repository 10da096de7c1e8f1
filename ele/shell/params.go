// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shell implements the degenerated solid-shell element core:
// nonlinear kinematics, assumed-natural-strain correction, strain operator,
// geometric stiffness and static condensation for layered constructions
package shell

import "github.com/cpmech/gosl/chk"

// Params holds the immutable topology constants of one solid-shell element.
// The through-thickness enhancement parameters are carried as the trailing
// (internal) element dofs; hence NdofTot = NdofCond + Nint.
type Params struct {
	NdofTot     int  // total element dof count
	NdofCond    int  // condensed (nodal) dof count
	NdofPerNode int  // dofs per external node
	Nmid        int  // mid-surface node count
	Next        int  // external (top+bottom) node count
	Nint        int  // internal node count = number of enhancement parameters
	Ans         bool // assumed-natural-strain correction is active
	Nlay        int  // number of layers
}

// NewParams returns the topology descriptor for an element with nnod external
// nodes (8 or 16) and nlay layers. Panics on any other node count.
func NewParams(nnod, nlay int) *Params {
	if nnod != 8 && nnod != 16 {
		chk.Panic("solid-shell element must have 8 or 16 nodes. nnod=%d is invalid", nnod)
	}
	if nlay < 1 {
		chk.Panic("solid-shell element must have at least one layer. nlay=%d is invalid", nlay)
	}
	var o Params
	o.NdofPerNode = 3
	o.Next = nnod
	o.Nmid = nnod / 2
	o.Nint = 4
	o.NdofCond = o.NdofPerNode * o.Next
	o.NdofTot = o.NdofCond + o.Nint
	o.Ans = nnod == 8
	o.Nlay = nlay
	return &o
}
