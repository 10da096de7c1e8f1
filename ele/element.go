// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele defines the element interfaces and data shared with the
// (external) assembly/solver layer
package ele

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
)

// Element defines what all elements must implement
type Element interface {

	// information and initialisation
	Id() int                          // returns the element Id
	SetEqs(eqs [][]int) (err error)   // set equations (location array)

	// conditions (element's)
	SetEleConds(key string, f dbf.T, extra string) (err error) // set element conditions

	// called for each iteration
	AddToRhs(fb []float64, sol *Solution) (err error)                // adds -R to global residual vector fb
	AddToKb(Kb *la.Triplet, sol *Solution, firstIt bool) (err error) // adds element K to global Jacobian matrix Kb
}

// WithIntVars defines elements with internal variables @ integration points
type WithIntVars interface {
	Update(sol *Solution) (err error)                              // perform (tangent) update
	SetIniIvs(sol *Solution, ivs map[string][]float64) (err error) // sets initial ivs for given values in sol and ivs map
	BackupIvs(aux bool) (err error)                                // create copy of internal variables
	RestoreIvs(aux bool) (err error)                               // restore internal variables from copies
}

// CanOutputIps defines elements that can output integration points' values
type CanOutputIps interface {
	Id() int                            // returns the element Id
	OutIpCoords() [][]float64           // coordinates of integration points
	OutIpKeys() []string                // integration points' keys; e.g. "s11", "s23"
	OutIpVals(M *IpsMap, sol *Solution) // integration points' values corresponding to keys
}
