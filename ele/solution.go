// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds the solution data @ nodes, as provided by the external
// nonlinear solver. Elements read it; they never mutate it.
type Solution struct {

	// current state
	T float64   // current time
	Y []float64 // DOFs (solution variables); e.g. y = {u}

	// auxiliary
	Dt float64   // current time increment
	ΔY []float64 // total increment of this load step (for nonlinear solver)

	// problem definition and constants
	Steady bool // steady simulation
}

// Reset clear values
func (o *Solution) Reset() {
	o.T = 0
	for i := 0; i < len(o.Y); i++ {
		o.Y[i] = 0
		o.ΔY[i] = 0
	}
}
