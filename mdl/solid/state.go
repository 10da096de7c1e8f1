// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

// State holds stress and history data @ one integration point
type State struct {

	// essential
	Sig []float64 // σ: current stress vector in the local frame [Nsig]

	// layered constructions
	Lay int // index of the layer this integration point belongs to

	// for inelastic models (if nalp > 0)
	Alp []float64 // α: internal variables of rate type [nalp]
}

// NewState allocates a state structure
func NewState(nsig, nalp int) *State {
	var state State
	state.Sig = make([]float64, nsig)
	if nalp > 0 {
		state.Alp = make([]float64, nalp)
	}
	return &state
}

// Set copies states
//  Note: this and other states must have been pre-allocated with the same sizes
func (o *State) Set(other *State) {
	copy(o.Sig, other.Sig)
	o.Lay = other.Lay
	if len(o.Alp) > 0 {
		copy(o.Alp, other.Alp)
	}
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Sig), len(o.Alp))
	other.Set(o)
	return other
}
