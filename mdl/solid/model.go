// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements constitutive models for the solid-shell core.
// Stress and strain are 6-component engineering vectors in the element's
// local/material frame: (11, 22, 33, 12, 23, 13).
package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Nsig is the number of independent stress/strain components
const Nsig = 6

// Model defines the interface for solid-shell constitutive models
type Model interface {
	Init(prms dbf.Params) error                // initialises model
	InitIntVars(σ []float64) (*State, error) // initialises AND allocates internal (secondary) variables
	GetPrms() dbf.Params                       // gets (an example) of parameters
	GetRho() float64                         // returns density
}

// Small defines rate type models for small-increment stress updates
type Small interface {
	Update(s *State, ε, Δε []float64, eid, ipid int, time float64) error // updates stresses for given strains
	CalcD(D [][]float64, s *State, firstIt bool) error                   // computes D = dσ_new/dε_new consistent with Update
}

// New returns a new constitutive model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}
