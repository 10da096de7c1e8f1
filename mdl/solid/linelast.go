// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// LinElast implements isotropic linear elasticity in the local frame
type LinElast struct {
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	Rho float64 // density

	// derived
	D [][]float64 // [Nsig][Nsig] elastic modulus matrix
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "rho":
			o.Rho = p.V
		}
	}
	if o.E <= 0 {
		return chk.Err("lin-elast: Young's modulus must be positive. E=%g is invalid", o.E)
	}

	// elastic modulus matrix with engineering shear strains
	lam := o.E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	mu := o.E / (2.0 * (1.0 + o.Nu))
	o.D = make([][]float64, Nsig)
	for i := 0; i < Nsig; i++ {
		o.D[i] = make([]float64, Nsig)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.D[i][j] = lam
		}
		o.D[i][i] = lam + 2.0*mu
		o.D[i+3][i+3] = mu
	}
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 2.0e+08},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "rho", V: 7.85},
	}
}

// GetRho returns density
func (o LinElast) GetRho() float64 {
	return o.Rho
}

// InitIntVars initialises internal (secondary) variables
func (o LinElast) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(Nsig, 0)
	if σ != nil {
		chk.IntAssert(len(σ), Nsig)
		copy(s.Sig, σ)
	}
	return
}

// Update updates stresses for given strains
func (o *LinElast) Update(s *State, ε, Δε []float64, eid, ipid int, time float64) (err error) {
	for i := 0; i < Nsig; i++ {
		for j := 0; j < Nsig; j++ {
			s.Sig[i] += o.D[i][j] * Δε[j]
		}
	}
	return
}

// CalcD computes D = dσ_new/dε_new consistent with Update
func (o *LinElast) CalcD(D [][]float64, s *State, firstIt bool) (err error) {
	for i := 0; i < Nsig; i++ {
		copy(D[i], o.D[i])
	}
	return
}
