// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gosls/shp"
)

func Test_bmat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bmat01. strain operator vs numerical differentiation")

	h := 0.25
	ζ := 0.4
	par := NewParams(8, 1)
	sls := shp.GetShell(8)
	x := flatPatch8(h)
	kin := NewKinematics(par)
	zero := make([]float64, par.NdofCond)
	eye := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	// total natural-frame strain @ ζ as a function of displacements and
	// enhancement parameters
	strain := func(sd *shp.ShellData, uu, α []float64) (ε []float64) {
		ComputeDeformation(par, sd, x, uu, zero, kin)
		ε = make([]float64, 6)
		κ := make([]float64, 6)
		GetStrain(ε, kin)
		GetCurvatureStrain(κ, sd, kin)
		for i := 0; i < 6; i++ {
			ε[i] += ζ * κ[i]
		}
		AddEnhancedStrain(ε, sd, kin, ζ, α)
		return
	}

	// smooth non-trivial displacement state; α=0 keeps the operator the exact
	// derivative of the enhanced strain
	u := make([]float64, par.NdofCond)
	for r := 0; r < par.NdofCond; r++ {
		u[r] = 0.01 * math.Cos(0.7+float64(r))
	}
	α0 := make([]float64, par.Nint)

	B := la.MatAlloc(6, par.NdofTot)
	Bl := la.MatAlloc(6, par.NdofTot)
	δ := 1e-5
	for _, sd := range sls.CalcIpData() {

		// operator with identity frame: local equals natural
		ComputeDeformation(par, sd, x, u, zero, kin)
		BuildStrainOperator(Bl, B, par, sd, kin, ζ, eye)
		Bcop := la.MatAlloc(6, par.NdofTot)
		la.MatCopy(Bcop, 1, Bl)

		// displacement columns
		for c := 0; c < par.NdofCond; c++ {
			up := make([]float64, par.NdofCond)
			dn := make([]float64, par.NdofCond)
			copy(up, u)
			copy(dn, u)
			up[c] += δ
			dn[c] -= δ
			εp := strain(sd, up, α0)
			εm := strain(sd, dn, α0)
			for r := 0; r < 6; r++ {
				num := (εp[r] - εm[r]) / (2.0 * δ)
				chk.Scalar(tst, "dε/du", 1e-9, Bcop[r][c], num)
			}
		}

		// enhancement columns: the strain is linear in α
		for k := 0; k < par.Nint; k++ {
			αp := make([]float64, par.Nint)
			αm := make([]float64, par.Nint)
			αp[k] = +δ
			αm[k] = -δ
			εp := strain(sd, u, αp)
			εm := strain(sd, u, αm)
			for r := 0; r < 6; r++ {
				num := (εp[r] - εm[r]) / (2.0 * δ)
				chk.Scalar(tst, "dε/dα", 1e-10, Bcop[r][par.NdofCond+k], num)
			}
		}
	}
}

func Test_bmat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bmat02. operator rotation matches tensor rotation")

	h := 0.25
	ζ := -0.3
	par := NewParams(8, 1)
	sls := shp.GetShell(8)
	x := flatPatch8(h)
	kin := NewKinematics(par)
	zero := make([]float64, par.NdofCond)
	sd := sls.CalcIpData()[0]

	u := make([]float64, par.NdofCond)
	for r := 0; r < par.NdofCond; r++ {
		u[r] = 0.015 * math.Sin(0.3*float64(r))
	}
	ComputeDeformation(par, sd, x, u, zero, kin)

	// rotating the operator and then applying it must equal applying the
	// natural operator and then rotating the strain
	frame := testFrame(0.9, -0.2)
	B := la.MatAlloc(6, par.NdofTot)
	Bl := la.MatAlloc(6, par.NdofTot)
	BuildStrainOperator(Bl, B, par, sd, kin, ζ, frame)

	v := make([]float64, par.NdofTot)
	for r := 0; r < par.NdofTot; r++ {
		v[r] = math.Cos(float64(r))
	}
	a := make([]float64, 6)
	b := make([]float64, 6)
	bn := make([]float64, 6)
	la.MatVecMul(a, 1, Bl, v)
	la.MatVecMul(bn, 1, B, v)
	NaturalToLocal(b, bn, frame)
	chk.Vector(tst, "rotate∘apply", 1e-14, a, b)
}
