// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosls/shp"
)

func Test_kin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin01. objectivity: zero strain under rigid motion")

	h := 0.1
	par := NewParams(8, 1)
	sls := shp.GetShell(8)
	x := flatPatch8(h)
	kin := NewKinematics(par)
	zero := make([]float64, par.NdofCond)
	ε := make([]float64, 6)
	κ := make([]float64, 6)
	zero6 := make([]float64, 6)

	// rigid motions: none, translation, rotation about z
	φ := 0.3
	cφ, sφ := math.Cos(φ), math.Sin(φ)
	fields := map[string]func(m int) (ux, uy, uz float64){
		"rest":        func(m int) (float64, float64, float64) { return 0, 0, 0 },
		"translation": func(m int) (float64, float64, float64) { return 0.7, -1.3, 2.1 },
		"rotation": func(m int) (float64, float64, float64) {
			X, Y := x[0][m], x[1][m]
			return cφ*X - sφ*Y - X, sφ*X + cφ*Y - Y, 0
		},
	}

	for name, fld := range fields {
		u := make([]float64, par.NdofCond)
		for m := 0; m < par.Next; m++ {
			u[0+m*3], u[1+m*3], u[2+m*3] = fld(m)
		}
		for _, sd := range sls.CalcIpData() {
			ComputeDeformation(par, sd, x, u, zero, kin)
			GetStrain(ε, kin)
			GetCurvatureStrain(κ, sd, kin)
			chk.Vector(tst, "ε "+name, 1e-14, ε, zero6)
			chk.Vector(tst, "κ "+name, 1e-14, κ, zero6)
		}
	}
}

func Test_kin02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin02. finite stretch: exact quadratic strain")

	h := 0.2
	par := NewParams(8, 1)
	sls := shp.GetShell(8)
	x := flatPatch8(h)
	kin := NewKinematics(par)

	// uniform stretches along x: previous λp and current λ
	λ, λp := 1.5, 1.2
	stretch := func(lam float64) (u []float64) {
		u = make([]float64, par.NdofCond)
		for m := 0; m < par.Next; m++ {
			u[0+m*3] = (lam - 1.0) * x[0][m]
		}
		return
	}
	ucur := stretch(λ)
	uprev := stretch(λp)

	// the reference tangent of the unit square has length 1/2, so the metric
	// strain is scaled by 1/4
	ε := make([]float64, 6)
	Δε := make([]float64, 6)
	for _, sd := range sls.CalcIpData() {
		ComputeDeformation(par, sd, x, ucur, uprev, kin)
		GetStrain(ε, kin)
		GetIncrementalStrain(Δε, kin)
		chk.Scalar(tst, "ε11", 1e-14, ε[0], 0.125*(λ*λ-1.0))
		chk.Scalar(tst, "Δε11", 1e-14, Δε[0], 0.125*(λ*λ-λp*λp))
		for _, i := range []int{1, 2, 3, 4, 5} {
			chk.Scalar(tst, "ε other", 1e-14, ε[i], 0)
		}
	}
}

func Test_kin03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin03. flat-patch descriptors: jacobian and curvature weight")

	h := 0.1
	par := NewParams(8, 1)
	sls := shp.GetShell(8)
	x := flatPatch8(h)
	kin := NewKinematics(par)
	zero := make([]float64, par.NdofCond)

	for _, sd := range sls.CalcIpData() {
		ComputeDeformation(par, sd, x, zero, zero, kin)

		// flat patch: zero curvature weight; jacobian h/8 for all ζ
		chk.Scalar(tst, "curvature weight", 1e-15, sd.Curve, 0)
		for _, ζ := range []float64{-0.9, 0.0, 0.5} {
			chk.Scalar(tst, "det(J)", 1e-15, kin.Jacobian(ζ), h/8.0)
		}

		// directors point along z with half-thickness length
		chk.Vector(tst, "d", 1e-15, kin.Ref.D, []float64{0, 0, h / 2.0})
	}
}
