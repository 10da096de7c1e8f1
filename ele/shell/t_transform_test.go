// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// testFrame returns an orthonormal 3x3 frame from two rotations
func testFrame(φ, ψ float64) (a [][]float64) {
	cφ, sφ := math.Cos(φ), math.Sin(φ)
	cψ, sψ := math.Cos(ψ), math.Sin(ψ)
	a = [][]float64{
		{cφ * cψ, sφ * cψ, -sψ},
		{-sφ, cφ, 0},
		{cφ * sψ, sφ * sψ, cψ},
	}
	return
}

func Test_trans01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("trans01. 6x6 transformation against 3x3 rotation")

	// 6-component tensor with engineering shears and its 3x3 matrix form
	t := []float64{1.0, -2.0, 3.0, 0.8, -0.6, 0.4}
	A := [][]float64{
		{t[0], t[3] / 2.0, t[5] / 2.0},
		{t[3] / 2.0, t[1], t[4] / 2.0},
		{t[5] / 2.0, t[4] / 2.0, t[2]},
	}

	// rotate the matrix form: A' = R·A·tr(R)
	R := testFrame(0.4, -0.7)
	aux := la.MatAlloc(3, 3)
	Ar := la.MatAlloc(3, 3)
	la.MatMul(aux, 1, R, A)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				Ar[i][j] += aux[i][k] * R[j][k]
			}
		}
	}

	// rotate the 6-component form
	res := make([]float64, 6)
	NaturalToLocal(res, t, R)

	// both must agree component by component
	chk.Scalar(tst, "t11", 1e-14, res[0], Ar[0][0])
	chk.Scalar(tst, "t22", 1e-14, res[1], Ar[1][1])
	chk.Scalar(tst, "t33", 1e-14, res[2], Ar[2][2])
	chk.Scalar(tst, "t12", 1e-14, res[3], 2.0*Ar[0][1])
	chk.Scalar(tst, "t23", 1e-14, res[4], 2.0*Ar[1][2])
	chk.Scalar(tst, "t13", 1e-14, res[5], 2.0*Ar[0][2])
}

func Test_trans02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("trans02. forward-inverse composition")

	// identity frame must give the identity operator
	eye := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	T := la.MatAlloc(6, 6)
	TransMat(T, eye)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			v := 0.0
			if i == j {
				v = 1.0
			}
			chk.Scalar(tst, "T(I)", 1e-15, T[i][j], v)
		}
	}

	// round trip through a generic frame must be exact
	frame := testFrame(-1.1, 0.35)
	t := []float64{-0.5, 1.5, 2.5, -1.2, 0.9, -0.3}
	fwd := make([]float64, 6)
	bwd := make([]float64, 6)
	NaturalToLocal(fwd, t, frame)
	LocalToNatural(bwd, fwd, frame)
	chk.Vector(tst, "inverse(forward(t))", 1e-14, bwd, t)
}
