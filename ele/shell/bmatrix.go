// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gosls/shp"
)

// GetStrain computes the membrane part of the Green-Lagrange strain (linear
// plus one-half quadratic term) in the natural frame, as the metric difference
// between the current and reference configurations. With ANS, the two
// transverse-shear components are replaced by the tying-point interpolation.
func GetStrain(ε []float64, kin *Kinematics) {
	greenLagrange(ε, &kin.Cur, &kin.Ref)
	if kin.Ans != nil {
		ε[4], ε[5] = kin.Ans.InterpShear(false)
	}
}

// GetIncrementalStrain computes the load-step increment counterpart of
// GetStrain: current minus previous configuration
func GetIncrementalStrain(Δε []float64, kin *Kinematics) {
	greenLagrange(Δε, &kin.Cur, &kin.Prev)
	if kin.Ans != nil {
		Δε[4], Δε[5] = kin.Ans.InterpShear(true)
	}
}

// greenLagrange evaluates the six metric differences between configurations a
// and b:  E = (ga·ga - gb·gb)/2  for the normal components and the full
// engineering products for the shears
func greenLagrange(ε []float64, a, b *Config) {
	ε[0] = 0.5 * (dot3(a.E1, a.E1) - dot3(b.E1, b.E1))
	ε[1] = 0.5 * (dot3(a.E2, a.E2) - dot3(b.E2, b.E2))
	ε[2] = 0.5 * (dot3(a.D, a.D) - dot3(b.D, b.D))
	ε[3] = dot3(a.E1, a.E2) - dot3(b.E1, b.E2)
	ε[4] = dot3(a.E2, a.D) - dot3(b.E2, b.D)
	ε[5] = dot3(a.E1, a.D) - dot3(b.E1, b.D)
}

// GetCurvatureStrain computes the bending (curvature) strain in the natural
// frame, using the director derivatives and the curvature weight for the
// thickness-stretch coupling. The total strain @ ζ is ε + ζ·κ. With ANS the
// transverse shear is the tying interpolation, constant through the
// thickness, hence its curvature components are zero.
func GetCurvatureStrain(κ []float64, sd *shp.ShellData, kin *Kinematics) {
	curvature(κ, sd.Curve, &kin.Cur, &kin.Ref)
	if sd.GamBar != nil {
		κ[2] += gamBarTwist(sd.GamBar, &kin.Cur) - gamBarTwist(sd.GamBar, &kin.Ref)
	}
	if kin.Ans != nil {
		κ[4], κ[5] = 0, 0
	}
}

// GetIncrementalCurvatureStrain computes the load-step increment of the
// curvature strain
func GetIncrementalCurvatureStrain(Δκ []float64, sd *shp.ShellData, kin *Kinematics) {
	curvature(Δκ, sd.Curve, &kin.Cur, &kin.Prev)
	if sd.GamBar != nil {
		Δκ[2] += gamBarTwist(sd.GamBar, &kin.Cur) - gamBarTwist(sd.GamBar, &kin.Prev)
	}
	if kin.Ans != nil {
		Δκ[4], Δκ[5] = 0, 0
	}
}

// gamBarTwist evaluates the twist-mode coupling of the directors with the
// mid-surface tangents of one configuration:  Σm gb0·(e1·dm) + gb1·(e2·dm).
// It cures the curvature-thickness locking of warped/twisted states; the
// twist pattern sums to zero over the nodes, so constant director fields do
// not contribute.
func gamBarTwist(gb [][]float64, cfg *Config) (res float64) {
	d := make([]float64, 3)
	for m := 0; m < len(gb[0]); m++ {
		for i := 0; i < 3; i++ {
			d[i] = 0.5 * (cfg.Xt[i][m] - cfg.Xb[i][m])
		}
		res += gb[0][m]*dot3(cfg.E1, d) + gb[1][m]*dot3(cfg.E2, d)
	}
	return
}

func curvature(κ []float64, w float64, a, b *Config) {
	κ[0] = dot3(a.E1, a.Dd1) - dot3(b.E1, b.Dd1)
	κ[1] = dot3(a.E2, a.Dd2) - dot3(b.E2, b.Dd2)
	κ[2] = w * (dot3(a.D, a.D) - dot3(b.D, b.D))
	κ[3] = dot3(a.E1, a.Dd2) + dot3(a.E2, a.Dd1) - dot3(b.E1, b.Dd2) - dot3(b.E2, b.Dd1)
	κ[4] = dot3(a.D, a.Dd2) - dot3(b.D, b.Dd2)
	κ[5] = dot3(a.D, a.Dd1) - dot3(b.D, b.Dd1)
}

// AddEnhancedStrain adds the through-thickness enhancement contribution of the
// internal parameters to the thickness-stretch component:
//  ε33 += -2·ζ·(d·d)·Σk Sint_k·α_k
func AddEnhancedStrain(ε []float64, sd *shp.ShellData, kin *Kinematics, ζ float64, α []float64) {
	sint := make([]float64, 4)
	intShape(sint, sd.R)
	dd := dot3(kin.Cur.D, kin.Cur.D)
	for k := 0; k < len(α); k++ {
		ε[2] -= 2.0 * ζ * dd * sint[k] * α[k]
	}
}

// BuildStrainOperator constructs the strain-displacement operator
// (6 x ndofTot) and rotates it into the local frame.
//  Bl -- output: local-frame operator [6][ndofTot]
//  B  -- scratch: natural-frame operator [6][ndofTot]
// The sign conventions encode the degenerated pairing: mid-surface terms load
// bottom and top columns equally; director terms load them with bottom minus,
// top plus.
func BuildStrainOperator(Bl, B [][]float64, par *Params, sd *shp.ShellData, kin *Kinematics, ζ float64, frame [][]float64) {

	// current configuration vectors
	e1, e2, d := kin.Cur.E1, kin.Cur.E2, kin.Cur.D
	dd1, dd2 := kin.Cur.Dd1, kin.Cur.Dd2
	w := sd.Curve

	// twist-weighted director sums of the current configuration (γ-bar)
	var g0, g1 [3]float64
	if sd.GamBar != nil {
		for m := 0; m < par.Nmid; m++ {
			for i := 0; i < 3; i++ {
				dm := 0.5 * (kin.Cur.Xt[i][m] - kin.Cur.Xb[i][m])
				g0[i] += sd.GamBar[0][m] * dm
				g1[i] += sd.GamBar[1][m] * dm
			}
		}
	}

	la.MatFill(B, 0)
	for m := 0; m < par.Nmid; m++ {
		cb := dofCol(par, m, false)
		ct := dofCol(par, m, true)
		s := 0.5 * sd.S[m]
		s1 := 0.5 * sd.DSdR[m][0]
		s2 := 0.5 * sd.DSdR[m][1]
		for i := 0; i < 3; i++ {

			// membrane and thickness terms
			B[0][cb+i] += s1 * e1[i]
			B[0][ct+i] += s1 * e1[i]
			B[1][cb+i] += s2 * e2[i]
			B[1][ct+i] += s2 * e2[i]
			B[2][cb+i] -= s * d[i]
			B[2][ct+i] += s * d[i]
			B[3][cb+i] += s1*e2[i] + s2*e1[i]
			B[3][ct+i] += s1*e2[i] + s2*e1[i]
			B[4][cb+i] += s2*d[i] - s*e2[i]
			B[4][ct+i] += s2*d[i] + s*e2[i]
			B[5][cb+i] += s1*d[i] - s*e1[i]
			B[5][ct+i] += s1*d[i] + s*e1[i]

			// ζ-scaled curvature terms
			B[0][cb+i] += ζ * s1 * (dd1[i] - e1[i])
			B[0][ct+i] += ζ * s1 * (dd1[i] + e1[i])
			B[1][cb+i] += ζ * s2 * (dd2[i] - e2[i])
			B[1][ct+i] += ζ * s2 * (dd2[i] + e2[i])
			B[2][cb+i] -= ζ * w * 2.0 * s * d[i]
			B[2][ct+i] += ζ * w * 2.0 * s * d[i]
			B[3][cb+i] += ζ * (s1*dd2[i] + s2*dd1[i] - s2*e1[i] - s1*e2[i])
			B[3][ct+i] += ζ * (s1*dd2[i] + s2*dd1[i] + s2*e1[i] + s1*e2[i])
			B[4][cb+i] -= ζ * (s*dd2[i] + s2*d[i])
			B[4][ct+i] += ζ * (s*dd2[i] + s2*d[i])
			B[5][cb+i] -= ζ * (s*dd1[i] + s1*d[i])
			B[5][ct+i] += ζ * (s*dd1[i] + s1*d[i])

			// γ-bar twist coupling: director part (bottom minus, top plus) and
			// mid-surface part (both halves equally)
			if sd.GamBar != nil {
				gb := sd.GamBar[0][m]*e1[i] + sd.GamBar[1][m]*e2[i]
				B[2][cb+i] -= ζ * 0.5 * gb
				B[2][ct+i] += ζ * 0.5 * gb
				gm := s1*g0[i] + s2*g1[i]
				B[2][cb+i] += ζ * gm
				B[2][ct+i] += ζ * gm
			}
		}
	}

	// ANS substitution of the transverse-shear rows: this is the anti-locking
	// mechanism of the 8-node topology
	if kin.Ans != nil {
		a := kin.Ans
		for c := 0; c < par.NdofCond; c++ {
			B[4][c] = a.F[3]*a.Eps[3][c] + a.F[1]*a.Eps[1][c]
			B[5][c] = a.F[0]*a.Eps[0][c] + a.F[2]*a.Eps[2][c]
		}
	}

	// internal (enhancement) columns on the thickness-stretch row
	sint := make([]float64, par.Nint)
	intShape(sint, sd.R)
	dd := dot3(kin.Cur.D, kin.Cur.D)
	for k := 0; k < par.Nint; k++ {
		B[2][par.NdofCond+k] = -2.0 * ζ * dd * sint[k]
	}

	// rotate rows into the local frame
	T := la.MatAlloc(6, 6)
	TransMat(T, frame)
	la.MatMul(Bl, 1, T, B)
}

// intShape computes the bilinear shape values of the four internal
// (enhancement) nodes @ natural coordinates r
func intShape(sint []float64, r []float64) {
	ξ, η := r[0], r[1]
	sint[0] = 0.25 * (1.0 - ξ) * (1.0 - η)
	sint[1] = 0.25 * (1.0 + ξ) * (1.0 - η)
	sint[2] = 0.25 * (1.0 + ξ) * (1.0 + η)
	sint[3] = 0.25 * (1.0 - ξ) * (1.0 + η)
}
