// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import "github.com/cpmech/gosls/shp"

// AddGeomStiffness accumulates the second-variation (geometric, stress-
// dependent) stiffness into K, which must be pre-allocated with ndofTot rows/
// columns and is mutated in place.
//  σ    -- [6] local-frame stress components
//  ζ    -- through-thickness coordinate
//  coef -- integration coefficient (jacobian times weights)
func AddGeomStiffness(K [][]float64, par *Params, sd *shp.ShellData, kin *Kinematics, σ []float64, ζ, coef float64) {

	// local stress matrix
	var sig [3][3]float64
	sig[0][0], sig[1][1], sig[2][2] = σ[0], σ[1], σ[2]
	sig[0][1], sig[1][0] = σ[3], σ[3]
	if kin.Ans == nil {
		// with ANS the transverse-shear terms come from the tying-point
		// correction matrices instead of the node-pair loop
		sig[1][2], sig[2][1] = σ[4], σ[4]
		sig[0][2], sig[2][0] = σ[5], σ[5]
	}

	// generalized gradients per node and pseudo-bottom/pseudo-top half:
	//  a -- variation of (e1, e2, d)
	//  b -- variation of (d,1  d,2); the curvature-weight part of the
	//       thickness stretch is a pure σ33 block, added separately below
	w := sd.Curve
	var am, an, bm, bn [3]float64
	grads := func(m int, sgn float64, a, b *[3]float64) {
		a[0] = 0.5 * sd.DSdR[m][0]
		a[1] = 0.5 * sd.DSdR[m][1]
		a[2] = sgn * 0.5 * sd.S[m]
		b[0] = sgn * 0.5 * sd.DSdR[m][0]
		b[1] = sgn * 0.5 * sd.DSdR[m][1]
		b[2] = 0
	}
	contract := func(u, v *[3]float64) (res float64) {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				res += u[i] * sig[i][j] * v[j]
			}
		}
		return
	}

	// for each node pair and half pair
	for m := 0; m < par.Nmid; m++ {
		for n := 0; n < par.Nmid; n++ {
			for _, hm := range []bool{false, true} {
				cm := dofCol(par, m, hm)
				sm := pseudoSign(hm)
				grads(m, sm, &am, &bm)
				for _, hn := range []bool{false, true} {
					cn := dofCol(par, n, hn)
					sn := pseudoSign(hn)
					grads(n, sn, &an, &bn)

					// membrane/shear/thickness and ζ-scaled curvature coupling
					val := contract(&am, &an) + ζ*(contract(&am, &bn)+contract(&bm, &an))

					// thickness-stretch curvature: second variation of ζ·w·(d·d)
					val += 2.0 * ζ * w * σ[2] * am[2] * an[2]

					// γ-bar correction: cross coupling of mid-surface and
					// director variations through the twist pattern
					if sd.GamBar != nil {
						gbm := sd.GamBar[0][m]*an[0] + sd.GamBar[1][m]*an[1]
						gbn := sd.GamBar[0][n]*am[0] + sd.GamBar[1][n]*am[1]
						val += ζ * σ[2] * 0.5 * (sm*gbm + sn*gbn)
					}

					for i := 0; i < 3; i++ {
						K[cm+i][cn+i] += coef * val
					}
				}
			}
		}
	}

	// coupling of internal thickness-stretch dofs with translations
	sint := make([]float64, par.Nint)
	intShape(sint, sd.R)
	d := kin.Cur.D
	c04 := -4.0 * ζ * σ[2] * coef
	for k := 0; k < par.Nint; k++ {
		r := par.NdofCond + k
		for m := 0; m < par.Nmid; m++ {
			for _, h := range []bool{false, true} {
				c := dofCol(par, m, h)
				sgn := pseudoSign(h)
				for i := 0; i < 3; i++ {
					v := c04 * sint[k] * d[i] * sgn * 0.5 * sd.S[m]
					K[r][c+i] += v
					K[c+i][r] += v
				}
			}
		}
	}

	// ANS correction matrices, applied to the whole condensed block
	if kin.Ans != nil {
		a := kin.Ans
		for r := 0; r < par.NdofCond; r++ {
			for c := 0; c < par.NdofCond; c++ {
				v23 := a.F[3]*a.Hmat[3][r][c] + a.F[1]*a.Hmat[1][r][c]
				v13 := a.F[0]*a.Hmat[0][r][c] + a.F[2]*a.Hmat[2][r][c]
				K[r][c] += coef * (σ[4]*v23 + σ[5]*v13)
			}
		}
	}
}

// pseudoSign returns the degeneration sign of one half: bottom minus, top plus
func pseudoSign(top bool) float64 {
	if top {
		return 1
	}
	return -1
}
