// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gosls/shp"
)

// ansEdges holds the mid-surface corner pairs (p, q) defining the four tying
// edges of the 8-node topology. Opposite edges are oriented the same way so
// that their strains can be blended directly:
//
//          c
//    3 --------- 2
//    |           |
//  d |           | b      a,c sample γ13 (ξ1 direction)
//    |           |        b,d sample γ23 (ξ2 direction)
//    0 --------- 1
//          a
//
var ansEdges = [4][2]int{{0, 1}, {1, 2}, {3, 2}, {0, 3}}

// ansHessPattern holds the closed-form second-variation pattern of one tying
// edge strain over its four node slots (bp, tp, bq, tq): the entry at (row,
// col) is weight·δij over the corresponding 3x3 block
var ansHessPattern = [6][3]float64{
	// rowSlot colSlot weight
	{0, 0, +0.125},
	{1, 1, -0.125},
	{2, 2, -0.125},
	{3, 3, +0.125},
	{0, 3, -0.125},
	{1, 2, +0.125},
}

// AnsState holds the assumed-natural-strain tying-point data of one
// integration point; fully rebuilt at each ComputeDeformation call
type AnsState struct {
	Gam    [4]float64     // tying-point shear strains: current minus reference
	GamInc [4]float64     // tying-point shear strains: current minus previous
	Eps    [4][]float64   // [ncond] substitute-strain rows (variation of the tying strains)
	Hmat   [4][][]float64 // [ncond][ncond] second-variation correction matrices
	F      [4]float64     // bilinear blend factors @ the integration point
}

// newAnsState allocates tying-point data
func newAnsState(par *Params) (o *AnsState) {
	o = new(AnsState)
	for e := 0; e < 4; e++ {
		o.Eps[e] = make([]float64, par.NdofCond)
		o.Hmat[e] = la.MatAlloc(par.NdofCond, par.NdofCond)
	}
	return
}

// compute evaluates edge vectors, substitute-strain rows, correction matrices
// and blend factors from the configuration snapshots
func (o *AnsState) compute(par *Params, sd *shp.ShellData, kin *Kinematics) {

	// blend factors: fa=(1-ξ2)/2, fb=(1+ξ1)/2, fc=(1+ξ2)/2, fd=(1-ξ1)/2
	ξ1, ξ2 := sd.R[0], sd.R[1]
	o.F[0] = 0.5 * (1.0 - ξ2)
	o.F[1] = 0.5 * (1.0 + ξ1)
	o.F[2] = 0.5 * (1.0 + ξ2)
	o.F[3] = 0.5 * (1.0 - ξ1)

	// for each tying edge
	t := make([]float64, 3)
	g := make([]float64, 3)
	esum := make([]float64, 3)
	edif := make([]float64, 3)
	for e := 0; e < 4; e++ {
		p, q := ansEdges[e][0], ansEdges[e][1]

		// tying strains at the edge midpoint: γ = t·g with edge tangent t and
		// average director g, in each configuration
		γref := edgeShear(&kin.Ref, p, q, t, g)
		γprv := edgeShear(&kin.Prev, p, q, t, g)
		γcur := edgeShear(&kin.Cur, p, q, t, g)
		o.Gam[e] = γcur - γref
		o.GamInc[e] = γcur - γprv

		// substitute-strain row: populated only at the four dof slots of this
		// edge, with the sum (g+t) and difference (g-t) vectors of the current
		// configuration and a fixed sign pattern
		for i := 0; i < 3; i++ {
			esum[i] = g[i] + t[i]
			edif[i] = g[i] - t[i]
		}
		row := o.Eps[e]
		la.VecFill(row, 0)
		cbp := dofCol(par, p, false)
		ctp := dofCol(par, p, true)
		cbq := dofCol(par, q, false)
		ctq := dofCol(par, q, true)
		for i := 0; i < 3; i++ {
			row[cbp+i] = -0.25 * esum[i]
			row[ctp+i] = -0.25 * edif[i]
			row[cbq+i] = +0.25 * edif[i]
			row[ctq+i] = +0.25 * esum[i]
		}

		// second-variation correction matrix from the fixed ±0.125 pattern
		H := o.Hmat[e]
		la.MatFill(H, 0)
		slots := [4]int{cbp, ctp, cbq, ctq}
		for _, pat := range ansHessPattern {
			r, c, w := slots[int(pat[0])], slots[int(pat[1])], pat[2]
			for i := 0; i < 3; i++ {
				H[r+i][c+i] += w
				if r != c {
					H[c+i][r+i] += w
				}
			}
		}
	}
}

// edgeShear computes the tying shear strain γ = t·g at the midpoint of edge
// (p, q) of one configuration, returning t and g through the given buffers
func edgeShear(cfg *Config, p, q int, t, g []float64) float64 {
	for i := 0; i < 3; i++ {
		t[i] = 0.25 * (cfg.Xb[i][q] + cfg.Xt[i][q] - cfg.Xb[i][p] - cfg.Xt[i][p])
		g[i] = 0.25 * (cfg.Xt[i][p] - cfg.Xb[i][p] + cfg.Xt[i][q] - cfg.Xb[i][q])
	}
	return dot3(t, g)
}

// InterpShear returns the two blended transverse-shear strains (γ23, γ13)
//  inc -- use the load-step increment values instead of total values
func (o *AnsState) InterpShear(inc bool) (γ23, γ13 float64) {
	v := o.Gam
	if inc {
		v = o.GamInc
	}
	γ13 = o.F[0]*v[0] + o.F[2]*v[2]
	γ23 = o.F[3]*v[3] + o.F[1]*v[1]
	return
}

// dofCol returns the first dof column of the bottom (top=false) or top
// (top=true) external node paired with mid-surface node m
func dofCol(par *Params, m int, top bool) int {
	if top {
		return (m + par.Nmid) * par.NdofPerNode
	}
	return m * par.NdofPerNode
}
