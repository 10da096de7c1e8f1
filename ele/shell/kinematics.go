// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gosls/shp"
)

// Config holds one configuration snapshot of the element kinematics @ one
// integration point. For the reference/previous/current roles X holds nodal
// positions; for the increment role it holds displacement increments, and the
// derived vectors are then the u0d1, u0d2, u1, u1d1, u1d2 analogues of the
// tangents and director.
type Config struct {

	// nodal data
	X  [][]float64 // [3][next] nodal positions (or displacement increments)
	Xb [][]float64 // [3][nmid] bottom-half sub-views (first half of X columns)
	Xt [][]float64 // [3][nmid] top-half sub-views

	// derived @ integration point
	E1  []float64 // in-plane tangent ∂m/∂ξ1 of the mid-surface
	E2  []float64 // in-plane tangent ∂m/∂ξ2
	D   []float64 // director: through-thickness fiber vector
	Dd1 []float64 // ∂d/∂ξ1
	Dd2 []float64 // ∂d/∂ξ2
}

// Kinematics holds the four configuration snapshots of one integration point.
// All data is recomputed at every call to ComputeDeformation; nothing persists
// across integration points.
type Kinematics struct {
	Ref  Config    // reference (original) configuration
	Prev Config    // configuration @ previous load step
	Cur  Config    // current configuration
	Inc  Config    // increment: current minus previous displacements
	Ans  *AnsState // tying-point data; nil unless the topology has ANS
}

// NewKinematics allocates all snapshots for the given topology
func NewKinematics(par *Params) (o *Kinematics) {
	o = new(Kinematics)
	for _, cfg := range []*Config{&o.Ref, &o.Prev, &o.Cur, &o.Inc} {
		cfg.X = la.MatAlloc(3, par.Next)
		cfg.Xb = make([][]float64, 3)
		cfg.Xt = make([][]float64, 3)
		for i := 0; i < 3; i++ {
			cfg.Xb[i] = cfg.X[i][:par.Nmid]
			cfg.Xt[i] = cfg.X[i][par.Nmid:]
		}
		cfg.E1 = make([]float64, 3)
		cfg.E2 = make([]float64, 3)
		cfg.D = make([]float64, 3)
		cfg.Dd1 = make([]float64, 3)
		cfg.Dd2 = make([]float64, 3)
	}
	if par.Ans {
		o.Ans = newAnsState(par)
	}
	return
}

// ComputeDeformation populates all configuration snapshots and derived vectors
// @ one integration point, and runs the ANS corrector if the topology asks for
// it. It also sets the curvature weight in sd from the reference configuration.
//  Input:
//   xref  -- [3][next] reference nodal coordinates
//   ucur  -- [ncond] current nodal displacements (node-major: i + m*3)
//   uprev -- [ncond] nodal displacements @ previous load step
func ComputeDeformation(par *Params, sd *shp.ShellData, xref [][]float64, ucur, uprev []float64, o *Kinematics) {

	// contract checks
	chk.IntAssert(len(xref), 3)
	chk.IntAssert(len(xref[0]), par.Next)
	chk.IntAssert(len(ucur), par.NdofCond)
	chk.IntAssert(len(uprev), par.NdofCond)
	chk.IntAssert(len(sd.S), par.Nmid)

	// nodal positions: current = reference + displacement; increment = current - previous
	for m := 0; m < par.Next; m++ {
		for i := 0; i < 3; i++ {
			r := i + m*par.NdofPerNode
			o.Ref.X[i][m] = xref[i][m]
			o.Prev.X[i][m] = xref[i][m] + uprev[r]
			o.Cur.X[i][m] = xref[i][m] + ucur[r]
			o.Inc.X[i][m] = ucur[r] - uprev[r]
		}
	}

	// derived vectors
	for _, cfg := range []*Config{&o.Ref, &o.Prev, &o.Cur, &o.Inc} {
		cfg.calcVectors(par, sd)
	}

	// curvature weight from the reference configuration
	dd := dot3(o.Ref.D, o.Ref.D)
	sd.Curve = (dot3(o.Ref.E1, o.Ref.Dd1) + dot3(o.Ref.E2, o.Ref.Dd2)) / dd

	// tying points
	if par.Ans {
		o.Ans.compute(par, sd, o)
	}
}

// calcVectors computes tangents, director and director derivatives as
// shape-weighted sums (mid-surface) and differences (director) of the bottom
// and top node sets
func (o *Config) calcVectors(par *Params, sd *shp.ShellData) {
	for i := 0; i < 3; i++ {
		o.E1[i] = 0
		o.E2[i] = 0
		o.D[i] = 0
		o.Dd1[i] = 0
		o.Dd2[i] = 0
		for m := 0; m < par.Nmid; m++ {
			mid := 0.5 * (o.Xb[i][m] + o.Xt[i][m])
			dir := 0.5 * (o.Xt[i][m] - o.Xb[i][m])
			o.E1[i] += sd.DSdR[m][0] * mid
			o.E2[i] += sd.DSdR[m][1] * mid
			o.D[i] += sd.S[m] * dir
			o.Dd1[i] += sd.DSdR[m][0] * dir
			o.Dd2[i] += sd.DSdR[m][1] * dir
		}
	}
}

// Jacobian returns the volume Jacobian of the reference configuration @
// through-thickness coordinate ζ: det[e1+ζ·d,1  e2+ζ·d,2  d]
func (o *Kinematics) Jacobian(ζ float64) float64 {
	a := make([]float64, 3)
	b := make([]float64, 3)
	n := make([]float64, 3)
	for i := 0; i < 3; i++ {
		a[i] = o.Ref.E1[i] + ζ*o.Ref.Dd1[i]
		b[i] = o.Ref.E2[i] + ζ*o.Ref.Dd2[i]
	}
	utl.Cross3d(n, a, b) // n := a cross b
	return dot3(n, o.Ref.D)
}

// dot3 returns the dot product of two 3-component vectors
func dot3(u, v []float64) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}
