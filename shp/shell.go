// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines for solid-shell mid-surfaces
package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// ShellFunc is the mid-surface shape functions callback function
//  S      -- [nmid] shape function values
//  dSdR   -- [nmid][2] derivatives w.r.t natural coordinates
//  gamBar -- [2][nmid] transverse-shear/thickness coupling operator (may be nil)
//  r      -- [2] natural coordinates (ξ1, ξ2)
type ShellFunc func(S []float64, dSdR [][]float64, gamBar [][]float64, r []float64)

// ShellData holds shape data @ one integration point of a solid-shell element
type ShellData struct {
	S      []float64   // [nmid] mid-surface shape function values
	DSdR   [][]float64 // [nmid][2] derivatives of S w.r.t natural coordinates
	R      []float64   // [2] natural coordinates (ξ1, ξ2)
	W      float64     // in-plane integration weight
	Curve  float64     // curvature weight; set during the deformation computation
	GamBar [][]float64 // [2][nmid] γ-bar operator; nil for topologies without ANS
}

// Shell holds mid-surface geometry data for solid-shell elements
type Shell struct {
	Type      string      // name; e.g. "sls8"
	Func      ShellFunc   // shape/derivs callback function
	Nmid      int         // number of mid-surface nodes
	Ans       bool        // assumed-natural-strain correction is active
	NatCoords [][]float64 // natural coordinates of mid-surface nodes [2][nmid]
	Ips       [][]float64 // in-plane integration points [nip][3]: ξ1, ξ2, weight
}

// IpsThickness holds the through-thickness integration rule: ζ coordinate and weight
var IpsThickness = [][]float64{
	{-0.5773502691896257, 1},
	{0.5773502691896257, 1},
}

// GetShell returns a Shell structure for a solid-shell with nnod external nodes
//  Note: panics if nnod is not 8 or 16
func GetShell(nnod int) *Shell {
	s, ok := shellfactory[nnod]
	if !ok {
		chk.Panic("cannot get shell mid-surface shape for element with %d nodes", nnod)
	}
	return s
}

// CalcIpData evaluates shape data at all in-plane integration points
func (o *Shell) CalcIpData() (data []*ShellData) {
	data = make([]*ShellData, len(o.Ips))
	for idx, ip := range o.Ips {
		sd := new(ShellData)
		sd.S = make([]float64, o.Nmid)
		sd.DSdR = la.MatAlloc(o.Nmid, 2)
		sd.R = []float64{ip[0], ip[1]}
		sd.W = ip[2]
		if o.Ans {
			sd.GamBar = la.MatAlloc(2, o.Nmid)
		}
		o.Func(sd.S, sd.DSdR, sd.GamBar, sd.R)
		data[idx] = sd
	}
	return
}

// CalcAtR evaluates shape data at given natural coordinates r = (ξ1, ξ2)
func (o *Shell) CalcAtR(sd *ShellData, r []float64) {
	copy(sd.R, r)
	o.Func(sd.S, sd.DSdR, sd.GamBar, sd.R)
}

// quad4 computes the bilinear mid-surface functions of the 8-node solid-shell
//
//    3 ------- 2
//    |    ξ2   |
//    |    |    |
//    |    +--ξ1|
//    |         |
//    0 ------- 1
//
func quad4(S []float64, dSdR [][]float64, gamBar [][]float64, r []float64) {
	ξ, η := r[0], r[1]
	for m := 0; m < 4; m++ {
		ξm, ηm := natCoordsQua4[0][m], natCoordsQua4[1][m]
		S[m] = 0.25 * (1.0 + ξ*ξm) * (1.0 + η*ηm)
		dSdR[m][0] = 0.25 * ξm * (1.0 + η*ηm)
		dSdR[m][1] = 0.25 * ηm * (1.0 + ξ*ξm)
	}
	if gamBar != nil {
		for m := 0; m < 4; m++ {
			// twist pattern ∂²Sm/∂ξ1∂ξ2
			gamBar[0][m] = 0.25 * natCoordsQua4[0][m] * natCoordsQua4[1][m]
			gamBar[1][m] = gamBar[0][m]
		}
	}
}

// quad8 computes the serendipity mid-surface functions of the 16-node solid-shell
//
//    3 --- 6 --- 2
//    |     ξ2    |
//    |     |     |
//    7     +--ξ1 5
//    |           |
//    |           |
//    0 --- 4 --- 1
//
func quad8(S []float64, dSdR [][]float64, gamBar [][]float64, r []float64) {
	ξ, η := r[0], r[1]
	for m := 0; m < 4; m++ {
		ξm, ηm := natCoordsQua8[0][m], natCoordsQua8[1][m]
		S[m] = 0.25 * (1.0 + ξ*ξm) * (1.0 + η*ηm) * (ξ*ξm + η*ηm - 1.0)
		dSdR[m][0] = 0.25 * ξm * (1.0 + η*ηm) * (2.0*ξ*ξm + η*ηm)
		dSdR[m][1] = 0.25 * ηm * (1.0 + ξ*ξm) * (ξ*ξm + 2.0*η*ηm)
	}
	S[4] = 0.5 * (1.0 - ξ*ξ) * (1.0 - η)
	S[5] = 0.5 * (1.0 + ξ) * (1.0 - η*η)
	S[6] = 0.5 * (1.0 - ξ*ξ) * (1.0 + η)
	S[7] = 0.5 * (1.0 - ξ) * (1.0 - η*η)
	dSdR[4][0] = -ξ * (1.0 - η)
	dSdR[4][1] = -0.5 * (1.0 - ξ*ξ)
	dSdR[5][0] = 0.5 * (1.0 - η*η)
	dSdR[5][1] = -η * (1.0 + ξ)
	dSdR[6][0] = -ξ * (1.0 + η)
	dSdR[6][1] = 0.5 * (1.0 - ξ*ξ)
	dSdR[7][0] = -0.5 * (1.0 - η*η)
	dSdR[7][1] = -η * (1.0 - ξ)
}

// natural coordinates
var natCoordsQua4 = [][]float64{
	{-1, 1, 1, -1},
	{-1, -1, 1, 1},
}
var natCoordsQua8 = [][]float64{
	{-1, 1, 1, -1, 0, 1, 0, -1},
	{-1, -1, 1, 1, -1, 0, 1, 0},
}

// Gauss quadrature coordinates/weights
var (
	gp2 = 0.5773502691896257 // 1/sqrt(3)
	gp3 = 0.7745966692414834 // sqrt(3/5)
	gw3 = []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
)

// shellfactory holds all shell mid-surface shapes available, keyed by number of external nodes
var shellfactory = make(map[int]*Shell)

func init() {

	// 8-node solid-shell: bilinear mid-surface, 2x2 rule, ANS active
	sls8 := &Shell{Type: "sls8", Func: quad4, Nmid: 4, Ans: true, NatCoords: natCoordsQua4}
	for _, η := range []float64{-gp2, gp2} {
		for _, ξ := range []float64{-gp2, gp2} {
			sls8.Ips = append(sls8.Ips, []float64{ξ, η, 1})
		}
	}
	shellfactory[8] = sls8

	// 16-node solid-shell: serendipity mid-surface, 3x3 rule, no ANS
	sls16 := &Shell{Type: "sls16", Func: quad8, Nmid: 8, Ans: false, NatCoords: natCoordsQua8}
	ξs := []float64{-gp3, 0, gp3}
	for j, η := range ξs {
		for i, ξ := range ξs {
			sls16.Ips = append(sls16.Ips, []float64{ξ, η, gw3[i] * gw3[j]})
		}
	}
	shellfactory[16] = sls16
}
