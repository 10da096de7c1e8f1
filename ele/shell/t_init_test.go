// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// flatPatch8 returns the nodal coordinates [3][8] of a flat unit-square 8-node
// patch with thickness h: bottom nodes first, then the paired top nodes
func flatPatch8(h float64) (x [][]float64) {
	xc := []float64{0, 1, 1, 0}
	yc := []float64{0, 0, 1, 1}
	x = make([][]float64, 3)
	for i := 0; i < 3; i++ {
		x[i] = make([]float64, 8)
	}
	for m := 0; m < 4; m++ {
		x[0][m], x[0][m+4] = xc[m], xc[m]
		x[1][m], x[1][m+4] = yc[m], yc[m]
		x[2][m], x[2][m+4] = -h/2.0, h/2.0
	}
	return
}

// warpedPatch8 returns the nodal coordinates [3][8] of a warped 8-node patch
// with thickness h: the mid-surface corners are lifted out of plane and the
// fibers are tilted, so the curvature weight and the director derivatives are
// nonzero
func warpedPatch8(h float64) (x [][]float64) {
	xc := []float64{0, 1, 1, 0}
	yc := []float64{0, 0, 1, 1}
	zc := []float64{0, 0.15, 0.05, -0.1}
	tx := []float64{0.02, -0.03, 0.04, 0.01}
	ty := []float64{-0.01, 0.02, 0.03, -0.02}
	x = make([][]float64, 3)
	for i := 0; i < 3; i++ {
		x[i] = make([]float64, 8)
	}
	for m := 0; m < 4; m++ {
		x[0][m], x[0][m+4] = xc[m], xc[m]+tx[m]
		x[1][m], x[1][m+4] = yc[m], yc[m]+ty[m]
		x[2][m], x[2][m+4] = zc[m], zc[m]+h
	}
	return
}

// warpedPatch16 returns the nodal coordinates [3][16] of a warped 16-node
// patch with thickness h: lifted mid-surface and tilted fibers as in
// warpedPatch8, with mid-side nodes off the corner interpolation
func warpedPatch16(h float64) (x [][]float64) {
	xc := []float64{0, 1, 1, 0, 0.5, 1, 0.5, 0}
	yc := []float64{0, 0, 1, 1, 0, 0.5, 1, 0.5}
	zc := []float64{0, 0.15, 0.05, -0.1, 0.08, 0.1, -0.02, -0.05}
	tx := []float64{0.02, -0.03, 0.04, 0.01, -0.02, 0.03, 0.01, -0.01}
	ty := []float64{-0.01, 0.02, 0.03, -0.02, 0.01, -0.03, 0.02, 0.01}
	x = make([][]float64, 3)
	for i := 0; i < 3; i++ {
		x[i] = make([]float64, 16)
	}
	for m := 0; m < 8; m++ {
		x[0][m], x[0][m+8] = xc[m], xc[m]+tx[m]
		x[1][m], x[1][m+8] = yc[m], yc[m]+ty[m]
		x[2][m], x[2][m+8] = zc[m], zc[m]+h
	}
	return
}

// flatPatch16 returns the nodal coordinates [3][16] of a flat unit-square
// 16-node patch with thickness h: corners plus mid-side nodes
func flatPatch16(h float64) (x [][]float64) {
	xc := []float64{0, 1, 1, 0, 0.5, 1, 0.5, 0}
	yc := []float64{0, 0, 1, 1, 0, 0.5, 1, 0.5}
	x = make([][]float64, 3)
	for i := 0; i < 3; i++ {
		x[i] = make([]float64, 16)
	}
	for m := 0; m < 8; m++ {
		x[0][m], x[0][m+8] = xc[m], xc[m]
		x[1][m], x[1][m+8] = yc[m], yc[m]
		x[2][m], x[2][m+8] = -h/2.0, h/2.0
	}
	return
}
