// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import "github.com/cpmech/gosl/la"

// tensor component index pairs of the 6-component ordering
// (11, 22, 33, 12, 23, 13)
var tnIdx = [6][2]int{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {1, 2}, {0, 2}}

// TransMat builds the 6x6 transformation matrix T from the rank-4 outer
// product frame⊗frame, for 6-component engineering vectors. The frame must be
// a 3x3 orthonormal matrix (rows = target basis vectors); this is NOT checked:
// a malformed frame silently produces an incorrect but well-defined result.
func TransMat(T [][]float64, frame [][]float64) {
	a := frame
	for r := 0; r < 6; r++ {
		p, q := tnIdx[r][0], tnIdx[r][1]
		for c := 0; c < 6; c++ {
			i, j := tnIdx[c][0], tnIdx[c][1]
			switch {
			case p == q && i == j:
				T[r][c] = a[p][i] * a[p][i]
			case p == q:
				T[r][c] = a[p][i] * a[p][j]
			case i == j:
				T[r][c] = 2.0 * a[p][i] * a[q][i]
			default:
				T[r][c] = a[p][i]*a[q][j] + a[p][j]*a[q][i]
			}
		}
	}
}

// NaturalToLocal rotates a 6-component tensor from the element's natural basis
// into the local/material basis. Pure: never mutates the frame; works the same
// for strain-like and stress-like vectors.
func NaturalToLocal(res, t []float64, frame [][]float64) {
	T := la.MatAlloc(6, 6)
	TransMat(T, frame)
	la.MatVecMul(res, 1, T, t)
}

// LocalToNatural performs the inverse rotation using the transposed frame
func LocalToNatural(res, t []float64, frame [][]float64) {
	ft := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ft[i][j] = frame[j][i]
		}
	}
	NaturalToLocal(res, t, ft)
}
