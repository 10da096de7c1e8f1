// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"
)

// Condensation holds the factorised internal block of one element, allowing
// the internal (enhancement) dofs to be recovered after a global solve
type Condensation struct {
	Ncond int         // number of condensed (nodal) dofs
	Dinv  [][]float64 // [nint][nint] inverse of the internal block
	C     [][]float64 // [nint][ncond] coupling block (internal rows)
	Ri    []float64   // [nint] internal residual
}

// Condense eliminates the trailing internal-dof block of the element
// stiffness/residual via a Schur complement:
//
//   ⎡A  B⎤⎧Δu⎫   ⎧-ra⎫
//   ⎢    ⎥⎨  ⎬ = ⎨   ⎬   =>   (A - B·D⁻¹·C)·Δu = -(ra - B·D⁻¹·ri)
//   ⎣C  D⎦⎩Δα⎭   ⎩-ri⎭
//
//  Output:
//   kc -- [ncond][ncond] condensed stiffness (pre-allocated)
//   rc -- [ncond] condensed residual (pre-allocated)
// Returns an error if the internal block is numerically singular; this
// indicates a degenerate through-thickness state and must be handled by the
// caller (retry with a perturbed state or abort the load step).
func Condense(kc [][]float64, rc []float64, K [][]float64, r []float64, ncond int) (*Condensation, error) {

	// contract checks
	ntot := len(K)
	chk.IntAssert(len(r), ntot)
	chk.IntAssert(len(rc), ncond)
	nint := ntot - ncond
	if nint < 1 {
		chk.Panic("condensation needs at least one internal dof. ntot=%d ncond=%d", ntot, ncond)
	}

	// invert internal block
	D := mat.NewDense(nint, nint, nil)
	for i := 0; i < nint; i++ {
		for j := 0; j < nint; j++ {
			D.Set(i, j, K[ncond+i][ncond+j])
		}
	}
	var Di mat.Dense
	if err := Di.Inverse(D); err != nil {
		return nil, chk.Err("static condensation failed: internal dof block is singular: %v", err)
	}

	// save factorisation
	o := new(Condensation)
	o.Ncond = ncond
	o.Dinv = la.MatAlloc(nint, nint)
	o.C = la.MatAlloc(nint, ncond)
	o.Ri = make([]float64, nint)
	for i := 0; i < nint; i++ {
		for j := 0; j < nint; j++ {
			o.Dinv[i][j] = Di.At(i, j)
		}
		copy(o.C[i], K[ncond+i][:ncond])
		o.Ri[i] = r[ncond+i]
	}

	// auxiliary: E = D⁻¹·C and e = D⁻¹·ri
	E := la.MatAlloc(nint, ncond)
	e := make([]float64, nint)
	for i := 0; i < nint; i++ {
		for j := 0; j < ncond; j++ {
			for k := 0; k < nint; k++ {
				E[i][j] += o.Dinv[i][k] * o.C[k][j]
			}
		}
		for k := 0; k < nint; k++ {
			e[i] += o.Dinv[i][k] * o.Ri[k]
		}
	}

	// Schur complement: kc = A - B·E and rc = ra - B·e
	for i := 0; i < ncond; i++ {
		rc[i] = r[i]
		for j := 0; j < ncond; j++ {
			kc[i][j] = K[i][j]
		}
		for k := 0; k < nint; k++ {
			b := K[i][ncond+k]
			rc[i] -= b * e[k]
			for j := 0; j < ncond; j++ {
				kc[i][j] -= b * E[k][j]
			}
		}
	}
	return o, nil
}

// RecoverInternal back-substitutes the condensed dofs for a given increment of
// the nodal dofs:  Δα = -D⁻¹·(ri + C·Δu)
func (o *Condensation) RecoverInternal(Δu []float64) (Δα []float64) {
	chk.IntAssert(len(Δu), o.Ncond)
	nint := len(o.Ri)
	aux := make([]float64, nint)
	for i := 0; i < nint; i++ {
		aux[i] = o.Ri[i]
		for j := 0; j < o.Ncond; j++ {
			aux[i] += o.C[i][j] * Δu[j]
		}
	}
	Δα = make([]float64, nint)
	for i := 0; i < nint; i++ {
		for k := 0; k < nint; k++ {
			Δα[i] -= o.Dinv[i][k] * aux[k]
		}
	}
	return
}
