// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// CheckShellShape checks that mid-surface shape functions evaluate to 1.0 @ nodes
func CheckShellShape(tst *testing.T, shell *Shell, tol float64, verbose bool) {

	// allocate slices
	S := make([]float64, shell.Nmid)
	dSdR := la.MatAlloc(shell.Nmid, 2)
	r := []float64{0, 0}

	// loop over all mid-surface nodes
	errS := 0.0
	for n := 0; n < shell.Nmid; n++ {
		r[0] = shell.NatCoords[0][n]
		r[1] = shell.NatCoords[1][n]
		shell.Func(S, dSdR, nil, r)
		if verbose {
			io.Pf("S = %v\n", S)
		}
		for m := 0; m < shell.Nmid; m++ {
			if n == m {
				errS += math.Abs(S[m] - 1.0)
			} else {
				errS += math.Abs(S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shell.Type, errS)
		return
	}
}

// CheckShellDSdR compares analytical dSdR with numerical derivatives @ r
func CheckShellDSdR(tst *testing.T, shell *Shell, r []float64, tol float64, verbose bool) {

	// allocate slices
	S := make([]float64, shell.Nmid)
	Stmp := make([]float64, shell.Nmid)
	dSdR := la.MatAlloc(shell.Nmid, 2)
	dtmp := la.MatAlloc(shell.Nmid, 2)

	// analytical derivatives
	shell.Func(S, dSdR, nil, r)

	// central differences
	h := 1e-5
	rtmp := []float64{r[0], r[1]}
	for i := 0; i < 2; i++ {
		rtmp[i] = r[i] + h
		shell.Func(Stmp, dtmp, nil, rtmp)
		fwd := make([]float64, shell.Nmid)
		copy(fwd, Stmp)
		rtmp[i] = r[i] - h
		shell.Func(Stmp, dtmp, nil, rtmp)
		rtmp[i] = r[i]
		for m := 0; m < shell.Nmid; m++ {
			dnum := (fwd[m] - Stmp[m]) / (2.0 * h)
			if math.Abs(dSdR[m][i]-dnum) > tol {
				tst.Errorf("%s dS%d/dR%d failed: %v != %v\n", shell.Type, m, i, dSdR[m][i], dnum)
				return
			}
			if verbose {
				io.Pf("dS%ddR%d: ana=%13.6e num=%13.6e\n", m, i, dSdR[m][i], dnum)
			}
		}
	}
	chk.Scalar(tst, "sum(S)", 1e-14, sumVals(S), 1.0)
}

func sumVals(v []float64) (sum float64) {
	for _, x := range v {
		sum += x
	}
	return
}
