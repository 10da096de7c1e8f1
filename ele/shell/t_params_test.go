// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_par01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("par01. topology descriptors")

	// 8-node: ANS active, 4 internal dofs on top of 24 nodal ones
	p8 := NewParams(8, 1)
	chk.IntAssert(p8.Nmid, 4)
	chk.IntAssert(p8.NdofCond, 24)
	chk.IntAssert(p8.Nint, 4)
	chk.IntAssert(p8.NdofTot, 28)
	if !p8.Ans {
		tst.Errorf("8-node topology must activate the tying-point correction\n")
		return
	}

	// 16-node: no ANS, 48 nodal dofs
	p16 := NewParams(16, 3)
	chk.IntAssert(p16.Nmid, 8)
	chk.IntAssert(p16.NdofCond, 48)
	chk.IntAssert(p16.Nint, 4)
	chk.IntAssert(p16.NdofTot, 52)
	chk.IntAssert(p16.Nlay, 3)
	if p16.Ans {
		tst.Errorf("16-node topology must not activate the tying-point correction\n")
	}
}

func Test_lay01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lay01. weighted averaging of layered output")

	o := NewLayerData(2, 2, 3)

	// equal weights average arithmetically
	o.Add(0, 0, 0.5, []float64{1, 10})
	o.Add(0, 0, 0.5, []float64{3, 30})
	// unequal weights average by weight
	o.Add(1, 2, 1.0, []float64{2, 0})
	o.Add(1, 2, 3.0, []float64{6, 0})

	res := o.GetData()
	chk.Scalar(tst, "lay0 c0 n0", 1e-15, res[0][0][0], 2.0)
	chk.Scalar(tst, "lay0 c1 n0", 1e-15, res[0][1][0], 20.0)
	chk.Scalar(tst, "lay1 c0 n2", 1e-15, res[1][0][2], 5.0)

	// untouched entries stay zero
	chk.Scalar(tst, "lay0 c0 n1", 1e-15, res[0][0][1], 0)
	chk.Scalar(tst, "lay1 c0 n0", 1e-15, res[1][0][0], 0)

	// intermediate accumulation is raw: averaging happens at read time only
	o.Add(1, 2, 4.0, []float64{14, 0})
	res = o.GetData()
	chk.Scalar(tst, "re-read after Add", 1e-15, res[1][0][2], 9.5)

	// labels
	labels := o.Labels([]string{"s11", "s22"})
	chk.Strings(tst, "labels", labels, []string{"lay0-s11", "lay0-s22", "lay1-s11", "lay1-s22"})

	// clear resets everything
	o.Clear()
	res = o.GetData()
	chk.Scalar(tst, "after clear", 1e-15, res[1][0][2], 0)
}
