// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_factory01(tst *testing.T) {

	chk.PrintTitle("factory01. unknown element kinds are reported")

	edat := &ElemData{Kind: "beam3000", Id: 7}
	if _, err := GetInfo(nil, edat); err == nil {
		tst.Errorf("GetInfo must fail for unknown element kinds\n")
		return
	}
	if _, err := New(nil, edat); err == nil {
		tst.Errorf("New must fail for unknown element kinds\n")
	}
}

func Test_ipsmap01(tst *testing.T) {

	chk.PrintTitle("ipsmap01. results map")

	M := NewIpsMap()
	M.Set("s11", 0, 3, 1.5)
	M.Set("s11", 2, 3, -2.5)
	chk.Scalar(tst, "s11@0", 1e-15, M.Get("s11", 0), 1.5)
	chk.Scalar(tst, "s11@1", 1e-15, M.Get("s11", 1), 0)
	chk.Scalar(tst, "s11@2", 1e-15, M.Get("s11", 2), -2.5)
	chk.Scalar(tst, "missing key", 1e-15, M.Get("s22", 0), 0)

	keys := StressKeys()
	chk.IntAssert(len(keys), 6)
	chk.String(tst, keys[0], "s11")
	chk.String(tst, keys[5], "s13")
}
