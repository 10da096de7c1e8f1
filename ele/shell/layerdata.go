// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// LayerData accumulates per-integration-point constitutive output into a
// per-node, per-layer table with weighted averaging. Intermediate state is raw
// accumulation; division by the weights happens at read time only.
type LayerData struct {
	Nlay  int           // number of layers
	Ncomp int           // number of components per entry
	Nnod  int           // number of external nodes
	vals  [][][]float64 // [nlay][ncomp][nnod] accumulated weighted values
	wgts  [][]float64   // [nlay][nnod] accumulated weights
}

// NewLayerData returns a new container for nlay layers and nnod external nodes
func NewLayerData(nlay, ncomp, nnod int) (o *LayerData) {
	o = new(LayerData)
	o.Nlay = nlay
	o.Ncomp = ncomp
	o.Nnod = nnod
	o.vals = utl.Deep3alloc(nlay, ncomp, nnod)
	o.wgts = la.MatAlloc(nlay, nnod)
	return
}

// Clear resets all accumulated values and weights
func (o *LayerData) Clear() {
	for l := 0; l < o.Nlay; l++ {
		for c := 0; c < o.Ncomp; c++ {
			la.VecFill(o.vals[l][c], 0)
		}
		la.VecFill(o.wgts[l], 0)
	}
}

// Add accumulates one integration point contribution for one node
//  lay  -- layer index
//  node -- external node index
//  w    -- contribution weight
//  vals -- [ncomp] component values
func (o *LayerData) Add(lay, node int, w float64, vals []float64) {
	chk.IntAssert(len(vals), o.Ncomp)
	for c := 0; c < o.Ncomp; c++ {
		o.vals[lay][c][node] += w * vals[c]
	}
	o.wgts[lay][node] += w
}

// GetData returns the averaged table [nlay][ncomp][nnod]: accumulated values
// divided by the accumulated weights. Entries without contributions are zero.
func (o *LayerData) GetData() (res [][][]float64) {
	res = utl.Deep3alloc(o.Nlay, o.Ncomp, o.Nnod)
	for l := 0; l < o.Nlay; l++ {
		for n := 0; n < o.Nnod; n++ {
			if o.wgts[l][n] > 0 {
				for c := 0; c < o.Ncomp; c++ {
					res[l][c][n] = o.vals[l][c][n] / o.wgts[l][n]
				}
			}
		}
	}
	return
}

// Labels generates human-readable column labels; e.g. "lay0-s11"
func (o *LayerData) Labels(keys []string) (labels []string) {
	chk.IntAssert(len(keys), o.Ncomp)
	labels = make([]string, o.Nlay*o.Ncomp)
	for l := 0; l < o.Nlay; l++ {
		for c := 0; c < o.Ncomp; c++ {
			labels[c+l*o.Ncomp] = io.Sf("lay%d-%s", l, keys[c])
		}
	}
	return
}
