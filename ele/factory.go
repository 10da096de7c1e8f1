// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ElemData holds one element's configuration from the (external) model manager
type ElemData struct {
	Kind  string   // element kind; e.g. "shell"
	Id    int      // element id
	Nlay  int      // number of layers (layered constructions)
	Model string   // constitutive model name; e.g. "lin-elast"
	Mat   dbf.Params // material parameters
	Extra string   // extra flags
}

// InfoFuncType defines a function that returns information about a certain element kind
type InfoFuncType func(x [][]float64, edat *ElemData) *Info

// AllocatorType defines a function that allocates an element
//  x -- matrix of nodal coordinates [ndim][nnode]
type AllocatorType func(x [][]float64, edat *ElemData) Element

// GetInfo returns information about an element from the factory
func GetInfo(x [][]float64, edat *ElemData) (info *Info, err error) {
	fcn, ok := infofactory[edat.Kind]
	if !ok {
		return nil, chk.Err("cannot get info for element {kind=%q, id=%d}", edat.Kind, edat.Id)
	}
	info = fcn(x, edat)
	if info == nil {
		return nil, chk.Err("info for element {kind=%q, id=%d} is not available", edat.Kind, edat.Id)
	}
	return
}

// New returns a new element from the factory
func New(x [][]float64, edat *ElemData) (element Element, err error) {
	fcn, ok := allocators[edat.Kind]
	if !ok {
		return nil, chk.Err("cannot get allocator for element {kind=%q, id=%d}", edat.Kind, edat.Id)
	}
	element = fcn(x, edat)
	if element == nil {
		return nil, chk.Err("element {kind=%q, id=%d} is not available", edat.Kind, edat.Id)
	}
	return
}

// SetInfoFunc sets a new callback function to return information about an element
func SetInfoFunc(kind string, fcn InfoFuncType) {
	if _, ok := infofactory[kind]; ok {
		chk.Panic("cannot set information function for %q because element kind exists already", kind)
	}
	infofactory[kind] = fcn
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(kind string, fcn AllocatorType) {
	if _, ok := allocators[kind]; ok {
		chk.Panic("cannot set allocator function for %q because element kind exists already", kind)
	}
	allocators[kind] = fcn
}

// GetInfoFunc gets callback function to return information about an element
func GetInfoFunc(kind string) InfoFuncType {
	if fcn, ok := infofactory[kind]; ok {
		return fcn
	}
	chk.Panic("cannot get function for information about element %q", kind)
	return nil
}

// GetAllocator gets callback function to allocate an element
func GetAllocator(kind string) AllocatorType {
	if fcn, ok := allocators[kind]; ok {
		return fcn
	}
	chk.Panic("cannot get allocator function for element %q", kind)
	return nil
}

// infofactory holds all functions that return information about an element
var infofactory = make(map[string]InfoFuncType)

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
