// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gosls/ele"
	"github.com/cpmech/gosls/mdl/solid"
	"github.com/cpmech/gosls/shp"
)

// Shell represents a degenerated solid-shell element for layered (composite)
// constructions undergoing large displacements
type Shell struct {

	// basic data
	Cid  int         // element id
	X    [][]float64 // matrix of nodal coordinates [3][next]
	Par  *Params     // topology constants
	Shp  *shp.Shell  // mid-surface shape structure
	Nu   int         // number of condensed (nodal) unknowns
	Gfcn dbf.T    // gravity function

	// material model
	Mdl solid.Model // material model
	Sml solid.Small // model specialisation for incremental stress updates

	// integration points
	Sds []*shp.ShellData // [nipPlane] in-plane shape data
	ipl []ipPoint        // [nip] layer/thickness/plane bookkeeping

	// internal variables
	States    []*solid.State // [nip] states
	StatesBkp []*solid.State // [nip] backup states
	StatesAux []*solid.State // [nip] auxiliary backup states

	// through-thickness enhancement parameters (condensed dofs)
	Alp    []float64     // [nint] current values
	AlpBkp []float64     // [nint] values @ beginning of load step
	cond   *Condensation // factorisation from the last stiffness integration

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// layered output
	Lay *LayerData

	// scratchpad. computed @ each ip
	kin    *Kinematics
	frame  [][]float64 // [3][3] local/material frame
	B      [][]float64 // [6][ndofTot] natural-frame strain operator
	Bl     [][]float64 // [6][ndofTot] local-frame strain operator
	D      [][]float64 // [6][6] constitutive consistent tangent matrix
	K      [][]float64 // [ndofTot][ndofTot] full tangent (stiffness) matrix
	Kc     [][]float64 // [nu][nu] condensed tangent matrix
	fi     []float64   // [ndofTot] internal forces
	fc     []float64   // [nu] condensed internal forces
	ue, up []float64   // [nu] current/previous element displacements

	// strains
	ε, κ, Δε, Δκ []float64 // natural-frame membrane/curvature strains and increments
	εn, Δεn      []float64 // natural-frame total strains @ ζ
	εl, Δεl      []float64 // local-frame total strains @ ζ
}

// ipPoint locates one integration point within layer, thickness and plane
type ipPoint struct {
	lay int     // layer index
	ips int     // in-plane shape data index
	ζ   float64 // through-thickness natural coordinate
	w   float64 // through-thickness weight (includes layer interval scaling)
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("shell", func(x [][]float64, edat *ele.ElemData) *ele.Info {
		nnod := len(x[0])
		if nnod != 8 && nnod != 16 {
			return nil
		}
		var info ele.Info
		ykeys := []string{"ux", "uy", "uz"}
		info.Dofs = make([][]string, nnod)
		for m := 0; m < nnod; m++ {
			info.Dofs[m] = ykeys
		}
		info.Y2F = map[string]string{"ux": "fx", "uy": "fy", "uz": "fz"}
		info.NintDofs = 4
		return &info
	})

	// element allocator
	ele.SetAllocator("shell", func(x [][]float64, edat *ele.ElemData) ele.Element {

		// basic data
		var o Shell
		o.Cid = edat.Id
		o.X = x
		nlay := edat.Nlay
		if nlay < 1 {
			nlay = 1
		}
		o.Par = NewParams(len(x[0]), nlay)
		o.Shp = shp.GetShell(o.Par.Next)
		o.Nu = o.Par.NdofCond

		// material model
		mdl, err := solid.New(edat.Model)
		if err != nil {
			chk.Panic("cannot get model for shell element {id=%d, material=%q}:\n%v", edat.Id, edat.Model, err)
		}
		if err = mdl.Init(edat.Mat); err != nil {
			chk.Panic("cannot initialise model for shell element {id=%d}:\n%v", edat.Id, err)
		}
		o.Mdl = mdl
		sml, ok := mdl.(solid.Small)
		if !ok {
			chk.Panic("shell element needs a model with incremental stress updates")
		}
		o.Sml = sml

		// integration points: layers x thickness x plane
		o.Sds = o.Shp.CalcIpData()
		dz := 2.0 / float64(nlay)
		for l := 0; l < nlay; l++ {
			za := -1.0 + float64(l)*dz
			for _, zp := range shp.IpsThickness {
				ζ := za + 0.5*dz*(1.0+zp[0])
				wζ := 0.5 * dz * zp[1]
				for idx := range o.Sds {
					o.ipl = append(o.ipl, ipPoint{l, idx, ζ, wζ})
				}
			}
		}

		// enhancement parameters
		o.Alp = make([]float64, o.Par.Nint)
		o.AlpBkp = make([]float64, o.Par.Nint)

		// layered output
		o.Lay = NewLayerData(nlay, solid.Nsig, o.Par.Next)

		// scratchpad. computed @ each ip
		nt := o.Par.NdofTot
		o.kin = NewKinematics(o.Par)
		o.frame = la.MatAlloc(3, 3)
		o.B = la.MatAlloc(6, nt)
		o.Bl = la.MatAlloc(6, nt)
		o.D = la.MatAlloc(6, 6)
		o.K = la.MatAlloc(nt, nt)
		o.Kc = la.MatAlloc(o.Nu, o.Nu)
		o.fi = make([]float64, nt)
		o.fc = make([]float64, o.Nu)
		o.ue = make([]float64, o.Nu)
		o.up = make([]float64, o.Nu)
		o.ε = make([]float64, 6)
		o.κ = make([]float64, 6)
		o.Δε = make([]float64, 6)
		o.Δκ = make([]float64, 6)
		o.εn = make([]float64, 6)
		o.Δεn = make([]float64, 6)
		o.εl = make([]float64, 6)
		o.Δεl = make([]float64, 6)

		// return new element
		return &o
	})
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the element Id
func (o *Shell) Id() int { return o.Cid }

// SetEqs set equations
func (o *Shell) SetEqs(eqs [][]int) (err error) {
	chk.IntAssert(len(eqs), o.Par.Next)
	o.Umap = make([]int, o.Nu)
	for m := 0; m < o.Par.Next; m++ {
		for i := 0; i < o.Par.NdofPerNode; i++ {
			r := i + m*o.Par.NdofPerNode
			o.Umap[r] = eqs[m][i]
		}
	}
	return
}

// SetEleConds set element conditions
func (o *Shell) SetEleConds(key string, f dbf.T, extra string) (err error) {
	if key == "g" { // gravity
		o.Gfcn = f
	}
	return
}

// Response computes the condensed residual and tangent stiffness for the
// current solution state, integrating kinematics, strain operator, material
// tangent and geometric stiffness over all integration points and condensing
// the internal dofs once per element (after summation)
func (o *Shell) Response(sol *ele.Solution, firstIt bool) (rc []float64, kc [][]float64, err error) {

	// element displacement vectors
	for i, I := range o.Umap {
		o.ue[i] = sol.Y[I]
		o.up[i] = sol.Y[I] - sol.ΔY[I]
	}

	// zero accumulators
	la.MatFill(o.K, 0)
	la.VecFill(o.fi, 0)

	// for each integration point
	for idx, p := range o.ipl {

		// deformation descriptors @ ip
		sd := o.Sds[p.ips]
		ComputeDeformation(o.Par, sd, o.X, o.ue, o.up, o.kin)
		o.calcFrame()

		// check jacobian
		detJ := o.kin.Jacobian(p.ζ)
		if detJ < 0 {
			return nil, nil, chk.Err("Shell: eid=%d: Jacobian is negative = %g\n", o.Cid, detJ)
		}
		coef := detJ * sd.W * p.w

		// strain operator, rotated into the local frame
		BuildStrainOperator(o.Bl, o.B, o.Par, sd, o.kin, p.ζ, o.frame)

		// internal forces
		la.MatTrVecMulAdd(o.fi, coef, o.Bl, o.States[idx].Sig) // fi += coef * tr(B) * σ

		// consistent tangent model matrix
		err = o.Sml.CalcD(o.D, o.States[idx], firstIt)
		if err != nil {
			return
		}
		la.MatTrMulAdd3(o.K, coef, o.Bl, o.D, o.Bl) // K += coef * tr(B) * D * B

		// geometric (stress-dependent) stiffness
		AddGeomStiffness(o.K, o.Par, sd, o.kin, o.States[idx].Sig, p.ζ, coef)
	}

	// static condensation of the enhancement dofs
	o.cond, err = Condense(o.Kc, o.fc, o.K, o.fi, o.Nu)
	if err != nil {
		return nil, nil, chk.Err("shell element %d: %v", o.Cid, err)
	}
	return o.fc, o.Kc, nil
}

// AddToRhs adds -R to global residual vector fb
func (o *Shell) AddToRhs(fb []float64, sol *ele.Solution) (err error) {
	rc, _, err := o.Response(sol, false)
	if err != nil {
		return
	}
	for i, I := range o.Umap {
		fb[I] -= rc[i]
	}

	// gravity contribution, split between the paired faces by the linear
	// through-thickness interpolation
	if o.Gfcn != nil {
		ρ := o.Mdl.GetRho()
		gz := o.Gfcn.F(sol.T, nil)
		for _, p := range o.ipl {
			sd := o.Sds[p.ips]
			ComputeDeformation(o.Par, sd, o.X, o.ue, o.up, o.kin)
			coef := o.kin.Jacobian(p.ζ) * sd.W * p.w
			for m := 0; m < o.Par.Nmid; m++ {
				rb := 2 + m*o.Par.NdofPerNode
				rt := 2 + (m+o.Par.Nmid)*o.Par.NdofPerNode
				fb[o.Umap[rb]] -= coef * 0.5 * (1.0 - p.ζ) * sd.S[m] * ρ * gz
				fb[o.Umap[rt]] -= coef * 0.5 * (1.0 + p.ζ) * sd.S[m] * ρ * gz
			}
		}
	}
	return
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *Shell) AddToKb(Kb *la.Triplet, sol *ele.Solution, firstIt bool) (err error) {
	_, kc, err := o.Response(sol, firstIt)
	if err != nil {
		return
	}
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Put(I, J, kc[i][j])
		}
	}
	return
}

// Update perform (tangent) update
func (o *Shell) Update(sol *ele.Solution) (err error) {

	// element displacement vectors
	Δu := make([]float64, o.Nu)
	for i, I := range o.Umap {
		o.ue[i] = sol.Y[I]
		o.up[i] = sol.Y[I] - sol.ΔY[I]
		Δu[i] = sol.ΔY[I]
	}

	// recover enhancement parameters from the last condensation
	if o.cond != nil {
		Δα := o.cond.RecoverInternal(Δu)
		for k := 0; k < o.Par.Nint; k++ {
			o.Alp[k] = o.AlpBkp[k] + Δα[k]
		}
	}
	Δα := make([]float64, o.Par.Nint)
	for k := 0; k < o.Par.Nint; k++ {
		Δα[k] = o.Alp[k] - o.AlpBkp[k]
	}

	// accumulate layered output from scratch
	o.Lay.Clear()

	// for each integration point
	for idx, p := range o.ipl {

		// deformation descriptors @ ip
		sd := o.Sds[p.ips]
		ComputeDeformation(o.Par, sd, o.X, o.ue, o.up, o.kin)
		o.calcFrame()

		// total and incremental strains @ ζ, rotated into the local frame
		GetStrain(o.ε, o.kin)
		GetCurvatureStrain(o.κ, sd, o.kin)
		GetIncrementalStrain(o.Δε, o.kin)
		GetIncrementalCurvatureStrain(o.Δκ, sd, o.kin)
		for i := 0; i < 6; i++ {
			o.εn[i] = o.ε[i] + p.ζ*o.κ[i]
			o.Δεn[i] = o.Δε[i] + p.ζ*o.Δκ[i]
		}
		AddEnhancedStrain(o.εn, sd, o.kin, p.ζ, o.Alp)
		AddEnhancedStrain(o.Δεn, sd, o.kin, p.ζ, Δα)
		NaturalToLocal(o.εl, o.εn, o.frame)
		NaturalToLocal(o.Δεl, o.Δεn, o.frame)

		// call model update => update stresses
		o.States[idx].Lay = p.lay
		err = o.Sml.Update(o.States[idx], o.εl, o.Δεl, o.Cid, idx, sol.T)
		if err != nil {
			return chk.Err("Update failed (eid=%d, ip=%d)\nΔε=%v\n%v", o.Cid, idx, o.Δεl, err)
		}

		// layered output
		o.addLayerIp(idx, p, sd)
	}
	return
}

// addLayerIp accumulates one integration point into the layered container.
// Single-layer constructions route bottom-face data to the bottom nodes and
// top-face data to the top nodes.
func (o *Shell) addLayerIp(idx int, p ipPoint, sd *shp.ShellData) {
	σ := o.States[idx].Sig
	for m := 0; m < o.Par.Nmid; m++ {
		// serendipity corner values are negative @ interior points; the
		// magnitude still measures the node/ip proximity
		w := math.Abs(sd.S[m]) * sd.W * p.w
		if o.Par.Nlay == 1 {
			node := m
			if p.ζ > 0 {
				node = m + o.Par.Nmid
			}
			o.Lay.Add(p.lay, node, w, σ)
			continue
		}
		o.Lay.Add(p.lay, m, w, σ)
		o.Lay.Add(p.lay, m+o.Par.Nmid, w, σ)
	}
}

// GetLayerData returns the layers x components x nodes table of averaged
// stresses with the corresponding labels; e.g. "lay0-s11"
func (o *Shell) GetLayerData() (labels []string, table [][][]float64) {
	return o.Lay.Labels(ele.StressKeys()), o.Lay.GetData()
}

// internal variables ///////////////////////////////////////////////////////////////////////////////

// SetIniIvs sets initial ivs for given values in sol and ivs map
func (o *Shell) SetIniIvs(sol *ele.Solution, ivs map[string][]float64) (err error) {

	// allocate slices of states
	nip := len(o.ipl)
	o.States = make([]*solid.State, nip)
	o.StatesBkp = make([]*solid.State, nip)
	o.StatesAux = make([]*solid.State, nip)

	// has specified stresses?
	_, hasSig := ivs["s11"]

	// for each integration point
	σ := make([]float64, solid.Nsig)
	for i := 0; i < nip; i++ {
		if hasSig {
			for j, key := range ele.StressKeys() {
				if vals, ok := ivs[key]; ok {
					σ[j] = vals[i]
				}
			}
		}
		o.States[i], err = o.Mdl.InitIntVars(σ)
		if err != nil {
			return
		}
		o.StatesBkp[i] = o.States[i].GetCopy()
		o.StatesAux[i] = o.States[i].GetCopy()
	}
	return
}

// BackupIvs create copy of internal variables
func (o *Shell) BackupIvs(aux bool) (err error) {
	if aux {
		for i, s := range o.StatesAux {
			s.Set(o.States[i])
		}
		return
	}
	for i, s := range o.StatesBkp {
		s.Set(o.States[i])
	}
	copy(o.AlpBkp, o.Alp)
	return
}

// RestoreIvs restore internal variables from copies
func (o *Shell) RestoreIvs(aux bool) (err error) {
	if aux {
		for i, s := range o.States {
			s.Set(o.StatesAux[i])
		}
		return
	}
	for i, s := range o.States {
		s.Set(o.StatesBkp[i])
	}
	copy(o.Alp, o.AlpBkp)
	return
}

// output ///////////////////////////////////////////////////////////////////////////////////////////

// OutIpCoords returns the reference coordinates of all integration points
func (o *Shell) OutIpCoords() (coords [][]float64) {
	coords = la.MatAlloc(len(o.ipl), 3)
	for idx, p := range o.ipl {
		sd := o.Sds[p.ips]
		for i := 0; i < 3; i++ {
			for m := 0; m < o.Par.Nmid; m++ {
				mid := 0.5 * (o.X[i][m] + o.X[i][m+o.Par.Nmid])
				dir := 0.5 * (o.X[i][m+o.Par.Nmid] - o.X[i][m])
				coords[idx][i] += sd.S[m] * (mid + p.ζ*dir)
			}
		}
	}
	return
}

// OutIpKeys returns the integration points' keys
func (o *Shell) OutIpKeys() []string {
	return ele.StressKeys()
}

// OutIpVals returns the integration points' values corresponding to keys
func (o *Shell) OutIpVals(M *ele.IpsMap, sol *ele.Solution) {
	nip := len(o.ipl)
	for idx := range o.ipl {
		for j, key := range ele.StressKeys() {
			M.Set(key, idx, nip, o.States[idx].Sig[j])
		}
	}
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// calcFrame computes the orthonormal local/material frame from the reference
// configuration: ê3 along the director, ê1 along the first tangent projected
// onto the mid-surface, ê2 completing the triad. The frame entries are the
// projections onto the normalized natural triad.
func (o *Shell) calcFrame() {
	r := &o.kin.Ref
	v1 := make([]float64, 3)
	v2 := make([]float64, 3)
	v3 := make([]float64, 3)

	// triad
	unit3(v3, r.D)
	c := dot3(r.E1, v3)
	for i := 0; i < 3; i++ {
		v1[i] = r.E1[i] - c*v3[i]
	}
	unit3(v1, v1)
	utl.Cross3d(v2, v3, v1) // v2 := v3 cross v1

	// normalized natural triad
	g1 := make([]float64, 3)
	g2 := make([]float64, 3)
	unit3(g1, r.E1)
	unit3(g2, r.E2)

	// frame entries
	for i, v := range [][]float64{v1, v2, v3} {
		o.frame[i][0] = dot3(v, g1)
		o.frame[i][1] = dot3(v, g2)
		o.frame[i][2] = dot3(v, v3)
	}
}

// unit3 normalizes a 3-component vector; res and v may alias
func unit3(res, v []float64) {
	n := math.Sqrt(dot3(v, v))
	for i := 0; i < 3; i++ {
		res[i] = v[i] / n
	}
}
