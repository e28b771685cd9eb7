// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traj

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gotraj/inp"
)

// tolT is the tolerance used when comparing bound times against keytimes
const tolT = 1e-10

// addBoundRows expands the plan bounds into sampled inequality rows.
//
// Stage A splits every bound into single-segment clones and attaches a segment
// index. Stage B samples each clone uniformly with the plan density and emits
// one row per sample per finite dimension: +row ≤ +arg for "ub" and
// -row ≤ -arg for "lb". Reserved types "1norm" and "infnorm" emit nothing.
func (o *Generator) addBoundRows() (err error) {
	bounds, err := o.splitBounds()
	if err != nil {
		return
	}
	for _, b := range bounds {
		if b.Type != inp.BoundLB && b.Type != inp.BoundUB {
			continue
		}
		err = o.emitBoundRows(b)
		if err != nil {
			return
		}
	}
	return
}

// splitBounds returns single-segment clones of the plan bounds. The input
// bounds are not modified. Clones spanning several segments are truncated to
// their first segment and the remainder is re-processed.
func (o *Generator) splitBounds() (res []*inp.Bound, err error) {
	t0all := o.Keytimes[0]
	t1all := o.Keytimes[o.Nseg]

	// worklist
	list := make([]*inp.Bound, 0, len(o.Plan.Bounds))
	for _, b := range o.Plan.Bounds {
		c := b.GetCopy()
		switch len(c.Time) {
		case 0: // entire trajectory
			c.Time = []float64{t0all, t1all}
		case 1: // single instant
			c.Time = []float64{c.Time[0], c.Time[0]}
		}
		list = append(list, c)
	}

	for len(list) > 0 {
		b := list[0]
		list = list[1:]
		t0, t1 := b.Time[0], b.Time[1]

		// range checks
		if t1 < t0 {
			return nil, chk.Err("bound: time interval is reversed: [%g,%g]", t0, t1)
		}
		if t0 < t0all-tolT || t1 > t1all+tolT {
			return nil, chk.Err("bound: time interval [%g,%g] is outside the trajectory interval [%g,%g]", t0, t1, t0all, t1all)
		}

		// locate segments: start = greatest s with keytimes[s] ≤ t0;
		// end = greatest s with keytimes[s] < t1
		start, end := 0, 0
		for s := 0; s <= o.Nseg; s++ {
			if o.Keytimes[s] <= t0+tolT {
				start = s
			}
			if o.Keytimes[s] < t1-tolT {
				end = s
			}
		}
		if start > o.Nseg-1 {
			start = o.Nseg - 1
		}
		if end < start { // single instant at a knot
			end = start
		}

		// split multi-segment bounds
		if start != end {
			tcut := o.Keytimes[start+1]
			rest := b.GetCopy()
			rest.Time = []float64{tcut, t1}
			list = append(list, rest)
			b.Time = []float64{t0, tcut}
		}
		b.Seg = start
		res = append(res, b)
	}
	return
}

// emitBoundRows appends the sampled rows of one single-segment bound.
//
// Samples run from t₀ to t₁ inclusive with step duration/constraints_per_seg.
// The basis block is evaluated at the raw offsets t-tᵢ and each column c is
// then divided by duration^(n-c), i.e. by the duration raised to the monomial
// power of that column. This scaling does not depend on the bound derivative
// order; see the note in the package tests pinning this behaviour for k=1.
func (o *Generator) emitBoundRows(b *inp.Bound) (err error) {
	s := b.Seg
	dt := o.Durations[s]
	t0, t1 := b.Time[0], b.Time[1]

	// sample times
	step := dt / float64(o.Plan.CtrlPerSeg)
	var T []float64
	for t := t0; t <= t1+tolT; t += step {
		T = append(T, t-o.Keytimes[s])
	}

	// basis block with per-column duration scaling
	B, err := o.Dop.BasisMat(T, b.Deriv)
	if err != nil {
		return
	}
	n := o.Plan.Order
	for c := 0; c < o.Np1; c++ {
		scl := 1.0 / math.Pow(dt, float64(n-c))
		for i := range B {
			B[i][c] *= scl
		}
	}

	// emit rows
	sgn := 1.0
	if b.Type == inp.BoundLB {
		sgn = -1.0
	}
	for j := 0; j < o.Ndim; j++ {
		if !inp.Finite(b.Arg[j]) {
			continue
		}
		col := o.Prob.Loc(j, s)
		for i := range B {
			row := make([]float64, o.Prob.Nx)
			for c := 0; c < o.Np1; c++ {
				row[col+c] = sgn * B[i][c]
			}
			o.Prob.Aineq = append(o.Prob.Aineq, row)
			o.Prob.Bineq = append(o.Prob.Bineq, sgn*b.Arg[j])
		}
	}
	return
}
