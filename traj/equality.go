// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traj

import (
	"math"

	"github.com/cpmech/gotraj/inp"
	"github.com/cpmech/gotraj/poly"
)

// countWaypointRows counts the equality rows generated by waypoint boundary
// conditions: one row per finite (waypoint, derivative, dimension) cell whose
// derivative order does not exceed the continuity order of that dimension
func (o *Generator) countWaypointRows() (n int) {
	for _, w := range o.Plan.Waypoints {
		for k := 0; k <= poly.MaxDeriv; k++ {
			vals := w.Deriv(k)
			if len(vals) == 0 {
				continue
			}
			for j := 0; j < o.Ndim; j++ {
				if inp.Finite(vals[j]) && k <= o.Plan.Contderiv[j] {
					n++
				}
			}
		}
	}
	return
}

// addWaypointRows emits the waypoint equality rows starting at row ir.
//
// Each segment is parametrised in normalised time τ=(t-tᵢ)/dt; hence a physical
// k-th derivative target v becomes the right-hand side v·dtᵏ of a row holding
// the k-th derivative basis at τ=0 or τ=1. Every waypoint attaches to the
// opening (τ=0) of its segment, except the terminal one which attaches to the
// last segment at τ=1. NaN cells emit no row.
func (o *Generator) addWaypointRows(ir int) (irNew int, err error) {
	for pt, w := range o.Plan.Waypoints {
		seg := pt
		if seg > o.Nseg-1 {
			seg = o.Nseg - 1
		}
		dt := o.Durations[seg]
		τ := float64(pt - seg)
		for k := 0; k <= poly.MaxDeriv; k++ {
			vals := w.Deriv(k)
			if len(vals) == 0 {
				continue
			}
			var bas []float64
			bas, err = o.Dop.Basis(τ, k)
			if err != nil {
				return
			}
			scl := math.Pow(dt, float64(k))
			for j := 0; j < o.Ndim; j++ {
				if !inp.Finite(vals[j]) || k > o.Plan.Contderiv[j] {
					continue
				}
				col := o.Prob.Loc(j, seg)
				for c := 0; c < o.Np1; c++ {
					o.Prob.Aeq[ir][col+c] = bas[c]
				}
				o.Prob.Beq[ir] = vals[j] * scl
				ir++
			}
		}
	}
	return ir, nil
}
