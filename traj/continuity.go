// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traj

import (
	"math"
)

// countContinuityRows counts the rows enforcing derivative continuity at
// interior waypoints: (contderiv[j]+1) rows per interior knot per dimension
func (o *Generator) countContinuityRows() (n int) {
	for j := 0; j < o.Ndim; j++ {
		n += (o.Nseg - 1) * (o.Plan.Contderiv[j] + 1)
	}
	return
}

// addContinuityRows emits the interior-knot continuity rows starting at row ir.
//
// At knot i the k-th physical derivative of segment i-1 at τ=1 must equal the
// one of segment i at τ=0. The two segments carry distinct timescales, so the
// end basis is divided by dt₁ᵏ and the start basis by dt₂ᵏ before subtraction.
func (o *Generator) addContinuityRows(ir int) (irNew int, err error) {
	kmax := o.Plan.MaxContderiv()
	for i := 1; i < o.Nseg; i++ {
		dt1 := o.Durations[i-1]
		dt2 := o.Durations[i]
		for k := 0; k <= kmax; k++ {
			var bEnd, bStart []float64
			bEnd, err = o.Dop.Basis(1, k)
			if err != nil {
				return
			}
			bStart, err = o.Dop.Basis(0, k)
			if err != nil {
				return
			}
			s1 := 1.0 / math.Pow(dt1, float64(k))
			s2 := 1.0 / math.Pow(dt2, float64(k))
			for j := 0; j < o.Ndim; j++ {
				if k > o.Plan.Contderiv[j] {
					continue
				}
				colL := o.Prob.Loc(j, i-1)
				colR := o.Prob.Loc(j, i)
				for c := 0; c < o.Np1; c++ {
					o.Prob.Aeq[ir][colL+c] = bEnd[c] * s1
					o.Prob.Aeq[ir][colR+c] = -bStart[c] * s2
				}
				o.Prob.Beq[ir] = 0
				ir++
			}
		}
	}
	return ir, nil
}
