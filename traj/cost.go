// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traj

// addCostBlocks fills the block-diagonal Hessian. The (segment, dimension)
// block encodes ∫₀¹ (dᵐp/dτᵐ)² dτ for the minimised derivative m of that
// dimension.
//
// With c the fall factors of D[m] (c[i] multiplies τ^(n-i-m) in the m-th
// derivative of the i-th monomial), the pre-integration entries are c·cᵀ with
// exponents P[i][l] = (n-i)+(n-l)-2m. Term-wise integration on [0,1] divides
// by P+1; entries with negative exponent vanish together with the m-th
// derivative of the low-degree monomials. For m=0 this reduces to the
// Hilbert-like form 1/((n-i)+(n-l)+1).
//
// The block is not weighted by the segment duration: the objective is taken
// in normalised time, so short and long segments weigh equally. The equality
// rows already transport physical-time targets into normalised space.
func (o *Generator) addCostBlocks() {
	n := o.Plan.Order
	for s := 0; s < o.Nseg; s++ {
		for j := 0; j < o.Ndim; j++ {
			m := o.Plan.Minderiv[j]
			c := o.Dop.FallFactors(m)
			col := o.Prob.Loc(j, s)
			for i := 0; i < o.Np1; i++ {
				for l := 0; l < o.Np1; l++ {
					p := (n - i) + (n - l) - 2*m
					if p >= 0 {
						o.Prob.H[col+i][col+l] = c[i] * c[l] / float64(p+1)
					}
				}
			}
		}
	}
}
