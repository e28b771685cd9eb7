// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package poly implements the monomial basis and its differential operators
package poly

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// constants
const (
	MaxDeriv = 4 // highest derivative order handled by the basis engine
)

// DiffOp holds the monomial basis differential operator tensor for one polynomial order.
// The basis in normalised time is b(τ) = [τⁿ, τⁿ⁻¹, ..., τ, 1], highest degree first.
// D[k] is an (n+1)×(n+1) matrix such that D[k]·a gives the coefficients of the k-th
// derivative of the polynomial with coefficients a, expressed in the same basis with
// zeros padded in the top rows.
type DiffOp struct {
	N int           // polynomial order
	D [][][]float64 // [MaxDeriv+1] derivative operators, each (n+1)×(n+1). D[0] = I
}

// NewDiffOp precomputes the differential operators for polynomial order n
//  Note: D[1] carries the monomial powers on its first subdiagonal and
//        D[k] = D[k-1]·D[1]
func NewDiffOp(n int) (o *DiffOp) {
	o = new(DiffOp)
	o.N = n
	o.D = make([][][]float64, MaxDeriv+1)

	// D[0] = identity
	o.D[0] = la.MatAlloc(n+1, n+1)
	for i := 0; i < n+1; i++ {
		o.D[0][i][i] = 1
	}

	// D[1]: derivative of τ^(n-j) is (n-j)·τ^(n-j-1); i.e. row j+1, column j
	o.D[1] = la.MatAlloc(n+1, n+1)
	for j := 0; j < n; j++ {
		o.D[1][j+1][j] = float64(n - j)
	}

	// higher orders by composition
	for k := 2; k <= MaxDeriv; k++ {
		o.D[k] = la.MatAlloc(n+1, n+1)
		matMul(o.D[k], o.D[k-1], o.D[1])
	}
	return
}

// Basis computes the k-th derivative of the monomial basis row vector at normalised time τ:
//  r = [τⁿ, τⁿ⁻¹, ..., τ, 1] · D[k]    (len(r) == n+1)
func (o *DiffOp) Basis(τ float64, k int) (r []float64, err error) {
	if k < 0 || k > MaxDeriv {
		err = chk.Err("basis: cannot compute derivative of order k=%d; max=%d", k, MaxDeriv)
		return
	}
	n := o.N
	pow := make([]float64, n+1)
	pow[n] = 1
	for i := n - 1; i >= 0; i-- {
		pow[i] = pow[i+1] * τ
	}
	r = make([]float64, n+1)
	for j := 0; j < n+1; j++ {
		for i := 0; i < n+1; i++ {
			if o.D[k][i][j] != 0 {
				r[j] += pow[i] * o.D[k][i][j]
			}
		}
	}
	return
}

// BasisMat computes an (m × (n+1)) block with the k-th derivative basis evaluated
// at each entry of the vector T of normalised times
func (o *DiffOp) BasisMat(T []float64, k int) (B [][]float64, err error) {
	B = la.MatAlloc(len(T), o.N+1)
	for i, τ := range T {
		var r []float64
		r, err = o.Basis(τ, k)
		if err != nil {
			return
		}
		copy(B[i], r)
	}
	return
}

// CoeffDeriv computes the coefficients of the k-th derivative: b = D[k]·a
func (o *DiffOp) CoeffDeriv(b, a []float64, k int) (err error) {
	if k < 0 || k > MaxDeriv {
		return chk.Err("basis: cannot compute derivative of order k=%d; max=%d", k, MaxDeriv)
	}
	la.MatVecMul(b, 1, o.D[k], a)
	return
}

// FallFactors returns the column-sums of D[m] as a vector c; c[j] is the constant
// multiplying τ^(n-j-m) in the m-th derivative of the j-th basis monomial
// (zero whenever n-j < m)
func (o *DiffOp) FallFactors(m int) (c []float64) {
	c = make([]float64, o.N+1)
	for j := 0; j < o.N+1; j++ {
		for i := 0; i < o.N+1; i++ {
			c[j] += o.D[m][i][j]
		}
	}
	return
}

// matMul computes c = a·b (dense, square)
func matMul(c, a, b [][]float64) {
	n := len(c)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c[i][j] = 0
			for k := 0; k < n; k++ {
				c[i][j] += a[i][k] * b[k][j]
			}
		}
	}
}
