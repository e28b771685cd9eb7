// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traj

import (
	"github.com/cpmech/gosl/la"
)

// Problem holds one assembled quadratic programme:
//
//	minimise    xᵀ·H·x
//	subject to  Aeq·x   = beq
//	            Aineq·x ≤ bineq
//
// The decision vector x concatenates the polynomial coefficients of all
// (dimension, segment) pairs; see Loc for the ordering.
type Problem struct {

	// dimensions
	Ndim int // number of dimensions
	Nseg int // number of segments
	Np1  int // number of coefficients per polynomial == order + 1
	Nx   int // length of decision vector == Ndim·Nseg·Np1

	// quadratic programme
	H     [][]float64 // [Nx][Nx] block-diagonal Hessian
	Aeq   [][]float64 // [Neq][Nx] equality constraint matrix
	Beq   []float64   // [Neq] equality right-hand side
	Aineq [][]float64 // [Nineq][Nx] inequality constraint matrix
	Bineq []float64   // [Nineq] inequality right-hand side
}

// NewProblem allocates a problem with neq equality rows. Inequality rows are
// appended later by the bounds assembler.
func NewProblem(ndim, nseg, np1, neq int) (o *Problem) {
	o = new(Problem)
	o.Ndim = ndim
	o.Nseg = nseg
	o.Np1 = np1
	o.Nx = ndim * nseg * np1
	o.H = la.MatAlloc(o.Nx, o.Nx)
	o.Aeq = la.MatAlloc(neq, o.Nx)
	o.Beq = make([]float64, neq)
	return
}

// Loc returns the first column of the coefficient block of dimension j and
// segment s. Dimensions are interleaved within each segment; thus the offset
// between two consecutive segments within the same dimension is Np1·Ndim.
func (o *Problem) Loc(j, s int) int {
	return (j + o.Ndim*s) * o.Np1
}

// Neq returns the number of equality constraint rows
func (o *Problem) Neq() int { return len(o.Beq) }

// Nineq returns the number of inequality constraint rows
func (o *Problem) Nineq() int { return len(o.Bineq) }

// EqResid computes r = Aeq·x - beq
func (o *Problem) EqResid(r, x []float64) {
	for i := 0; i < o.Neq(); i++ {
		r[i] = -o.Beq[i]
		for l := 0; l < o.Nx; l++ {
			r[i] += o.Aeq[i][l] * x[l]
		}
	}
}

// IneqResid computes r = Aineq·x - bineq
func (o *Problem) IneqResid(r, x []float64) {
	for i := 0; i < o.Nineq(); i++ {
		r[i] = -o.Bineq[i]
		for l := 0; l < o.Nx; l++ {
			r[i] += o.Aineq[i][l] * x[l]
		}
	}
}

// SparseEq returns the equality matrix as a sparse triplet
func (o *Problem) SparseEq() (T *la.Triplet) {
	T = new(la.Triplet)
	nnz := 0
	for i := 0; i < o.Neq(); i++ {
		for l := 0; l < o.Nx; l++ {
			if o.Aeq[i][l] != 0 {
				nnz++
			}
		}
	}
	T.Init(o.Neq(), o.Nx, nnz)
	for i := 0; i < o.Neq(); i++ {
		for l := 0; l < o.Nx; l++ {
			if o.Aeq[i][l] != 0 {
				T.Put(i, l, o.Aeq[i][l])
			}
		}
	}
	return
}

// SparseIneq returns the inequality matrix as a sparse triplet
func (o *Problem) SparseIneq() (T *la.Triplet) {
	T = new(la.Triplet)
	nnz := 0
	for i := 0; i < o.Nineq(); i++ {
		for l := 0; l < o.Nx; l++ {
			if o.Aineq[i][l] != 0 {
				nnz++
			}
		}
	}
	T.Init(o.Nineq(), o.Nx, nnz)
	for i := 0; i < o.Nineq(); i++ {
		for l := 0; l < o.Nx; l++ {
			if o.Aineq[i][l] != 0 {
				T.Put(i, l, o.Aineq[i][l])
			}
		}
	}
	return
}
