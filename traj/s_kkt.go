// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traj

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// KKTSolver solves equality-constrained QPs in closed form through the saddle
// point (KKT) system
//
//	[ 2H   Aeqᵀ ] [ x ]   [ 0   ]
//	[ Aeq   0   ] [ λ ] = [ beq ]
//
// It cannot handle inequality rows; the dispatcher only routes problems
// without bounds here.
type KKTSolver struct {
	condmax float64 // threshold for the ill-conditioning warning
}

// set factory of solvers
func init() {
	qpsolverallocators["kkt"] = func() QPSolver {
		o := new(KKTSolver)
		o.condmax = 1e8
		return o
	}
}

// Init sets backend parameters
//  "condmax" -- condition number above which a warning is printed
func (o *KKTSolver) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "condmax":
			o.condmax = p.V
		default:
			return chk.Err("kkt: parameter named %q is invalid", p.N)
		}
	}
	return
}

// Solve builds and inverts the KKT matrix. A singular system is reported via
// err with exitflag -1 so that the dispatcher can fall back to a numerical
// backend. Ill-conditioning yields a warning only.
func (o *KKTSolver) Solve(p *Problem, opts *QPOptions) (x []float64, exitflag int, err error) {

	// the analytic path requires an inequality-free problem
	if p.Nineq() > 0 {
		return nil, -1, chk.Err("kkt: cannot handle problems with inequality constraints. nineq=%d", p.Nineq())
	}

	// assemble KKT matrix and right-hand side
	ne := p.Neq()
	nyb := p.Nx + ne
	M := la.MatAlloc(nyb, nyb)
	rhs := make([]float64, nyb)
	for i := 0; i < p.Nx; i++ {
		for l := 0; l < p.Nx; l++ {
			M[i][l] = 2 * p.H[i][l]
		}
	}
	for i := 0; i < ne; i++ {
		for l := 0; l < p.Nx; l++ {
			M[p.Nx+i][l] = p.Aeq[i][l]
			M[l][p.Nx+i] = p.Aeq[i][l]
		}
		rhs[p.Nx+i] = p.Beq[i]
	}

	// invert
	Mi := la.MatAlloc(nyb, nyb)
	err = la.MatInvG(Mi, M, 1e-13)
	if err != nil {
		return nil, -1, chk.Err("kkt: matrix is singular:\n%v", err)
	}

	// condition number estimate (infinity norm)
	cond := matNormInf(M) * matNormInf(Mi)
	if cond > o.condmax {
		io.PfYel("kkt: matrix is ill-conditioned: cond ≈ %g > %g\n", cond, o.condmax)
	}

	// extract coefficients
	w := make([]float64, nyb)
	la.MatVecMul(w, 1, Mi, rhs)
	x = w[:p.Nx]
	exitflag = 1
	return
}

// matNormInf computes the maximum absolute row sum
func matNormInf(A [][]float64) (res float64) {
	for i := range A {
		s := 0.0
		for l := range A[i] {
			s += math.Abs(A[i][l])
		}
		if s > res {
			res = s
		}
	}
	return
}
