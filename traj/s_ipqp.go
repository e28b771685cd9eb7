// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traj

import (
	"math"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// IPQPSolver is a primal-dual interior point solver for convex QPs with
// equality and inequality constraints. Slacks s ≥ 0 and multipliers z ≥ 0 are
// driven along the central path; each iteration solves the reduced Newton
// system
//
//	[ 2H + Aineqᵀ·(Z/S)·Aineq + δI   Aeqᵀ ] [ Δx ]
//	[ Aeq                           -δI   ] [ Δy ]
//
// densely. The small regularisation δ keeps the system solvable when equality
// rows are redundant, which is what the dispatcher relies upon when the
// analytic KKT path gives up.
type IPQPSolver struct {
	σ float64 // centering parameter
	γ float64 // fraction-to-boundary coefficient
	δ float64 // primal-dual regularisation
}

// set factory of solvers
func init() {
	qpsolverallocators["ipqp"] = func() QPSolver {
		o := new(IPQPSolver)
		o.σ = 0.1
		o.γ = 0.995
		o.δ = 1e-10
		return o
	}
}

// Init sets backend parameters
//  "sigma" -- centering parameter within (0,1)
//  "gamma" -- fraction-to-boundary coefficient within (0,1)
//  "delta" -- regularisation added to the Newton system diagonal
func (o *IPQPSolver) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "sigma":
			o.σ = p.V
		case "gamma":
			o.γ = p.V
		case "delta":
			o.δ = p.V
		default:
			return chk.Err("ipqp: parameter named %q is invalid", p.N)
		}
	}
	return
}

// Solve runs the interior point iterations. Exit flags: 1 = optimal,
// 0 = maximum iterations reached, 2 = time limit reached, -1 = Newton system
// could not be solved. The current iterate is always returned.
func (o *IPQPSolver) Solve(p *Problem, opts *QPOptions) (x []float64, exitflag int, err error) {

	// dimensions and iterate
	nx, ne, ni := p.Nx, p.Neq(), p.Nineq()
	x = make([]float64, nx)
	y := make([]float64, ne)
	s := make([]float64, ni)
	z := make([]float64, ni)
	for i := 0; i < ni; i++ {
		s[i] = utl.Max(1, p.Bineq[i])
		z[i] = 1
	}

	// sparse constraint matrices for the residual products
	var Am, Gm *la.CCMatrix
	if ne > 0 {
		Am = p.SparseEq().ToMatrix(nil)
	}
	if ni > 0 {
		Gm = p.SparseIneq().ToMatrix(nil)
	}

	// workspace
	rd := make([]float64, nx)
	rp := make([]float64, ne)
	rg := make([]float64, ni)
	rc := make([]float64, ni)
	Δs := make([]float64, ni)
	Δz := make([]float64, ni)
	nyb := nx + ne
	M := la.MatAlloc(nyb, nyb)
	Mi := la.MatAlloc(nyb, nyb)
	rhs := make([]float64, nyb)
	w := make([]float64, nyb)

	// iterations
	t0 := time.Now()
	exitflag = 0
	for it := 0; it < opts.NmaxIt; it++ {

		// dual residual: rd = 2H·x + Aeqᵀ·y + Aineqᵀ·z
		la.MatVecMul(rd, 2, p.H, x)
		if ne > 0 {
			la.SpMatTrVecMulAdd(rd, 1, Am, y)
		}
		if ni > 0 {
			la.SpMatTrVecMulAdd(rd, 1, Gm, z)
		}

		// primal residuals and complementarity measure
		p.EqResid(rp, x)
		p.IneqResid(rg, x)
		μ := 0.0
		for i := 0; i < ni; i++ {
			rg[i] += s[i]
			μ += s[i] * z[i]
		}
		if ni > 0 {
			μ /= float64(ni)
		}

		// convergence
		resid := utl.Max(vecNormInf(rd), utl.Max(vecNormInf(rp), vecNormInf(rg)))
		if opts.Verbose {
			io.Pf("ipqp: it=%2d resid=%13.7e μ=%13.7e\n", it, resid, μ)
		}
		if resid <= opts.Convergetol && μ <= opts.Convergetol {
			exitflag = 1
			return
		}
		if opts.TimeLimit > 0 && time.Since(t0).Seconds() > opts.TimeLimit {
			exitflag = 2
			return
		}

		// Newton system
		for i := 0; i < nyb; i++ {
			for l := 0; l < nyb; l++ {
				M[i][l] = 0
			}
		}
		for i := 0; i < nx; i++ {
			for l := 0; l < nx; l++ {
				M[i][l] = 2 * p.H[i][l]
			}
			M[i][i] += o.δ
		}
		for i := 0; i < ni; i++ {
			d := z[i] / s[i]
			for a := 0; a < nx; a++ {
				if p.Aineq[i][a] == 0 {
					continue
				}
				for b := 0; b < nx; b++ {
					M[a][b] += p.Aineq[i][a] * d * p.Aineq[i][b]
				}
			}
		}
		for i := 0; i < ne; i++ {
			for l := 0; l < nx; l++ {
				M[nx+i][l] = p.Aeq[i][l]
				M[l][nx+i] = p.Aeq[i][l]
			}
			M[nx+i][nx+i] = -o.δ
		}

		// right-hand side
		for l := 0; l < nx; l++ {
			rhs[l] = -rd[l]
		}
		for i := 0; i < ni; i++ {
			rc[i] = s[i]*z[i] - o.σ*μ
			v := (z[i]*rg[i] - rc[i]) / s[i]
			for l := 0; l < nx; l++ {
				rhs[l] -= p.Aineq[i][l] * v
			}
		}
		for i := 0; i < ne; i++ {
			rhs[nx+i] = -rp[i]
		}

		// solve
		err = la.MatInvG(Mi, M, 1e-13)
		if err != nil {
			return x, -1, chk.Err("ipqp: Newton system is singular:\n%v", err)
		}
		la.MatVecMul(w, 1, Mi, rhs)

		// recover slack and multiplier directions
		for i := 0; i < ni; i++ {
			Δs[i] = -rg[i]
			for l := 0; l < nx; l++ {
				Δs[i] -= p.Aineq[i][l] * w[l]
			}
			Δz[i] = -(rc[i] + z[i]*Δs[i]) / s[i]
		}

		// fraction-to-boundary step length
		α := 1.0
		for i := 0; i < ni; i++ {
			if Δs[i] < 0 {
				α = utl.Min(α, -o.γ*s[i]/Δs[i])
			}
			if Δz[i] < 0 {
				α = utl.Min(α, -o.γ*z[i]/Δz[i])
			}
		}

		// update
		for l := 0; l < nx; l++ {
			x[l] += α * w[l]
		}
		for i := 0; i < ne; i++ {
			y[i] += α * w[nx+i]
		}
		for i := 0; i < ni; i++ {
			s[i] += α * Δs[i]
			z[i] += α * Δz[i]
		}
	}
	return
}

// vecNormInf computes the maximum absolute component
func vecNormInf(v []float64) (res float64) {
	for i := range v {
		if math.Abs(v[i]) > res {
			res = math.Abs(v[i])
		}
	}
	return
}
