// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traj

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// QPOptions holds the options handed to QP solver backends
type QPOptions struct {
	Convergetol float64 // convergence tolerance
	NmaxIt      int     // number of max iterations
	TimeLimit   float64 // wall clock limit [s]; 0 means none. Enforced by backends, not here
	Verbose     bool    // show messages
}

// QPSolver solves quadratic programmes:
//
//	minimise    xᵀ·H·x
//	subject to  Aeq·x   = beq
//	            Aineq·x ≤ bineq
//
// Exit flag 1 means optimal; any other value is a backend-specific diagnostic
// surfaced unchanged to the caller.
type QPSolver interface {
	Init(prms fun.Prms) (err error)                                              // sets backend-specific parameters
	Solve(p *Problem, opts *QPOptions) (x []float64, exitflag int, err error) // solves the QP
}

// qpsolverallocators holds all available QP solver backends
var qpsolverallocators = make(map[string]func() QPSolver)

// GetQPSolver returns a new QP solver backend by name; e.g. "kkt" or "ipqp"
func GetQPSolver(name string) QPSolver {
	allocator, ok := qpsolverallocators[name]
	if !ok {
		chk.Panic("cannot find QP solver named %q", name)
	}
	return allocator()
}
