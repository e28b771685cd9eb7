// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package traj assembles and solves the quadratic programmes yielding
// piecewise-polynomial trajectories through waypoints
package traj

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gotraj/inp"
	"github.com/cpmech/gotraj/poly"
)

// Results holds the assembled problem(s) and solver diagnostics
type Results struct {
	Coupled   bool       // problem was solved as one coupled QP
	Exitflags []int      // [1] for coupled problems; [ndim] for decoupled ones. 1 means optimal
	Problems  []*Problem // assembled problem(s); one per exit flag
	Keytimes  []float64  // [nseg+1] waypoint times
	Durations []float64  // [nseg] segment durations
}

// Generator assembles and solves the QP of one (possibly multi-dimensional) problem
type Generator struct {

	// input
	Plan    *inp.Plan // plan data
	Verbose bool      // show messages

	// derived
	Dop       *poly.DiffOp // differential operator tensor for Plan.Order
	Ndim      int          // number of dimensions
	Nseg      int          // number of segments
	Np1       int          // number of coefficients per polynomial
	Keytimes  []float64    // [Nseg+1] waypoint times
	Durations []float64    // [Nseg] segment durations

	// assembled problem
	Prob *Problem
}

// NewGenerator returns a new generator after validating the plan.
// Configuration and shape errors are fatal here: no assembly is attempted.
func NewGenerator(plan *inp.Plan, verbose bool) (o *Generator, err error) {
	plan.PostProcess("")
	err = plan.Validate()
	if err != nil {
		return nil, err
	}
	o = new(Generator)
	o.Plan = plan
	o.Verbose = verbose
	o.Dop = poly.NewDiffOp(plan.Order)
	o.Ndim = plan.Ndim
	o.Nseg = len(plan.Waypoints) - 1
	o.Np1 = plan.Order + 1
	o.Keytimes, o.Durations = plan.Times()
	return
}

// Assemble builds the QP: Hessian, equality rows (waypoints + continuity) and
// inequality rows (sampled bounds)
func (o *Generator) Assemble() (err error) {

	// pre-count equality rows and allocate
	neq := o.countWaypointRows() + o.countContinuityRows()
	o.Prob = NewProblem(o.Ndim, o.Nseg, o.Np1, neq)

	// equality system
	ir := 0
	ir, err = o.addWaypointRows(ir)
	if err != nil {
		return chk.Err("cannot assemble waypoint rows:\n%v", err)
	}
	ir, err = o.addContinuityRows(ir)
	if err != nil {
		return chk.Err("cannot assemble continuity rows:\n%v", err)
	}
	if ir != neq {
		return chk.Err("wrong number of equality rows: %d != %d", ir, neq)
	}

	// cost
	o.addCostBlocks()

	// inequality system
	err = o.addBoundRows()
	if err != nil {
		return chk.Err("cannot assemble bound rows:\n%v", err)
	}
	return
}

// Run solves the assembled problem and packages the coefficient tensor.
// The analytic KKT path handles problems without inequality rows; on a singular
// system it is abandoned with a warning and the numerical backend takes over
// (ill-conditioning only prints a warning). Numerical failures are reported via the exit flag and a
// warning; whatever solution vector the backend produced is packaged.
func (o *Generator) Run() (tj *Trajectory, exitflag int, err error) {

	// solver options
	opts := &QPOptions{
		Convergetol: o.Plan.Convergetol,
		NmaxIt:      o.Plan.Solver.NmaxIt,
		TimeLimit:   o.Plan.Solver.TimeLimit,
		Verbose:     o.Verbose,
	}

	// analytic path
	var x []float64
	numerical := o.Plan.Numerical
	if !numerical {
		kkt := GetQPSolver("kkt")
		x, exitflag, err = kkt.Solve(o.Prob, opts)
		if err != nil {
			io.PfRed("analytic KKT solve failed; falling back to numerical solver. cause:\n%v\n", err)
			numerical = true
		}
	}

	// numerical path
	if numerical {
		qps := GetQPSolver(o.Plan.Solver.Name)
		x, exitflag, err = qps.Solve(o.Prob, opts)
		if err != nil {
			io.PfRed("numerical QP solver failed with exit flag = %d. cause:\n%v\n", exitflag, err)
			err = nil
		} else if exitflag != 1 {
			io.PfRed("QP solver returned non-optimal exit flag = %d\n", exitflag)
		}
	}

	// package solution
	tj = o.packageSolution(x)
	return
}

// Generate is the main entry point: it validates the plan, assembles and solves
// the QP and returns the coefficient tensor together with solver diagnostics.
// When ndim > 1 and every bound is axis-aligned (lb/ub), the problem decouples
// into ndim independent QPs solved one at a time.
func Generate(plan *inp.Plan, verbose bool) (tj *Trajectory, res *Results, err error) {

	// decoupled path
	if decouples(plan) {
		return generateDecoupled(plan, verbose)
	}

	// coupled path
	g, err := NewGenerator(plan, verbose)
	if err != nil {
		return
	}
	if verbose {
		io.Pf("assembling coupled problem: ndim=%d nseg=%d order=%d\n", g.Ndim, g.Nseg, g.Plan.Order)
	}
	err = g.Assemble()
	if err != nil {
		return
	}
	tj, exitflag, err := g.Run()
	if err != nil {
		return
	}
	res = &Results{
		Coupled:   true,
		Exitflags: []int{exitflag},
		Problems:  []*Problem{g.Prob},
		Keytimes:  g.Keytimes,
		Durations: g.Durations,
	}
	return
}
