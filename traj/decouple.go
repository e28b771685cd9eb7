// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traj

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gotraj/inp"
	"github.com/cpmech/gotraj/poly"
)

// decouples tells whether the problem splits into ndim independent QPs: the
// Hessian is block diagonal per dimension, so only coupling through bounds can
// prevent the split. Axis-aligned (lb/ub) bounds never couple dimensions.
func decouples(plan *inp.Plan) bool {
	if plan.Ndim < 2 {
		return false
	}
	for _, b := range plan.Bounds {
		if b.Type != inp.BoundLB && b.Type != inp.BoundUB {
			return false
		}
	}
	return true
}

// slicePlan projects the plan onto dimension j: scalar-valued waypoints and
// bounds, single-entry minderiv/contderiv
func slicePlan(plan *inp.Plan, j int) (sub *inp.Plan) {
	sub = new(inp.Plan)
	sub.Desc = io.Sf("%s (dim %d)", plan.Desc, j)
	sub.Ndim = 1
	sub.Order = plan.Order
	sub.Minderiv = []int{plan.Minderiv[j]}
	sub.Contderiv = []int{plan.Contderiv[j]}
	sub.CtrlPerSeg = plan.CtrlPerSeg
	sub.Numerical = plan.Numerical
	sub.Convergetol = plan.Convergetol
	sub.Verbose = plan.Verbose
	sub.Solver = plan.Solver
	sub.Waypoints = make([]*inp.Waypoint, len(plan.Waypoints))
	for i, w := range plan.Waypoints {
		v := new(inp.Waypoint)
		v.T = w.T
		for k := 0; k <= poly.MaxDeriv; k++ {
			vals := w.Deriv(k)
			if len(vals) == 0 {
				continue
			}
			slice := inp.Vals{vals[j]}
			switch k {
			case 0:
				v.Pos = slice
			case 1:
				v.Vel = slice
			case 2:
				v.Acc = slice
			case 3:
				v.Jerk = slice
			case 4:
				v.Snap = slice
			}
		}
		sub.Waypoints[i] = v
	}
	for _, b := range plan.Bounds {
		if !inp.Finite(b.Arg[j]) {
			continue // unconstrained in this dimension: no rows would be emitted
		}
		c := b.GetCopy()
		c.Arg = inp.Vals{b.Arg[j]}
		sub.Bounds = append(sub.Bounds, c)
	}
	// a sub-problem without bounds may use the analytic path even when the
	// full plan could not
	sub.Numerical = sub.Numerical && len(sub.Bounds) > 0
	return
}

// generateDecoupled solves one 1-D problem per dimension and concatenates the
// coefficient tensors. The exit flags are reported per dimension.
func generateDecoupled(plan *inp.Plan, verbose bool) (tj *Trajectory, res *Results, err error) {

	// validate the full plan first so that shape errors mention the original input
	plan.PostProcess("")
	err = plan.Validate()
	if err != nil {
		return
	}
	if verbose {
		io.Pf("decoupling problem into %d one-dimensional problems\n", plan.Ndim)
	}

	res = &Results{
		Coupled:   false,
		Exitflags: make([]int, plan.Ndim),
		Problems:  make([]*Problem, plan.Ndim),
	}
	for j := 0; j < plan.Ndim; j++ {
		var g *Generator
		g, err = NewGenerator(slicePlan(plan, j), verbose)
		if err != nil {
			return nil, nil, chk.Err("cannot initialise sub-problem %d:\n%v", j, err)
		}
		err = g.Assemble()
		if err != nil {
			return nil, nil, chk.Err("cannot assemble sub-problem %d:\n%v", j, err)
		}
		var sub *Trajectory
		var exitflag int
		sub, exitflag, err = g.Run()
		if err != nil {
			return nil, nil, chk.Err("cannot solve sub-problem %d:\n%v", j, err)
		}
		res.Exitflags[j] = exitflag
		res.Problems[j] = g.Prob
		if tj == nil {
			tj = new(Trajectory)
			tj.Ndim = plan.Ndim
			tj.Nseg = sub.Nseg
			tj.Order = sub.Order
			tj.Poly = utl.Deep4alloc(sub.Order+1, plan.Ndim, sub.Nseg, poly.MaxDeriv+1)
			tj.Durations = sub.Durations
			tj.Keytimes = sub.Keytimes
			res.Keytimes = sub.Keytimes
			res.Durations = sub.Durations
		}
		for c := 0; c <= sub.Order; c++ {
			for s := 0; s < sub.Nseg; s++ {
				for k := 0; k <= poly.MaxDeriv; k++ {
					tj.Poly[c][j][s][k] = sub.Poly[c][0][s][k]
				}
			}
		}
		tj.dop = sub.dop
	}
	return
}
