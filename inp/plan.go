// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.traj) JSON file
package inp

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotraj/poly"
)

// SolverData holds QP solver data
type SolverData struct {
	Name      string  `json:"name"`      // "kkt" or "ipqp"
	NmaxIt    int     `json:"nmaxit"`    // number of max iterations
	TimeLimit float64 `json:"timelimit"` // wall clock limit passed to the backend [s]; 0 means none
	Timing    bool    `json:"timing"`    // show timing statistics
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Name = "ipqp"
	o.NmaxIt = 50
}

// Plan holds all data defining one trajectory generation problem
type Plan struct {

	// global information
	Desc string `json:"desc"` // description of trajectory plan

	// problem definition
	Ndim      int   `json:"ndim"`      // number of dimensions; e.g. 4 for quadrotor flat outputs
	Order     int   `json:"order"`     // polynomial order per segment
	Minderiv  []int `json:"minderiv"`  // [ndim] derivative order to minimise per dimension
	Contderiv []int `json:"contderiv"` // [ndim] continuity order at interior waypoints

	// options
	CtrlPerSeg  int     `json:"constraints_per_seg"` // sampling density for inequality bounds
	Numerical   bool    `json:"numerical"`           // use numerical QP solver (forced when bounds are given)
	Convergetol float64 `json:"convergetol"`         // convergence tolerance for numerical solver
	Verbose     bool    `json:"verbose"`             // show messages

	// solver
	Solver SolverData `json:"solver"` // QP solver data

	// waypoints and bounds
	Waypoints []*Waypoint `json:"waypoints"` // waypoints with boundary conditions
	Bounds    []*Bound    `json:"bounds"`    // inequality bounds

	// derived
	FnameKey string // plan filename key; e.g. slalom01.traj => slalom01
}

// SetDefault sets default values
func (o *Plan) SetDefault() {
	o.Order = 12
	o.Verbose = true
	o.Convergetol = 1e-8
	o.Solver.SetDefault()
}

// PostProcess performs a post-processing of the just read json file
func (o *Plan) PostProcess(planfilepath string) {
	if o.Order < 1 {
		o.Order = 12
	}
	if len(o.Contderiv) == 0 {
		o.Contderiv = make([]int, len(o.Minderiv))
		copy(o.Contderiv, o.Minderiv)
	}
	if o.CtrlPerSeg < 1 {
		o.CtrlPerSeg = 2 * (o.Order + 1)
	}
	if o.Convergetol <= 0 {
		o.Convergetol = 1e-8
	}
	if len(o.Bounds) > 0 {
		o.Numerical = true
	}
	if o.Solver.Name == "" {
		o.Solver.SetDefault()
	}
	if planfilepath != "" {
		o.FnameKey = io.FnKey(planfilepath)
	}
}

// Validate checks the consistency of the plan data. Configuration and shape errors
// detected here are fatal: assembly must not start.
func (o *Plan) Validate() (err error) {

	// required options
	if o.Ndim < 1 {
		return chk.Err("plan: option 'ndim' is missing or invalid")
	}
	if len(o.Minderiv) == 0 {
		return chk.Err("plan: option 'minderiv' is missing")
	}

	// shapes
	if len(o.Minderiv) != o.Ndim {
		return chk.Err("plan: length of 'minderiv' must be equal to ndim. %d != %d", len(o.Minderiv), o.Ndim)
	}
	if len(o.Contderiv) != len(o.Minderiv) {
		return chk.Err("plan: length of 'contderiv' must be equal to length of 'minderiv'. %d != %d", len(o.Contderiv), len(o.Minderiv))
	}

	// derivative orders
	for j, m := range o.Minderiv {
		if m < 0 || m > poly.MaxDeriv {
			return chk.Err("plan: minderiv[%d]=%d is not supported; must be within [0,%d]", j, m, poly.MaxDeriv)
		}
	}
	for j, m := range o.Contderiv {
		if m < 0 || m > poly.MaxDeriv {
			return chk.Err("plan: contderiv[%d]=%d is not supported; must be within [0,%d]", j, m, poly.MaxDeriv)
		}
	}

	// waypoints
	if len(o.Waypoints) < 2 {
		return chk.Err("plan: at least two waypoints are required. %d given", len(o.Waypoints))
	}
	for i, w := range o.Waypoints {
		if i > 0 {
			if w.T <= o.Waypoints[i-1].T {
				return chk.Err("plan: waypoint times must be strictly increasing. t[%d]=%g ≤ t[%d]=%g", i, w.T, i-1, o.Waypoints[i-1].T)
			}
		}
		for k := 0; k <= poly.MaxDeriv; k++ {
			if v := w.Deriv(k); len(v) > 0 && len(v) != o.Ndim {
				return chk.Err("plan: waypoint %d: length of derivative %d values must be equal to ndim. %d != %d", i, k, len(v), o.Ndim)
			}
		}
	}

	// bounds
	for i, b := range o.Bounds {
		switch b.Type {
		case BoundLB, BoundUB, Bound1Norm, BoundInfNorm:
		default:
			return chk.Err("plan: bound %d: unknown type %q", i, b.Type)
		}
		if b.Deriv < 0 || b.Deriv > poly.MaxDeriv {
			return chk.Err("plan: bound %d: derivative %d is not supported; must be within [0,%d]", i, b.Deriv, poly.MaxDeriv)
		}
		if len(b.Arg) != o.Ndim {
			return chk.Err("plan: bound %d: length of 'arg' must be equal to ndim. %d != %d", i, len(b.Arg), o.Ndim)
		}
		if len(b.Time) > 2 {
			return chk.Err("plan: bound %d: 'time' must be empty, a single instant or an interval. %d values given", i, len(b.Time))
		}
	}
	return
}

// Times returns the waypoint times (keytimes) and segment durations
func (o *Plan) Times() (keytimes, durations []float64) {
	nw := len(o.Waypoints)
	keytimes = make([]float64, nw)
	durations = make([]float64, nw-1)
	for i, w := range o.Waypoints {
		keytimes[i] = w.T
		if i > 0 {
			durations[i-1] = w.T - o.Waypoints[i-1].T
		}
	}
	return
}

// MaxContderiv returns the highest continuity order over all dimensions
func (o *Plan) MaxContderiv() (kmax int) {
	for _, k := range o.Contderiv {
		if k > kmax {
			kmax = k
		}
	}
	return
}

// ReadPlan reads a plan from a (.traj) JSON file. Unknown keys are rejected.
func ReadPlan(planfilepath string) (o *Plan) {

	// new plan
	o = new(Plan)

	// read file
	b, err := io.ReadFile(planfilepath)
	if err != nil {
		chk.Panic("cannot read plan file:\n%v", err)
	}

	// set default values
	o.SetDefault()

	// decode, rejecting unknown keys at the boundary
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	err = dec.Decode(o)
	if err != nil {
		chk.Panic("cannot parse plan file %q:\n%v", planfilepath, err)
	}

	// derived data
	o.PostProcess(planfilepath)

	// check
	err = o.Validate()
	if err != nil {
		chk.Panic("invalid plan file %q:\n%v", planfilepath, err)
	}
	return
}

// Finite tells whether x is a constraint value (i.e. not the NaN sentinel)
func Finite(x float64) bool {
	return !math.IsNaN(x)
}
