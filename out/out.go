// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements trajectory output handling for analyses and plotting
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gotraj/poly"
	"github.com/cpmech/gotraj/traj"
)

// DerivNames holds the conventional names of the trajectory derivatives
var DerivNames = []string{"pos", "vel", "acc", "jerk", "snap"}

// Table holds sampled derivative profiles of one trajectory
type Table struct {
	Tj *traj.Trajectory // the sampled trajectory
	T  []float64        // [np] sample times
	V  [][][]float64    // [poly.MaxDeriv+1][ndim][np] profiles in physical units
}

// Sample evaluates all derivative profiles of the trajectory on np uniformly
// spaced times covering the whole trajectory interval
func Sample(tj *traj.Trajectory, np int) (o *Table) {
	if np < 2 {
		chk.Panic("at least two sample points are required. np=%d is invalid", np)
	}
	o = new(Table)
	o.Tj = tj
	o.T = utl.LinSpace(tj.Keytimes[0], tj.Keytimes[tj.Nseg], np)
	o.V = utl.Deep3alloc(poly.MaxDeriv+1, tj.Ndim, np)
	for k := 0; k <= poly.MaxDeriv; k++ {
		for j := 0; j < tj.Ndim; j++ {
			for i, t := range o.T {
				o.V[k][j][i] = tj.Value(j, t, k)
			}
		}
	}
	return
}

// Extrema returns the smallest and largest sampled values of derivative k of
// dimension j, together with the times at which they occur
func (o *Table) Extrema(j, k int) (vmin, vmax, tmin, tmax float64) {
	vmin, vmax = o.V[k][j][0], o.V[k][j][0]
	tmin, tmax = o.T[0], o.T[0]
	for i, v := range o.V[k][j] {
		if v < vmin {
			vmin, tmin = v, o.T[i]
		}
		if v > vmax {
			vmax, tmax = v, o.T[i]
		}
	}
	return
}
