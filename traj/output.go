// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traj

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gotraj/poly"
)

// Trajectory holds the coefficient tensor of one solved problem together with
// the analytic derivative tensors.
//
//	Poly[c][j][s][k]
//	  c -- coefficient index within [0,order]; highest degree first
//	  j -- dimension index
//	  s -- segment index
//	  k -- 0 for the primary polynomial; 1..4 for its successive derivatives
//	       in normalised time
type Trajectory struct {
	Ndim      int             // number of dimensions
	Nseg      int             // number of segments
	Order     int             // polynomial order
	Poly      [][][][]float64 // [order+1][Ndim][Nseg][MaxDeriv+1] coefficient tensor
	Durations []float64       // [Nseg] segment durations
	Keytimes  []float64       // [Nseg+1] waypoint times

	// derived
	dop *poly.DiffOp // differential operators for evaluation
}

// packageSolution maps the flat decision vector into the coefficient tensor
// and fills the derivative tensors with poly[:,:,s,k] = D[k]·poly[:,:,s,0].
// A nil x (failed solve) yields an all-zero tensor.
func (o *Generator) packageSolution(x []float64) (tj *Trajectory) {
	tj = new(Trajectory)
	tj.Ndim = o.Ndim
	tj.Nseg = o.Nseg
	tj.Order = o.Plan.Order
	tj.Poly = utl.Deep4alloc(o.Np1, o.Ndim, o.Nseg, poly.MaxDeriv+1)
	tj.Durations = o.Durations
	tj.Keytimes = o.Keytimes
	tj.dop = o.Dop
	if x == nil {
		return
	}
	a := make([]float64, o.Np1)
	b := make([]float64, o.Np1)
	for s := 0; s < o.Nseg; s++ {
		for j := 0; j < o.Ndim; j++ {
			col := o.Prob.Loc(j, s)
			copy(a, x[col:col+o.Np1])
			for c := 0; c < o.Np1; c++ {
				tj.Poly[c][j][s][0] = a[c]
			}
			for k := 1; k <= poly.MaxDeriv; k++ {
				o.Dop.CoeffDeriv(b, a, k)
				for c := 0; c < o.Np1; c++ {
					tj.Poly[c][j][s][k] = b[c]
				}
			}
		}
	}
	return
}

// Coeffs returns the coefficient vector (highest degree first) of dimension j,
// segment s and derivative tensor k
func (o *Trajectory) Coeffs(j, s, k int) (a []float64) {
	a = make([]float64, o.Order+1)
	for c := 0; c <= o.Order; c++ {
		a[c] = o.Poly[c][j][s][k]
	}
	return
}

// SegIndex returns the segment containing the absolute time t: the greatest s
// with keytimes[s] ≤ t, clamped to the last segment
func (o *Trajectory) SegIndex(t float64) (s int) {
	for i := 1; i < o.Nseg; i++ {
		if o.Keytimes[i] <= t {
			s = i
		}
	}
	return
}

// Value evaluates the k-th physical-time derivative of dimension j at the
// absolute time t. The stored tensors are in normalised time, hence the
// result is divided by durationᵏ.
func (o *Trajectory) Value(j int, t float64, k int) (res float64) {
	if k < 0 || k > poly.MaxDeriv {
		chk.Panic("trajectory: derivative %d is not available", k)
	}
	s := o.SegIndex(t)
	dt := o.Durations[s]
	τ := (t - o.Keytimes[s]) / dt
	for c := 0; c <= o.Order; c++ {
		res = res*τ + o.Poly[c][j][s][k]
	}
	return res / math.Pow(dt, float64(k))
}
