// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
)

// bound types
const (
	BoundLB      = "lb"      // lower bound
	BoundUB      = "ub"      // upper bound
	Bound1Norm   = "1norm"   // reserved: 1-norm bound (currently ignored)
	BoundInfNorm = "infnorm" // reserved: ∞-norm bound (currently ignored)
)

// Vals holds per-dimension constraint values. Unconstrained entries carry the NaN
// sentinel; in JSON they appear as null:
//  "pos" : [0, null, 1]  =>  Vals{0, NaN, 1}
type Vals []float64

// UnmarshalJSON decodes a JSON array mapping null entries to NaN
func (o *Vals) UnmarshalJSON(b []byte) (err error) {
	var raw []*float64
	err = json.Unmarshal(b, &raw)
	if err != nil {
		return
	}
	*o = make([]float64, len(raw))
	for i, v := range raw {
		if v == nil {
			(*o)[i] = math.NaN()
		} else {
			(*o)[i] = *v
		}
	}
	return
}

// MarshalJSON encodes values mapping NaN entries back to null
func (o Vals) MarshalJSON() (b []byte, err error) {
	raw := make([]*float64, len(o))
	for i := range o {
		if !math.IsNaN(o[i]) {
			v := o[i]
			raw[i] = &v
		}
	}
	return json.Marshal(raw)
}

// Waypoint holds one time-stamped boundary condition. Each derivative slot is either
// empty (no constraints at all) or a vector of length ndim whose NaN entries mean
// "unconstrained in that dimension". Waypoints are immutable after input.
type Waypoint struct {
	T    float64 `json:"t"`    // time
	Pos  Vals    `json:"pos"`  // position
	Vel  Vals    `json:"vel"`  // velocity
	Acc  Vals    `json:"acc"`  // acceleration
	Jerk Vals    `json:"jerk"` // jerk
	Snap Vals    `json:"snap"` // snap
}

// Deriv returns the values of the k-th derivative slot (may be empty)
func (o *Waypoint) Deriv(k int) Vals {
	switch k {
	case 0:
		return o.Pos
	case 1:
		return o.Vel
	case 2:
		return o.Acc
	case 3:
		return o.Jerk
	case 4:
		return o.Snap
	}
	chk.Panic("waypoint: derivative %d is not available", k)
	return nil
}

// Bound holds one inequality bound on a trajectory derivative over a time interval.
// An empty Time means the entire trajectory; a single value means one instant.
// During preprocessing a bound spanning several segments is split into clones, each
// attached to a single segment via Seg.
type Bound struct {
	Type  string    `json:"type"`  // "lb", "ub", "1norm" or "infnorm"
	Deriv int       `json:"deriv"` // derivative order within [0,4]
	Arg   Vals      `json:"arg"`   // [ndim] bound values; NaN means unconstrained
	Time  []float64 `json:"time"`  // [t0,t1], single instant [t] or empty

	// derived
	Seg int `json:"-"` // segment index after splitting
}

// GetCopy returns a new copy of this bound
func (o *Bound) GetCopy() (p *Bound) {
	p = new(Bound)
	p.Type = o.Type
	p.Deriv = o.Deriv
	p.Arg = make([]float64, len(o.Arg))
	copy(p.Arg, o.Arg)
	p.Time = make([]float64, len(o.Time))
	copy(p.Time, o.Time)
	p.Seg = o.Seg
	return
}
