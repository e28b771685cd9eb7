// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// RestToRest implements the classical minimum-derivative polynomials joining two
// stationary states: x(t0) = x0 and x(tf) = x1 with all involved derivatives
// vanishing at both ends. These are the unique minimisers of ∫|dᵐx/dtᵐ|²dt for
// one segment:
//
//	m=2 (acceleration): s(τ) = 3τ² - 2τ³
//	m=3 (jerk):         s(τ) = 10τ³ - 15τ⁴ + 6τ⁵
//	m=4 (snap):         s(τ) = 35τ⁴ - 84τ⁵ + 70τ⁶ - 20τ⁷
//
// with x(t) = x0 + (x1-x0)·s(τ) and τ = (t-t0)/(tf-t0)
type RestToRest struct {

	// input
	X0, X1 float64 // start and end values
	T0, Tf float64 // start and end times
	M      int     // minimised derivative order: 2, 3 or 4

	// derived
	coefs []float64 // shape coefficients, lowest power first
}

// Init initialises this structure
func (o *RestToRest) Init(x0, x1, t0, tf float64, m int) {
	o.X0, o.X1 = x0, x1
	o.T0, o.Tf = t0, tf
	o.M = m
	switch m {
	case 2:
		o.coefs = []float64{0, 0, 3, -2}
	case 3:
		o.coefs = []float64{0, 0, 0, 10, -15, 6}
	case 4:
		o.coefs = []float64{0, 0, 0, 0, 35, -84, 70, -20}
	default:
		chk.Panic("rest-to-rest solution is not available for m=%d", m)
	}
}

// Value computes the k-th time derivative of the solution at time t
func (o *RestToRest) Value(t float64, k int) (res float64) {
	T := o.Tf - o.T0
	τ := (t - o.T0) / T
	for p := len(o.coefs) - 1; p >= k; p-- {
		f := 1.0
		for i := 0; i < k; i++ {
			f *= float64(p - i)
		}
		res += o.coefs[p] * f * math.Pow(τ, float64(p-k))
	}
	res *= (o.X1 - o.X0) / math.Pow(T, float64(k))
	if k == 0 {
		res += o.X0
	}
	return
}

// NormCoeffs returns the coefficients of the solution as a normalised-time
// polynomial of the given order, highest degree first, matching the layout of
// the generator's coefficient tensor
func (o *RestToRest) NormCoeffs(order int) (a []float64) {
	if order+1 < len(o.coefs) {
		chk.Panic("order %d is too low for the rest-to-rest solution with m=%d", order, o.M)
	}
	Δ := o.X1 - o.X0
	a = make([]float64, order+1)
	for p, c := range o.coefs {
		a[order-p] = c * Δ
	}
	a[order] += o.X0
	return
}
