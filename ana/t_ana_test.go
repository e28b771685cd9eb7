// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

func verbose() {
	chk.Verbose = true
}

func Test_rest2rest01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rest2rest01")

	for _, m := range []int{2, 3, 4} {

		var sol RestToRest
		sol.Init(-1, 3, 0.5, 2.5, m)

		// boundary conditions
		chk.Scalar(tst, io.Sf("m=%d: x(t0)", m), 1e-14, sol.Value(0.5, 0), -1)
		chk.Scalar(tst, io.Sf("m=%d: x(tf)", m), 1e-13, sol.Value(2.5, 0), 3)
		for k := 1; k < m; k++ {
			chk.Scalar(tst, io.Sf("m=%d: d%dx(t0)", m, k), 1e-12, sol.Value(0.5, k), 0)
			chk.Scalar(tst, io.Sf("m=%d: d%dx(tf)", m, k), 1e-11, sol.Value(2.5, k), 0)
		}

		// derivatives versus numerical differentiation
		for k := 1; k <= 2; k++ {
			for _, t := range []float64{0.7, 1.2, 1.9, 2.3} {
				kcopy := k
				numval, _ := num.DerivCentral(func(τ float64, args ...interface{}) float64 {
					return sol.Value(τ, kcopy-1)
				}, t, 1e-1)
				chk.AnaNum(tst, io.Sf("m=%d: d%dx(%g)", m, k, t), 1e-7, sol.Value(t, k), numval, chk.Verbose)
			}
		}
	}
}

func Test_rest2rest02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rest2rest02. normalised coefficients")

	var sol RestToRest
	sol.Init(0, 1, 0, 1, 3)
	chk.Vector(tst, "quintic", 1e-15, sol.NormCoeffs(5), []float64{6, -15, 10, 0, 0, 0})
	chk.Vector(tst, "quintic (order 7)", 1e-15, sol.NormCoeffs(7), []float64{0, 0, 6, -15, 10, 0, 0, 0})

	sol.Init(0, 1, 0, 1, 2)
	chk.Vector(tst, "cubic", 1e-15, sol.NormCoeffs(3), []float64{-2, 3, 0, 0})

	sol.Init(0, 1, 0, 1, 4)
	chk.Vector(tst, "septic", 1e-15, sol.NormCoeffs(7), []float64{-20, 70, -84, 35, 0, 0, 0, 0})

	// offset and scaling
	sol.Init(2, 4, 0, 1, 2)
	chk.Vector(tst, "scaled cubic", 1e-15, sol.NormCoeffs(3), []float64{-4, 6, 0, 2})
}
