// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

func verbose() {
	chk.Verbose = true
}

func Test_diffop01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diffop01")

	// n = 3: b(τ) = [τ³, τ², τ, 1]
	dop := NewDiffOp(3)

	chk.Matrix(tst, "D0", 1e-17, dop.D[0], [][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})

	chk.Matrix(tst, "D1", 1e-17, dop.D[1], [][]float64{
		{0, 0, 0, 0},
		{3, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 1, 0},
	})

	chk.Matrix(tst, "D2", 1e-17, dop.D[2], [][]float64{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{6, 0, 0, 0},
		{0, 2, 0, 0},
	})

	chk.Matrix(tst, "D3", 1e-17, dop.D[3], [][]float64{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{6, 0, 0, 0},
	})

	// coefficients of derivatives: p(τ) = τ³ - 2τ² + 3τ - 4
	a := []float64{1, -2, 3, -4}
	b := make([]float64, 4)
	err := dop.CoeffDeriv(b, a, 1)
	if err != nil {
		tst.Errorf("CoeffDeriv failed:\n%v", err)
		return
	}
	chk.Vector(tst, "D1·a", 1e-17, b, []float64{0, 3, -4, 3})

	// fall factors
	chk.Vector(tst, "c(m=2)", 1e-17, dop.FallFactors(2), []float64{6, 2, 0, 0})
	chk.Vector(tst, "c(m=0)", 1e-17, dop.FallFactors(0), []float64{1, 1, 1, 1})
}

func Test_basis01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("basis01")

	dop := NewDiffOp(5)

	// plain basis
	r, err := dop.Basis(2, 0)
	if err != nil {
		tst.Errorf("Basis failed:\n%v", err)
		return
	}
	chk.Vector(tst, "b(2)", 1e-14, r, []float64{32, 16, 8, 4, 2, 1})

	// derivatives versus numerical differentiation
	for k := 1; k <= MaxDeriv; k++ {
		for _, τ := range []float64{0, 0.25, 0.5, 0.8, 1} {
			ana, err := dop.Basis(τ, k)
			if err != nil {
				tst.Errorf("Basis failed:\n%v", err)
				return
			}
			for j := 0; j < dop.N+1; j++ {
				jcopy := j
				kcopy := k
				numval, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
					rr, _ := dop.Basis(t, kcopy-1)
					return rr[jcopy]
				}, τ, 1e-1)
				chk.AnaNum(tst, io.Sf("d%db%d(%g)", k, j, τ), 1e-7, ana[j], numval, chk.Verbose)
			}
		}
	}

	// derivative order limit
	_, err = dop.Basis(0.5, MaxDeriv+1)
	if err == nil {
		tst.Errorf("Basis must fail with k > %d", MaxDeriv)
		return
	}
	io.Pforan("expected error: %v\n", err)

	// block evaluation
	B, err := dop.BasisMat([]float64{0, 1}, 0)
	if err != nil {
		tst.Errorf("BasisMat failed:\n%v", err)
		return
	}
	chk.Matrix(tst, "B", 1e-17, B, [][]float64{
		{0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1},
	})
}
