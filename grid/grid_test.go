// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_areas01(tst *testing.T) {

	chk.PrintTitle("areas01")

	g, err := New(32, 16, false, 0)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	total := 0.0
	for j := 0; j < g.Ny; j++ {
		if g.Area[j] <= 0 {
			tst.Errorf("area at row %d is not positive: %v\n", j, g.Area[j])
		}
		total += float64(g.Nx) * g.Area[j]
	}
	chk.Scalar(tst, "sum(Nx*A[j])", 1e-9, total, 4.0*math.Pi)
}

func Test_polar01(tst *testing.T) {

	chk.PrintTitle("polar01")

	g, err := New(32, 16, false, 0)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	uRing := make([]float64, g.Nx)
	for i := 0; i < g.Nx; i++ {
		uRing[i] = math.Cos(g.LonU[i])
	}
	a, b := PolarFit(uRing, g.LonU)
	V, lambdaP := PolarVector(a, b)

	u, v := ReconstructPole(g.LonU, V, lambdaP, false)
	for i := 0; i < g.Nx; i++ {
		chk.Scalar(tst, "u_sp", 1e-10, u[i], -math.Sin(g.LonU[i]))
		chk.Scalar(tst, "v_sp", 1e-10, v[i], math.Cos(g.LonU[i]))
	}
}

func Test_polar_idempotent01(tst *testing.T) {

	chk.PrintTitle("polar_idempotent01")

	g, err := New(32, 16, false, 0)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	uRing := make([]float64, g.Nx)
	for i := 0; i < g.Nx; i++ {
		uRing[i] = 0.4*math.Sin(g.LonU[i]) - 1.3*math.Cos(g.LonU[i])
	}
	a1, b1 := PolarFit(uRing, g.LonU)
	V1, lam1 := PolarVector(a1, b1)
	u1, _ := ReconstructPole(g.LonU, V1, lam1, false)

	a2, b2 := PolarFit(uRing, g.LonU)
	V2, lam2 := PolarVector(a2, b2)
	u2, _ := ReconstructPole(g.LonU, V2, lam2, false)

	for i := 0; i < g.Nx; i++ {
		chk.Scalar(tst, "u idempotent", 1e-10, u2[i], u1[i])
	}
}
