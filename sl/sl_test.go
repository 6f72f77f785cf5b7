// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sl

import (
	"math"
	"testing"

	"github.com/atmoswe/swsphere/grid"
	"github.com/cpmech/gosl/chk"
)

func Test_zerowind01(tst *testing.T) {

	chk.PrintTitle("zerowind01")

	g, err := grid.New(16, 8, false, 0)
	if err != nil {
		tst.Errorf("grid.New failed: %v\n", err)
		return
	}
	u0 := grid.NewField(g.Nx, g.Ny)
	v0bar := grid.NewField(g.Nx, g.Ny)
	mu := NewMesh(g.LonU, g.LatPhi)

	dt := 100.0
	for j := 0; j < g.Ny; j++ {
		thetaA := g.LatPhi[j]
		for i := 0; i < g.Nx; i++ {
			lambdaA := g.LonU[i]
			ld, td := Solve(g, u0, v0bar, mu, mu, lambdaA, thetaA, 0, 0, lambdaA, thetaA, dt, true)
			if math.Abs(ld-lambdaA) > 1e-13 && math.Abs(ld-lambdaA-2*math.Pi) > 1e-13 {
				tst.Errorf("zero-wind departure longitude drifted at (%d,%d): %v vs %v\n", i, j, ld, lambdaA)
			}
			if math.Abs(td-thetaA) > 1e-13 {
				tst.Errorf("zero-wind departure latitude drifted at (%d,%d): %v vs %v\n", i, j, td, thetaA)
			}
		}
	}
}

func Test_interpconsistency01(tst *testing.T) {

	chk.PrintTitle("interpconsistency01")

	g, err := grid.New(16, 8, false, 0)
	if err != nil {
		tst.Errorf("grid.New failed: %v\n", err)
		return
	}
	phi := grid.NewField(g.Nx, g.Ny)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			phi.Set(i, j, math.Sin(g.LonPhi[i])*math.Cos(g.LatPhi[j]))
		}
	}
	m := NewMesh(g.LonPhi, g.LatPhi)
	for j := 2; j < g.Ny-2; j++ {
		for i := 0; i < g.Nx; i++ {
			got := Interp2D(phi, m, false, g.LonPhi[i], g.LatPhi[j])
			want := phi.At(i, j)
			if math.Abs(got-want) > 1e-9 {
				tst.Errorf("interp at arrival point (%d,%d): got %v want %v\n", i, j, got, want)
			}
		}
	}
}
