// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mg

import (
	"math"
	"testing"

	"github.com/atmoswe/swsphere/grid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
)

// Test_convergence01 checks spec.md §8's multigrid unit test: generate r
// from a random band-limited phi, then recover phi to within 1e-6 of its
// amplitude after the FMG passes.
func Test_convergence01(tst *testing.T) {

	chk.PrintTitle("convergence01")

	g, err := grid.New(64, 32, false, 0)
	if err != nil {
		tst.Errorf("grid.New failed: %v\n", err)
		return
	}
	nu := 1.0e-8

	levels, err := BuildHierarchy(g)
	if err != nil {
		tst.Errorf("BuildHierarchy failed: %v\n", err)
		return
	}

	rnd.Init(0)
	phiExact := grid.NewField(g.Nx, g.Ny)
	amp := 0.0
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			v := math.Sin(2*g.LonPhi[i]) * math.Cos(g.LatPhi[j]) * (1.0 + 0.1*rnd.Float64(-1, 1))
			phiExact.Set(i, j, v)
			if math.Abs(v) > amp {
				amp = math.Abs(v)
			}
		}
	}

	levels[0].Phi.Copy(phiExact)
	rhs := Residual(levels[0], nu)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			rhs.Set(i, j, -rhs.At(i, j))
		}
	}
	levels[0].RHS.Copy(rhs)

	Solve(levels, nu, ModeLine)

	maxErr := 0.0
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			d := math.Abs(levels[0].Phi.At(i, j) - phiExact.At(i, j))
			if d > maxErr {
				maxErr = d
			}
		}
	}
	tst.Logf("max error = %v (amplitude %v)\n", maxErr, amp)
	if maxErr > 1e-6*amp {
		tst.Errorf("FMG solution did not converge: max error %v vs amplitude %v\n", maxErr, amp)
	}
}

func Test_hierarchy01(tst *testing.T) {

	chk.PrintTitle("hierarchy01")

	g, err := grid.New(32, 16, false, 0)
	if err != nil {
		tst.Errorf("grid.New failed: %v\n", err)
		return
	}
	levels, err := BuildHierarchy(g)
	if err != nil {
		tst.Errorf("BuildHierarchy failed: %v\n", err)
		return
	}
	for k, lvl := range levels {
		if lvl.Nx != g.Nx>>uint(k) || lvl.Ny != g.Ny>>uint(k) {
			tst.Errorf("level %d has wrong shape: (%d,%d)\n", k, lvl.Nx, lvl.Ny)
		}
	}
}
