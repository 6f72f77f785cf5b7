// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slice

import (
	"math"
	"testing"

	"github.com/atmoswe/swsphere/grid"
	"github.com/cpmech/gosl/chk"
)

func Test_noflowconserves01(tst *testing.T) {

	chk.PrintTitle("noflowconserves01")

	nx := 32
	dx := 2.0 * math.Pi / float64(nx)
	q := make([]float64, nx)
	for i := range q {
		q[i] = 1.0 + 0.3*math.Sin(float64(i)*dx)
	}
	pos := make([]float64, nx+1)
	for i := 0; i <= nx; i++ {
		pos[i] = float64(i)
	}
	out, err := RemapPeriodic(q, pos, dx)
	if err != nil {
		tst.Errorf("RemapPeriodic failed: %v\n", err)
		return
	}
	for i := range q {
		if math.Abs(out[i]-q[i]) > 1e-9 {
			tst.Errorf("no-flow remap changed cell %d: %v -> %v\n", i, q[i], out[i])
		}
	}
}

func Test_massratio01(tst *testing.T) {

	chk.PrintTitle("massratio01")

	g, err := grid.New(16, 8, false, 0)
	if err != nil {
		tst.Errorf("grid.New failed: %v\n", err)
		return
	}
	sliceF := grid.NewField(g.Nx, g.Ny)
	slF := grid.NewField(g.Nx, g.Ny)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			sliceF.Set(i, j, 2.0)
			slF.Set(i, j, 3.0)
		}
	}
	got := MassRatio(sliceF, slF, g.Area, 0, 3)
	want := 3.0 / 2.0
	if math.Abs(got-want) > 1e-12 {
		tst.Errorf("MassRatio: got %v want %v\n", got, want)
	}

	merged := Merge(sliceF, slF, g.Area, 3)
	for i := 0; i < g.Nx; i++ {
		if math.Abs(merged.At(i, 0)-2.0) > 1e-9 {
			tst.Errorf("merged cap value should equal the SLICE mass-equivalent, got %v\n", merged.At(i, 0))
		}
	}
}

func Test_tridiagbounded01(tst *testing.T) {

	chk.PrintTitle("tridiagbounded01")

	q := []float64{1, 1, 1, 1, 1, 1}
	qg, err := EdgeValuesBounded(q)
	if err != nil {
		tst.Errorf("EdgeValuesBounded failed: %v\n", err)
		return
	}
	for i, v := range qg {
		if math.Abs(v-1) > 1e-9 {
			tst.Errorf("uniform column should reconstruct flat edges, qg[%d]=%v\n", i, v)
		}
	}
}
