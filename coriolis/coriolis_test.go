// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coriolis

import (
	"math"
	"testing"

	"github.com/atmoswe/swsphere/grid"
	"github.com/cpmech/gosl/chk"
)

func Test_methods01(tst *testing.T) {

	chk.PrintTitle("methods01")

	g, err := grid.New(16, 8, false, 0)
	if err != nil {
		tst.Errorf("grid.New failed: %v\n", err)
		return
	}

	phi := grid.NewField(g.Nx, g.Ny)
	phi.Fill(9.80665 * 1000.0)
	u := grid.NewField(g.Nx, g.Ny)
	v := grid.NewField(g.Nx, g.Ny+1)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			u.Set(i, j, 10.0*math.Cos(g.LatPhi[j]))
		}
	}
	ubar := grid.AverageVToU(v, g.Ny)
	vbar := grid.AverageUToV(u, g.Ny)
	g.PolarPatch(u, vbar, v)

	twoOmega := 1.45842e-4

	for _, name := range []string{"simple", "jt", "new"} {
		o, err := New(name)
		if err != nil {
			tst.Errorf("New(%q) failed: %v\n", name, err)
			continue
		}
		if o.Name() != name {
			tst.Errorf("method %q reports Name()=%q\n", name, o.Name())
		}
		fu, fv := o.Apply(g, twoOmega, phi, u, v, ubar, vbar)
		if fu.Nx != g.Nx || fu.Ny != g.Ny {
			tst.Errorf("%s: fu has wrong shape\n", name)
		}
		if fv.Nx != g.Nx || fv.Ny != g.Ny+1 {
			tst.Errorf("%s: fv has wrong shape\n", name)
		}
		for i := 0; i < g.Nx; i++ {
			if fv.At(i, 0) != 0 {
				tst.Errorf("%s: fv not zeroed at south pole row\n", name)
			}
			if fv.At(i, g.Ny) != 0 {
				tst.Errorf("%s: fv not zeroed at north pole row\n", name)
			}
		}
		for j := 0; j < fu.Ny; j++ {
			for i := 0; i < fu.Nx; i++ {
				if math.IsNaN(fu.At(i, j)) || math.IsInf(fu.At(i, j), 0) {
					tst.Errorf("%s: fu has NaN/Inf at (%d,%d)\n", name, i, j)
				}
			}
		}
	}
}

func Test_unknown01(tst *testing.T) {

	chk.PrintTitle("unknown01")

	_, err := New("bogus")
	if err == nil {
		tst.Errorf("New(\"bogus\") should have failed\n")
	}
}
