// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"math"
	"testing"

	"github.com/atmoswe/swsphere/grid"
	"github.com/cpmech/gosl/chk"
)

func Test_massIntegral01(tst *testing.T) {

	chk.PrintTitle("massIntegral01")

	g, err := grid.New(16, 8, false, 0)
	if err != nil {
		tst.Errorf("grid.New failed: %v\n", err)
		return
	}
	phi := grid.NewField(g.Nx, g.Ny)
	phi.Fill(2.94e4)

	mass := MassIntegral(g, phi)
	expected := 2.94e4 * 4 * math.Pi
	if math.Abs(mass-expected) > 1e-6*expected {
		tst.Errorf("mass integral of a constant field should be phi*4*pi; got %v, want %v\n", mass, expected)
	}

	drift := RelMassDrift(g, phi, mass)
	if drift > 1e-14 {
		tst.Errorf("relative drift of an unchanged field should be ~0, got %v\n", drift)
	}
}

func Test_vorticityZero01(tst *testing.T) {

	chk.PrintTitle("vorticityZero01")

	g, err := grid.New(16, 8, false, 0)
	if err != nil {
		tst.Errorf("grid.New failed: %v\n", err)
		return
	}
	u := grid.NewField(g.Nx, g.Ny)
	v := grid.NewField(g.Nx, g.Ny+1)

	zeta := Vorticity(g, u, v)
	for k, val := range zeta.Data {
		if math.Abs(val) > 1e-12 {
			tst.Errorf("vorticity of a resting field should vanish, got %v at %d\n", val, k)
			break
		}
	}
}

func Test_checkGradients01(tst *testing.T) {

	chk.PrintTitle("checkGradients01")

	theta0 := 0.4
	f, df := smoothTestField(theta0)
	err := CheckGradients("sin(lambda)*cos(theta)", f, df(1.1), 1.1, 1e-6, false)
	if err != nil {
		tst.Errorf("CheckGradients failed: %v\n", err)
	}
}
