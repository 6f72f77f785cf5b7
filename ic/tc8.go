// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ic

import (
	"math"

	"github.com/atmoswe/swsphere/grid"
	"github.com/cpmech/gosl/fun"
)

func init() {
	allocators[8] = func() Provider { return new(TC8) }
}

// TC8 is the Hollingsworth analysis test case (spec.md §6, id 8): the
// TC2 balanced flow over a synthetic, non-zero orography that the flow
// is not exactly balanced against, used to expose Hollingsworth-
// instability-type grid-point noise. The instability-detection criterion
// of §7 (max|u-u_init| > 10 m/s) is checked by sim.Model, not here.
type TC8 struct {
	U0       float64
	PhiRef   float64
	TwoOmega float64
	R        float64
	Hs0      float64
	LambdaC  float64
	ThetaC   float64
	L        float64 // orography Gaussian width, radians
	G        float64
}

func (o *TC8) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "u0", V: 20.0},
		&fun.Prm{N: "phiref", V: 9.80665 * 5960.0},
		&fun.Prm{N: "twoomega", V: 1.45842e-4},
		&fun.Prm{N: "r", V: 6.3712e6},
		&fun.Prm{N: "hs0", V: 250.0},
		&fun.Prm{N: "lambdac", V: math.Pi},
		&fun.Prm{N: "thetac", V: math.Pi / 4.0},
		&fun.Prm{N: "l", V: math.Pi / 12.0},
		&fun.Prm{N: "g", V: 9.80665},
	}
}

func (o *TC8) Init(prms fun.Prms) (err error) {
	o.U0 = prms.Find("u0").V
	o.PhiRef = prms.Find("phiref").V
	o.TwoOmega = prms.Find("twoomega").V
	o.R = prms.Find("r").V
	o.Hs0 = prms.Find("hs0").V
	o.LambdaC = prms.Find("lambdac").V
	o.ThetaC = prms.Find("thetac").V
	o.L = prms.Find("l").V
	o.G = prms.Find("g").V
	return
}

func (o *TC8) Build(g *grid.Grid) (st *State, err error) {
	st = &State{
		Phi:      grid.NewField(g.Nx, g.Ny),
		Phis:     grid.NewField(g.Nx, g.Ny),
		U:        grid.NewField(g.Nx, g.Ny),
		V:        grid.NewField(g.Nx, g.Ny+1),
		PhiRef:   o.PhiRef,
		TwoOmega: o.TwoOmega,
	}
	omega := o.TwoOmega / 2.0
	coef := o.R*omega*o.U0 + 0.5*o.U0*o.U0
	for j := 0; j < g.Ny; j++ {
		uj := o.U0 * g.CosPhi[j]
		phij := o.PhiRef - coef*g.SinPhi[j]*g.SinPhi[j]
		dth := g.LatPhi[j] - o.ThetaC
		for i := 0; i < g.Nx; i++ {
			st.U.Set(i, j, uj)
			st.Phi.Set(i, j, phij)
			dl := wrapPi(g.LonPhi[i] - o.LambdaC)
			r2 := (dl*dl + dth*dth) / (o.L * o.L)
			st.Phis.Set(i, j, o.G*o.Hs0*math.Exp(-r2))
		}
	}
	return
}
