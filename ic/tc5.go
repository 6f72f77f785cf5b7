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
	allocators[5] = func() Provider { return new(TC5) }
}

// TC5 is the mountain test case: the TC2 balanced flow plus a Gaussian-
// like conical hill of height 2000*g centred at (3*pi/2+pi/4, pi/6), its
// radius measured in Cartesian chord units (spec.md §6, id 5):
//   phis(lambda,theta) = g*hs0*exp(-(k*|p-p0|)^2)
// where p, p0 are unit Cartesian position vectors and k=10.
type TC5 struct {
	U0       float64
	PhiRef   float64
	TwoOmega float64
	R        float64
	Hs0      float64
	LambdaC  float64
	ThetaC   float64
	K        float64
	G        float64
}

func (o *TC5) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "u0", V: 20.0},
		&fun.Prm{N: "phiref", V: 9.80665 * 5960.0},
		&fun.Prm{N: "twoomega", V: 1.45842e-4},
		&fun.Prm{N: "r", V: 6.3712e6},
		&fun.Prm{N: "hs0", V: 2000.0},
		&fun.Prm{N: "lambdac", V: 1.5*math.Pi + math.Pi/4.0},
		&fun.Prm{N: "thetac", V: math.Pi / 6.0},
		&fun.Prm{N: "k", V: 10.0},
		&fun.Prm{N: "g", V: 9.80665},
	}
}

func (o *TC5) Init(prms fun.Prms) (err error) {
	o.U0 = prms.Find("u0").V
	o.PhiRef = prms.Find("phiref").V
	o.TwoOmega = prms.Find("twoomega").V
	o.R = prms.Find("r").V
	o.Hs0 = prms.Find("hs0").V
	o.LambdaC = prms.Find("lambdac").V
	o.ThetaC = prms.Find("thetac").V
	o.K = prms.Find("k").V
	o.G = prms.Find("g").V
	return
}

// cartesian returns the unit-sphere Cartesian position of (lambda,theta).
func cartesian(lambda, theta float64) (x, y, z float64) {
	ct := math.Cos(theta)
	return ct * math.Cos(lambda), ct * math.Sin(lambda), math.Sin(theta)
}

func (o *TC5) Build(g *grid.Grid) (st *State, err error) {
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
	x0, y0, z0 := cartesian(o.LambdaC, o.ThetaC)
	for j := 0; j < g.Ny; j++ {
		uj := o.U0 * g.CosPhi[j]
		phij := o.PhiRef - coef*g.SinPhi[j]*g.SinPhi[j]
		for i := 0; i < g.Nx; i++ {
			st.U.Set(i, j, uj)
			st.Phi.Set(i, j, phij)
			x, y, z := cartesian(g.LonPhi[i], g.LatPhi[j])
			dx, dy, dz := x-x0, y-y0, z-z0
			d := math.Sqrt(dx*dx + dy*dy + dz*dz)
			st.Phis.Set(i, j, o.G*o.Hs0*math.Exp(-(o.K*d)*(o.K*d)))
		}
	}
	return
}
