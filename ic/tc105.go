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
	allocators[105] = func() Provider { return new(TC105) }
}

// TC105 is the Gaussian-hill advection test (spec.md §6, id 105): a
// Gaussian bump in phi is carried by a solid-body rotation whose axis is
// tilted by an angle Alpha0 away from the geographic pole, so that the
// bump is advected directly over both poles during one revolution —
// exercising the departure-point solver's and SLICE's polar-cap handling
// under a severe but analytically known flow.
type TC105 struct {
	U0       float64
	Alpha0   float64 // rotation-axis tilt, radians; pi/2 sends the bump over the poles
	PhiRef   float64
	TwoOmega float64
	Amp      float64 // bump height, m
	L        float64 // bump width, radians (great-circle)
	LambdaC  float64
	ThetaC   float64
	R        float64
	G        float64
}

func (o *TC105) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "u0", V: 2.0 * math.Pi * 6.3712e6 / (12.0 * 86400.0)},
		&fun.Prm{N: "alpha0", V: math.Pi / 2.0},
		&fun.Prm{N: "phiref", V: 9.80665 * 1000.0},
		&fun.Prm{N: "twoomega", V: 1.45842e-4},
		&fun.Prm{N: "amp", V: 1000.0},
		&fun.Prm{N: "l", V: 1.0 / 3.0},
		&fun.Prm{N: "lambdac", V: 1.5 * math.Pi},
		&fun.Prm{N: "thetac", V: 0.0},
		&fun.Prm{N: "r", V: 6.3712e6},
		&fun.Prm{N: "g", V: 9.80665},
	}
}

func (o *TC105) Init(prms fun.Prms) (err error) {
	o.U0 = prms.Find("u0").V
	o.Alpha0 = prms.Find("alpha0").V
	o.PhiRef = prms.Find("phiref").V
	o.TwoOmega = prms.Find("twoomega").V
	o.Amp = prms.Find("amp").V
	o.L = prms.Find("l").V
	o.LambdaC = prms.Find("lambdac").V
	o.ThetaC = prms.Find("thetac").V
	o.R = prms.Find("r").V
	o.G = prms.Find("g").V
	return
}

func (o *TC105) Build(g *grid.Grid) (st *State, err error) {
	st = &State{
		Phi:      grid.NewField(g.Nx, g.Ny),
		Phis:     grid.NewField(g.Nx, g.Ny),
		U:        grid.NewField(g.Nx, g.Ny),
		V:        grid.NewField(g.Nx, g.Ny+1),
		PhiRef:   o.PhiRef,
		TwoOmega: o.TwoOmega,
	}
	ca, sa := math.Cos(o.Alpha0), math.Sin(o.Alpha0)
	sinThetaC, cosThetaC := math.Sin(o.ThetaC), math.Cos(o.ThetaC)

	for j := 0; j < g.Ny; j++ {
		theta := g.LatPhi[j]
		for i := 0; i < g.Nx; i++ {
			lambda := g.LonPhi[i]
			u := o.U0 * (math.Cos(theta)*ca + math.Sin(theta)*math.Cos(lambda)*sa)
			st.U.Set(i, j, u)

			cosc := sinThetaC*math.Sin(theta) + cosThetaC*math.Cos(theta)*math.Cos(lambda-o.LambdaC)
			if cosc > 1 {
				cosc = 1
			} else if cosc < -1 {
				cosc = -1
			}
			d := o.R * math.Acos(cosc)
			bump := o.Amp * math.Exp(-(d/(o.L*o.R))*(d/(o.L*o.R)))
			st.Phi.Set(i, j, o.PhiRef+o.G*bump)
		}
	}
	for j := 1; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			lambda := g.LonU[i]
			v := -o.U0 * math.Sin(lambda) * sa
			st.V.Set(i, j, v)
		}
	}
	return
}
