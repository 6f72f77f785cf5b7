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
	allocators[2] = func() Provider { return new(TC2) }
}

// TC2 is the Williamson-2 balanced solid-body rotation test: a steady,
// geostrophically-balanced zonal flow with reference geopotential
// phiref = 2.94e4 m^2/s^2 (spec.md §6, id 2).
type TC2 struct {
	U0       float64 // zonal wind amplitude, m/s
	PhiRef   float64
	TwoOmega float64
	R        float64
}

func (o *TC2) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "u0", V: 2.0 * math.Pi * 6.3712e6 / (12.0 * 86400.0)},
		&fun.Prm{N: "phiref", V: 2.94e4},
		&fun.Prm{N: "twoomega", V: 1.45842e-4},
		&fun.Prm{N: "r", V: 6.3712e6},
	}
}

func (o *TC2) Init(prms fun.Prms) (err error) {
	o.U0 = prms.Find("u0").V
	o.PhiRef = prms.Find("phiref").V
	o.TwoOmega = prms.Find("twoomega").V
	o.R = prms.Find("r").V
	return
}

// Build computes the classic balanced solid-body flow:
//   u(theta) = u0*cos(theta), v = 0
//   phi(theta) = phiref - (R*Omega*u0 + u0^2/2)*sin^2(theta)
func (o *TC2) Build(g *grid.Grid) (st *State, err error) {
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
		for i := 0; i < g.Nx; i++ {
			st.U.Set(i, j, uj)
			st.Phi.Set(i, j, phij)
		}
	}
	return
}
