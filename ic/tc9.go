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
	allocators[9] = func() Provider { return new(TC9) }
}

// TC9 is the divergent-flow test case (spec.md §6, id 9): a purely
// divergent (curl-free) velocity field derived from a velocity potential
//   chi(lambda,theta) = -R*U0*sin(lambda)*cos(theta)
// so that u = (1/(R*cos(theta))) d(chi)/d(lambda), v = (1/R) d(chi)/d(theta).
// Rotation is switched off for this test case (2*Omega = 0, spec.md §6).
type TC9 struct {
	U0       float64
	PhiRef   float64
	R        float64
}

func (o *TC9) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "u0", V: 5.0},
		&fun.Prm{N: "phiref", V: 9.80665 * 1000.0},
		&fun.Prm{N: "r", V: 6.3712e6},
	}
}

func (o *TC9) Init(prms fun.Prms) (err error) {
	o.U0 = prms.Find("u0").V
	o.PhiRef = prms.Find("phiref").V
	o.R = prms.Find("r").V
	return
}

func (o *TC9) Build(g *grid.Grid) (st *State, err error) {
	st = &State{
		Phi:      grid.NewField(g.Nx, g.Ny),
		Phis:     grid.NewField(g.Nx, g.Ny),
		U:        grid.NewField(g.Nx, g.Ny),
		V:        grid.NewField(g.Nx, g.Ny+1),
		PhiRef:   o.PhiRef,
		TwoOmega: 0, // Coriolis disabled for the divergent-flow test, spec.md §6
	}
	st.Phi.Fill(o.PhiRef)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			st.U.Set(i, j, -o.U0*math.Cos(g.LonU[i]))
		}
	}
	for j := 1; j < g.Ny; j++ {
		theta := g.LatV[j]
		for i := 0; i < g.Nx; i++ {
			st.V.Set(i, j, o.U0*math.Sin(g.LonU[i])*math.Sin(theta))
		}
	}
	return
}
