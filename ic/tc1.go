// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ic

import (
	"github.com/atmoswe/swsphere/grid"
	"github.com/cpmech/gosl/fun"
)

func init() {
	allocators[1] = func() Provider { return new(TC1) }
}

// TC1 is the resting, uniform-geopotential test case: u=v=0, phi
// constant, no orography (spec.md §6, id 1).
type TC1 struct {
	PhiRef   float64
	TwoOmega float64
}

func (o *TC1) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "phiref", V: 2.94e4},
		&fun.Prm{N: "twoomega", V: 1.45842e-4},
	}
}

func (o *TC1) Init(prms fun.Prms) (err error) {
	o.PhiRef = prms.Find("phiref").V
	o.TwoOmega = prms.Find("twoomega").V
	return
}

func (o *TC1) Build(g *grid.Grid) (st *State, err error) {
	st = &State{
		Phi:      grid.NewField(g.Nx, g.Ny),
		Phis:     grid.NewField(g.Nx, g.Ny),
		U:        grid.NewField(g.Nx, g.Ny),
		V:        grid.NewField(g.Nx, g.Ny+1),
		PhiRef:   o.PhiRef,
		TwoOmega: o.TwoOmega,
	}
	st.Phi.Fill(o.PhiRef)
	return
}
