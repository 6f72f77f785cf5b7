// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coriolis

import (
	"github.com/atmoswe/swsphere/grid"
)

func init() {
	allocators["simple"] = func() Method { return new(Simple) }
}

// Simple is the 1/4-weight averaging Coriolis discretization: f*ubar at
// u-points (v averaged there), f*vbar at v-points (u averaged there)
// (spec.md §4.6).
type Simple struct{}

func (o *Simple) Name() string { return "simple" }

func (o *Simple) Apply(g *grid.Grid, twoOmega float64, phi, u, v, ubar, vbar *grid.Field) (fu, fv *grid.Field) {
	fu = grid.NewField(g.Nx, g.Ny)
	for j := 0; j < g.Ny; j++ {
		f := planetaryF(twoOmega, g.LatPhi[j])
		for i := 0; i < g.Nx; i++ {
			fu.Set(i, j, f*ubar.At(i, j))
		}
	}
	fv = grid.NewField(g.Nx, g.Ny+1)
	for j := 0; j <= g.Ny; j++ {
		f := planetaryF(twoOmega, g.LatV[j])
		for i := 0; i < g.Nx; i++ {
			fv.Set(i, j, f*vbar.At(i, j))
		}
	}
	zeroPolarV(fv)
	return
}
