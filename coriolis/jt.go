// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coriolis

import "github.com/atmoswe/swsphere/grid"

func init() {
	allocators["jt"] = func() Method { return new(JT) }
}

// JT is the JT-style Coriolis discretization (spec.md §4.6): first form
// phi*v*cos(theta) at v-points, average north-south to the phi-cell,
// multiply by f/phi, average east-west to u-points and divide by
// cos(theta); the analogous east-west/north-south path gives f*u.
type JT struct{}

func (o *JT) Name() string { return "jt" }

func (o *JT) Apply(g *grid.Grid, twoOmega float64, phi, u, v, ubar, vbar *grid.Field) (fu, fv *grid.Field) {
	ny := g.Ny

	// fu path: phi*v*cos(theta) at v-points -> phi-cell -> f/phi -> u-points / cos(theta)
	phiV := phiToV(phi, ny)
	qv := grid.NewField(g.Nx, ny+1)
	for j := 1; j < ny; j++ {
		c := g.CosV[j]
		for i := 0; i < g.Nx; i++ {
			qv.Set(i, j, phiV.At(i, j)*v.At(i, j)*c)
		}
	}
	qPhiU := vToPhi(qv, ny)
	rPhiU := grid.NewField(g.Nx, ny)
	for j := 0; j < ny; j++ {
		f := planetaryF(twoOmega, g.LatPhi[j])
		for i := 0; i < g.Nx; i++ {
			rPhiU.Set(i, j, qPhiU.At(i, j)*f/phi.At(i, j))
		}
	}
	ru := phiToU(rPhiU)
	fu = grid.NewField(g.Nx, ny)
	for j := 0; j < ny; j++ {
		c := g.CosPhi[j]
		for i := 0; i < g.Nx; i++ {
			fu.Set(i, j, ru.At(i, j)/c)
		}
	}

	// fv path: phi*u*cos(theta) at u-points -> phi-cell -> f/phi -> v-points / cos(theta)
	phiU := phiToU(phi)
	qu := grid.NewField(g.Nx, ny)
	for j := 0; j < ny; j++ {
		c := g.CosPhi[j]
		for i := 0; i < g.Nx; i++ {
			qu.Set(i, j, phiU.At(i, j)*u.At(i, j)*c)
		}
	}
	qPhiV := uToPhi(qu)
	rPhiV := grid.NewField(g.Nx, ny)
	for j := 0; j < ny; j++ {
		f := planetaryF(twoOmega, g.LatPhi[j])
		for i := 0; i < g.Nx; i++ {
			rPhiV.Set(i, j, qPhiV.At(i, j)*f/phi.At(i, j))
		}
	}
	rv := phiToV(rPhiV, ny)
	fv = grid.NewField(g.Nx, ny+1)
	for j := 1; j < ny; j++ {
		c := g.CosV[j]
		for i := 0; i < g.Nx; i++ {
			fv.Set(i, j, rv.At(i, j)/c)
		}
	}
	zeroPolarV(fv)
	return
}
