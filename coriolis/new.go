// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coriolis

import "github.com/atmoswe/swsphere/grid"

func init() {
	allocators["new"] = func() Method { return new(NewMethod) }
}

// NewMethod is the vorticity-point Coriolis discretization (spec.md §4.6):
// phi and the momentum components are averaged onto the vorticity corners
// (u-point longitudes on the v-mesh's latitude rows), multiplied there by
// f/phi_z, and averaged back out onto the u- and v-meshes. u_z is u
// averaged north-south onto the interior corner rows; the polar corner
// rows carry no u_z term, since fv is zero on the polar v-rows.
type NewMethod struct{}

func (o *NewMethod) Name() string { return "new" }

func (o *NewMethod) Apply(g *grid.Grid, twoOmega float64, phi, u, v, ubar, vbar *grid.Field) (fu, fv *grid.Field) {
	ny := g.Ny
	phiZ := phiToZ(phi, ny)
	vZ := vToZ(v)

	termU := grid.NewField(g.Nx, ny+1) // carries v_z*f/phi_z, feeds fu
	termV := grid.NewField(g.Nx, ny+1) // carries u_z*f/phi_z, feeds fv
	for j := 0; j <= ny; j++ {
		f := planetaryF(twoOmega, g.LatV[j])
		for i := 0; i < g.Nx; i++ {
			pz := phiZ.At(i, j)
			uz := 0.0
			if j > 0 && j < ny {
				uz = 0.5 * (u.At(i, j-1) + u.At(i, j))
			}
			termU.Set(i, j, vZ.At(i, j)*f/pz)
			termV.Set(i, j, uz*f/pz)
		}
	}

	fu = grid.NewField(g.Nx, ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < g.Nx; i++ {
			fu.Set(i, j, 0.5*(termU.At(i, j)+termU.At(i, j+1)))
		}
	}

	fv = grid.NewField(g.Nx, ny+1)
	for j := 1; j < ny; j++ {
		for i := 0; i < g.Nx; i++ {
			fv.Set(i, j, 0.5*(termV.At(i, j)+termV.At(i+1, j)))
		}
	}
	zeroPolarV(fv)
	return
}
