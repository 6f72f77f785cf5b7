// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"math"

	"github.com/atmoswe/swsphere/grid"
)

// Vorticity returns the relative vorticity zeta = (1/(R cos theta)) *
// (dv/dlambda - d(u cos theta)/dtheta) on the vorticity mesh (shares the
// v-mesh's shape, Nx x (Ny+1)). The two polar rows have no 4-point
// circulation stencil, so they use the discrete Stokes-theorem estimate:
// circulation around the nearest u-ring divided by the polar-cap area.
func Vorticity(g *grid.Grid, u, v *grid.Field) *grid.Field {
	out := grid.NewField(g.Nx, g.Ny+1)
	for j := 1; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			dvdl := (v.At(i, j) - v.At(i-1, j)) / g.Dx
			ducos := (u.At(i, j)*g.CosPhi[j] - u.At(i, j-1)*g.CosPhi[j-1]) / g.Dy
			out.Set(i, j, (dvdl-ducos)/(g.R*g.CosV[j]))
		}
	}
	south, north := polarCirculationVorticity(g, u)
	for i := 0; i < g.Nx; i++ {
		out.Set(i, 0, south)
		out.Set(i, g.Ny, north)
	}
	return out
}

func polarCirculationVorticity(g *grid.Grid, u *grid.Field) (south, north float64) {
	var sumS, sumN float64
	for i := 0; i < g.Nx; i++ {
		sumS += u.At(i, 0)
		sumN += u.At(i, g.Ny-1)
	}
	capAreaS := 2 * math.Pi * g.R * g.R * (1 + math.Sin(g.LatPhi[0]))
	capAreaN := 2 * math.Pi * g.R * g.R * (1 - math.Sin(g.LatPhi[g.Ny-1]))
	south = sumS * g.Dx * g.R * g.CosPhi[0] / capAreaS
	north = -sumN * g.Dx * g.R * g.CosPhi[g.Ny-1] / capAreaN
	return
}

// Height returns h = (phi+phis)/gravity at phi-points.
func Height(phi, phis *grid.Field, gravity float64) *grid.Field {
	out := grid.NewField(phi.Nx, phi.Ny)
	for k := range out.Data {
		out.Data[k] = (phi.Data[k] + phis.Data[k]) / gravity
	}
	return out
}

// PotentialVorticity returns q = (zeta + f) / h_z, the vorticity field
// divided by height interpolated onto the vorticity mesh, with planetary
// vorticity f = 2*Omega*sin(theta) added at each vorticity point.
func PotentialVorticity(g *grid.Grid, zeta, phi, phis *grid.Field, twoOmega, gravity float64) *grid.Field {
	h := Height(phi, phis, gravity)
	out := grid.NewField(g.Nx, g.Ny+1)
	for j := 0; j <= g.Ny; j++ {
		f := twoOmega * math.Sin(g.LatV[j])
		for i := 0; i < g.Nx; i++ {
			var hz float64
			switch {
			case j == 0:
				hz = h.At(i, 0)
			case j == g.Ny:
				hz = h.At(i, g.Ny-1)
			default:
				hz = 0.5 * (h.At(i, j-1) + h.At(i, j))
			}
			if hz == 0 {
				out.Set(i, j, 0)
				continue
			}
			out.Set(i, j, (zeta.At(i, j)+f)/hz)
		}
	}
	return out
}
