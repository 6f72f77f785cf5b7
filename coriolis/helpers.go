// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coriolis

import "github.com/atmoswe/swsphere/grid"

// phiToU averages the phi field (cell centers) onto the u-mesh: u(i,j)
// sits at the west edge of cell i, between cells i-1 and i.
func phiToU(phi *grid.Field) *grid.Field {
	out := grid.NewField(phi.Nx, phi.Ny)
	for j := 0; j < phi.Ny; j++ {
		for i := 0; i < phi.Nx; i++ {
			out.Set(i, j, 0.5*(phi.At(i-1, j)+phi.At(i, j)))
		}
	}
	return out
}

// uToPhi averages a u-mesh field east-west onto the phi cell centers.
func uToPhi(u *grid.Field) *grid.Field {
	out := grid.NewField(u.Nx, u.Ny)
	for j := 0; j < u.Ny; j++ {
		for i := 0; i < u.Nx; i++ {
			out.Set(i, j, 0.5*(u.At(i, j)+u.At(i+1, j)))
		}
	}
	return out
}

// phiToV averages the phi field onto the interior v-mesh rows (1..ny-1);
// the polar rows are left at zero since no phi-cell straddles them.
func phiToV(phi *grid.Field, ny int) *grid.Field {
	out := grid.NewField(phi.Nx, ny+1)
	for j := 1; j < ny; j++ {
		for i := 0; i < phi.Nx; i++ {
			out.Set(i, j, 0.5*(phi.At(i, j-1)+phi.At(i, j)))
		}
	}
	return out
}

// vToPhi averages a v-mesh field north-south onto the phi cell centers.
func vToPhi(v *grid.Field, ny int) *grid.Field {
	out := grid.NewField(v.Nx, ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < v.Nx; i++ {
			out.Set(i, j, 0.5*(v.At(i, j)+v.At(i, j+1)))
		}
	}
	return out
}

// vToZ averages the v field east-west onto the vorticity mesh, which
// shares the v-mesh's latitude rows (Nx x (Ny+1)).
func vToZ(v *grid.Field) *grid.Field {
	out := grid.NewField(v.Nx, v.Ny)
	for j := 0; j < v.Ny; j++ {
		for i := 0; i < v.Nx; i++ {
			out.Set(i, j, 0.5*(v.At(i-1, j)+v.At(i, j)))
		}
	}
	return out
}

// phiToZ averages the phi field onto the vorticity corners: the usual
// 4-point mean for interior rows 1..ny-1, falling back to the simple ring
// mean of the adjacent phi row at the two polar rows, where no 4-point
// stencil exists.
func phiToZ(phi *grid.Field, ny int) *grid.Field {
	out := grid.NewField(phi.Nx, ny+1)
	for j := 1; j < ny; j++ {
		for i := 0; i < phi.Nx; i++ {
			out.Set(i, j, 0.25*(phi.At(i-1, j-1)+phi.At(i, j-1)+phi.At(i-1, j)+phi.At(i, j)))
		}
	}
	var sumS, sumN float64
	for i := 0; i < phi.Nx; i++ {
		sumS += phi.At(i, 0)
		sumN += phi.At(i, ny-1)
	}
	meanS := sumS / float64(phi.Nx)
	meanN := sumN / float64(phi.Nx)
	for i := 0; i < phi.Nx; i++ {
		out.Set(i, 0, meanS)
		out.Set(i, ny, meanN)
	}
	return out
}
