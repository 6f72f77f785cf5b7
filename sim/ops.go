// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim wires grid, ic, coriolis, sl, slice and mg together into
// the per-step driver of spec.md §4.8: the single context struct
// (§9's Design Note) that owns the grid, configuration, Coriolis method,
// multigrid hierarchy and the iterate/departure-point scratch arrays.
package sim

import "github.com/atmoswe/swsphere/grid"

// GradLambda returns d(phi)/d(lambda) at u-points.
func GradLambda(g *grid.Grid, phi *grid.Field) *grid.Field {
	out := grid.NewField(g.Nx, g.Ny)
	for j := 0; j < g.Ny; j++ {
		denom := g.R * g.CosPhi[j] * g.Dx
		for i := 0; i < g.Nx; i++ {
			out.Set(i, j, (phi.At(i, j)-phi.At(i-1, j))/denom)
		}
	}
	return out
}

// GradTheta returns d(phi)/d(theta) at v-points; the polar rows are left
// at zero since phi has no cell straddling a pole.
func GradTheta(g *grid.Grid, phi *grid.Field) *grid.Field {
	out := grid.NewField(g.Nx, g.Ny+1)
	denom := g.R * g.Dy
	for j := 1; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			out.Set(i, j, (phi.At(i, j)-phi.At(i, j-1))/denom)
		}
	}
	return out
}

// Divergence returns the C-grid divergence of (u,v) at phi-points.
func Divergence(g *grid.Grid, u, v *grid.Field) *grid.Field {
	out := grid.NewField(g.Nx, g.Ny)
	for j := 0; j < g.Ny; j++ {
		denom := g.R * g.CosPhi[j]
		for i := 0; i < g.Nx; i++ {
			dudl := (u.At(i+1, j) - u.At(i, j)) / g.Dx
			dvcos := (v.At(i, j+1)*g.CosV[j+1] - v.At(i, j)*g.CosV[j]) / g.Dy
			out.Set(i, j, (dudl+dvcos)/denom)
		}
	}
	return out
}

// pointsAtPhi returns (u, v) interpolated onto phi-cell centers by a
// straight 2-point average, the value needed at a phi-mesh arrival point
// for the semi-Lagrangian trajectory's midpoint wind.
func pointsAtPhi(u, v *grid.Field) (uAtPhi, vAtPhi *grid.Field) {
	nx, ny := u.Nx, u.Ny
	uAtPhi = grid.NewField(nx, ny)
	vAtPhi = grid.NewField(nx, ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			uAtPhi.Set(i, j, 0.5*(u.At(i, j)+u.At(i+1, j)))
			vAtPhi.Set(i, j, 0.5*(v.At(i, j)+v.At(i, j+1)))
		}
	}
	return
}

// AddScaled sets dst = a + s*b, element-wise (same shape).
func AddScaled(a *grid.Field, s float64, b *grid.Field) *grid.Field {
	dst := grid.NewField(a.Nx, a.Ny)
	for k := range a.Data {
		dst.Data[k] = a.Data[k] + s*b.Data[k]
	}
	return dst
}
