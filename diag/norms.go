// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diag implements the post-step diagnostics of spec.md §6:
// error/mass norms, derived fields (vorticity, potential vorticity),
// raw binary dumps, and the optional gradient self-check and field plot.
package diag

import (
	"math"

	"github.com/atmoswe/swsphere/grid"
)

// L2Norm returns the area-weighted L2 norm of f over the phi-mesh.
func L2Norm(g *grid.Grid, f *grid.Field) float64 {
	sum := 0.0
	for j := 0; j < g.Ny; j++ {
		a := g.Area[j]
		for i := 0; i < g.Nx; i++ {
			v := f.At(i, j)
			sum += v * v * a
		}
	}
	return math.Sqrt(sum)
}

// LInfNorm returns the maximum absolute value of f.
func LInfNorm(f *grid.Field) float64 {
	m := 0.0
	for _, v := range f.Data {
		if math.Abs(v) > m {
			m = math.Abs(v)
		}
	}
	return m
}

// RelL2Error returns ||f-ref||_2 / ||ref||_2 over the phi-mesh, per
// spec.md §8's TC2 steady-state property.
func RelL2Error(g *grid.Grid, f, ref *grid.Field) float64 {
	diff := grid.NewField(f.Nx, f.Ny)
	for k := range diff.Data {
		diff.Data[k] = f.Data[k] - ref.Data[k]
	}
	denom := L2Norm(g, ref)
	if denom == 0 {
		return L2Norm(g, diff)
	}
	return L2Norm(g, diff) / denom
}

// MassIntegral returns sum_j A[j]*sum_i phi[i,j], the discrete total mass
// whose drift spec.md §8 bounds at 1e-10 relative per day under SLICE.
func MassIntegral(g *grid.Grid, phi *grid.Field) float64 {
	sum := 0.0
	for j := 0; j < g.Ny; j++ {
		a := g.Area[j]
		rowSum := 0.0
		for i := 0; i < g.Nx; i++ {
			rowSum += phi.At(i, j)
		}
		sum += a * rowSum
	}
	return sum
}

// RelMassDrift returns |mass(phi) - mass0| / |mass0|.
func RelMassDrift(g *grid.Grid, phi *grid.Field, mass0 float64) float64 {
	m := MassIntegral(g, phi)
	if mass0 == 0 {
		return math.Abs(m)
	}
	return math.Abs(m-mass0) / math.Abs(mass0)
}
