// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mg

import "github.com/atmoswe/swsphere/grid"

// Residual returns r - (Laplacian - nu)*phi on level o.
func Residual(o *Level, nu float64) *grid.Field {
	res := grid.NewField(o.Nx, o.Ny)
	for j := 0; j < o.Ny; j++ {
		diag := -(o.A[j] + o.C[j] + 2*o.B[j] + nu)
		for i := 0; i < o.Nx; i++ {
			north, south := neighbors(o.Phi, i, j)
			lhs := o.A[j]*north + o.C[j]*south + o.B[j]*(o.Phi.At(i-1, j)+o.Phi.At(i+1, j)) + diag*o.Phi.At(i, j)
			res.Set(i, j, o.RHS.At(i, j)-lhs)
		}
	}
	return res
}

// InfNorm returns the max absolute value over a field.
func InfNorm(f *grid.Field) float64 {
	m := 0.0
	for _, v := range f.Data {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}

// Inject restricts a fine-level field to half resolution by sampling the
// four fine cells in each coarse cell's 2x2 block (full weighting).
func Inject(fine *grid.Field) *grid.Field {
	nx, ny := fine.Nx/2, fine.Ny/2
	coarse := grid.NewField(nx, ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v := 0.25 * (fine.At(2*i, 2*j) + fine.At(2*i+1, 2*j) + fine.At(2*i, 2*j+1) + fine.At(2*i+1, 2*j+1))
			coarse.Set(i, j, v)
		}
	}
	return coarse
}
