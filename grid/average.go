// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// AverageUToV averages the u-field (Nx x Ny, u-points at cell west
// edges) onto the v-mesh (Nx x (Ny+1), v-points at cell south/north
// edges) using the C-grid's straight 4-point mean for every interior row
// (spec.md §4.2). The polar rows (j=0 and j=Ny) are left untouched; they
// must be filled by PolarPatch since no 4-point stencil exists there.
func AverageUToV(u *Field, ny int) *Field {
	nx := u.Nx
	ubar := NewField(nx, ny+1)
	for i := 0; i < nx; i++ {
		for j := 1; j < ny; j++ {
			ubar.Set(i, j, 0.25*(u.At(i, j-1)+u.At(i+1, j-1)+u.At(i, j)+u.At(i+1, j)))
		}
	}
	return ubar
}

// AverageVToU averages the v-field (Nx x (Ny+1)) onto the u-mesh
// (Nx x Ny) using the C-grid's straight 4-point mean. Every u-row is
// interior in the latitude direction (u never sits at a pole row), so no
// special pole handling is needed here.
func AverageVToU(v *Field, ny int) *Field {
	nx := v.Nx
	vbar := NewField(nx, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			vbar.Set(i, j, 0.25*(v.At(i-1, j)+v.At(i, j)+v.At(i-1, j+1)+v.At(i, j+1)))
		}
	}
	return vbar
}

// PolarPatch fills the polar rows of v and of ubar (u averaged to the
// v-mesh, see AverageUToV) with the least-squares polar reconstruction
// of §4.2, using the nearest u-ring (u row 0 for the south pole, u row
// Ny-1 for the north pole). ubar and v must have shape Nx x (Ny+1).
func (o *Grid) PolarPatch(u, ubar, v *Field) {
	southRing := make([]float64, o.Nx)
	northRing := make([]float64, o.Nx)
	for i := 0; i < o.Nx; i++ {
		southRing[i] = u.At(i, 0)
		northRing[i] = u.At(i, o.Ny-1)
	}

	aS, bS := PolarFit(southRing, o.LonU)
	VS, lamS := PolarVector(aS, bS)
	uS, vS := ReconstructPole(o.LonU, VS, lamS, false)

	aN, bN := PolarFit(northRing, o.LonU)
	VN, lamN := PolarVector(aN, bN)
	uN, vN := ReconstructPole(o.LonU, VN, lamN, true)

	for i := 0; i < o.Nx; i++ {
		ubar.Set(i, 0, uS[i])
		v.Set(i, 0, vS[i])
		ubar.Set(i, o.Ny, uN[i])
		v.Set(i, o.Ny, vN[i])
	}
}
