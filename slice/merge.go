// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slice

import "github.com/atmoswe/swsphere/grid"

// blendWeights are the SLICE weights of the 3-row polar blend region
// (spec.md §4.5), read outward from the cap boundary.
var blendWeights = [3]float64{5.0 / 32.0, 1.0 / 2.0, 27.0 / 32.0}

// capMass returns the (SL, SLICE) mass totals of a latitude band [j0,j1).
func capMass(sliceF, slF *grid.Field, area []float64, j0, j1 int) (slMass, sliceMass float64) {
	for j := j0; j < j1; j++ {
		a := area[j]
		for i := 0; i < slF.Nx; i++ {
			slMass += slF.At(i, j) * a
			sliceMass += sliceF.At(i, j) * a
		}
	}
	return
}

// MassRatio returns mass1/mass2, the exact ratio of the SL mass to the
// SLICE mass over the latitude band [j0,j1) (spec.md §8's testable
// property): mass1 is the SL total, mass2 the SLICE total.
func MassRatio(sliceF, slF *grid.Field, area []float64, j0, j1 int) float64 {
	mass1, mass2 := capMass(sliceF, slF, area, j0, j1)
	return mass1 / mass2
}

// Merge splices the SLICE remap (trusted equatorward of the polar caps)
// with the semi-Lagrangian estimate (trusted inside each cap), per
// spec.md §4.5: a 3-row linear blend with weights (5/32, 1/2, 27/32), and
// a mass-conservation correction applied to the SL values inside each
// cap and inside the blend rows so the cap's total SL mass matches its
// SLICE mass exactly.
func Merge(sliceF, slF *grid.Field, area []float64, capRows int) *grid.Field {
	nx, ny := sliceF.Nx, sliceF.Ny
	out := grid.NewField(nx, ny)

	ratioSouth := 1.0 / MassRatio(sliceF, slF, area, 0, capRows)
	ratioNorth := 1.0 / MassRatio(sliceF, slF, area, ny-capRows, ny)

	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			out.Set(i, j, sliceF.At(i, j))
		}
	}

	for j := 0; j < capRows; j++ {
		for i := 0; i < nx; i++ {
			out.Set(i, j, slF.At(i, j)*ratioSouth)
		}
	}
	for j := ny - capRows; j < ny; j++ {
		for i := 0; i < nx; i++ {
			out.Set(i, j, slF.At(i, j)*ratioNorth)
		}
	}

	for k, w := range blendWeights {
		jSouth := capRows + k
		jNorth := ny - capRows - 1 - k
		if jSouth >= ny || jNorth < 0 || jSouth == jNorth {
			continue
		}
		for i := 0; i < nx; i++ {
			out.Set(i, jSouth, w*sliceF.At(i, jSouth)+(1-w)*slF.At(i, jSouth)*ratioSouth)
			out.Set(i, jNorth, w*sliceF.At(i, jNorth)+(1-w)*slF.At(i, jNorth)*ratioNorth)
		}
	}
	return out
}
