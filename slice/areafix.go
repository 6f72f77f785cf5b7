// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slice

import "github.com/atmoswe/swsphere/grid"

// UpdateDepartureAreas advances the departure-cell areas Ad consistently
// with the (modified) divergence, per spec.md §4.5's area-coordinate
// variant (areafix=7):
//
//  1. divMod is a seed estimate of the departure-strip divergence,
//     obtained by the caller remapping the current divergence with SLICE
//     itself using the previous Ad (this routine only performs step 2).
//  2. Ad[i,j] <- (1 - dt/2*(divMod+divD)) * A[j].
func UpdateDepartureAreas(ad *grid.Field, area []float64, divMod, divD *grid.Field, dt float64) {
	for j := 0; j < ad.Ny; j++ {
		a := area[j]
		for i := 0; i < ad.Nx; i++ {
			ad.Set(i, j, (1-dt/2*(divMod.At(i, j)+divD.At(i, j)))*a)
		}
	}
}
