// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mg

import "github.com/atmoswe/swsphere/grid"

// linearAxis returns the cell-centered bilinear prolongation weights of
// spec.md §4.7 (1/16, 3/16, 9/16) for a fine sub-cell sitting a quarter
// coarse-cell-width away from its nearest coarse center.
func linearAxis(phase int) (wSelf, wNeighbor float64, dn int) {
	if phase == 0 {
		return 0.75, 0.25, -1
	}
	return 0.75, 0.25, 1
}

// bicubicWeights is the accurate 4-point prolongation kernel of spec.md
// §4.7, given for the phase-0 sub-cell at offsets -1,0,1,2 from the
// coarse cell center; the phase-1 sub-cell uses the mirrored kernel.
var bicubicWeights = [4]float64{-0.1318, 0.8439, 0.4575, -0.1696}

func bicubicAxis(phase int) [4]float64 {
	if phase == 0 {
		return bicubicWeights
	}
	return [4]float64{bicubicWeights[3], bicubicWeights[2], bicubicWeights[1], bicubicWeights[0]}
}

// ProlongLinear prolongs a coarse field onto the next finer grid (double
// resolution) using the bilinear cell-centered kernel.
func ProlongLinear(coarse *grid.Field) *grid.Field {
	nx, ny := coarse.Nx*2, coarse.Ny*2
	fine := grid.NewField(nx, ny)
	for j := 0; j < ny; j++ {
		cj := j / 2
		pj := j % 2
		wjSelf, wjN, djN := linearAxis(pj)
		for i := 0; i < nx; i++ {
			ci := i / 2
			pi := i % 2
			wiSelf, wiN, diN := linearAxis(pi)
			v := wiSelf*wjSelf*coarse.At(ci, cj) +
				wiN*wjSelf*coarse.At(ci+diN, cj) +
				wiSelf*wjN*coarse.At(ci, cj+djN) +
				wiN*wjN*coarse.At(ci+diN, cj+djN)
			fine.Set(i, j, v)
		}
	}
	return fine
}

// ProlongBicubic prolongs a coarse field using the accurate 4x4
// separable bicubic kernel, reflecting the coarse stencil across the
// pole when it overshoots the coarse grid's latitude range.
func ProlongBicubic(coarse *grid.Field) *grid.Field {
	nx, ny := coarse.Nx*2, coarse.Ny*2
	fine := grid.NewField(nx, ny)
	cny := coarse.Ny
	for j := 0; j < ny; j++ {
		cj := j / 2
		pj := j % 2
		wj := bicubicAxis(pj)
		for i := 0; i < nx; i++ {
			ci := i / 2
			pi := i % 2
			wi := bicubicAxis(pi)
			var v float64
			for dj := -1; dj <= 2; dj++ {
				jj := cj + dj
				overshoot := jj < 0 || jj >= cny
				for di := -1; di <= 2; di++ {
					ii := ci + di
					jjj := jj
					if overshoot {
						jBound := 0
						if jj >= cny {
							jBound = cny - 1
						}
						ii, jjj, _ = coarse.Reflect(ii, jj, jBound)
					}
					v += wi[di+1] * wj[dj+1] * coarse.At(ii, jjj)
				}
			}
			fine.Set(i, j, v)
		}
	}
	return fine
}
