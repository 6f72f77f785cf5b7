// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slice

import "github.com/atmoswe/swsphere/grid"

// unwrapCells turns a row of raw departure longitudes (radians, each
// individually taken modulo 2*pi) into a monotonically increasing
// sequence of cell-index positions, assuming no single cell's departure
// point has looped around more than once relative to its western
// neighbor — true whenever the scheme's effective longitudinal Courant
// number stays below Nx.
func unwrapCells(depLon []float64, nx int, dx float64) []float64 {
	pos := make([]float64, nx+1)
	for i := 0; i < nx; i++ {
		pos[i] = depLon[i] / dx
	}
	for i := 1; i < nx; i++ {
		for pos[i] < pos[i-1] {
			pos[i] += float64(nx)
		}
	}
	pos[nx] = pos[0] + float64(nx)
	return pos
}

// EastWestRow remaps one latitude row of cell-mean values q using the
// row's departure longitudes depLon (one per arrival cell's west edge,
// radians), returning the row's intermediate-control-volume values.
func EastWestRow(q, depLon []float64, dx float64) (out []float64, err error) {
	pos := unwrapCells(depLon, len(q), dx)
	return RemapPeriodic(q, pos, dx)
}

// EastWestSweep applies EastWestRow to every interior row of phi (rows
// 0..Ny-1 all being interior in longitude), given the departure
// longitude field depLon sampled at the same mesh as phi.
func EastWestSweep(phi, depLon *grid.Field, dx float64) (out *grid.Field, err error) {
	out = grid.NewField(phi.Nx, phi.Ny)
	for j := 0; j < phi.Ny; j++ {
		qRow := make([]float64, phi.Nx)
		lonRow := make([]float64, phi.Nx)
		for i := 0; i < phi.Nx; i++ {
			qRow[i] = phi.At(i, j)
			lonRow[i] = depLon.At(i, j)
		}
		var outRow []float64
		outRow, err = EastWestRow(qRow, lonRow, dx)
		if err != nil {
			return
		}
		for i := 0; i < phi.Nx; i++ {
			out.Set(i, j, outRow[i])
		}
	}
	return
}

// NorthSouthColumn remaps one longitude column of intermediate values q
// (length Ny) onto the arrival column using the column's departure
// colatitude-arclength positions depPos (length Ny+1, cell-index units
// along the column, monotone south to north), per spec.md §4.5's bounded
// 1D algorithm.
func NorthSouthColumn(q, depPos []float64, dy float64) (out []float64, err error) {
	return RemapBounded(q, depPos, dy)
}

// NorthSouthSweep applies NorthSouthColumn to every longitude column of
// the east-west sweep's output, given per-column departure arc-length
// positions depPos (Nx columns, each of length Ny+1).
func NorthSouthSweep(mid *grid.Field, depPos [][]float64, dy float64) (out *grid.Field, err error) {
	out = grid.NewField(mid.Nx, mid.Ny)
	for i := 0; i < mid.Nx; i++ {
		qCol := make([]float64, mid.Ny)
		for j := 0; j < mid.Ny; j++ {
			qCol[j] = mid.At(i, j)
		}
		var outCol []float64
		outCol, err = NorthSouthColumn(qCol, depPos[i], dy)
		if err != nil {
			return
		}
		for j := 0; j < mid.Ny; j++ {
			out.Set(i, j, outCol[j])
		}
	}
	return
}
