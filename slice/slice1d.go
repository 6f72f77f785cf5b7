// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package slice implements the SLICE (Semi-Lagrangian Inherently
// Conserving and Efficient) conservative remap: the 1D parabolic-spline
// reconstruction (slice1d, slice1db), the east-west/north-south sweeps,
// the area-coordinate variant, the C-grid edge correction and the polar
// merge with the semi-Lagrangian estimate (spec.md §4.5).
package slice

import (
	"github.com/atmoswe/swsphere/tridiag"
	"github.com/cpmech/gosl/chk"
)

// EdgeValues solves the periodic tridiagonal system relating every cell's
// west-edge value qg[i] to the cell averages q (spec.md §4.5): each cell
// average is taken as a 1/6, 2/3, 1/6 weighted mean of its own west edge
// and its two neighbors', giving the parabolic-spline reconstruction's
// edge values in one periodic tridiagonal solve.
func EdgeValues(q []float64) (qg []float64, err error) {
	n := len(q)
	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	for i := range q {
		a[i], b[i], c[i] = 1.0/6.0, 2.0/3.0, 1.0/6.0
	}
	qg, err = tridiag.Solve(a, b, c, q, true)
	return
}

// EdgeValuesBounded is the Dirichlet (bounded-domain) companion used at
// the poles by slice1db: the two boundary edges are pinned to their
// adjacent cell's own average (an approximation to the zero-curvature
// condition of spec.md §4.5), and the interior rows use the same
// 1/6, 2/3, 1/6 relation as EdgeValues.
func EdgeValuesBounded(q []float64) (qg []float64, err error) {
	n := len(q)
	if n < 3 {
		err = chk.Err("slice: EdgeValuesBounded needs at least 3 cells (n=%d)", n)
		return
	}
	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	r := make([]float64, n)
	copy(r, q)
	for i := 1; i < n-1; i++ {
		a[i], b[i], c[i] = 1.0/6.0, 2.0/3.0, 1.0/6.0
	}
	b[0], c[0] = 1, 0
	a[n-1], b[n-1] = 0, 1
	qg, err = tridiag.Solve(a, b, c, r, false)
	return
}

// coeffs returns the parabolic coefficients of spec.md §4.5 for cell i,
// given its average q and its bounding edge values qgLeft, qgRight.
func coeffs(q, qgLeft, qgRight float64) (a0, a1, a2 float64) {
	a0 = qgLeft
	a1 = -2*qgLeft - qgRight + 3*q
	a2 = qgLeft + qgRight - 2*q
	return
}

// PartialMass returns the mass of cell i's reconstructed parabola between
// its west edge and the fractional point xi in [0,1], scaled by the cell
// width dx.
func PartialMass(q, qg []float64, i int, xi, dx float64) float64 {
	n := len(q)
	right := qg[(i+1)%n]
	a0, a1, a2 := coeffs(q[i], qg[i], right)
	return ((a2*xi+a1)*xi+a0)*xi*dx
}

// CellMass returns the full mass of cell i.
func CellMass(q []float64, i int, dx float64) float64 {
	return q[i] * dx
}
