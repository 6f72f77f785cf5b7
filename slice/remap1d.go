// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slice

import "math"

// prefixSum returns cum[0..n] with cum[0]=0 and cum[k] = sum of the first
// k cells' masses.
func prefixSum(q []float64, dx float64) []float64 {
	n := len(q)
	cum := make([]float64, n+1)
	for i := 0; i < n; i++ {
		cum[i+1] = cum[i] + CellMass(q, i, dx)
	}
	return cum
}

// CumulativeMass returns the mass of the reconstructed parabola from the
// west edge of cell 0 out to the (possibly out-of-range, possibly
// negative) fractional position pos, expressed in cell-index units. The
// 1D axis is periodic with period n = len(q); pos may lie outside
// [0, n) by any number of whole revolutions.
func CumulativeMass(q, qg []float64, dx float64, pos float64) float64 {
	n := len(q)
	cum := prefixSum(q, dx)
	domainMass := cum[n]

	nWrap := math.Floor(pos / float64(n))
	posMod := pos - nWrap*float64(n)
	cellIdx := int(math.Floor(posMod))
	if cellIdx >= n {
		cellIdx = n - 1
	}
	if cellIdx < 0 {
		cellIdx = 0
	}
	xi := posMod - float64(cellIdx)

	return nWrap*domainMass + cum[cellIdx] + PartialMass(q, qg, cellIdx, xi, dx)
}

// RemapPeriodic remaps cell-mean q onto a new mesh whose arrival cell i
// spans the departure interval [depPos[i], depPos[i+1]) (cell-index
// units on the original periodic mesh, monotonically increasing), per
// spec.md §4.5's east-west / north-south sweep. The returned slice holds
// cell-mean values on the arrival mesh (mass divided by dx).
func RemapPeriodic(q []float64, depPos []float64, dx float64) (out []float64, err error) {
	qg, err := EdgeValues(q)
	if err != nil {
		return
	}
	n := len(depPos) - 1
	out = make([]float64, n)
	for i := 0; i < n; i++ {
		mass := CumulativeMass(q, qg, dx, depPos[i+1]) - CumulativeMass(q, qg, dx, depPos[i])
		out[i] = mass / dx
	}
	return
}
