// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slice

import "github.com/cpmech/gosl/chk"

// prefixSumBounded mirrors prefixSum for the non-periodic column case.
func prefixSumBounded(q []float64, dx float64) []float64 {
	return prefixSum(q, dx)
}

// cumulativeMassBounded returns the mass from the column's south boundary
// out to the fractional position pos (cell-index units, clamped to
// [0, n]); unlike CumulativeMass it never wraps.
func cumulativeMassBounded(q, qg []float64, dx float64, pos float64) float64 {
	n := len(q)
	cum := prefixSumBounded(q, dx)
	if pos <= 0 {
		return 0
	}
	if pos >= float64(n) {
		return cum[n]
	}
	cellIdx := int(pos)
	if cellIdx >= n {
		cellIdx = n - 1
	}
	xi := pos - float64(cellIdx)
	var right float64
	if cellIdx+1 < len(qg) {
		right = qg[cellIdx+1]
	} else {
		right = qg[cellIdx]
	}
	a0, a1, a2 := coeffs(q[cellIdx], qg[cellIdx], right)
	return cum[cellIdx] + ((a2*xi+a1)*xi+a0)*xi*dx
}

// RemapBounded remaps a bounded (pole-to-pole) column q onto an arrival
// mesh whose cell i spans [depPos[i], depPos[i+1]] in cell-index units
// along the column, using the zero-curvature edge reconstruction of
// EdgeValuesBounded (spec.md §4.5's north-south sweep).
func RemapBounded(q []float64, depPos []float64, dx float64) (out []float64, err error) {
	if len(q) < 3 {
		err = chk.Err("slice: RemapBounded needs at least 3 cells (n=%d)", len(q))
		return
	}
	qg, err := EdgeValuesBounded(q)
	if err != nil {
		return
	}
	n := len(depPos) - 1
	out = make([]float64, n)
	for i := 0; i < n; i++ {
		mass := cumulativeMassBounded(q, qg, dx, depPos[i+1]) - cumulativeMassBounded(q, qg, dx, depPos[i])
		out[i] = mass / dx
	}
	return
}
