// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tridiag implements the tridiagonal solvers shared by the SLICE
// remap (slice1d, slice1db) and the multigrid line relaxation: a plain
// (Dirichlet) Thomas solve and a periodic (cyclic) variant via the
// Sherman-Morrison trick.
package tridiag

import (
	"github.com/cpmech/gosl/chk"
)

// Solve solves the tridiagonal system A·x = r, where A has sub-diagonal a,
// diagonal b and super-diagonal c, each of length n. a[0] and c[n-1] are
// ignored for the Dirichlet (non-periodic) system. When periodic is true,
// a[0] and c[n-1] are instead the wrap-around corner coefficients
// connecting row 0 to column n-1 and row n-1 to column 0, and the system
// is solved with the Sherman-Morrison decomposition into two Thomas
// solves, following Press et al.'s cyclic tridiagonal algorithm.
func Solve(a, b, c, r []float64, periodic bool) (x []float64, err error) {
	n := len(r)
	if len(a) != n || len(b) != n || len(c) != n {
		err = chk.Err("tridiag: a, b, c and r must all have the same length (n=%d)", n)
		return
	}
	if n < 3 {
		err = chk.Err("tridiag: system size must be >= 3 (n=%d)", n)
		return
	}
	if !periodic {
		x, err = thomas(a, b, c, r)
		return
	}
	return cyclic(a, b, c, r)
}

// thomas solves a Dirichlet tridiagonal system using the standard
// forward-elimination / back-substitution sweep, returning a newly
// allocated x and leaving a, b, c, r unmodified. a[0] and c[n-1] are not
// referenced.
func thomas(a, b, c, r []float64) (x []float64, err error) {
	n := len(r)
	cp := make([]float64, n)
	x = make([]float64, n)
	beta := b[0]
	if beta == 0 {
		err = chk.Err("tridiag: thomas solve failed at row 0 (zero pivot)")
		return
	}
	x[0] = r[0] / beta
	for i := 1; i < n; i++ {
		cp[i-1] = c[i-1] / beta
		beta = b[i] - a[i]*cp[i-1]
		if beta == 0 {
			err = chk.Err("tridiag: thomas solve failed at row %d (zero pivot)", i)
			return
		}
		x[i] = (r[i] - a[i]*x[i-1]) / beta
	}
	for i := n - 2; i >= 0; i-- {
		x[i] -= cp[i] * x[i+1]
	}
	return
}

// cyclic solves a periodic tridiagonal system with corner entries
// a[0] (row 0, column n-1) and c[n-1] (row n-1, column 0) using the
// Sherman-Morrison formula: the cyclic matrix A is split into a plain
// tridiagonal matrix A' plus a rank-one update u·vᵀ, and the solution is
// recovered from two Thomas solves of A'.
func cyclic(a, b, c, r []float64) (x []float64, err error) {
	n := len(r)
	alpha := c[n-1]
	beta := a[0]
	gamma := -b[0]
	if gamma == 0 {
		gamma = -1.0
	}

	bb := make([]float64, n)
	copy(bb, b)
	bb[0] -= gamma
	bb[n-1] -= alpha * beta / gamma

	y, err := thomas(a, bb, c, r)
	if err != nil {
		return
	}

	u := make([]float64, n)
	u[0] = gamma
	u[n-1] = alpha
	z, err := thomas(a, bb, c, u)
	if err != nil {
		return
	}

	fact := (y[0] + beta*y[n-1]/gamma) / (1.0 + z[0] + beta*z[n-1]/gamma)
	x = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = y[i] - fact*z[i]
	}
	return
}
