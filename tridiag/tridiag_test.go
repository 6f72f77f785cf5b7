// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// matvec multiplies the tridiagonal (possibly periodic) system by x,
// used to build round-trip test vectors.
func matvec(a, b, c, x []float64, periodic bool) []float64 {
	n := len(x)
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		r[i] = b[i] * x[i]
		if i > 0 {
			r[i] += a[i] * x[i-1]
		} else if periodic {
			r[i] += a[0] * x[n-1]
		}
		if i < n-1 {
			r[i] += c[i] * x[i+1]
		} else if periodic {
			r[i] += c[n-1] * x[0]
		}
	}
	return r
}

func Test_dirichlet01(tst *testing.T) {

	chk.PrintTitle("dirichlet01")

	n := 8
	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	xref := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = -1.0
		b[i] = 4.0
		c[i] = -1.0
		xref[i] = math.Sin(float64(i))
	}
	r := matvec(a, b, c, xref, false)

	x, err := Solve(a, b, c, r, false)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	for i := 0; i < n; i++ {
		chk.Scalar(tst, "x", 1e-12, x[i], xref[i])
	}
}

func Test_periodic01(tst *testing.T) {

	chk.PrintTitle("periodic01")

	n := 16
	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	xref := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = -1.0
		b[i] = 4.0
		c[i] = -1.0
		xref[i] = math.Cos(2.0 * math.Pi * float64(i) / float64(n))
	}
	r := matvec(a, b, c, xref, true)

	x, err := Solve(a, b, c, r, true)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	for i := 0; i < n; i++ {
		chk.Scalar(tst, "x", 1e-10, x[i], xref[i])
	}
}
