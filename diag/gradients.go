// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// CheckGradients compares a supplied analytic longitude-derivative
// dfdlambda of f at lambda0 with the central-difference numerical
// derivative of f there (num.DerivCen), the same analytical-vs-numerical
// cross-check mdl/solid and mdl/porous run on their Jacobians. No grid
// stencil is involved; tol is the absolute tolerance passed to
// chk.PrintAnaNum.
func CheckGradients(label string, f func(lambda float64) float64, dfdlambda, lambda0 float64, tol float64, verbose bool) (err error) {
	dnum := num.DerivCen(func(x float64, args ...interface{}) float64 {
		return f(x)
	}, lambda0)
	return chk.PrintAnaNum(io.Sf("%s @ lambda=%.6f", label, lambda0), tol, dfdlambda, dnum, verbose)
}

// CheckGradientsFwd is CheckGradients using the one-sided (forward)
// finite-difference formula instead of the centred one, for fields only
// defined on one side of lambda0 (e.g. at a domain edge).
func CheckGradientsFwd(label string, f func(lambda float64) float64, dfdlambda, lambda0 float64, tol float64, verbose bool) (err error) {
	dnum := num.DerivFwd(func(x float64, args ...interface{}) float64 {
		return f(x)
	}, lambda0)
	return chk.PrintAnaNum(io.Sf("%s @ lambda=%.6f", label, lambda0), tol, dfdlambda, dnum, verbose)
}

// smoothTestField returns a plain sinusoid and its exact lambda-derivative,
// used by this package's tests to exercise CheckGradients without wiring
// in a full initial condition.
func smoothTestField(theta float64) (f func(lambda float64) float64, dfdlambda func(lambda float64) float64) {
	f = func(lambda float64) float64 { return math.Sin(lambda) * math.Cos(theta) }
	dfdlambda = func(lambda float64) float64 { return math.Cos(lambda) * math.Cos(theta) }
	return
}
