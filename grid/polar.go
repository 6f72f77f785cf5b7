// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "math"

// PolarFit determines the two-parameter horizontal vector (a,b) in
// u(lambda) = a*sin(lambda) + b*cos(lambda) that best fits, in the
// least-squares sense, the zonal u-ring uRing sampled at longitudes lon
// (spec.md §4.2). On the uniform longitude mesh used throughout this
// model, sin and cos are orthogonal over a full period (sum sin^2 ==
// sum cos^2 == n/2, sum sin*cos == 0 for even n), so the 2x2 normal-
// equation system is diagonal and the fit reduces to two projections.
func PolarFit(uRing, lon []float64) (a, b float64) {
	n := len(uRing)
	if n == 0 || n != len(lon) {
		return 0, 0
	}
	var su, cu float64
	for i := 0; i < n; i++ {
		s, c := math.Sin(lon[i]), math.Cos(lon[i])
		su += uRing[i] * s
		cu += uRing[i] * c
	}
	a = 2.0 * su / float64(n)
	b = 2.0 * cu / float64(n)
	return
}

// PolarVector recovers the polar wind's magnitude V and azimuth lambdaP
// from the fitted (a,b) pair, with a = V*sin(lambdaP), b = V*cos(lambdaP).
func PolarVector(a, b float64) (V, lambdaP float64) {
	V = math.Hypot(a, b)
	lambdaP = math.Atan2(a, b)
	return
}

// ReconstructPole evaluates the polar-reconstructed u and v at every
// longitude in lon, given the fitted polar vector (V, lambdaP), per
// §4.2:
//   south pole: u_sp(lambda) = -V*sin(lambda-lambdaP), v_sp(lambda) = +V*cos(lambda-lambdaP)
//   north pole: signs flipped
func ReconstructPole(lon []float64, V, lambdaP float64, north bool) (u, v []float64) {
	n := len(lon)
	u = make([]float64, n)
	v = make([]float64, n)
	sign := 1.0
	if north {
		sign = -1.0
	}
	for i := 0; i < n; i++ {
		dl := lon[i] - lambdaP
		u[i] = sign * (-V * math.Sin(dl))
		v[i] = sign * (V * math.Cos(dl))
	}
	return
}
