// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sl implements the semi-Lagrangian departure-point solver and the
// cubic Lagrange interpolation kernels used to evaluate fields at those
// departure points (spec.md §4.3, §4.4).
package sl

import (
	"math"

	"github.com/atmoswe/swsphere/grid"
)

// cubicWeights returns the four Lagrange basis functions for nodes at
// offsets -1, 0, 1, 2 from the stencil's south-west corner, evaluated at
// the fractional offset t in [0,1) from node 0.
func cubicWeights(t float64) [4]float64 {
	return [4]float64{
		-t * (t - 1) * (t - 2) / 6,
		(t + 1) * (t - 1) * (t - 2) / 2,
		-(t + 1) * t * (t - 2) / 2,
		(t + 1) * t * (t - 1) / 6,
	}
}

// Mesh describes the regular (lambda, theta) coordinate tables a field
// lives on, so Interp2D can locate the 4x4 stencil straddling a point.
type Mesh struct {
	Lon  []float64 // length Nx, lon[0] is the field's first column
	Lat  []float64 // length Ny (phi/u-mesh) or Ny+1 (v-mesh)
	DLon float64
	DLat float64
}

// NewMesh builds a Mesh from uniformly-spaced coordinate tables.
func NewMesh(lon, lat []float64) Mesh {
	return Mesh{Lon: lon, Lat: lat, DLon: lon[1] - lon[0], DLat: lat[1] - lat[0]}
}

// Interp2D evaluates f at (lambda, theta) using 2D cubic Lagrange
// interpolation: first in longitude, then in latitude (spec.md §4.4).
// isVector selects the sign convention used when the stencil overshoots a
// pole: vector components (u, v) flip sign on the reflected rows, scalars
// (phi) do not.
func Interp2D(f *grid.Field, m Mesh, isVector bool, lambda, theta float64) float64 {
	lambda = wrap2pi(lambda)

	kf := (lambda - m.Lon[0]) / m.DLon
	k := int(math.Floor(kf))
	tl := kf - float64(k)

	lf := (theta - m.Lat[0]) / m.DLat
	l := int(math.Floor(lf))
	if l < 0 {
		l = 0
		lf = 0
	}
	if l > len(m.Lat)-2 {
		l = len(m.Lat) - 2
		lf = float64(l)
	}
	tt := lf - float64(l)

	wl := cubicWeights(tl)
	wt := cubicWeights(tt)
	ny := len(m.Lat)

	var sum float64
	for dj := -1; dj <= 2; dj++ {
		jRaw := l + dj
		overshoot := jRaw < 0 || jRaw >= ny
		for di := -1; di <= 2; di++ {
			ii := k + di
			jj := jRaw
			sign := 1.0
			if overshoot {
				jBound := 0
				if jRaw >= ny {
					jBound = ny - 1
				}
				ii, jj, sign = f.Reflect(ii, jRaw, jBound)
			}
			val := f.At(ii, jj)
			if isVector && overshoot {
				val *= sign
			}
			sum += wl[di+1] * wt[dj+1] * val
		}
	}
	return sum
}

// wrap2pi reduces lambda to [0, 2*pi).
func wrap2pi(lambda float64) float64 {
	const twoPi = 2 * math.Pi
	lambda = math.Mod(lambda, twoPi)
	if lambda < 0 {
		lambda += twoPi
	}
	return lambda
}
