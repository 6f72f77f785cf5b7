// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package coriolis implements the three interchangeable Coriolis
// discretizations of spec.md §4.6, selected once at construction the way
// mdl/retention selects a liquid-retention model by name.
package coriolis

import (
	"math"

	"github.com/atmoswe/swsphere/grid"
	"github.com/cpmech/gosl/chk"
)

// Method computes the Coriolis terms fu (added to the u-momentum
// equation, at u-points) and fv (added to the v-momentum equation, at
// v-points) for the current iterate. ubar is v averaged to u-points
// (grid.AverageVToU) and vbar is u averaged to v-points
// (grid.AverageUToV, with the polar rows already patched by
// grid.Grid.PolarPatch) — the caller computes these once per iterate and
// shares them across methods and the departure-point interpolators.
type Method interface {
	Name() string
	Apply(g *grid.Grid, twoOmega float64, phi, u, v, ubar, vbar *grid.Field) (fu, fv *grid.Field)
}

// allocators holds all available Coriolis methods.
var allocators = map[string]func() Method{}

// New returns a newly allocated Method by name ("simple", "jt" or "new").
func New(name string) (o Method, err error) {
	alloc, ok := allocators[name]
	if !ok {
		err = chk.Err("coriolis: unknown method %q (want simple, jt or new)", name)
		return
	}
	o = alloc()
	return
}

// planetaryF returns 2*Omega*sin(theta), the Coriolis parameter.
func planetaryF(twoOmega, theta float64) float64 {
	return twoOmega * math.Sin(theta)
}

// zeroPolarV zeros the polar rows of fv, per §4.6's closing requirement
// that every variant must not apply a Coriolis term at the polar v-rows
// (there is no v-momentum equation there; v is reconstructed, not solved).
func zeroPolarV(fv *grid.Field) {
	ny := fv.Ny - 1
	for i := 0; i < fv.Nx; i++ {
		fv.Set(i, 0, 0)
		fv.Set(i, ny, 0)
	}
}
