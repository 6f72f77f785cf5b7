// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ic implements the pluggable initial-condition provider for
// every test case named in spec.md §6 (1, 2, 5, 6, 7, 8, 9, 105). Each
// test case registers an allocator keyed by its integer id, the same
// registry idiom the teacher uses for retention models
// (mdl/retention/model.go's allocators map).
package ic

import (
	"github.com/atmoswe/swsphere/grid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// State is the full prognostic state produced by a Provider: geopotential
// phi, orography phis (both Nx x Ny, cell centers), and the u/v velocity
// components (u: Nx x Ny; v: Nx x (Ny+1) with polar ghost rows).
type State struct {
	Phi, Phis *grid.Field
	U         *grid.Field
	V         *grid.Field
	PhiRef    float64 // reference geopotential used to scale off-centering/nu, spec.md §4.7
	TwoOmega  float64 // 2*Omega for this test case; zero for ic=9
}

// Provider builds the initial state for one test case.
type Provider interface {
	GetPrms(example bool) fun.Prms        // example/default parameters
	Init(prms fun.Prms) error             // configure with (possibly customised) parameters
	Build(g *grid.Grid) (*State, error)   // compute the initial fields on grid g
}

// allocators holds all registered test-case providers.
var allocators = map[int]func() Provider{}

// Get returns a newly allocated, default-initialised Provider for the
// given test-case id, or an error if the id is not registered (spec.md
// §7: "Unknown ic ... terminate the process with an error message").
func Get(id int) (o Provider, err error) {
	alloc, ok := allocators[id]
	if !ok {
		err = chk.Err("ic: unknown test case id %d", id)
		return
	}
	o = alloc()
	err = o.Init(o.GetPrms(true))
	return
}
