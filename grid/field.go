// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Field is a flat, row-major (longitude, latitude) array with periodic
// wrap in the longitude index. It backs every prognostic and scratch
// array in the model (§9's Design Note: "flat multi-dimensional
// indexing ... bounds checks in hot paths should be elided").
type Field struct {
	Nx, Ny int       // logical shape; longitude x latitude
	Data   la.Vector // flat storage, length Nx*Ny
}

// NewField allocates a zeroed Nx x Ny field.
func NewField(nx, ny int) *Field {
	return &Field{Nx: nx, Ny: ny, Data: la.NewVector(nx * ny)}
}

// idx maps a (possibly out-of-range) longitude index i and an in-range
// latitude index j to the flat storage index, wrapping i modulo Nx.
func (o *Field) idx(i, j int) int {
	i = i % o.Nx
	if i < 0 {
		i += o.Nx
	}
	return j*o.Nx + i
}

// At returns the value at (i,j), wrapping i periodically. j must be in
// [0, Ny).
func (o *Field) At(i, j int) float64 {
	return o.Data[o.idx(i, j)]
}

// Set assigns the value at (i,j), wrapping i periodically.
func (o *Field) Set(i, j int, v float64) {
	o.Data[o.idx(i, j)] = v
}

// Fill sets every entry to v.
func (o *Field) Fill(v float64) {
	for k := range o.Data {
		o.Data[k] = v
	}
}

// Copy deep-copies src into o; both fields must have the same shape.
func (o *Field) Copy(src *Field) {
	if o.Nx != src.Nx || o.Ny != src.Ny {
		chk.Panic("grid: Field.Copy shape mismatch: (%d,%d) != (%d,%d)", o.Nx, o.Ny, src.Nx, src.Ny)
	}
	copy(o.Data, src.Data)
}

// Reflect returns the column and row obtained by reflecting (i,j) across
// the pole: the longitude index rotated by Nx/2 and the latitude index
// mirrored about the row bound it overshot, plus a sign flip (`flip`)
// that vector (u,v) quantities must apply and scalars (phi) must not, per
// §4.4 and the Reflect primitive of §9's Design Note.
//
// jBound is the first in-range row index in the overshoot direction
// (0 for an underflow past the south row, Ny-1 for an overflow past the
// north row); jOver is the out-of-range row that triggered the call.
func (o *Field) Reflect(i, jOver, jBound int) (ii, jj int, flip float64) {
	ii = i + o.Nx/2
	jj = jBound - (jOver - jBound)
	flip = -1.0
	return
}
