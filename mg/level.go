// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mg implements the full-multigrid (FMG) Helmholtz solver used to
// invert the implicit phi equation of spec.md §4.7: V-cycles over a
// hierarchy of latitude-longitude grids, four selectable relaxation
// modes, and bicubic/linear prolongation between levels.
package mg

import (
	"math"

	"github.com/atmoswe/swsphere/grid"
	"github.com/cpmech/gosl/chk"
)

// Level holds one grid in the multigrid hierarchy: its spacing, metric
// tables, Helmholtz coefficients, and the iterate/RHS scratch fields.
type Level struct {
	Nx, Ny int
	Dx, Dy float64
	R      float64

	CosPhi []float64 // length Ny
	CosV   []float64 // length Ny+1, injected from the next-finer level

	A, B, C []float64 // per-row Helmholtz coefficients, length Ny

	Phi, RHS *grid.Field
}

// BuildHierarchy returns ng+1 levels, finest first, coarsening Nx and Ny
// by a factor of two each step, where ng = p-2 and Nx = 2^p (spec.md
// §4.7). The coarse levels' vorticity-point cosines are injected from the
// even-indexed entries of the next finer level (full-weighting of the
// metric); phi-point cosines are recomputed directly from the coarse
// spacing since they do not coincide with any fine-grid row.
func BuildHierarchy(g *grid.Grid) (levels []*Level, err error) {
	p := 0
	for n := g.Nx; n > 1; n >>= 1 {
		p++
	}
	if 1<<uint(p) != g.Nx {
		err = chk.Err("mg: grid Nx=%d is not a power of two", g.Nx)
		return
	}
	ng := p - 2
	if ng < 1 {
		err = chk.Err("mg: grid too coarse for multigrid (Nx=%d)", g.Nx)
		return
	}

	fine := &Level{
		Nx: g.Nx, Ny: g.Ny, Dx: g.Dx, Dy: g.Dy, R: g.R,
		CosPhi: g.CosPhi, CosV: g.CosV,
	}
	fine.computeCoeffs()
	fine.Phi = grid.NewField(fine.Nx, fine.Ny)
	fine.RHS = grid.NewField(fine.Nx, fine.Ny)
	levels = append(levels, fine)

	for k := 0; k < ng; k++ {
		prev := levels[len(levels)-1]
		lvl := coarsen(prev)
		lvl.computeCoeffs()
		lvl.Phi = grid.NewField(lvl.Nx, lvl.Ny)
		lvl.RHS = grid.NewField(lvl.Nx, lvl.Ny)
		levels = append(levels, lvl)
	}
	return
}

func coarsen(fine *Level) *Level {
	nx, ny := fine.Nx/2, fine.Ny/2
	dx, dy := fine.Dx*2, fine.Dy*2

	cosV := make([]float64, ny+1)
	for j := 0; j <= ny; j++ {
		cosV[j] = fine.CosV[2*j]
	}
	cosPhi := make([]float64, ny)
	half := float64(ny) / 2.0
	for j := 0; j < ny; j++ {
		y := (float64(j) + 0.5 - half) * dy
		cosPhi[j] = math.Cos(y)
	}
	return &Level{Nx: nx, Ny: ny, Dx: dx, Dy: dy, R: fine.R, CosPhi: cosPhi, CosV: cosV}
}

func (o *Level) computeCoeffs() {
	o.A = make([]float64, o.Ny)
	o.B = make([]float64, o.Ny)
	o.C = make([]float64, o.Ny)
	for j := 0; j < o.Ny; j++ {
		o.A[j] = o.CosV[j+1] / (o.CosPhi[j] * o.R * o.R * o.Dy * o.Dy)
		o.C[j] = o.CosV[j] / (o.CosPhi[j] * o.R * o.R * o.Dy * o.Dy)
		o.B[j] = 1.0 / (o.R * o.R * o.CosPhi[j] * o.CosPhi[j] * o.Dx * o.Dx)
	}
	o.C[0] = 0
	o.A[o.Ny-1] = 0
}
