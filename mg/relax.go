// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mg

import (
	"github.com/atmoswe/swsphere/grid"
	"github.com/atmoswe/swsphere/tridiag"
)

// Mode selects one of the four relaxation schemes of spec.md §4.7.
type Mode int

const (
	ModeLine Mode = iota // line-simultaneous on alternating rows (default)
	ModeRedBlack
	ModeGaussSeidel
	ModeUnion // one line sweep followed by one red-black sweep
)

func neighbors(phi *grid.Field, i, j int) (north, south float64) {
	if j < phi.Ny-1 {
		north = phi.At(i, j+1)
	}
	if j > 0 {
		south = phi.At(i, j-1)
	}
	return
}

// relaxLine performs one pair of line-simultaneous sweeps (odd rows then
// even, or vice versa), each row solved by the periodic tridiagonal
// routine shared with SLICE.
func relaxLine(o *Level, nu float64, oddFirst bool) {
	nx, ny := o.Nx, o.Ny
	order := [2]int{0, 1}
	if oddFirst {
		order = [2]int{1, 0}
	}
	for _, parity := range order {
		for j := parity; j < ny; j += 2 {
			diag := -(o.A[j] + o.C[j] + 2*o.B[j] + nu)
			a := make([]float64, nx)
			b := make([]float64, nx)
			c := make([]float64, nx)
			r := make([]float64, nx)
			for i := 0; i < nx; i++ {
				north, south := neighbors(o.Phi, i, j)
				a[i], b[i], c[i] = o.B[j], diag, o.B[j]
				r[i] = o.RHS.At(i, j) - o.A[j]*north - o.C[j]*south
			}
			x, err := tridiag.Solve(a, b, c, r, true)
			if err != nil {
				continue
			}
			for i := 0; i < nx; i++ {
				o.Phi.Set(i, j, x[i])
			}
		}
	}
}

// relaxPoint performs one Gauss-Seidel-style sweep, in natural order when
// redBlack is false, or restricted to one color (0=red, 1=black) when
// redBlack is true.
func relaxPoint(o *Level, nu float64, redBlack bool, color int) {
	nx, ny := o.Nx, o.Ny
	for j := 0; j < ny; j++ {
		diag := -(o.A[j] + o.C[j] + 2*o.B[j] + nu)
		for i := 0; i < nx; i++ {
			if redBlack && (i+j)%2 != color {
				continue
			}
			north, south := neighbors(o.Phi, i, j)
			val := (o.RHS.At(i, j) - o.A[j]*north - o.C[j]*south - o.B[j]*(o.Phi.At(i-1, j)+o.Phi.At(i+1, j))) / diag
			o.Phi.Set(i, j, val)
		}
	}
}

// Relax applies one sweep of mode to the level. In the red-black mode
// (alone or within union) a call relaxes only the colour sweep%2, so a
// full red-black pass takes two consecutive calls.
func Relax(o *Level, nu float64, mode Mode, sweep int) {
	switch mode {
	case ModeLine:
		relaxLine(o, nu, sweep%2 == 1)
	case ModeRedBlack:
		relaxPoint(o, nu, true, sweep%2)
	case ModeGaussSeidel:
		relaxPoint(o, nu, false, 0)
	case ModeUnion:
		relaxLine(o, nu, sweep%2 == 1)
		relaxPoint(o, nu, true, sweep%2)
	}
}

// RelaxN applies n full sweeps of mode.
func RelaxN(o *Level, nu float64, mode Mode, n int) {
	for s := 0; s < n; s++ {
		Relax(o, nu, mode, s)
	}
}

// ModeFromString parses the config names ("line", "redblack", "gs",
// "union"); any other name selects line relaxation.
func ModeFromString(name string) Mode {
	switch name {
	case "redblack":
		return ModeRedBlack
	case "gs":
		return ModeGaussSeidel
	case "union":
		return ModeUnion
	default:
		return ModeLine
	}
}
