// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mg

// CoarsestSweeps and LineSweeps match the sweep counts of spec.md §4.7.
const (
	CoarsestSweeps = 20
	LineSweeps     = 4
	VCyclePasses   = 4
)

// injectRHSHierarchy restricts the finest level's RHS down through every
// coarser level.
func injectRHSHierarchy(levels []*Level) {
	for k := 1; k < len(levels); k++ {
		levels[k].RHS = Inject(levels[k-1].RHS)
	}
}

// vCycle performs one down-relax-restrict / solve / prolong-relax V-cycle
// rooted at levels[start], leaving the refined solution in
// levels[start].Phi.
func vCycle(levels []*Level, start int, nu float64, mode Mode) {
	last := len(levels) - 1
	for m := start; m < last; m++ {
		RelaxN(levels[m], nu, mode, LineSweeps)
		res := Residual(levels[m], nu)
		levels[m+1].RHS = Inject(res)
		levels[m+1].Phi.Fill(0)
	}
	RelaxN(levels[last], nu, mode, CoarsestSweeps)
	for m := last - 1; m >= start; m-- {
		corr := ProlongLinear(levels[m+1].Phi)
		for k := range levels[m].Phi.Data {
			levels[m].Phi.Data[k] += corr.Data[k]
		}
		RelaxN(levels[m], nu, mode, LineSweeps)
	}
}

// Solve runs the full multigrid (FMG) cycle of spec.md §4.7 and leaves
// the finest level's solution in levels[0].Phi; it returns nothing.
// levels[0] must already hold the RHS to invert; its Phi is replaced by
// the result.
func Solve(levels []*Level, nu float64, mode Mode) {
	injectRHSHierarchy(levels)

	last := len(levels) - 1
	levels[last].Phi.Fill(0)
	RelaxN(levels[last], nu, mode, CoarsestSweeps)

	for k := last - 1; k >= 0; k-- {
		levels[k].Phi = ProlongBicubic(levels[k+1].Phi)
		vCycle(levels, k, nu, mode)
	}

	for pass := 0; pass < VCyclePasses; pass++ {
		vCycle(levels, 0, nu, mode)
	}
}
