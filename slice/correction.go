// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slice

import "github.com/atmoswe/swsphere/grid"

// EdgeCorrect applies the optional C-grid correction of spec.md §4.5: a
// mass-conserving exchange dq = dxd * qEdge between each pair of cells
// sharing a u-point edge, compensating for the difference between the
// exact u-point departure longitudes (dxd, in radians, west-cell-minus-
// intermediate-edge displacement) and those implied by the intermediate
// control volumes. qEdge is the edge value from EdgeValues/EdgeValuesBounded
// on that row, supplied by the caller; EastWestSweep does not return it.
func EdgeCorrect(q *grid.Field, dxd, qEdge *grid.Field) {
	nx := q.Nx
	for j := 0; j < q.Ny; j++ {
		for i := 0; i < nx; i++ {
			d := dxd.At(i, j) * qEdge.At(i, j)
			q.Set(i, j, q.At(i, j)+d)
			q.Set(i-1, j, q.At(i-1, j)-d)
		}
	}
}
