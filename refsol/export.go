// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refsol

import (
	"bytes"
	"encoding/binary"
	"path"

	"github.com/atmoswe/swsphere/grid"
	"github.com/atmoswe/swsphere/sl"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Export projects a (lambda, theta)-mesh field onto an n x n-per-panel
// cubed-sphere grid by 2D cubic-Lagrange interpolation (spec.md §6: "a
// one-way exporter only") and writes the six panels as consecutive
// row-major single-precision blocks to dirout/name.raw.
func Export(f *grid.Field, mesh sl.Mesh, isVector bool, n int, dirout, name string) (err error) {
	pts := BuildCube(n)
	var buf bytes.Buffer
	for _, p := range pts {
		v := sl.Interp2D(f, mesh, isVector, p.Lambda, p.Theta)
		err = binary.Write(&buf, binary.LittleEndian, float32(v))
		if err != nil {
			return chk.Err("refsol: cannot encode panel point:\n%v", err)
		}
	}
	fn := path.Join(dirout, name+".raw")
	io.WriteFile(fn, &buf)
	return
}
