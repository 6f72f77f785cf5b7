// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"bytes"
	"encoding/binary"
	"path"

	"github.com/atmoswe/swsphere/grid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// FileName builds the dump path encoding the initial condition, Coriolis
// method, advection scheme and grid resolution, per spec.md §6: "File
// naming encodes ic, Coriolis method, SLICE mode, and grid resolution."
func FileName(dirout string, icID int, coriolisMtd string, ischeme int, nx, ny, step int, field string) string {
	scheme := [...]string{"", "sl", "hybrid", "slice"}[ischeme]
	return path.Join(dirout, io.Sf("ic%d_%s_%s_%dx%d_s%05d_%s.raw", icID, coriolisMtd, scheme, nx, ny, step, field))
}

// Dump writes one field as a headerless, row-major, single-precision raw
// binary stream (spec.md §6). Open-or-replace semantics: an error while
// encoding the buffer is returned to the caller, which must terminate the
// step per §7; the buffer is then written with io.WriteFile, and no write
// error is returned from here.
func Dump(filename string, f *grid.Field) (err error) {
	var buf bytes.Buffer
	for _, v := range f.Data {
		err = binary.Write(&buf, binary.LittleEndian, float32(v))
		if err != nil {
			return chk.Err("diag: cannot encode field for %q:\n%v", filename, err)
		}
	}
	io.WriteFile(filename, &buf)
	return
}

// DumpAll writes u, v, h, vorticity, potential vorticity and, for steady
// test cases, the height error field, following spec.md §6's per-dump
// file set.
func DumpAll(dirout string, icID int, coriolisMtd string, ischeme int, step int, u, v, h, zeta, q *grid.Field, hErr *grid.Field) (err error) {
	nx, ny := h.Nx, h.Ny
	fields := map[string]*grid.Field{"u": u, "v": v, "h": h, "vort": zeta, "pv": q}
	for name, fld := range fields {
		fn := FileName(dirout, icID, coriolisMtd, ischeme, nx, ny, step, name)
		if err = Dump(fn, fld); err != nil {
			return
		}
	}
	if hErr != nil {
		fn := FileName(dirout, icID, coriolisMtd, ischeme, nx, ny, step, "herr")
		err = Dump(fn, hErr)
	}
	return
}
