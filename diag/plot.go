// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"path"

	"github.com/atmoswe/swsphere/grid"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotField saves a filled-contour plot of f over the (longitude,
// latitude) mesh to dirout/name.png, enabled by the run configuration's
// PlotDiag flag.
func PlotField(g *grid.Grid, f *grid.Field, lon, lat []float64, dirout, name string) (err error) {
	nx, ny := len(lon), len(lat)
	xx := utl.Alloc(ny, nx)
	yy := utl.Alloc(ny, nx)
	zz := utl.Alloc(ny, nx)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			xx[j][i] = lon[i]
			yy[j][i] = lat[j]
			zz[j][i] = f.At(i, j)
		}
	}
	plt.Reset()
	plt.ContourSimple(xx, yy, zz, "")
	plt.Gll("$\\lambda$", "$\\theta$", "")
	fn := path.Join(dirout, name+".png")
	plt.Save(fn)
	io.Pf("file <%s> written\n", fn)
	return
}
