// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the staggered latitude-longitude C-grid: the
// longitude/latitude tables, cell areas, trig tables, optional rotated-
// pole geolocation, and the least-squares polar wind reconstruction
// (spec.md §4.1-4.2).
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Grid holds the geometry tables shared by every component. It is
// allocated once and never mutated after New, except for the rotated
// geolocation tables which are only filled when Rotated is true.
type Grid struct {

	// shape
	Nx, Ny int // number of longitudes, latitudes
	Dx, Dy float64

	// physical radius
	R float64

	// longitude tables (periodic, length Nx)
	LonPhi []float64 // phi (and v) longitudes, (i+1/2)*Dx
	LonU   []float64 // u (west-edge) longitudes, i*Dx

	// latitude tables
	LatPhi []float64 // length Ny, cell-center latitudes
	LatV   []float64 // length Ny+1, v-point (cell-edge) latitudes, LatV[0]=-pi/2, LatV[Ny]=+pi/2

	// trig tables
	SinPhi, CosPhi []float64 // at phi-points, length Ny
	SinV, CosV     []float64 // at v-points (== vorticity-point latitudes), length Ny+1

	// areas
	Area []float64 // A[j] = Dx*(sin(LatV[j+1])-sin(LatV[j])), exact strip-cell area (sum of Nx*A[j] is 4*pi), length Ny

	// rotated grid (spec.md §4.1)
	Rotated       bool
	RotationAngle float64
	SinGeoPhi     [][]float64 // [Nx][Ny] sin(geographic latitude) at phi-points
	SinGeoV       [][]float64 // [Nx][Ny+1] sin(geographic latitude) at vorticity/v-points
}

// New builds a Grid of nx longitudes by ny latitudes. If rotated is true,
// the geographic-latitude tables are precomputed for rotation angle
// alpha (radians) per §4.1.
func New(nx, ny int, rotated bool, alpha float64) (o *Grid, err error) {
	if nx <= 0 || ny <= 0 {
		err = chk.Err("grid: nx and ny must be positive (nx=%d ny=%d)", nx, ny)
		return
	}
	o = &Grid{
		Nx: nx, Ny: ny,
		Dx: 2.0 * math.Pi / float64(nx),
		Dy: math.Pi / float64(ny),
		R:  6.3712e6,
	}
	o.buildLonTables()
	o.buildLatTables()
	o.buildAreas()
	if rotated {
		o.Rotated = true
		o.RotationAngle = alpha
		o.buildRotatedTables()
	}
	return
}

func (o *Grid) buildLonTables() {
	o.LonPhi = make([]float64, o.Nx)
	o.LonU = make([]float64, o.Nx)
	for i := 0; i < o.Nx; i++ {
		o.LonPhi[i] = (float64(i) + 0.5) * o.Dx
		o.LonU[i] = float64(i) * o.Dx
	}
}

func (o *Grid) buildLatTables() {
	o.LatPhi = make([]float64, o.Ny)
	o.SinPhi = make([]float64, o.Ny)
	o.CosPhi = make([]float64, o.Ny)
	half := float64(o.Ny) / 2.0
	for j := 0; j < o.Ny; j++ {
		y := (float64(j) + 0.5 - half) * o.Dy
		o.LatPhi[j] = y
		o.SinPhi[j] = math.Sin(y)
		o.CosPhi[j] = math.Cos(y)
	}
	o.LatV = make([]float64, o.Ny+1)
	o.SinV = make([]float64, o.Ny+1)
	o.CosV = make([]float64, o.Ny+1)
	for j := 0; j <= o.Ny; j++ {
		y := -math.Pi/2.0 + float64(j)*o.Dy
		o.LatV[j] = y
		o.SinV[j] = math.Sin(y)
		o.CosV[j] = math.Cos(y)
	}
	// clamp the poles exactly, avoiding round-off drift outside [-pi/2, pi/2]
	o.LatV[0] = -math.Pi / 2.0
	o.LatV[o.Ny] = math.Pi / 2.0
}

func (o *Grid) buildAreas() {
	o.Area = make([]float64, o.Ny)
	total := 0.0
	for j := 0; j < o.Ny; j++ {
		o.Area[j] = o.Dx * (o.SinV[j+1] - o.SinV[j])
		if o.Area[j] <= 0 {
			chk.Panic("grid: non-positive cell area at row %d (A=%v)", j, o.Area[j])
		}
		total += float64(o.Nx) * o.Area[j]
	}
	if math.Abs(total-4.0*math.Pi) > 1e-6 {
		chk.Panic("grid: total area %.12f does not match 4*pi (invariant violated)", total)
	}
}

// buildRotatedTables tabulates sin(geographic latitude) at phi- and
// vorticity-points using sin(theta_g) = cos(a)sin(theta) - sin(a)cos(theta)sin(lambda).
func (o *Grid) buildRotatedTables() {
	a := o.RotationAngle
	ca, sa := math.Cos(a), math.Sin(a)
	o.SinGeoPhi = utl.Alloc(o.Nx, o.Ny)
	for i := 0; i < o.Nx; i++ {
		sl := math.Sin(o.LonPhi[i])
		for j := 0; j < o.Ny; j++ {
			o.SinGeoPhi[i][j] = ca*o.SinPhi[j] - sa*o.CosPhi[j]*sl
		}
	}
	o.SinGeoV = utl.Alloc(o.Nx, o.Ny+1)
	for i := 0; i < o.Nx; i++ {
		sl := math.Sin(o.LonU[i]) // vorticity points sit above u-point longitudes
		for j := 0; j <= o.Ny; j++ {
			o.SinGeoV[i][j] = ca*o.SinV[j] - sa*o.CosV[j]*sl
		}
	}
}
