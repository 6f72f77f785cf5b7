// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sl

import (
	"math"

	"github.com/atmoswe/swsphere/grid"
)

// Sweeps is the default number of fixed-point iterations per departure
// point (spec.md §4.3).
const Sweeps = 10

// Points holds the departure-point field for one arrival mesh: Lambda and
// Theta have the arrival mesh's shape, Mod holds the polar-cap modified
// variant used by SLICE (left nil when not needed).
type Points struct {
	Lambda, Theta       *grid.Field
	LambdaMod, ThetaMod *grid.Field
}

// NewPoints allocates a Points set on a mesh of the given shape.
func NewPoints(nx, ny int, withMod bool) *Points {
	p := &Points{Lambda: grid.NewField(nx, ny), Theta: grid.NewField(nx, ny)}
	if withMod {
		p.LambdaMod = grid.NewField(nx, ny)
		p.ThetaMod = grid.NewField(nx, ny)
	}
	return p
}

// Rotate applies the spherical small-rotation matrix of spec.md §4.3,
// carrying a wind vector from its local frame at the departure point into
// the local frame at the arrival point.
func Rotate(sinThetaA, cosThetaA, sinThetaD, cosThetaD, dlambda, ud, vd float64) (ur, vr float64) {
	cosDl := math.Cos(dlambda)
	sinDl := math.Sin(dlambda)
	d := 1 + sinThetaA*sinThetaD + cosThetaA*cosThetaD*cosDl
	m11 := (cosThetaD*cosThetaA + (1+sinThetaA*sinThetaD)*cosDl) / d
	m12 := (sinThetaA + sinThetaD) * sinDl / d
	m21 := -m12
	m22 := m11
	ur = m11*ud + m12*vd
	vr = m21*ud + m22*vd
	return
}

// project turns a midpoint displacement (x, y) in the arrival point's
// local tangent plane back into a (lambda, theta) departure point, per
// spec.md §4.3 step 4.
func project(lambdaA, sinThetaA, cosThetaA, R, x, y float64) (lambdaD, thetaD float64) {
	r := math.Sqrt(x*x + y*y + R*R)
	s := (y*cosThetaA + R*sinThetaA) / r
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	thetaD = math.Asin(s)
	dl := math.Atan2(x, R*cosThetaA-y*sinThetaA)
	lambdaD = wrap2pi(lambdaA + dl)
	return
}

// Solve computes the departure point for one arrival point (lambdaA,
// thetaA) given the current-level wind (u0, v0bar) on meshes mu, mv, the
// first-guess (or previous step's) departure point (lambda0, theta0), and
// the time step dt. uArr, vArr are the wind components at the arrival
// point itself (no interpolation needed there).
func Solve(g *grid.Grid, u0, v0bar *grid.Field, mu, mv Mesh, lambdaA, thetaA, uArr, vArr, lambda0, theta0, dt float64, firstGuess bool) (lambdaD, thetaD float64) {
	sinThetaA, cosThetaA := math.Sin(thetaA), math.Cos(thetaA)

	lambdaD, thetaD = lambda0, theta0
	if firstGuess {
		lambdaD, thetaD = project(lambdaA, sinThetaA, cosThetaA, g.R, -dt*uArr, -dt*vArr)
	}

	for s := 0; s < Sweeps; s++ {
		ud := Interp2D(u0, mu, true, lambdaD, thetaD)
		vd := Interp2D(v0bar, mv, true, lambdaD, thetaD)
		sinThetaD, cosThetaD := math.Sin(thetaD), math.Cos(thetaD)
		dlambda := wrap2pi(lambdaD-lambdaA+math.Pi) - math.Pi
		ur, vr := Rotate(sinThetaA, cosThetaA, sinThetaD, cosThetaD, dlambda, ud, vd)
		x := -dt / 2 * (uArr + ur)
		y := -dt / 2 * (vArr + vr)
		lambdaD, thetaD = project(lambdaA, sinThetaA, cosThetaA, g.R, x, y)
	}
	return
}

// SolveField returns newly allocated lambdaD, thetaD fields with the
// arrival mesh mArr's shape, filled by calling Solve at every grid point
// of that mesh, using prevLambda/prevTheta as the sweep's starting guess (nil on
// the very first step, in which case Solve's own first-guess formula is
// used).
func SolveField(g *grid.Grid, u0, v0bar *grid.Field, mArr, mu, mv Mesh, uField, vField *grid.Field, dt float64, prevLambda, prevTheta *grid.Field) (lambdaD, thetaD *grid.Field) {
	nx, ny := len(mArr.Lon), len(mArr.Lat)
	lambdaD = grid.NewField(nx, ny)
	thetaD = grid.NewField(nx, ny)
	for j := 0; j < ny; j++ {
		thetaA := mArr.Lat[j]
		for i := 0; i < nx; i++ {
			lambdaA := mArr.Lon[i]
			first := prevLambda == nil
			l0, t0 := lambdaA, thetaA
			if !first {
				l0, t0 = prevLambda.At(i, j), prevTheta.At(i, j)
			}
			ld, td := Solve(g, u0, v0bar, mu, mv, lambdaA, thetaA, uField.At(i, j), vField.At(i, j), l0, t0, dt, first)
			lambdaD.Set(i, j, ld)
			thetaD.Set(i, j, td)
		}
	}
	return
}
