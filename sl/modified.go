// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sl

import (
	"math"

	"github.com/atmoswe/swsphere/grid"
)

// ModifiedPoint pulls a raw departure point (lambdaD, thetaD) toward its
// arrival point (lambdaA, thetaA) inside a polar buffer of width 4*dy,
// per spec.md §4.3's polar-cap modified departure points used by SLICE.
// Outside the buffer it returns the raw point unchanged.
func ModifiedPoint(lambdaA, thetaA, lambdaD, thetaD, dy float64, north bool) (lambdaM, thetaM float64) {
	ybuf := 4 * dy
	var edge, poleLat float64
	if north {
		edge = math.Pi/2 - ybuf
		poleLat = math.Pi / 2
		if thetaA < edge {
			return lambdaD, thetaD
		}
	} else {
		edge = -math.Pi/2 + ybuf
		poleLat = -math.Pi / 2
		if thetaA > edge {
			return lambdaD, thetaD
		}
	}

	arg := (math.Pi / 2) * (edge - thetaA) / (edge - poleLat)
	c := math.Cos(arg)
	w1 := c * c

	rD := polarRadius(thetaD, north)
	rA := polarRadius(thetaA, north)
	pxD, pyD := rD*math.Cos(lambdaD), rD*math.Sin(lambdaD)
	pxA, pyA := rA*math.Cos(lambdaA), rA*math.Sin(lambdaA)

	px := w1*pxD + (1-w1)*pxA
	py := w1*pyD + (1-w1)*pyA

	rM := math.Hypot(px, py)
	lambdaM = wrap2pi(math.Atan2(py, px))
	if north {
		thetaM = math.Pi/2 - rM
	} else {
		thetaM = rM - math.Pi/2
	}
	return
}

func polarRadius(theta float64, north bool) float64 {
	if north {
		return math.Pi/2 - theta
	}
	return theta + math.Pi/2
}

// ModifyField applies ModifiedPoint across an entire departure-point
// field, writing into lambdaMod/thetaMod. mArr supplies the arrival
// point's own (lambda, theta) table. vPolarExact, when true, overrides
// the two polar rows with the exact (lambda_arr, +-pi/2) the spec requires
// for v-points rather than the blended value.
func ModifyField(mArr Mesh, lambdaD, thetaD, lambdaMod, thetaMod *grid.Field, dy float64, vPolarExact bool) {
	ny := len(mArr.Lat)
	for j := 0; j < ny; j++ {
		thetaA := mArr.Lat[j]
		for i := 0; i < len(mArr.Lon); i++ {
			lambdaA := mArr.Lon[i]
			north := thetaA > 0
			lm, tm := ModifiedPoint(lambdaA, thetaA, lambdaD.At(i, j), thetaD.At(i, j), dy, north)
			lambdaMod.Set(i, j, lm)
			thetaMod.Set(i, j, tm)
		}
	}
	if vPolarExact {
		for i := 0; i < len(mArr.Lon); i++ {
			lambdaMod.Set(i, 0, mArr.Lon[i])
			thetaMod.Set(i, 0, -math.Pi/2)
			lambdaMod.Set(i, ny-1, mArr.Lon[i])
			thetaMod.Set(i, ny-1, math.Pi/2)
		}
	}
}
