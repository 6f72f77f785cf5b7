// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package refsol implements the optional cubed-sphere reference-solution
// exporter of spec.md §6: a one-way projection of the current state onto
// a hierarchy of cubed-sphere grids by 2D cubic-Lagrange interpolation.
package refsol

import "math"

// panelAxes gives, for each of the six cubed-sphere panels, the (right,
// up, normal) unit vectors of its local face frame.
var panelAxes = [6][3][3]float64{
	{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},   // +x
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},  // +y
	{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}},   // +z
	{{0, -1, 0}, {0, 0, 1}, {-1, 0, 0}}, // -x
	{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}},  // -y
	{{0, 1, 0}, {-1, 0, 0}, {0, 0, -1}}, // -z
}

// PanelPoint is one cubed-sphere sample location.
type PanelPoint struct {
	Panel   int
	I, J    int     // local panel indices, 0..n-1
	Lambda  float64 // longitude, radians
	Theta   float64 // latitude, radians
}

// BuildPanel returns the n x n grid of sample points on one cubed-sphere
// panel, using the equidistant gnomonic mapping: each panel coordinate
// (a,b) in [-1,1] maps to a unit-sphere direction via its local frame.
func BuildPanel(panel, n int) []PanelPoint {
	axes := panelAxes[panel]
	pts := make([]PanelPoint, 0, n*n)
	for j := 0; j < n; j++ {
		b := -1 + (2*float64(j)+1)/float64(n)
		for i := 0; i < n; i++ {
			a := -1 + (2*float64(i)+1)/float64(n)
			x := axes[2][0] + a*axes[0][0] + b*axes[1][0]
			y := axes[2][1] + a*axes[0][1] + b*axes[1][1]
			z := axes[2][2] + a*axes[0][2] + b*axes[1][2]
			r := math.Sqrt(x*x + y*y + z*z)
			x, y, z = x/r, y/r, z/r
			lambda := math.Atan2(y, x)
			if lambda < 0 {
				lambda += 2 * math.Pi
			}
			theta := math.Asin(z)
			pts = append(pts, PanelPoint{Panel: panel, I: i, J: j, Lambda: lambda, Theta: theta})
		}
	}
	return pts
}

// BuildCube returns every panel's sample points for an n x n-per-panel
// cubed-sphere hierarchy level.
func BuildCube(n int) []PanelPoint {
	var all []PanelPoint
	for p := 0; p < 6; p++ {
		all = append(all, BuildPanel(p, n)...)
	}
	return all
}

func direction(lambda, theta float64) [3]float64 {
	ct := math.Cos(theta)
	return [3]float64{ct * math.Cos(lambda), ct * math.Sin(lambda), math.Sin(theta)}
}
