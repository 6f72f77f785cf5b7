// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refsol

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_buildCube01(tst *testing.T) {

	chk.PrintTitle("buildCube01")

	pts := BuildCube(4)
	if len(pts) != 6*4*4 {
		tst.Errorf("expected 6*16 points, got %d\n", len(pts))
	}
	for _, p := range pts {
		d := direction(p.Lambda, p.Theta)
		r := math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
		if math.Abs(r-1) > 1e-12 {
			tst.Errorf("panel point direction should be unit length, got %v\n", r)
		}
	}
}

func Test_panelFinder01(tst *testing.T) {

	chk.PrintTitle("panelFinder01")

	pts := BuildCube(8)
	finder, err := NewPanelFinder(pts)
	if err != nil {
		tst.Errorf("NewPanelFinder failed: %v\n", err)
		return
	}
	for _, want := range []int{0, 1, 2, 3, 4, 5} {
		p := BuildPanel(want, 8)[0]
		got := finder.Panel(p.Lambda, p.Theta)
		if got != want {
			tst.Errorf("panel lookup mismatch: want %d got %d\n", want, got)
		}
	}
}
