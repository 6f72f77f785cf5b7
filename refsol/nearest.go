// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refsol

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
)

// PanelFinder disambiguates which cubed-sphere panel owns a direction
// vector near a panel seam (where two panels' gnomonic projections are
// both nearly degenerate), the same spatial-bins idiom out/out.go uses
// to locate the finite-element node or integration point nearest an
// arbitrary query location.
type PanelFinder struct {
	bins gm.Bins
	ids  []int
}

// NewPanelFinder registers every panel's sample points (from BuildCube)
// in a 3D bins structure keyed by their unit-sphere direction.
func NewPanelFinder(pts []PanelPoint) (o *PanelFinder, err error) {
	o = &PanelFinder{ids: make([]int, len(pts))}
	xi := []float64{-1.01, -1.01, -1.01}
	xf := []float64{1.01, 1.01, 1.01}
	err = o.bins.Init(xi, xf, 32)
	if err != nil {
		err = chk.Err("refsol: cannot initialise panel bins:\n%v", err)
		return
	}
	for k, p := range pts {
		d := direction(p.Lambda, p.Theta)
		err = o.bins.Append([]float64{d[0], d[1], d[2]}, k)
		if err != nil {
			err = chk.Err("refsol: cannot register panel point %d:\n%v", k, err)
			return
		}
		o.ids[k] = p.Panel
	}
	return
}

// Panel returns the panel id owning the direction nearest (lambda,
// theta), or -1 if the bins hold no point close enough.
func (o *PanelFinder) Panel(lambda, theta float64) int {
	d := direction(lambda, theta)
	id := o.bins.Find([]float64{d[0], d[1], d[2]})
	if id < 0 || id >= len(o.ids) {
		return -1
	}
	return o.ids[id]
}
