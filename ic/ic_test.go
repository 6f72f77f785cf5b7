// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ic

import (
	"math"
	"testing"

	"github.com/atmoswe/swsphere/grid"
	"github.com/cpmech/gosl/chk"
)

func Test_allcases01(tst *testing.T) {

	chk.PrintTitle("allcases01")

	g, err := grid.New(32, 16, false, 0)
	if err != nil {
		tst.Errorf("grid.New failed: %v\n", err)
		return
	}

	ids := []int{1, 2, 5, 6, 7, 8, 9, 105}
	for _, id := range ids {
		p, err := Get(id)
		if err != nil {
			tst.Errorf("Get(%d) failed: %v\n", id, err)
			continue
		}
		st, err := p.Build(g)
		if err != nil {
			tst.Errorf("Build(%d) failed: %v\n", id, err)
			continue
		}
		if st.Phi.Nx != g.Nx || st.Phi.Ny != g.Ny {
			tst.Errorf("ic=%d: phi has wrong shape\n", id)
		}
		if st.V.Ny != g.Ny+1 {
			tst.Errorf("ic=%d: v has wrong shape\n", id)
		}
		for k := 0; k < len(st.Phi.Data); k++ {
			if math.IsNaN(st.Phi.Data[k]) {
				tst.Errorf("ic=%d: phi has NaN at flat index %d\n", id, k)
				break
			}
		}
	}
}

func Test_unknown01(tst *testing.T) {

	chk.PrintTitle("unknown01")

	_, err := Get(999)
	if err == nil {
		tst.Errorf("Get(999) should have failed\n")
	}
}
