// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"
	"testing"

	"github.com/atmoswe/swsphere/config"
	"github.com/cpmech/gosl/chk"
)

func smokeCfg(ischeme int, coriolisMtd string) *config.RunData {
	cfg, _ := config.DefaultRun(1, 6)
	cfg.Nx, cfg.Ny = 16, 8
	cfg.DtSeconds = 600
	cfg.CoriolisMtd = coriolisMtd
	cfg.Ischeme = ischeme
	if ischeme == config.SchemeSLICE {
		cfg.Alpha = cfg.DtSeconds / 2
	}
	cfg.Relax = "line"
	return cfg
}

// Test_step01 checks that a handful of steps run to completion without
// producing NaN/Inf, for every (Coriolis method, advection scheme) pair.
func Test_step01(tst *testing.T) {

	chk.PrintTitle("step01")

	for _, mtd := range []string{"simple", "jt", "new"} {
		for _, ischeme := range []int{config.SchemeSL, config.SchemeHybrid, config.SchemeSLICE} {
			cfg := smokeCfg(ischeme, mtd)
			m, err := NewModel(cfg, 1)
			if err != nil {
				tst.Errorf("NewModel failed (mtd=%s, ischeme=%d): %v\n", mtd, ischeme, err)
				continue
			}
			err = m.Run(3)
			if err != nil {
				tst.Errorf("Run failed (mtd=%s, ischeme=%d): %v\n", mtd, ischeme, err)
				continue
			}
			for k, val := range m.Phi.Data {
				if math.IsNaN(val) || math.IsInf(val, 0) {
					tst.Errorf("phi has NaN/Inf at %d (mtd=%s, ischeme=%d)\n", k, mtd, ischeme)
					break
				}
			}
		}
	}
}

// Test_resting01 checks that TC1's resting state (u=v=0, flat phi) stays
// at rest after a few steps: with no initial motion and no orography
// there is nothing to advect or balance.
func Test_resting01(tst *testing.T) {

	chk.PrintTitle("resting01")

	cfg := smokeCfg(config.SchemeSL, "jt")
	m, err := NewModel(cfg, 1)
	if err != nil {
		tst.Errorf("NewModel failed: %v\n", err)
		return
	}
	err = m.Run(2)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	for k, val := range m.U.Data {
		if math.Abs(val) > 1e-6 {
			tst.Errorf("u should remain at rest, got %v at %d\n", val, k)
			break
		}
	}
}
