// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/atmoswe/swsphere/config"
	"github.com/atmoswe/swsphere/diag"
	"github.com/atmoswe/swsphere/refsol"
	"github.com/atmoswe/swsphere/sim"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

func main() {

	failed := false
	defer func() {
		if err := recover(); err != nil {
			failed = true
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
		if failed {
			os.Exit(1)
		}
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\nswsphere -- global shallow-water atmospheric model\n\n")
	}

	configPath := flag.String("config", "", "path to a JSON run-configuration file (defaults per ic if omitted)")
	flag.Parse()

	if len(flag.Args()) < 2 {
		chk.Panic("usage: swsphere ic dump_ref [-config run.json]\n")
	}
	icID, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		chk.Panic("invalid ic argument %q: %v\n", flag.Arg(0), err)
	}
	dumpRefArg, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		chk.Panic("invalid dump_ref argument %q: %v\n", flag.Arg(1), err)
	}

	var cfg *config.RunData
	if *configPath != "" {
		cfg, err = config.ReadRun(*configPath)
	} else {
		cfg, err = config.DefaultRun(icID, 7)
	}
	if err != nil {
		chk.Panic("configuration error: %v\n", err)
	}
	cfg.DumpRef = dumpRefArg > 0

	m, err := sim.NewModel(cfg, icID)
	if err != nil {
		chk.Panic("model setup failed: %v\n", err)
	}

	for step := 1; step <= cfg.NSteps; step++ {
		err = m.Step()
		if err != nil {
			chk.Panic("step %d failed: %v\n", step, err)
		}
		if m.Unstable {
			io.PfYel("instability detected at step %d (max|u-u_init| exceeded 10 m/s); stopping\n", step)
			break
		}
		if cfg.DumpEvery > 0 && step%cfg.DumpEvery == 0 {
			dumpStep(m, step)
		}
	}

	if cfg.DumpRef {
		mesh := m.MeshPhi
		err = refsol.Export(m.Phi, mesh, false, 16, cfg.DirOut, io.Sf("refsol_ic%d_s%05d", icID, cfg.NSteps))
		if err != nil {
			chk.Panic("reference-solution export failed: %v\n", err)
		}
	}

	if mpi.Rank() == 0 {
		io.Pf("\nfinished %d steps (ic=%d)\n", m.StepCount, icID)
	}
}

func dumpStep(m *sim.Model, step int) {
	g := m.Grid
	h := diag.Height(m.Phi, m.Phis, config.Gravity)
	zeta := diag.Vorticity(g, m.U, m.V)
	q := diag.PotentialVorticity(g, zeta, m.Phi, m.Phis, m.TwoOmega, config.Gravity)
	err := diag.DumpAll(m.Cfg.DirOut, m.IC, m.Cfg.CoriolisMtd, m.Cfg.Ischeme, step, m.U, m.V, h, zeta, q, nil)
	if err != nil {
		chk.Panic("dump at step %d failed: %v\n", step, err)
	}
}
