// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config reads and validates the JSON run description that
// complements the two positional CLI arguments (initial-condition id and
// dump_ref flag): grid resolution, time stepping, the Coriolis and
// advection scheme, SLICE options and multigrid relaxation mode.
package config

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// scheme tags for phi-advection (ischeme)
const (
	SchemeSL     = 1 // non-conservative semi-Lagrangian
	SchemeHybrid = 2 // SLICE inside a merge band, SL in the polar caps
	SchemeSLICE  = 3 // fully conservative SLICE
)

// RunData holds every tunable of a run that is not one of the two
// required positional CLI arguments.
type RunData struct {
	Nx            int     `json:"nx"`            // number of longitudes
	Ny            int     `json:"ny"`            // number of latitudes (power of two)
	DtSeconds     float64 `json:"dt"`            // time step, seconds
	NSteps        int     `json:"nsteps"`        // number of time steps to run
	DumpEvery     int     `json:"dumpevery"`     // dump output every N steps; 0 disables
	CoriolisMtd   string  `json:"coriolismtd"`   // "simple", "jt" or "new"
	Ischeme       int     `json:"ischeme"`       // 1=SL, 2=hybrid, 3=SLICE
	Alpha         float64 `json:"alpha"`         // off-centering parameter; 0 means Dt/2 (centred)
	OuterIters    int     `json:"outeriters"`    // outer (departure-point) iterations per step
	InnerIters    int     `json:"inneriters"`    // inner (Helmholtz) iterations per step
	DepartureIts  int     `json:"departureits"`  // fixed-point sweeps per departure-point solve
	Relax         string  `json:"relax"`         // "line", "redblack", "gs" or "union"
	AreaFix       int     `json:"areafix"`       // 0 or 7 (area-coordinate SLICE variant)
	CgridCorr     bool    `json:"cgridcorr"`     // apply the SLICE C-grid edge correction
	Rotated       bool    `json:"rotated"`       // rotate the model grid relative to the geographic frame
	RotationAngle float64 `json:"rotationangle"` // rotation angle alpha, radians
	DumpRef       bool    `json:"dumpref"`       // export cubed-sphere reference solution
	PlotDiag      bool    `json:"plotdiag"`      // save diagnostic field plots via gosl/plt
	DirOut        string  `json:"dirout"`        // output directory
}

// earth and model constants, §6
const (
	REarth    = 6.3712e6     // m
	Gravity   = 9.80665      // m/s^2
	TwoOmega0 = 1.45842e-4   // s^-1 (2*Omega), zero for ic=9
	PhiRefTC2 = 2.94e4       // m^2/s^2, Williamson-2 reference geopotential
)

// ReadRun reads and validates a JSON run-configuration file.
func ReadRun(path string) (o *RunData, err error) {
	b, err := io.ReadFile(path)
	if err != nil {
		err = chk.Err("config: cannot read file %q:\n%v", path, err)
		return
	}
	o = new(RunData)
	err = json.Unmarshal(b, o)
	if err != nil {
		err = chk.Err("config: cannot parse JSON file %q:\n%v", path, err)
		return
	}
	err = o.validate()
	return
}

// DefaultRun returns the per-test-case default configuration for
// initial-condition id ic, following §6's Δt and t_stop rules. p is the
// exponent such that Nx = 2^p (Ny = 2^(p-1)).
func DefaultRun(ic int, p int) (o *RunData, err error) {
	if p < 6 {
		err = chk.Err("config: p must be >= 6 (got %d)", p)
		return
	}
	nx := 1 << uint(p)
	ny := nx / 2
	dt := 1600.0 / math.Pow(2.0, float64(p-6))
	tstop := defaultTstop(ic)
	o = &RunData{
		Nx:            nx,
		Ny:            ny,
		DtSeconds:     dt,
		NSteps:        int(math.Round(tstop / dt)),
		DumpEvery:     0,
		CoriolisMtd:   "jt",
		Ischeme:       SchemeSL,
		Alpha:         dt / 2,
		OuterIters:    2,
		InnerIters:    2,
		DepartureIts:  10,
		Relax:         "line",
		AreaFix:       0,
		CgridCorr:     false,
		Rotated:       false,
		RotationAngle: 0,
		DumpRef:       false,
		PlotDiag:      false,
		DirOut:        "/tmp/swsphere",
	}
	err = o.validate()
	return
}

// defaultTstop returns t_stop in seconds for each test case, §6.
func defaultTstop(ic int) float64 {
	const day = 86400.0
	switch ic {
	case 1:
		return 2 * day
	case 2:
		return 5 * day
	case 5:
		return 15 * day
	case 6:
		return 14 * day
	case 7:
		return 6 * day
	case 8:
		return 20 * day
	case 9:
		return 2 * day
	case 105:
		return 12 * day
	default:
		return 2 * day
	}
}

// validate applies the construction-time checks of §9's Design Note: a
// SLICE scheme (ischeme==3) requires a centred off-centering parameter.
func (o *RunData) validate() (err error) {
	if o.Nx <= 0 || o.Ny <= 0 {
		return chk.Err("config: nx and ny must be positive (nx=%d ny=%d)", o.Nx, o.Ny)
	}
	if o.DtSeconds <= 0 {
		return chk.Err("config: dt must be positive (dt=%v)", o.DtSeconds)
	}
	if o.Alpha == 0 {
		o.Alpha = o.DtSeconds / 2
	}
	switch o.Ischeme {
	case SchemeSL, SchemeHybrid, SchemeSLICE:
	default:
		return chk.Err("config: unknown ischeme %d (want 1, 2 or 3)", o.Ischeme)
	}
	if o.Ischeme == SchemeSLICE {
		centred := o.DtSeconds / 2
		if math.Abs(o.Alpha-centred) > 1e-9*math.Max(1, centred) {
			return chk.Err("config: ischeme==3 (SLICE) requires a centred scheme (alpha == dt/2); got alpha=%v, dt/2=%v", o.Alpha, centred)
		}
	}
	switch o.CoriolisMtd {
	case "simple", "jt", "new":
	default:
		return chk.Err("config: unknown coriolismtd %q (want simple, jt or new)", o.CoriolisMtd)
	}
	switch o.Relax {
	case "line", "redblack", "gs", "union":
	default:
		return chk.Err("config: unknown relax mode %q", o.Relax)
	}
	if o.AreaFix != 0 && o.AreaFix != 7 {
		return chk.Err("config: areafix must be 0 or 7 (got %d)", o.AreaFix)
	}
	if o.OuterIters <= 0 {
		o.OuterIters = 2
	}
	if o.InnerIters <= 0 {
		o.InnerIters = 2
	}
	if o.DepartureIts <= 0 {
		o.DepartureIts = 10
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/swsphere"
	}
	return nil
}
