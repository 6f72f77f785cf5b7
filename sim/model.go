// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"

	"github.com/atmoswe/swsphere/config"
	"github.com/atmoswe/swsphere/coriolis"
	"github.com/atmoswe/swsphere/grid"
	"github.com/atmoswe/swsphere/ic"
	"github.com/atmoswe/swsphere/mg"
	"github.com/atmoswe/swsphere/sl"
	"github.com/atmoswe/swsphere/slice"
	"github.com/cpmech/gosl/chk"
)

// Model is the single context struct of spec.md §9's Design Note: every
// grid table, configuration constant, scratch array and iterate lives
// here, passed explicitly through Step instead of as package globals.
type Model struct {
	Grid *grid.Grid
	Cfg  *config.RunData
	Cor  coriolis.Method

	IC       int
	PhiRef   float64
	TwoOmega float64

	// current state
	Phi, Phis *grid.Field
	U, V      *grid.Field

	// meshes, shared by every interpolation call
	MeshPhi, MeshU, MeshV Mesh

	// multigrid hierarchy for the Helmholtz solve
	Levels []*mg.Level

	// departure points, carried step-to-step as the next step's first guess
	DepPhi, DepU, DepV *sl.Points

	// departure cell areas for the SLICE area-coordinate variant (areafix==7)
	AreaD *grid.Field

	UInit *grid.Field // snapshot of U at t=0, for the ic==8 instability check

	StepCount    int
	Unstable bool
}

// Mesh is an alias kept local to avoid importing sl in every call site.
type Mesh = sl.Mesh

// NewModel builds the grid, initial state and multigrid hierarchy for the
// given configuration and initial-condition id.
func NewModel(cfg *config.RunData, icID int) (o *Model, err error) {
	g, err := grid.New(cfg.Nx, cfg.Ny, cfg.Rotated, cfg.RotationAngle)
	if err != nil {
		return
	}
	provider, err := ic.Get(icID)
	if err != nil {
		return
	}
	st, err := provider.Build(g)
	if err != nil {
		return
	}
	cor, err := coriolis.New(cfg.CoriolisMtd)
	if err != nil {
		return
	}
	levels, err := mg.BuildHierarchy(g)
	if err != nil {
		return
	}

	o = &Model{
		Grid:     g,
		Cfg:      cfg,
		Cor:      cor,
		IC:       icID,
		PhiRef:   st.PhiRef,
		TwoOmega: st.TwoOmega,
		Phi:      st.Phi,
		Phis:     st.Phis,
		U:        st.U,
		V:        st.V,
		Levels:   levels,
		MeshPhi:  sl.NewMesh(g.LonPhi, g.LatPhi),
		MeshU:    sl.NewMesh(g.LonU, g.LatPhi),
		MeshV:    sl.NewMesh(g.LonPhi, g.LatV),
	}
	o.DepPhi = sl.NewPoints(g.Nx, g.Ny, cfg.Ischeme != config.SchemeSL)
	o.DepU = sl.NewPoints(g.Nx, g.Ny, false)
	o.DepV = sl.NewPoints(g.Nx, g.Ny+1, false)

	o.AreaD = grid.NewField(g.Nx, g.Ny)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			o.AreaD.Set(i, j, g.Area[j])
		}
	}

	o.UInit = grid.NewField(g.Nx, g.Ny)
	o.UInit.Copy(o.U)

	return
}

// ubarVbar returns (v averaged to u-points, u averaged to v-points with
// the poles patched), the pair every Coriolis method and every
// departure-point interpolator shares for the current iterate.
func (o *Model) ubarVbar(u, v *grid.Field) (ubar, vbar *grid.Field) {
	ubar = grid.AverageVToU(v, o.Grid.Ny)
	vbar = grid.AverageUToV(u, o.Grid.Ny)
	o.Grid.PolarPatch(u, vbar, v)
	return
}

// Step advances the model by one time step, per spec.md §4.8.
func (o *Model) Step() (err error) {
	g := o.Grid
	dt := o.Cfg.DtSeconds
	alpha := o.Cfg.Alpha
	beta := dt - alpha

	phi0, u0, v0 := o.Phi, o.U, o.V
	ubar0, vbar0 := o.ubarVbar(u0, v0)

	// 1. current-level Coriolis and momentum residuals
	fu0, fv0 := o.Cor.Apply(g, o.TwoOmega, phi0, u0, v0, ubar0, vbar0)
	gradLam0 := GradLambda(g, AddScaled(phi0, 1, o.Phis))
	gradThe0 := GradTheta(g, AddScaled(phi0, 1, o.Phis))

	ru0 := grid.NewField(g.Nx, g.Ny)
	rv0 := grid.NewField(g.Nx, g.Ny+1)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			ru0.Set(i, j, u0.At(i, j)-beta*(gradLam0.At(i, j)-fu0.At(i, j)))
		}
	}
	for j := 0; j <= g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			rv0.Set(i, j, v0.At(i, j)-beta*(gradThe0.At(i, j)+fv0.At(i, j)))
		}
	}

	// 2. phi continuity residual
	div0 := Divergence(g, u0, v0)
	rphi0 := grid.NewField(g.Nx, g.Ny)
	for k := range rphi0.Data {
		rphi0.Data[k] = phi0.Data[k] * (1 - beta*div0.Data[k])
	}

	// 3. outer loop: departure points and interpolated residuals
	outer := o.Cfg.OuterIters
	if outer <= 0 {
		outer = 2
	}

	var rud, rvd, rphid *grid.Field

	u, v := u0, v0

	for out := 0; out < outer; out++ {
		ubar, vbar := o.ubarVbar(u, v)
		uAtPhi, vAtPhi := pointsAtPhi(u, v)

		first := o.StepCount == 0 && out == 0
		prev := func(f *grid.Field) *grid.Field {
			if first {
				return nil
			}
			return f
		}
		lamU, theU := sl.SolveField(g, u, v, o.MeshU, o.MeshU, o.MeshV, u, vbar, dt, prev(o.DepU.Lambda), prev(o.DepU.Theta))
		lamV, theV := sl.SolveField(g, u, v, o.MeshV, o.MeshU, o.MeshV, ubar, v, dt, prev(o.DepV.Lambda), prev(o.DepV.Theta))
		lamPhi, thePhi := sl.SolveField(g, u, v, o.MeshPhi, o.MeshU, o.MeshV, uAtPhi, vAtPhi, dt, prev(o.DepPhi.Lambda), prev(o.DepPhi.Theta))

		o.DepU.Lambda, o.DepU.Theta = lamU, theU
		o.DepV.Lambda, o.DepV.Theta = lamV, theV
		o.DepPhi.Lambda, o.DepPhi.Theta = lamPhi, thePhi

		rud = grid.NewField(g.Nx, g.Ny)
		rvd = grid.NewField(g.Nx, g.Ny+1)
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				lambdaA, thetaA := g.LonU[i], g.LatPhi[j]
				ud := sl.Interp2D(ru0, o.MeshU, true, lamU.At(i, j), theU.At(i, j))
				vd := sl.Interp2D(rv0, o.MeshV, true, lamU.At(i, j), theU.At(i, j))
				sinThetaA, cosThetaA := math.Sin(thetaA), math.Cos(thetaA)
				sinThetaD, cosThetaD := math.Sin(theU.At(i, j)), math.Cos(theU.At(i, j))
				dlambda := lamU.At(i, j) - lambdaA
				ur, _ := sl.Rotate(sinThetaA, cosThetaA, sinThetaD, cosThetaD, dlambda, ud, vd)
				rud.Set(i, j, ur-alpha*gradLam0.At(i, j))
			}
		}
		for j := 0; j <= g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				lambdaA, thetaA := g.LonPhi[i], g.LatV[j]
				ud := sl.Interp2D(ru0, o.MeshU, true, lamV.At(i, j), theV.At(i, j))
				vd := sl.Interp2D(rv0, o.MeshV, true, lamV.At(i, j), theV.At(i, j))
				sinThetaA, cosThetaA := math.Sin(thetaA), math.Cos(thetaA)
				sinThetaD, cosThetaD := math.Sin(theV.At(i, j)), math.Cos(theV.At(i, j))
				dlambda := lamV.At(i, j) - lambdaA
				_, vr := sl.Rotate(sinThetaA, cosThetaA, sinThetaD, cosThetaD, dlambda, ud, vd)
				rvd.Set(i, j, vr-alpha*gradThe0.At(i, j))
			}
		}

		if o.Cfg.Ischeme == config.SchemeSL {
			rphid = grid.NewField(g.Nx, g.Ny)
			for j := 0; j < g.Ny; j++ {
				for i := 0; i < g.Nx; i++ {
					rphid.Set(i, j, sl.Interp2D(rphi0, o.MeshPhi, false, lamPhi.At(i, j), thePhi.At(i, j)))
				}
			}
		} else {
			rphid, err = o.transportPhiConservative(rphi0, lamPhi, thePhi)
			if err != nil {
				return
			}
		}
	}

	// 4. inner loop: Helmholtz solve and back-substitution
	inner := o.Cfg.InnerIters
	if inner <= 0 {
		inner = 2
	}
	mode := mg.ModeFromString(o.Cfg.Relax)

	phiIter := phi0
	uIter, vIter := u0, v0
	for in := 0; in < inner; in++ {
		ubar, vbar := o.ubarVbar(uIter, vIter)
		fu, fv := o.Cor.Apply(g, o.TwoOmega, phiIter, uIter, vIter, ubar, vbar)

		ru := grid.NewField(g.Nx, g.Ny)
		rv := grid.NewField(g.Nx, g.Ny+1)
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				ru.Set(i, j, rud.At(i, j)+alpha*fu.At(i, j))
			}
		}
		for j := 0; j <= g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				rv.Set(i, j, rvd.At(i, j)-alpha*fv.At(i, j))
			}
		}

		divR := Divergence(g, ru, rv)
		nu := 1.0 / (alpha * alpha * o.PhiRef)
		rhs := grid.NewField(g.Nx, g.Ny)
		for k := range rhs.Data {
			rhs.Data[k] = (rphid.Data[k] - o.PhiRef*alpha*divR.Data[k]) * (-nu)
		}

		o.Levels[0].Phi.Copy(phiIter)
		o.Levels[0].RHS.Copy(rhs)
		mg.Solve(o.Levels, nu, mode)
		phiIter = grid.NewField(g.Nx, g.Ny)
		phiIter.Copy(o.Levels[0].Phi)

		gradLam := GradLambda(g, AddScaled(phiIter, 1, o.Phis))
		gradThe := GradTheta(g, AddScaled(phiIter, 1, o.Phis))
		uIter = grid.NewField(g.Nx, g.Ny)
		vIter = grid.NewField(g.Nx, g.Ny+1)
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				uIter.Set(i, j, ru.At(i, j)-alpha*gradLam.At(i, j))
			}
		}
		for j := 0; j <= g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				vIter.Set(i, j, rv.At(i, j)-alpha*gradThe.At(i, j))
			}
		}
	}

	o.Phi, o.U, o.V = phiIter, uIter, vIter
	o.StepCount++

	if o.IC == 8 {
		maxDiff := 0.0
		for k := range o.U.Data {
			d := math.Abs(o.U.Data[k] - o.UInit.Data[k])
			if d > maxDiff {
				maxDiff = d
			}
		}
		if maxDiff > 10.0 {
			o.Unstable = true
		}
	}
	return
}

// transportPhiConservative advances phi with the SLICE (or hybrid)
// scheme: an east-west then north-south sweep of conservative remap,
// followed by the polar-cap SL/SLICE mass-conserving merge for the
// hybrid scheme (spec.md §4.5).
func (o *Model) transportPhiConservative(rphi0, lamPhi, thePhi *grid.Field) (out *grid.Field, err error) {
	g := o.Grid

	depLon := grid.NewField(g.Nx, g.Ny)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			depLon.Set(i, j, lamPhi.At(i, j)-g.LonPhi[i])
		}
	}
	mid, err := slice.EastWestSweep(rphi0, depLon, g.Dx)
	if err != nil {
		return
	}

	depPos := make([][]float64, g.Nx)
	for i := 0; i < g.Nx; i++ {
		col := make([]float64, g.Ny+1)
		for j := 0; j <= g.Ny; j++ {
			jj := j
			if jj >= g.Ny {
				jj = g.Ny - 1
			}
			col[j] = (thePhi.At(i, jj) - (-math.Pi / 2)) / g.Dy
		}
		depPos[i] = col
	}
	sliceOut, err := slice.NorthSouthSweep(mid, depPos, g.Dy)
	if err != nil {
		return
	}

	if o.Cfg.Ischeme != config.SchemeHybrid {
		out = sliceOut
		return
	}

	slOut := grid.NewField(g.Nx, g.Ny)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			slOut.Set(i, j, sl.Interp2D(rphi0, o.MeshPhi, false, lamPhi.At(i, j), thePhi.At(i, j)))
		}
	}
	capRows := 3
	out = slice.Merge(sliceOut, slOut, g.Area, capRows)
	return
}

// Run advances the model by n steps, stopping early (without error) if
// the ic==8 instability check trips.
func (o *Model) Run(n int) error {
	for s := 0; s < n; s++ {
		if err := o.Step(); err != nil {
			return chk.Err("sim: step %d failed:\n%v", o.StepCount, err)
		}
		if o.Unstable {
			break
		}
	}
	return nil
}
