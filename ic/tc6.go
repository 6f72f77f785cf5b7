// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ic

import (
	"math"

	"github.com/atmoswe/swsphere/grid"
	"github.com/cpmech/gosl/fun"
)

func init() {
	allocators[6] = func() Provider { return new(TC6) }
}

// TC6 is the Williamson-6 Rossby-Haurwitz wave-4 test case (spec.md §6,
// id 6): a steady wavenumber-R Rossby-Haurwitz mode with R=4.
type TC6 struct {
	Omega    float64 // wave angular velocity, s^-1
	K        float64 // wave amplitude, s^-1
	R        float64 // wavenumber (4)
	Rad      float64 // planet radius
	PhiRef   float64 // gh0
	TwoOmega float64
}

func (o *TC6) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "omega", V: 7.848e-6},
		&fun.Prm{N: "k", V: 7.848e-6},
		&fun.Prm{N: "wavenumber", V: 4.0},
		&fun.Prm{N: "r", V: 6.3712e6},
		&fun.Prm{N: "phiref", V: 9.80665 * 8000.0},
		&fun.Prm{N: "twoomega", V: 1.45842e-4},
	}
}

func (o *TC6) Init(prms fun.Prms) (err error) {
	o.Omega = prms.Find("omega").V
	o.K = prms.Find("k").V
	o.R = prms.Find("wavenumber").V
	o.Rad = prms.Find("r").V
	o.PhiRef = prms.Find("phiref").V
	o.TwoOmega = prms.Find("twoomega").V
	return
}

func (o *TC6) Build(g *grid.Grid) (st *State, err error) {
	st = &State{
		Phi:      grid.NewField(g.Nx, g.Ny),
		Phis:     grid.NewField(g.Nx, g.Ny),
		U:        grid.NewField(g.Nx, g.Ny),
		V:        grid.NewField(g.Nx, g.Ny+1),
		PhiRef:   o.PhiRef,
		TwoOmega: o.TwoOmega,
	}
	bigOmega := o.TwoOmega / 2.0
	R := o.R
	a := o.Rad

	for j := 0; j < g.Ny; j++ {
		theta := g.LatPhi[j]
		ct, st_ := math.Cos(theta), math.Sin(theta)
		ctR := math.Pow(ct, R)
		ctRm1 := math.Pow(ct, R-1)
		ct2R := math.Pow(ct, 2*R)

		Acoef := o.Omega/2.0*(2.0*bigOmega+o.Omega)*ct*ct +
			0.25*o.K*o.K*ct2R*((R+1)*ct*ct+(2*R*R-R-2)-2*R*R/(ct*ct+1e-300))
		Bcoef := 2.0 * (bigOmega + o.Omega) * o.K / ((R + 1) * (R + 2)) * ctR * (R*R + 2*R + 2 - (R+1)*(R+1)*ct*ct)
		Ccoef := 0.25 * o.K * o.K * ct2R * ((R+1)*ct*ct - (R + 2))

		for i := 0; i < g.Nx; i++ {
			lambda := g.LonPhi[i]
			u := a*o.Omega*ct + a*o.K*ctRm1*(R*st_*st_-ct*ct)*math.Cos(R*lambda)
			phi := o.PhiRef + a*a*(Acoef+Bcoef*math.Cos(R*lambda)+Ccoef*math.Cos(2*R*lambda))
			st.U.Set(i, j, u)
			st.Phi.Set(i, j, phi)
		}
	}

	// v lives on the (Nx, Ny+1) mesh; evaluate directly at v-point
	// latitudes for interior rows (poles are filled by the polar
	// reconstruction once the model starts, spec.md §4.2).
	for j := 1; j < g.Ny; j++ {
		theta := g.LatV[j]
		ct, st_ := math.Cos(theta), math.Sin(theta)
		ctRm1 := math.Pow(ct, R-1)
		for i := 0; i < g.Nx; i++ {
			lambda := g.LonU[i]
			v := -a * o.K * R * ctRm1 * st_ * math.Sin(R*lambda)
			st.V.Set(i, j, v)
		}
	}
	return
}
