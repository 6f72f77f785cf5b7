// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ic

import (
	"math"

	"github.com/atmoswe/swsphere/grid"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/ode"
)

func init() {
	allocators[7] = func() Provider { return new(TC7) }
}

// TC7 is the Galewsky barotropically unstable mid-latitude jet (spec.md
// §6, id 7) plus a localised geopotential pulse of amplitude 120 m:
//   h'(lambda,theta) = 120 * cos(theta) * exp(-(lambda'/alpha)^2) * exp(-((pi/4-theta)/beta)^2)
// with alpha=1/3, beta=1/15 and lambda' the longitude measured from the
// pulse centre LambdaC. The jet's geopotential is obtained by
// numerically integrating the geostrophic/gradient-wind balance
//   dphi/dtheta = -R*u*(2*Omega*sin(theta) + u*tan(theta)/R)
// northward from the south pole, using an explicit Runge-Kutta ODE
// solver the way mdl/retention.Update integrates its implicit balance
// with gosl/ode.
type TC7 struct {
	UMax     float64
	Theta0   float64
	Theta1   float64
	R        float64
	PhiPole  float64 // phi at theta=-pi/2, integration constant
	TwoOmega float64
	PulseAmp float64 // m (height, not geopotential)
	Alpha    float64
	Beta     float64
	LambdaC  float64
	G        float64
}

func (o *TC7) GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "umax", V: 80.0},
		&fun.Prm{N: "theta0", V: math.Pi / 7.0},
		&fun.Prm{N: "theta1", V: math.Pi/2.0 - math.Pi/7.0},
		&fun.Prm{N: "r", V: 6.3712e6},
		&fun.Prm{N: "phipole", V: 9.80665 * 10158.0},
		&fun.Prm{N: "twoomega", V: 1.45842e-4},
		&fun.Prm{N: "pulseamp", V: 120.0},
		&fun.Prm{N: "alpha", V: 1.0 / 3.0},
		&fun.Prm{N: "beta", V: 1.0 / 15.0},
		&fun.Prm{N: "lambdac", V: math.Pi},
		&fun.Prm{N: "g", V: 9.80665},
	}
}

func (o *TC7) Init(prms fun.Prms) (err error) {
	o.UMax = prms.Find("umax").V
	o.Theta0 = prms.Find("theta0").V
	o.Theta1 = prms.Find("theta1").V
	o.R = prms.Find("r").V
	o.PhiPole = prms.Find("phipole").V
	o.TwoOmega = prms.Find("twoomega").V
	o.PulseAmp = prms.Find("pulseamp").V
	o.Alpha = prms.Find("alpha").V
	o.Beta = prms.Find("beta").V
	o.LambdaC = prms.Find("lambdac").V
	o.G = prms.Find("g").V
	return
}

// jetU evaluates the unperturbed Galewsky jet zonal wind at latitude theta.
func (o *TC7) jetU(theta float64) float64 {
	if theta <= o.Theta0 || theta >= o.Theta1 {
		return 0
	}
	en := math.Exp(-4.0 / ((o.Theta1 - o.Theta0) * (o.Theta1 - o.Theta0)))
	return (o.UMax / en) * math.Exp(1.0/((theta-o.Theta0)*(theta-o.Theta1)))
}

func (o *TC7) Build(g *grid.Grid) (st *State, err error) {
	st = &State{
		Phi:      grid.NewField(g.Nx, g.Ny),
		Phis:     grid.NewField(g.Nx, g.Ny),
		U:        grid.NewField(g.Nx, g.Ny),
		V:        grid.NewField(g.Nx, g.Ny+1),
		PhiRef:   o.PhiPole,
		TwoOmega: o.TwoOmega,
	}
	bigOmega := o.TwoOmega / 2.0

	fcn := func(f []float64, dx, x float64, y []float64) (e error) {
		u := o.jetU(x)
		f[0] = -o.R * u * (2.0*bigOmega*math.Sin(x) + u*math.Tan(x)/o.R)
		return nil
	}

	var odesol ode.Solver
	odesol.Init("Dopri5", 1, fcn, nil, nil, nil)
	odesol.SetTol(1e-12, 1e-10)
	odesol.Distr = false

	phi := make([]float64, g.Ny)
	y := []float64{o.PhiPole}
	xPrev := -math.Pi / 2.0
	for j := 0; j < g.Ny; j++ {
		xNext := g.LatPhi[j]
		err = odesol.Solve(y, xPrev, xNext, xNext-xPrev, false)
		if err != nil {
			return
		}
		phi[j] = y[0]
		xPrev = xNext
	}

	for j := 0; j < g.Ny; j++ {
		theta := g.LatPhi[j]
		uj := o.jetU(theta)
		pulseLat := math.Exp(-((math.Pi/4.0 - theta) / o.Beta) * ((math.Pi/4.0 - theta) / o.Beta))
		for i := 0; i < g.Nx; i++ {
			lambda := wrapPi(g.LonPhi[i] - o.LambdaC)
			hpert := o.PulseAmp * math.Cos(theta) * math.Exp(-(lambda/o.Alpha)*(lambda/o.Alpha)) * pulseLat
			st.Phi.Set(i, j, phi[j]+o.G*hpert)
			st.U.Set(i, j, uj)
		}
	}
	return
}

// wrapPi wraps an angle to (-pi, pi].
func wrapPi(x float64) float64 {
	for x > math.Pi {
		x -= 2 * math.Pi
	}
	for x <= -math.Pi {
		x += 2 * math.Pi
	}
	return x
}
