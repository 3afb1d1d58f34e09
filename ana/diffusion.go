// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions used to verify the numerical
// results
package ana

import (
	"math"
)

// SteadyAdvDiff implements the solution of the steady advection-diffusion
// equation with constant coefficients and no source
//
//   -μ u″ + b u′ = 0      u(xa)=ua      u(xb)=ub
//
// For b ≠ 0 the solution is the exponential boundary layer
//
//   u(x) = ua + (ub-ua) (exp(b (x-xa)/μ) - 1) / (exp(b L/μ) - 1)
//
// and for b = 0 it degenerates into the straight line between the boundary
// values
type SteadyAdvDiff struct {
	Mu     float64 // diffusion coefficient
	B      float64 // advection velocity
	Xa, Xb float64 // domain extremities
	Ua, Ub float64 // prescribed boundary values
}

// U returns the field value at x
func (o *SteadyAdvDiff) U(x float64) float64 {
	L := o.Xb - o.Xa
	if o.B == 0 {
		return o.Ua + (o.Ub-o.Ua)*(x-o.Xa)/L
	}
	p := o.B / o.Mu
	return o.Ua + (o.Ub-o.Ua)*(math.Exp(p*(x-o.Xa))-1)/(math.Exp(p*L)-1)
}

// CalcAll returns the field at all given coordinates
func (o *SteadyAdvDiff) CalcAll(xx []float64) (uu []float64) {
	uu = make([]float64, len(xx))
	for i, x := range xx {
		uu[i] = o.U(x)
	}
	return
}
