// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffusion

import (
	"github.com/cpmech/gosl/chk"
)

// M1 implements the constant-coefficient model for diffusion problems
//
//   ρ ∂u/∂t + div w = s      with      w = -μ ∂u/∂x + b u
//
// Degree-1, 1D scope: μ and b do not depend on u. The u argument of Kval is
// kept so nonlinear coefficient models can share the interface
type M1 struct {
	Mu  float64 // diffusion coefficient μ
	B   float64 // advection velocity b
	Rho float64 // density ρ; zero for steady problems
}

// add model to factory
func init() {
	allocators["m1"] = func() Model { return new(M1) }
}

// Init initialises this structure
func (o *M1) Init(prms map[string]float64) error {
	o.Mu = prms["mu"]
	o.B = prms["b"]
	o.Rho = prms["rho"]
	if o.Mu <= 0 {
		return chk.Err("M1 model: 'mu' must be positive in database of material parameters (got %g)", o.Mu)
	}
	if o.Rho < 0 {
		return chk.Err("M1 model: 'rho' cannot be negative (got %g)", o.Rho)
	}
	return nil
}

// Kval computes k(u)
func (o *M1) Kval(u float64) float64 { return o.Mu }

// Bval returns the advection velocity
func (o *M1) Bval() float64 { return o.B }

// RhoVal returns the density
func (o *M1) RhoVal() float64 { return o.Rho }
