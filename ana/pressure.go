// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// Hydrostatic implements the solution of the static pressure equation with a
// constant forcing term
//
//   (1/ρ) p′ = f      p(xb) = hp
//
// which integrates to the linear profile p(x) = hp + ρ f (x - xb)
type Hydrostatic struct {
	Rho float64 // intrinsic density
	F   float64 // constant forcing (gravity-like) term
	Xb  float64 // rightmost coordinate, where the constant is pinned
	Hp  float64 // hydrostatic pressure constant
}

// P returns the pressure at x
func (o *Hydrostatic) P(x float64) float64 {
	return o.Hp + o.Rho*o.F*(x-o.Xb)
}

// CalcAll returns the pressure at all given coordinates
func (o *Hydrostatic) CalcAll(xx []float64) (pp []float64) {
	pp = make([]float64, len(xx))
	for i, x := range xx {
		pp[i] = o.P(x)
	}
	return
}
