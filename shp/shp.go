// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements degree-1 (lin2) shape functions over the parametric
// domain [-1,1] and the Gauss-Legendre quadrature used to integrate them
package shp

import (
	"github.com/cpmech/gosl/chk"
)

// Shape holds the lin2 shape structure and a scratchpad with the values
// computed at one integration point
//
//   S0(r) = (1-r)/2      S1(r) = (1+r)/2      r ∈ [-1,1]
//
type Shape struct {

	// constants
	Type   string // "lin2"
	Nverts int    // 2

	// scratchpad: computed by CalcAtIp
	S [2]float64 // interpolation functions at ip
	G [2]float64 // gradients dS/dx at ip (real coordinates)
	J float64    // Jacobian of the mapping [-1,1] -> [xa,xb]
}

// NewLin2 returns a new lin2 shape structure
func NewLin2() *Shape {
	return &Shape{Type: "lin2", Nverts: 2}
}

// CalcAtIp computes interpolation functions, gradients and the Jacobian at
// the given integration point. x holds the two nodal coordinates, ascending
func (o *Shape) CalcAtIp(x []float64, ip Ipoint) error {
	h := x[1] - x[0]
	if h <= 0 {
		return chk.Err("lin2 cell has non-positive length %g", h)
	}
	o.J = h / 2.0
	o.S[0] = (1.0 - ip.R) / 2.0
	o.S[1] = (1.0 + ip.R) / 2.0
	o.G[0] = -1.0 / h
	o.G[1] = 1.0 / h
	return nil
}

// IpRealCoord maps an integration point to the real coordinate inside [xa,xb]
func (o *Shape) IpRealCoord(x []float64, ip Ipoint) float64 {
	return x[0]*(1.0-ip.R)/2.0 + x[1]*(1.0+ip.R)/2.0
}
