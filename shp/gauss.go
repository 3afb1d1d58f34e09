// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ipoint holds one integration point of the parametric domain [-1,1]
type Ipoint struct {
	R float64 // coordinate
	W float64 // weight
}

// GaussLegendre computes the n-point Gauss-Legendre rule over [-1,1]. Nodes
// are the roots of the Legendre polynomial Pn found by Newton iteration from
// the Chebyshev initial guess; the rule integrates polynomials up to degree
// 2n-1 exactly. Results are deterministic for a given n
func GaussLegendre(n int) ([]Ipoint, error) {
	if n < 1 {
		return nil, chk.Err("Gauss-Legendre rule needs at least one point (got n=%d)", n)
	}
	ips := make([]Ipoint, n)
	for i := 0; i < n; i++ {

		// initial guess and Newton iterations on Pn
		x := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		var dp float64
		for it := 0; it < 100; it++ {
			p, d := legendre(n, x)
			dp = d
			dx := p / d
			x -= dx
			if math.Abs(dx) < 1e-15 {
				break
			}
		}
		ips[i] = Ipoint{R: x, W: 2.0 / ((1.0 - x*x) * dp * dp)}
	}
	return ips, nil
}

// legendre evaluates Pn and its derivative at x by the recurrence
func legendre(n int, x float64) (p, dp float64) {
	p0, p1 := 1.0, x
	if n == 0 {
		return 1, 0
	}
	for k := 2; k <= n; k++ {
		p0, p1 = p1, ((2.0*float64(k)-1.0)*x*p1-(float64(k)-1.0)*p0)/float64(k)
	}
	p = p1
	dp = float64(n) * (x*p1 - p0) / (x*x - 1.0)
	return
}
