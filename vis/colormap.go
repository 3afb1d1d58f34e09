// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vis implements the real-time viewer: a GLFW window displaying the
// latest solution published on the solver bridge
package vis

import (
	"math"
)

// Gradient maps t in [0,1] to a blue-to-red color. Values outside [0,1] are
// clamped
func Gradient(t float64) (r, g, b float32) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return float32(t), 0, float32(1 - t)
}

// FieldColors returns one RGB triple per value, coloring the magnitude of the
// field: the smallest |u| maps to blue and the largest to red. A constant
// field comes out all blue
func FieldColors(uu []float64) []float32 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, u := range uu {
		a := math.Abs(u)
		if a < lo {
			lo = a
		}
		if a > hi {
			hi = a
		}
	}
	colors := make([]float32, 0, 3*len(uu))
	den := hi - lo
	for _, u := range uu {
		t := 0.0
		if den > 1e-14 {
			t = (math.Abs(u) - lo) / den
		}
		r, g, b := Gradient(t)
		colors = append(colors, r, g, b)
	}
	return colors
}
