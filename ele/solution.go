// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/la"
)

// Solution holds the solution variables shared between elements and solvers
type Solution struct {
	T      float64   // current simulated time
	Dt     float64   // current time increment
	Steady bool      // time-independent run
	Y      la.Vector // [ny] primary variables; one scalar per vertex
}

// NewSolution returns a new Solution with ny equations
func NewSolution(ny int, steady bool) *Solution {
	return &Solution{Steady: steady, Y: la.NewVector(ny)}
}
