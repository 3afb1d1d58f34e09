// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_advdiff01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("advdiff01. boundary values and small-b limit")

	sol := &SteadyAdvDiff{Mu: 1, B: 2, Xa: 0, Xb: 1, Ua: 0, Ub: 1}
	chk.Float64(tst, "u(xa)", 1e-15, sol.U(0), 0)
	chk.Float64(tst, "u(xb)", 1e-15, sol.U(1), 1)

	// interior values must stay between the boundary values
	for _, x := range utl.LinSpace(0, 1, 11) {
		u := sol.U(x)
		if u < 0 || u > 1 {
			tst.Errorf("u(%g)=%g escapes the boundary values\n", x, u)
			return
		}
	}

	// b -> 0 approaches the linear profile
	eps := &SteadyAdvDiff{Mu: 1, B: 1e-8, Xa: 0, Xb: 1, Ua: 0, Ub: 1}
	lin := &SteadyAdvDiff{Mu: 1, B: 0, Xa: 0, Xb: 1, Ua: 0, Ub: 1}
	for _, x := range utl.LinSpace(0, 1, 5) {
		chk.Float64(tst, io.Sf("u(%g) small-b", x), 1e-7, eps.U(x), lin.U(x))
	}
}

func Test_hydrostatic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hydrostatic01. linear pressure profile")

	sol := &Hydrostatic{Rho: 1, F: 10, Xb: 1, Hp: 1}
	pp := sol.CalcAll([]float64{0, 1.0 / 3.0, 2.0 / 3.0, 1})
	chk.Array(tst, "p", 1e-13, pp, []float64{-9, -17.0 / 3.0, -7.0 / 3.0, 1})
}
