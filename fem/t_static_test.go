// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Arthur-phys/Dzahui/ana"
	"github.com/Arthur-phys/Dzahui/inp"
	"github.com/cpmech/gosl/chk"
)

func Test_static01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static01. steady advection-diffusion vs closed form")

	msh, err := inp.NewLineMesh(0, 1, 20)
	if err != nil {
		tst.Errorf("cannot create mesh: %v\n", err)
		return
	}
	sim, err := inp.NewSim("static01").SetMesh(msh).SolveDiffusion(1, 1).SetBcs(0, 1).Freeze()
	if err != nil {
		tst.Errorf("cannot freeze simulation: %v\n", err)
		return
	}

	sol, err := Solve(context.Background(), sim, nil)
	if err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return
	}
	if sol.State != StateConverged {
		tst.Errorf("state should be converged (got %v)\n", sol.State)
		return
	}

	ref := &ana.SteadyAdvDiff{Mu: 1, B: 1, Xa: 0, Xb: 1, Ua: 0, Ub: 1}
	chk.Array(tst, "u", 1e-3, sol.Dom.Sol.Y, ref.CalcAll(msh.Coords()))
}

func Test_static06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static06. refining the mesh shrinks the error")

	ref := &ana.SteadyAdvDiff{Mu: 0.2, B: 1, Xa: 0, Xb: 1, Ua: 0, Ub: 1}
	maxerr := func(ndiv int) float64 {
		msh, err := inp.NewLineMesh(0, 1, ndiv)
		if err != nil {
			tst.Errorf("cannot create mesh: %v\n", err)
			tst.FailNow()
		}
		sim, err := inp.NewSim("static06").SetMesh(msh).SolveDiffusion(0.2, 1).SetBcs(0, 1).Freeze()
		if err != nil {
			tst.Errorf("cannot freeze simulation: %v\n", err)
			tst.FailNow()
		}
		sol, err := Solve(context.Background(), sim, nil)
		if err != nil {
			tst.Errorf("solve failed: %v\n", err)
			tst.FailNow()
		}
		e := 0.0
		for i, x := range msh.Coords() {
			if d := math.Abs(sol.Dom.Sol.Y[i] - ref.U(x)); d > e {
				e = d
			}
		}
		return e
	}

	coarse := maxerr(10)
	fine := maxerr(40)
	if fine >= coarse {
		tst.Errorf("error should shrink with resolution (coarse %g, fine %g)\n", coarse, fine)
	}
}

func Test_static02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static02. prescribed values are honoured exactly")

	msh, err := inp.NewLineMesh(0, 2, 8)
	if err != nil {
		tst.Errorf("cannot create mesh: %v\n", err)
		return
	}
	// both linear solvers must pin the boundary vertices to the given values
	for _, name := range []string{"thomas", "dense"} {
		sim, err := inp.NewSim("static02").SetMesh(msh).SolveDiffusion(3, -1).
			SetBcs(-4.5, 12.25).SetLinSol(name).Freeze()
		if err != nil {
			tst.Errorf("cannot freeze simulation: %v\n", err)
			return
		}
		sol, err := Solve(context.Background(), sim, nil)
		if err != nil {
			tst.Errorf("solve with %q failed: %v\n", name, err)
			return
		}
		u := sol.Dom.Sol.Y
		chk.Float64(tst, "u[left] "+name, 1e-14, u[0], -4.5)
		chk.Float64(tst, "u[right] "+name, 1e-14, u[msh.Nverts()-1], 12.25)
	}
}

func Test_static03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static03. hydrostatic pressure from a .sim file")

	sim, err := inp.ReadSim("data/pressure01.sim")
	if err != nil {
		tst.Errorf("cannot read simulation: %v\n", err)
		return
	}

	sol, err := Solve(context.Background(), sim, nil)
	if err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return
	}

	// linear profile pinned at the right end; exact for lin2 cells
	ref := &ana.Hydrostatic{Rho: 1, F: 10, Xb: 1, Hp: 1}
	chk.Array(tst, "p", 1e-12, sol.Dom.Sol.Y, ref.CalcAll(sim.Msh.Coords()))
}

func Test_static04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static04. unconstrained system is reported singular")

	msh, err := inp.NewLineMesh(0, 1, 2)
	if err != nil {
		tst.Errorf("cannot create mesh: %v\n", err)
		return
	}

	// no prescribed values: the constant mode makes the system singular
	sim, err := inp.NewSim("static04").SetMesh(msh).SolveDiffusion(1, 0).Freeze()
	if err != nil {
		tst.Errorf("cannot freeze simulation: %v\n", err)
		return
	}

	sol, err := NewSolver(sim, nil)
	if err != nil {
		tst.Errorf("cannot create solver: %v\n", err)
		return
	}
	err = sol.Run(context.Background())
	var serr *SingularSystemError
	if !errors.As(err, &serr) {
		tst.Errorf("error should be *SingularSystemError (got %v)\n", err)
		return
	}
	if sol.State != StateFailed {
		tst.Errorf("state should be failed (got %v)\n", sol.State)
	}
}

func Test_static05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static05. thomas and dense solvers agree")

	msh, err := inp.NewLineMesh(0, 1, 15)
	if err != nil {
		tst.Errorf("cannot create mesh: %v\n", err)
		return
	}
	run := func(name string) []float64 {
		sim, err := inp.NewSim("static05-"+name).SetMesh(msh).SolveDiffusion(0.5, 2).
			SetBcs(1, -1).SetLinSol(name).Freeze()
		if err != nil {
			tst.Errorf("cannot freeze simulation: %v\n", err)
			tst.FailNow()
		}
		sol, err := Solve(context.Background(), sim, nil)
		if err != nil {
			tst.Errorf("solve with %q failed: %v\n", name, err)
			tst.FailNow()
		}
		return sol.Dom.Sol.Y
	}
	chk.Array(tst, "thomas vs dense", 1e-10, run("thomas"), run("dense"))
}
