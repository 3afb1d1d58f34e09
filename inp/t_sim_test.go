// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read .sim file")

	sim, err := ReadSim("data/diffusion01.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	if !sim.Frozen() {
		tst.Errorf("simulation must be frozen after ReadSim")
		return
	}
	chk.StrAssert(sim.Key, "diffusion01")
	chk.StrAssert(sim.Equation.Family, EqnDiffusion)
	chk.Float64(tst, "mu", 1e-15, sim.Equation.Mu, 1)
	chk.Float64(tst, "b", 1e-15, sim.Equation.B, 1)
	chk.IntAssert(sim.Msh.Nverts(), 11)
	chk.IntAssert(len(sim.Equation.Bcs), 2)
	chk.IntAssert(sim.Solver.Nip, 3)
	chk.StrAssert(sim.Solver.LinSol, "thomas")
	chk.Float64(tst, "ffunc(0.3)", 1e-15, sim.Ffunc(0.3), 0) // defaults to zero source
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. builder validation")

	msh, err := NewLineMesh(0, 1, 2)
	if err != nil {
		tst.Errorf("NewLineMesh failed:\n%v", err)
		return
	}

	// complete definition freezes fine
	sim, err := NewSim("builder01").
		SetMesh(msh).
		SolveTimeDependentDiffusion(1, 1, 1).
		SetBcs(1, 15).
		SetIniVals(0).
		SetTimeControl(0.01, 350).
		Freeze()
	if err != nil {
		tst.Errorf("Freeze failed:\n%v", err)
		return
	}
	chk.IntAssert(sim.Solver.Nsteps, 350)
	chk.Float64(tst, "theta default", 1e-15, sim.Solver.Theta, 0)
	chk.Float64(tst, "fps default", 1e-15, sim.Viewer.Fps, 60)

	// missing dt must fail fast
	_, err = NewSim("builder02").
		SetMesh(msh).
		SolveTimeDependentDiffusion(1, 1, 1).
		SetBcs(0, 1).
		Freeze()
	if err == nil {
		tst.Errorf("missing dt must fail")
		return
	}

	// wrong number of initial values must fail fast
	_, err = NewSim("builder03").
		SetMesh(msh).
		SolveTimeDependentDiffusion(1, 1, 1).
		SetBcs(0, 1).
		SetIniVals(1, 2, 3).
		SetTimeControl(0.01, 10).
		Freeze()
	if err == nil {
		tst.Errorf("wrong initial values length must fail")
		return
	}

	// boundary condition at an interior vertex must fail with InconsistentBoundaryError
	_, err = NewSim("builder04").
		SetMesh(msh).
		SolveDiffusion(1, 0).
		AddBc(1, 3).
		Freeze()
	var ber *InconsistentBoundaryError
	if !errors.As(err, &ber) {
		tst.Errorf("interior-vertex bc must fail with InconsistentBoundaryError (got %v)", err)
		return
	}
	chk.IntAssert(ber.VertId, 1)

	// unknown family must fail
	sb := NewSim("builder05").SetMesh(msh)
	sb.sim.Equation.Family = "heat"
	if _, err = sb.Freeze(); err == nil {
		tst.Errorf("unknown family must fail")
	}
}
