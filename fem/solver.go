// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem builds the global linear system from the elements, applies the
// essential boundary conditions and runs the solve loop, either a single
// static solve or a θ-scheme time integration
package fem

import (
	"context"
	"math"

	"github.com/Arthur-phys/Dzahui/inp"
	"github.com/Arthur-phys/Dzahui/logger"
	"github.com/cpmech/gosl/la"
)

// State labels the progress of a Solver
type State int

const (
	StateInitialized State = iota // domain built, no step taken yet
	StateStepping                 // inside the time loop
	StateConverged                // field change fell below tolerance, or static solve done
	StateExhausted                // all steps ran without meeting the tolerance
	StateFailed                   // solve failed; see the returned error
)

// String returns a label for the state
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateStepping:
		return "stepping"
	case StateConverged:
		return "converged"
	case StateExhausted:
		return "exhausted"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// fields whose magnitude passes divLimit are treated as divergence even when
// still finite
const divLimit = 1e12

// Solver runs the solution of one frozen simulation. Steady equations are
// solved once; time-dependent ones are integrated with the θ-scheme
//
//   (M + θ Δt K) u⁺ = (M - (1-θ) Δt K) u + Δt F
//
// After every accepted step the solution is published on the bridge, so a
// concurrent consumer always sees the latest complete field
type Solver struct {

	// input
	Dom    *Domain // the domain
	LinSol LinSol  // linear solver
	Bridge *Bridge // solution bus; may be nil

	// status
	State State // current state
	Step  int   // last completed step

	// workspace
	kk, mm, aa *la.Matrix // dense stiffness, mass and system matrices
	bb, du     la.Vector  // right-hand side and field increment
}

// NewSolver builds the domain of a frozen simulation and allocates the linear
// solver it requests
func NewSolver(sim *inp.Simulation, bridge *Bridge) (*Solver, error) {
	dom, err := NewDomain(sim)
	if err != nil {
		return nil, err
	}
	lis, err := NewLinSol(sim.Solver.LinSol)
	if err != nil {
		return nil, err
	}
	return &Solver{Dom: dom, LinSol: lis, Bridge: bridge, State: StateInitialized}, nil
}

// Run solves the simulation. It returns the first error encountered;
// cancelling the context stops the time loop between steps
func (o *Solver) Run(ctx context.Context) error {
	err := o.run(ctx)
	if err != nil {
		o.State = StateFailed
	}
	return err
}

func (o *Solver) run(ctx context.Context) error {
	log := logger.Logger()
	sim := o.Dom.Sim
	if sim.Equation.Family == inp.EqnNone {
		o.publish(0, 0, true)
		o.State = StateConverged
		return nil
	}

	// assemble; the problem is linear on a fixed mesh, so once is enough
	if err := o.Dom.AssembleKbFb(); err != nil {
		return err
	}
	o.kk = o.Dom.Kb.ToDense()
	o.bb = la.NewVector(o.Dom.Ny)
	o.du = la.NewVector(o.Dom.Ny)

	// static solve
	if sim.Equation.Steady {
		log.Debug().Str("sim", sim.Key).Msg("static solve")
		o.State = StateStepping
		o.bb.Apply(1, o.Dom.Fb)
		o.Dom.EssBcs.Apply(o.kk, o.bb)
		if err := o.LinSol.Solve(o.Dom.Sol.Y, o.kk, o.bb); err != nil {
			return err
		}
		if err := o.checkField(1, 0); err != nil {
			return err
		}
		o.Step = 1
		o.publish(1, 0, true)
		o.State = StateConverged
		return nil
	}

	// time loop
	if err := o.Dom.AssembleMb(); err != nil {
		return err
	}
	o.mm = o.Dom.Mb.ToDense()
	o.aa = la.NewMatrix(o.Dom.Ny, o.Dom.Ny)
	dt := sim.Solver.Dt
	theta := sim.Solver.Theta
	nsteps := sim.Solver.Nsteps
	log.Debug().Str("sim", sim.Key).Float64("dt", dt).Float64("theta", theta).Int("nsteps", nsteps).Msg("transient solve")

	// lhs = M + θ Δt K       rhs matrix = M - (1-θ) Δt K
	lhs := la.NewMatrix(o.Dom.Ny, o.Dom.Ny)
	rhm := la.NewMatrix(o.Dom.Ny, o.Dom.Ny)
	la.MatAdd(lhs, 1, o.mm, theta*dt, o.kk)
	la.MatAdd(rhm, 1, o.mm, -(1-theta)*dt, o.kk)

	o.State = StateStepping
	o.publish(0, 0, false)
	u := o.Dom.Sol.Y
	for step := 1; step <= nsteps; step++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		t := float64(step) * dt

		// b = rhm·u + Δt F, then eliminate the prescribed equations
		la.MatVecMul(o.bb, 1, rhm, u)
		la.VecAdd(o.bb, 1, o.bb, dt, o.Dom.Fb)
		lhs.CopyInto(o.aa, 1)
		o.Dom.EssBcs.Apply(o.aa, o.bb)

		o.du.Apply(1, u) // previous field, for the convergence check
		if err := o.LinSol.Solve(u, o.aa, o.bb); err != nil {
			return err
		}
		if err := o.checkField(step, t); err != nil {
			return err
		}

		o.Step = step
		o.Dom.Sol.T = t
		last := step == nsteps
		converged := false
		if tol := sim.Solver.Tol; tol > 0 {
			maxdu := 0.0
			for i := range u {
				if d := math.Abs(u[i] - o.du[i]); d > maxdu {
					maxdu = d
				}
			}
			converged = maxdu <= tol
		}
		o.publish(step, t, last || converged)
		if converged {
			log.Debug().Int("step", step).Float64("t", t).Msg("converged")
			o.State = StateConverged
			return nil
		}
	}
	o.State = StateExhausted
	return nil
}

// checkField fails with *NumericalDivergenceError when the field became
// non-finite or unbounded
func (o *Solver) checkField(step int, t float64) error {
	for _, v := range o.Dom.Sol.Y {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > divLimit {
			return &NumericalDivergenceError{Step: step, T: t}
		}
	}
	return nil
}

func (o *Solver) publish(step int, t float64, final bool) {
	if o.Bridge == nil {
		return
	}
	o.Bridge.Publish(step, t, final, o.Dom.Msh.Coords(), o.Dom.Sol.Y)
}

// Solve builds the solver of a frozen simulation and runs it in one call. It
// is the programmatic counterpart of the command line entry point
func Solve(ctx context.Context, sim *inp.Simulation, bridge *Bridge) (*Solver, error) {
	sol, err := NewSolver(sim, bridge)
	if err != nil {
		return nil, err
	}
	return sol, sol.Run(ctx)
}
