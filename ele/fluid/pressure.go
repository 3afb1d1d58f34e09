// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements the element for the hydrostatic pressure problem
package fluid

import (
	"github.com/Arthur-phys/Dzahui/ele"
	"github.com/Arthur-phys/Dzahui/inp"
	"github.com/Arthur-phys/Dzahui/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Pressure implements the lin2 element for the static pressure equation
//
//   1 dp
//   ─ ── = f(x)
//   ρ dx
//
// Multiplying by ρ and a test function S[m] and integrating over one cell
// gives, per integration point with coefficient J·w:
//
//   K[m][n] += J·w S[m] G[n]
//   F[m]    += J·w ρ f(x) S[m]
//
// The gravity-like integrand S[m]·G[n] is independent of the cell length:
// the local matrix entries are always ±1/2
type Pressure struct {

	// basic data
	Cell *inp.Cell      // the cell structure
	X    []float64      // [2] nodal coordinates, ascending
	Pmap []int          // assembly map (location array/element equations)
	Rho  float64        // intrinsic density ρ
	Ffun inp.ScalarFunc // f(x) forcing function

	// integration points
	IpsElem []shp.Ipoint

	// scratchpad
	sfn *shp.Shape
	k   [2][2]float64
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register element
func init() {
	ele.SetAllocator(inp.EqnPressure, func(sim *inp.Simulation, cell *inp.Cell, x []float64) (ele.Element, error) {

		// basic data
		var o Pressure
		o.Cell = cell
		o.X = x
		o.Rho = sim.Equation.Rho
		o.Ffun = sim.Ffunc

		// integration points
		var err error
		o.IpsElem, err = shp.GaussLegendre(sim.Solver.Nip)
		if err != nil {
			return nil, chk.Err("cannot allocate integration points of pressure element with nip=%d:\n%v", sim.Solver.Nip, err)
		}

		// scratchpad
		o.sfn = shp.NewLin2()
		return &o, nil
	})
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell id
func (o *Pressure) Id() int { return o.Cell.Id }

// SetEqs sets the assembly map
func (o *Pressure) SetEqs(eqs []int) error {
	if len(eqs) != 2 {
		return chk.Err("pressure element %d needs 2 equations (got %d)", o.Cell.Id, len(eqs))
	}
	o.Pmap = []int{eqs[0], eqs[1]}
	return nil
}

// AddToKb adds the element stiffness K to the global triplet Kb
func (o *Pressure) AddToKb(Kb *la.Triplet, sol *ele.Solution) error {
	o.k = [2][2]float64{}
	for _, ip := range o.IpsElem {
		if err := o.sfn.CalcAtIp(o.X, ip); err != nil {
			return err
		}
		coef := o.sfn.J * ip.W
		S, G := o.sfn.S, o.sfn.G
		for m := 0; m < 2; m++ {
			for n := 0; n < 2; n++ {
				o.k[m][n] += coef * S[m] * G[n]
			}
		}
	}
	for i, I := range o.Pmap {
		for j, J := range o.Pmap {
			Kb.Put(I, J, o.k[i][j])
		}
	}
	return nil
}

// AddToMb is a no-op: the pressure equation is time-independent
func (o *Pressure) AddToMb(Mb *la.Triplet, sol *ele.Solution) error {
	return nil
}

// AddToFb adds the element load to the global vector fb
func (o *Pressure) AddToFb(fb la.Vector, sol *ele.Solution) error {
	if o.Ffun == nil {
		return nil
	}
	for _, ip := range o.IpsElem {
		if err := o.sfn.CalcAtIp(o.X, ip); err != nil {
			return err
		}
		coef := o.sfn.J * ip.W
		S := o.sfn.S
		fval := o.Ffun(o.sfn.IpRealCoord(o.X, ip))
		for m := 0; m < 2; m++ {
			fb[o.Pmap[m]] += coef * o.Rho * fval * S[m]
		}
	}
	return nil
}
