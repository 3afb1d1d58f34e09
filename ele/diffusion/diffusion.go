// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diffusion implements the element for diffusion problems
package diffusion

import (
	"github.com/Arthur-phys/Dzahui/ele"
	"github.com/Arthur-phys/Dzahui/inp"
	"github.com/Arthur-phys/Dzahui/mdl/diffusion"
	"github.com/Arthur-phys/Dzahui/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Diffusion implements the lin2 element for the diffusion equation
//
//     du                                      du
//   ρ ── + div w = s      with      w = -μ(u) ── + b u
//     dt                                      dx
//
// The weak form over one cell [xa,xb] gives, per integration point with
// coefficient J·w:
//
//   K[m][n] += J·w (μ G[m] G[n] + b S[m] G[n])
//   M[m][n] += J·w ρ S[m] S[n]
//   F[m]    += J·w s(x) S[m]
//
type Diffusion struct {

	// basic data
	Cell *inp.Cell       // the cell structure
	X    []float64       // [2] nodal coordinates, ascending
	Umap []int           // assembly map (location array/element equations)
	Mdl  diffusion.Model // material model
	Sfun inp.ScalarFunc  // s(x) function

	// integration points
	IpsElem []shp.Ipoint

	// scratchpad
	sfn *shp.Shape
	k   [2][2]float64
	m   [2][2]float64
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register element
func init() {
	ele.SetAllocator(inp.EqnDiffusion, func(sim *inp.Simulation, cell *inp.Cell, x []float64) (ele.Element, error) {

		// basic data
		var o Diffusion
		o.Cell = cell
		o.X = x
		o.Sfun = sim.Ffunc

		// integration points
		var err error
		o.IpsElem, err = shp.GaussLegendre(sim.Solver.Nip)
		if err != nil {
			return nil, chk.Err("cannot allocate integration points of diffusion element with nip=%d:\n%v", sim.Solver.Nip, err)
		}

		// model
		o.Mdl, err = diffusion.New("m1")
		if err != nil {
			return nil, err
		}
		rho := sim.Equation.Rho
		if sim.Equation.Steady {
			rho = 0
		}
		err = o.Mdl.Init(map[string]float64{"mu": sim.Equation.Mu, "b": sim.Equation.B, "rho": rho})
		if err != nil {
			return nil, chk.Err("cannot initialise model for diffusion element %d:\n%v", cell.Id, err)
		}

		// scratchpad
		o.sfn = shp.NewLin2()
		return &o, nil
	})
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell id
func (o *Diffusion) Id() int { return o.Cell.Id }

// SetEqs sets the assembly map
func (o *Diffusion) SetEqs(eqs []int) error {
	if len(eqs) != 2 {
		return chk.Err("diffusion element %d needs 2 equations (got %d)", o.Cell.Id, len(eqs))
	}
	o.Umap = []int{eqs[0], eqs[1]}
	return nil
}

// AddToKb adds the element stiffness K to the global triplet Kb
func (o *Diffusion) AddToKb(Kb *la.Triplet, sol *ele.Solution) error {

	// clear local matrix
	o.k = [2][2]float64{}

	// for each integration point
	for _, ip := range o.IpsElem {
		if err := o.sfn.CalcAtIp(o.X, ip); err != nil {
			return err
		}
		coef := o.sfn.J * ip.W
		S, G := o.sfn.S, o.sfn.G
		kval := o.Mdl.Kval(o.uAtIp(S, sol))
		bval := o.Mdl.Bval()
		for m := 0; m < 2; m++ {
			for n := 0; n < 2; n++ {
				o.k[m][n] += coef * (kval*G[m]*G[n] + bval*S[m]*G[n])
			}
		}
	}

	// scatter-add into the global triplet
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Put(I, J, o.k[i][j])
		}
	}
	return nil
}

// AddToMb adds the element mass M to the global triplet Mb
func (o *Diffusion) AddToMb(Mb *la.Triplet, sol *ele.Solution) error {

	// steady formulation has no transient term
	rho := o.Mdl.RhoVal()
	if rho == 0 {
		return nil
	}

	o.m = [2][2]float64{}
	for _, ip := range o.IpsElem {
		if err := o.sfn.CalcAtIp(o.X, ip); err != nil {
			return err
		}
		coef := o.sfn.J * ip.W
		S := o.sfn.S
		for m := 0; m < 2; m++ {
			for n := 0; n < 2; n++ {
				o.m[m][n] += coef * rho * S[m] * S[n]
			}
		}
	}
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Mb.Put(I, J, o.m[i][j])
		}
	}
	return nil
}

// AddToFb adds the element load to the global vector fb
func (o *Diffusion) AddToFb(fb la.Vector, sol *ele.Solution) error {
	if o.Sfun == nil {
		return nil
	}
	for _, ip := range o.IpsElem {
		if err := o.sfn.CalcAtIp(o.X, ip); err != nil {
			return err
		}
		coef := o.sfn.J * ip.W
		S := o.sfn.S
		sval := o.Sfun(o.sfn.IpRealCoord(o.X, ip))
		for m := 0; m < 2; m++ {
			fb[o.Umap[m]] += coef * sval * S[m]
		}
	}
	return nil
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// uAtIp interpolates the current field value at the integration point
func (o *Diffusion) uAtIp(S [2]float64, sol *ele.Solution) float64 {
	if sol == nil || len(sol.Y) == 0 {
		return 0
	}
	return S[0]*sol.Y[o.Umap[0]] + S[1]*sol.Y[o.Umap[1]]
}
