// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/Arthur-phys/Dzahui/ele"
	"github.com/Arthur-phys/Dzahui/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Domain holds the mesh, the elements allocated for each cell and the current
// solution. There is one scalar equation per vertex; equation numbers equal
// vertex ids because the mesh keeps its vertices sorted by coordinate
type Domain struct {

	// set by NewDomain
	Sim    *inp.Simulation // frozen simulation data
	Msh    *inp.Mesh       // the mesh
	Elems  []ele.Element   // one element per cell
	EssBcs *EssenBcs       // essential boundary conditions
	Sol    *ele.Solution   // current solution
	Ny     int             // total number of equations

	// assembly workspace
	Kb *la.Triplet // stiffness triplet
	Mb *la.Triplet // mass triplet
	Fb la.Vector   // load vector
}

// NewDomain allocates the elements of a frozen simulation and sets the initial
// solution from the prescribed values and initial conditions
func NewDomain(sim *inp.Simulation) (*Domain, error) {
	if !sim.Frozen() {
		return nil, chk.Err("simulation %q must be frozen before the domain is built", sim.Key)
	}

	var o Domain
	o.Sim = sim
	o.Msh = sim.Msh
	o.Ny = o.Msh.Nverts()
	o.EssBcs = NewEssenBcs(sim)
	o.Sol = ele.NewSolution(o.Ny, sim.Equation.Steady)
	o.Sol.Dt = sim.Solver.Dt

	// mesh viewing only
	if sim.Equation.Family == inp.EqnNone {
		o.setIniVals()
		return &o, nil
	}

	// allocate elements
	for _, c := range o.Msh.Cells {
		x := []float64{o.Msh.Verts[c.Verts[0]].X, o.Msh.Verts[c.Verts[1]].X}
		e, err := ele.New(sim.Equation.Family, sim, c, x)
		if err != nil {
			return nil, chk.Err("cannot allocate element for cell %d:\n%v", c.Id, err)
		}
		if err := e.SetEqs(c.Verts); err != nil {
			return nil, err
		}
		o.Elems = append(o.Elems, e)
	}

	// workspace: each lin2 element scatters a 2×2 block
	o.Kb = la.NewTriplet(o.Ny, o.Ny, 4*len(o.Elems))
	o.Mb = la.NewTriplet(o.Ny, o.Ny, 4*len(o.Elems))
	o.Fb = la.NewVector(o.Ny)

	o.setIniVals()
	return &o, nil
}

// setIniVals fills the initial solution: prescribed values at their vertices
// and, for transient runs, the given values at the interior vertices taken in
// ascending coordinate order
func (o *Domain) setIniVals() {
	ini := o.Sim.Equation.IniVals
	k := 0
	for _, v := range o.Msh.Verts {
		if o.EssBcs.Has(v.Id) {
			o.Sol.Y[v.Id] = o.EssBcs.Vals[v.Id]
			continue
		}
		if o.Msh.IsBry(v.Id) {
			continue
		}
		if k < len(ini) {
			o.Sol.Y[v.Id] = ini[k]
		}
		k++
	}
}

// AssembleKbFb assembles the stiffness triplet and the load vector
func (o *Domain) AssembleKbFb() error {
	o.Kb.Start()
	o.Fb.Fill(0)
	for _, e := range o.Elems {
		if err := e.AddToKb(o.Kb, o.Sol); err != nil {
			return err
		}
		if err := e.AddToFb(o.Fb, o.Sol); err != nil {
			return err
		}
	}
	return nil
}

// AssembleMb assembles the mass triplet
func (o *Domain) AssembleMb() error {
	o.Mb.Start()
	for _, e := range o.Elems {
		if err := e.AddToMb(o.Mb, o.Sol); err != nil {
			return err
		}
	}
	return nil
}
