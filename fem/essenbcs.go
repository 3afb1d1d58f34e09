// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/Arthur-phys/Dzahui/inp"
	"github.com/cpmech/gosl/la"
)

// EssenBcs records the essential (Dirichlet) boundary conditions: prescribed
// field values at boundary vertices. The conditions are applied by eliminating
// the prescribed rows and columns, which keeps the reduced system symmetric
// whenever the assembled one is
type EssenBcs struct {
	Eqs  []int           // prescribed equations, ascending
	Vals map[int]float64 // prescribed value per equation
}

// NewEssenBcs collects the conditions of a frozen simulation. For the
// hydrostatic pressure equation the constant is pinned at the rightmost vertex
func NewEssenBcs(sim *inp.Simulation) *EssenBcs {
	o := &EssenBcs{Vals: make(map[int]float64)}
	for _, bc := range sim.Equation.Bcs {
		o.set(bc.Vert, bc.Value)
	}
	if sim.Equation.Family == inp.EqnPressure {
		last := sim.Msh.Nverts() - 1
		if _, ok := o.Vals[last]; !ok {
			o.set(last, sim.Equation.Hp)
		}
	}
	sort.Ints(o.Eqs)
	return o
}

func (o *EssenBcs) set(eq int, val float64) {
	if _, ok := o.Vals[eq]; !ok {
		o.Eqs = append(o.Eqs, eq)
	}
	o.Vals[eq] = val
}

// Has tells whether equation eq is prescribed
func (o *EssenBcs) Has(eq int) bool {
	_, ok := o.Vals[eq]
	return ok
}

// Apply eliminates the prescribed equations from A·u = b in place:
// the known values are moved to the right-hand side, the prescribed rows and
// columns are cleared, and a unit diagonal keeps the system non-singular with
// u[eq] = value as solution
func (o *EssenBcs) Apply(A *la.Matrix, b la.Vector) {
	n := len(b)
	for _, eq := range o.Eqs {
		val := o.Vals[eq]
		for i := 0; i < n; i++ {
			if o.Has(i) {
				continue
			}
			b[i] -= A.Get(i, eq) * val
		}
	}
	for _, eq := range o.Eqs {
		for i := 0; i < n; i++ {
			A.Set(eq, i, 0)
			A.Set(i, eq, 0)
		}
		A.Set(eq, eq, 1)
		b[eq] = o.Vals[eq]
	}
}
