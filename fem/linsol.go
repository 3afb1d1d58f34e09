// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// LinSol solves the dense linear system A·u = b produced after the essential
// boundary conditions have been applied. Implementations report singular
// systems with *SingularSystemError
type LinSol interface {

	// Name returns the name of this solver
	Name() string

	// Solve solves A·u = b. A and b are not modified
	Solve(u la.Vector, A *la.Matrix, b la.Vector) error
}

// linsolAllocators holds all available linear solvers
var linsolAllocators = map[string]func() LinSol{
	"thomas": func() LinSol { return new(Thomas) },
	"dense":  func() LinSol { return new(DenseLU) },
}

// NewLinSol allocates a linear solver by name; e.g. "thomas" or "dense"
func NewLinSol(name string) (LinSol, error) {
	if alloc, ok := linsolAllocators[name]; ok {
		return alloc(), nil
	}
	return nil, chk.Err("cannot find linear solver named %q", name)
}

// Thomas ///////////////////////////////////////////////////////////////////////////////////////////

// Thomas implements the tridiagonal-matrix algorithm. Lin2 cells over a line
// mesh couple each vertex only with its two neighbours, so the assembled
// system is tridiagonal whenever the equations follow the vertex order
type Thomas struct {
	low, dia, upp []float64 // bands, resized on demand
	rhs           []float64
}

// Name returns the name of this solver
func (o *Thomas) Name() string { return "thomas" }

// pivot magnitudes below tiny mean the forward elimination broke down
const tiny = 1e-13

// Solve solves A·u = b by forward elimination and back substitution
func (o *Thomas) Solve(u la.Vector, A *la.Matrix, b la.Vector) error {
	n := len(b)
	if A.M != n || A.N != n {
		return chk.Err("thomas solver needs a square %d×%d system (got %d×%d)", n, n, A.M, A.N)
	}

	// extract bands
	if len(o.dia) < n {
		o.low = make([]float64, n)
		o.dia = make([]float64, n)
		o.upp = make([]float64, n)
		o.rhs = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		o.dia[i] = A.Get(i, i)
		if i > 0 {
			o.low[i] = A.Get(i, i-1)
		}
		if i < n-1 {
			o.upp[i] = A.Get(i, i+1)
		}
		o.rhs[i] = b[i]
	}

	// forward elimination
	if math.Abs(o.dia[0]) < tiny {
		return &SingularSystemError{Row: 0, Pivot: o.dia[0]}
	}
	for i := 1; i < n; i++ {
		w := o.low[i] / o.dia[i-1]
		o.dia[i] -= w * o.upp[i-1]
		o.rhs[i] -= w * o.rhs[i-1]
		if math.Abs(o.dia[i]) < tiny {
			return &SingularSystemError{Row: i, Pivot: o.dia[i]}
		}
	}

	// back substitution
	u[n-1] = o.rhs[n-1] / o.dia[n-1]
	for i := n - 2; i >= 0; i-- {
		u[i] = (o.rhs[i] - o.upp[i]*u[i+1]) / o.dia[i]
	}
	return nil
}

// DenseLU //////////////////////////////////////////////////////////////////////////////////////////

// DenseLU implements a dense LU factorisation with partial pivoting. It does
// not rely on the bandwidth of the system and serves as the fallback for
// meshes whose numbering breaks the tridiagonal structure
type DenseLU struct {
	a  *mat.Dense
	lu mat.LU
}

// Name returns the name of this solver
func (o *DenseLU) Name() string { return "dense" }

// Solve solves A·u = b
func (o *DenseLU) Solve(u la.Vector, A *la.Matrix, b la.Vector) error {
	n := len(b)
	if o.a == nil || o.a.RawMatrix().Rows != n {
		o.a = mat.NewDense(n, n, nil)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			o.a.Set(i, j, A.Get(i, j))
		}
	}
	o.lu.Factorize(o.a)
	var x mat.VecDense
	if err := o.lu.SolveVecTo(&x, false, mat.NewVecDense(n, b)); err != nil {
		return &SingularSystemError{Row: -1, Pivot: 0}
	}
	for i := 0; i < n; i++ {
		u[i] = x.AtVec(i)
	}
	return nil
}
