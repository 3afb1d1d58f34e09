// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele defines the Element interface and the factory that allocates
// elements for each equation family
package ele

import (
	"github.com/cpmech/gosl/la"
)

// Element defines the interface for all element types. Elements compute local
// weak-form contributions and scatter them into the global sparse structures
// at the rows/columns given by their assembly maps. The scatter is a plain
// addition, so the assembled system is invariant to element iteration order
type Element interface {

	// Id returns the cell id
	Id() int

	// SetEqs sets the assembly map (location array) of this element
	SetEqs(eqs []int) error

	// AddToKb adds the element stiffness contribution to the global triplet
	AddToKb(Kb *la.Triplet, sol *Solution) error

	// AddToMb adds the element mass contribution to the global triplet;
	// time-independent elements contribute nothing
	AddToMb(Mb *la.Triplet, sol *Solution) error

	// AddToFb adds the element load contribution to the global vector
	AddToFb(fb la.Vector, sol *Solution) error
}
