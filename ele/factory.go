// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/Arthur-phys/Dzahui/inp"
	"github.com/cpmech/gosl/chk"
)

// Allocator defines a function that allocates one element for a cell.
// x holds the nodal coordinates of the cell, ascending
type Allocator func(sim *inp.Simulation, cell *inp.Cell, x []float64) (Element, error)

// allocators holds all available elements
var allocators = make(map[string]Allocator)

// SetAllocator registers an element allocator for an equation family
func SetAllocator(family string, alloc Allocator) {
	allocators[family] = alloc
}

// New allocates an element for the given cell and equation family
func New(family string, sim *inp.Simulation, cell *inp.Cell, x []float64) (Element, error) {
	if alloc, ok := allocators[family]; ok {
		return alloc(sim, cell, x)
	}
	return nil, chk.Err("cannot find element for equation family %q", family)
}
