// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diffusion implements material models for diffusion problems
package diffusion

import (
	"github.com/cpmech/gosl/chk"
)

// Model defines the interface for diffusion material models
type Model interface {
	Init(prms map[string]float64) error // initialises model from named parameters
	Kval(u float64) float64             // diffusion coefficient k(u)
	Bval() float64                      // advection velocity
	RhoVal() float64                    // density multiplying the transient term
}

// allocators holds all available models
var allocators = make(map[string]func() Model)

// New returns a new model by name
func New(name string) (Model, error) {
	if alloc, ok := allocators[name]; ok {
		return alloc(), nil
	}
	return nil, chk.Err("cannot find diffusion model named %q", name)
}
