// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ScalarFunc is a scalar function of the spatial coordinate; e.g. a source
// term or an external force. Implementations must be pure: assembly may
// reorder calls freely
type ScalarFunc func(x float64) float64

// FuncData holds the definition of a named function from a .sim file
type FuncData struct {
	Name string             `json:"name"` // "zero", "cte", "linear", "sin"
	Prms map[string]float64 `json:"prms"` // named parameters
}

// Get resolves the function definition into a callable
func (o *FuncData) Get() (ScalarFunc, error) {
	p := func(key string) float64 { return o.Prms[key] }
	switch o.Name {
	case "", "zero":
		return func(x float64) float64 { return 0 }, nil
	case "cte":
		c := p("c")
		return func(x float64) float64 { return c }, nil
	case "linear":
		m, c := p("m"), p("c")
		return func(x float64) float64 { return m*x + c }, nil
	case "sin":
		a, w, phi := p("a"), p("w"), p("phi")
		return func(x float64) float64 { return a * math.Sin(w*x+phi) }, nil
	}
	return nil, chk.Err("unknown function named %q", o.Name)
}
