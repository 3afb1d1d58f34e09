// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"
)

// SingularSystemError indicates that the assembled linear system could not be
// factorised. It typically points at a degenerate mesh or at boundary
// conditions that leave the system under-determined
type SingularSystemError struct {
	Row   int     // equation at which the factorisation broke down
	Pivot float64 // offending pivot value
}

func (e *SingularSystemError) Error() string {
	return io.Sf("singular linear system: pivot %g at equation %d", e.Pivot, e.Row)
}

// NumericalDivergenceError indicates that the time integration produced a
// non-finite or unbounded field. The scheme parameters (dt, theta) are the
// usual suspects
type NumericalDivergenceError struct {
	Step int     // step at which divergence was detected
	T    float64 // simulated time at that step
}

func (e *NumericalDivergenceError) Error() string {
	return io.Sf("numerical divergence at step %d (t=%g); reduce dt or increase theta", e.Step, e.T)
}
