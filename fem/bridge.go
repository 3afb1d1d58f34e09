// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sync/atomic"
)

// Snapshot is one immutable view of the solution, safe to hand across
// goroutines. X and U must not be modified after publication
type Snapshot struct {
	Step  int       // step that produced this field
	T     float64   // simulated time
	Final bool      // no further snapshots will follow
	X     []float64 // vertex coordinates, ascending
	U     []float64 // field values, one per vertex
}

// Bridge decouples the solve loop from its consumers (the viewer, the output
// writer). The solver is the single writer; any number of readers may call
// Latest concurrently. Publishing and reading never block: readers always get
// the most recent complete snapshot, never a partial one
type Bridge struct {
	last atomic.Pointer[Snapshot]
}

// NewBridge returns a new empty bridge
func NewBridge() *Bridge {
	return new(Bridge)
}

// Publish stores a snapshot of the given field. The slices are copied, so the
// caller may keep mutating its buffers
func (o *Bridge) Publish(step int, t float64, final bool, x, u []float64) {
	s := &Snapshot{Step: step, T: t, Final: final}
	s.X = append(s.X, x...)
	s.U = append(s.U, u...)
	o.last.Store(s)
}

// Latest returns the most recent snapshot, or nil if none was published yet
func (o *Bridge) Latest() *Snapshot {
	return o.last.Load()
}
