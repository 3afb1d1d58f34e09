// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientEndpoints(t *testing.T) {
	r, g, b := Gradient(0)
	assert.Equal(t, float32(0), r)
	assert.Equal(t, float32(0), g)
	assert.Equal(t, float32(1), b)

	r, g, b = Gradient(1)
	assert.Equal(t, float32(1), r)
	assert.Equal(t, float32(0), g)
	assert.Equal(t, float32(0), b)
}

func TestGradientClamps(t *testing.T) {
	r, _, b := Gradient(-3)
	assert.Equal(t, float32(0), r)
	assert.Equal(t, float32(1), b)

	r, _, b = Gradient(7)
	assert.Equal(t, float32(1), r)
	assert.Equal(t, float32(0), b)
}

func TestFieldColorsMagnitude(t *testing.T) {
	// the sign must not matter: -2 has the largest magnitude and comes out red
	colors := FieldColors([]float64{0, 1, -2})
	require.Len(t, colors, 9)
	assert.Equal(t, float32(1), colors[2], "smallest magnitude is blue")
	assert.Equal(t, float32(1), colors[6], "largest magnitude is red")
	assert.InDelta(t, 0.5, colors[3], 1e-6, "midpoint sits between the extremes")
}

func TestFieldColorsConstantField(t *testing.T) {
	colors := FieldColors([]float64{4, 4, 4})
	for i := 0; i < len(colors); i += 3 {
		assert.Equal(t, float32(0), colors[i])
		assert.Equal(t, float32(1), colors[i+2])
	}
}

func TestGeometryNormalisation(t *testing.T) {
	pos := Geometry([]float64{2, 3, 4}, []float64{0, -5, 2.5})
	require.Len(t, pos, 9)
	assert.Equal(t, float32(-1), pos[0], "left end maps to -1")
	assert.Equal(t, float32(1), pos[6], "right end maps to +1")
	assert.Equal(t, float32(-1), pos[4], "largest magnitude maps to unit height")
	assert.Equal(t, float32(0.5), pos[7])
}
