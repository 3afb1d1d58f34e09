// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraPitchClamp(t *testing.T) {
	cam := NewCamera()
	cam.Drag(0, 10)
	assert.Less(t, cam.Pitch, math.Pi/2)
	cam.Drag(0, -20)
	assert.Greater(t, cam.Pitch, -math.Pi/2)
}

func TestCameraZoomClamp(t *testing.T) {
	cam := NewCamera()
	cam.Zoom(100)
	assert.Equal(t, 0.5, cam.Distance)
	cam.Zoom(-1000)
	assert.Equal(t, 50.0, cam.Distance)
}

func TestCameraEyeDistance(t *testing.T) {
	cam := NewCamera()
	cam.Drag(1.2, 0.4)
	eye := cam.Eye()
	d := math.Sqrt(float64(eye[0]*eye[0] + eye[1]*eye[1] + eye[2]*eye[2]))
	assert.InDelta(t, cam.Distance, d, 1e-5)
}
