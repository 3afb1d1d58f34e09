// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a spherical (orbit) camera aimed at the origin, where the mesh is
// centred after normalisation
type Camera struct {
	Distance float64 // radius from the target
	Yaw      float64 // horizontal angle [rad]
	Pitch    float64 // vertical angle [rad], clamped away from the poles
}

// NewCamera returns a camera at a comfortable distance, looking down the z
// axis
func NewCamera() *Camera {
	return &Camera{Distance: 3}
}

// Drag orbits the camera by the given angle increments
func (o *Camera) Drag(dyaw, dpitch float64) {
	o.Yaw += dyaw
	o.Pitch += dpitch
	limit := math.Pi/2 - 0.01
	if o.Pitch > limit {
		o.Pitch = limit
	}
	if o.Pitch < -limit {
		o.Pitch = -limit
	}
}

// Zoom moves the camera along the view ray; positive amounts get closer
func (o *Camera) Zoom(amount float64) {
	o.Distance -= amount
	if o.Distance < 0.5 {
		o.Distance = 0.5
	}
	if o.Distance > 50 {
		o.Distance = 50
	}
}

// Eye returns the camera position
func (o *Camera) Eye() mgl32.Vec3 {
	x := o.Distance * math.Cos(o.Pitch) * math.Sin(o.Yaw)
	y := o.Distance * math.Sin(o.Pitch)
	z := o.Distance * math.Cos(o.Pitch) * math.Cos(o.Yaw)
	return mgl32.Vec3{float32(x), float32(y), float32(z)}
}

// View returns the view matrix
func (o *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(o.Eye(), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective projection matrix for the given aspect
// ratio
func (o *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100)
}
