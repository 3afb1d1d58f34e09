// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"math"
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Arthur-phys/Dzahui/fem"
	"github.com/Arthur-phys/Dzahui/inp"
	"github.com/Arthur-phys/Dzahui/logger"
	"github.com/Arthur-phys/Dzahui/out"
	"github.com/cpmech/gosl/chk"
)

// GLFW event handling must run on the main OS thread
func init() {
	runtime.LockOSThread()
}

// Viewer opens a window and keeps drawing the latest snapshot published on
// the bridge. Controls:
//
//   ESC, Q    close the window
//   S         save the current snapshot to the output directory
//   W         toggle between line and point rendering
//   drag      orbit the camera
//   scroll    zoom
//
// Run must be called from the main goroutine
type Viewer struct {
	Cfg    inp.ViewerData
	Bridge *fem.Bridge
	DirOut string // where the S key saves snapshots
	Key    string // simulation key, used in saved file names

	cam    *Camera
	points bool

	dragging bool
	lastX    float64
	lastY    float64
}

// NewViewer returns a viewer for a frozen simulation
func NewViewer(sim *inp.Simulation, bridge *fem.Bridge) *Viewer {
	return &Viewer{
		Cfg:    sim.Viewer,
		Bridge: bridge,
		DirOut: sim.Data.DirOut,
		Key:    sim.Key,
		cam:    NewCamera(),
	}
}

// Run opens the window and blocks until it is closed. The solve loop runs
// elsewhere; the viewer only consumes snapshots
func (o *Viewer) Run() error {
	if err := glfw.Init(); err != nil {
		return chk.Err("cannot initialise glfw:\n%v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(o.Cfg.Width, o.Cfg.Height, o.Cfg.Title, nil, nil)
	if err != nil {
		return chk.Err("cannot create window:\n%v", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return chk.Err("cannot initialise opengl:\n%v", err)
	}
	prog, err := newProgram()
	if err != nil {
		return err
	}
	gl.UseProgram(prog)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	mvpLoc := gl.GetUniformLocation(prog, gl.Str("mvp\x00"))

	var vao, vbo, cbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.GenBuffers(1, &cbo)

	o.installCallbacks(win)
	log := logger.Logger()
	log.Info().Str("title", o.Cfg.Title).Int("w", o.Cfg.Width).Int("h", o.Cfg.Height).Msg("viewer open")

	framePeriod := time.Duration(float64(time.Second) / o.Cfg.Fps)
	for !win.ShouldClose() {
		start := time.Now()

		gl.ClearColor(0.12, 0.12, 0.14, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		if snap := o.Bridge.Latest(); snap != nil && len(snap.X) > 1 {
			pos := Geometry(snap.X, snap.U)
			col := FieldColors(snap.U)

			gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
			gl.BufferData(gl.ARRAY_BUFFER, 4*len(pos), gl.Ptr(pos), gl.DYNAMIC_DRAW)
			gl.EnableVertexAttribArray(0)
			gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, nil)

			gl.BindBuffer(gl.ARRAY_BUFFER, cbo)
			gl.BufferData(gl.ARRAY_BUFFER, 4*len(col), gl.Ptr(col), gl.DYNAMIC_DRAW)
			gl.EnableVertexAttribArray(1)
			gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 0, nil)

			w, h := win.GetFramebufferSize()
			gl.Viewport(0, 0, int32(w), int32(h))
			mvp := o.cam.Projection(float32(w) / float32(h)).Mul4(o.cam.View())
			gl.UniformMatrix4fv(mvpLoc, 1, false, &mvp[0])

			mode := uint32(gl.LINE_STRIP)
			if o.points {
				mode = gl.POINTS
			}
			gl.DrawArrays(mode, 0, int32(len(pos)/3))
		}

		win.SwapBuffers()
		glfw.PollEvents()

		if dt := time.Since(start); dt < framePeriod {
			time.Sleep(framePeriod - dt)
		}
	}
	log.Info().Msg("viewer closed")
	return nil
}

// Geometry builds the polyline vertices of one snapshot: coordinates are
// normalised into [-1,1] and the field values become heights scaled by the
// largest magnitude
func Geometry(xx, uu []float64) []float32 {
	xa, xb := xx[0], xx[len(xx)-1]
	span := xb - xa
	if span == 0 {
		span = 1
	}
	umax := 0.0
	for _, u := range uu {
		if a := math.Abs(u); a > umax {
			umax = a
		}
	}
	if umax < 1e-14 {
		umax = 1
	}
	pos := make([]float32, 0, 3*len(xx))
	for i := range xx {
		px := 2*(xx[i]-xa)/span - 1
		py := uu[i] / umax
		pos = append(pos, float32(px), float32(py), 0)
	}
	return pos
}

func (o *Viewer) installCallbacks(win *glfw.Window) {
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape, glfw.KeyQ:
			w.SetShouldClose(true)
		case glfw.KeyS:
			o.saveSnapshot()
		case glfw.KeyW:
			o.points = !o.points
		}
	})
	win.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		o.dragging = action == glfw.Press
		o.lastX, o.lastY = w.GetCursorPos()
	})
	win.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		if !o.dragging {
			return
		}
		o.cam.Drag(0.005*(x-o.lastX), 0.005*(y-o.lastY))
		o.lastX, o.lastY = x, y
	})
	win.SetScrollCallback(func(w *glfw.Window, dx, dy float64) {
		o.cam.Zoom(0.3 * dy)
	})
}

func (o *Viewer) saveSnapshot() {
	snap := o.Bridge.Latest()
	if snap == nil {
		return
	}
	if _, err := out.SaveCsv(o.DirOut, o.Key, snap); err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("cannot save snapshot")
	}
}
