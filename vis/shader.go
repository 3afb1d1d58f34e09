// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/cpmech/gosl/chk"
)

const vertexShaderSrc = `#version 330 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 color;
uniform mat4 mvp;
out vec3 vcolor;
void main() {
    gl_Position = mvp * vec4(position, 1.0);
    gl_PointSize = 6.0;
    vcolor = color;
}
` + "\x00"

const fragmentShaderSrc = `#version 330 core
in vec3 vcolor;
out vec4 fragColor;
void main() {
    fragColor = vec4(vcolor, 1.0);
}
` + "\x00"

// newProgram compiles and links the viewer shader program
func newProgram() (uint32, error) {
	vs, err := compileShader(vertexShaderSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentShaderSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(prog, n, nil, gl.Str(log))
		return 0, chk.Err("cannot link shader program:\n%s", log)
	}
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return prog, nil
}

func compileShader(src string, kind uint32) (uint32, error) {
	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(sh, n, nil, gl.Str(log))
		return 0, chk.Err("cannot compile shader:\n%s", log)
	}
	return sh, nil
}
