// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// GenBarMsh writes a 1D bar mesh in Wavefront .obj form, one vertex per line
// along the x axis. Usage:
//
//   go run GenBarMsh.go bar.obj [xmin] [xmax] [ndiv]
//
package main

import (
	"bytes"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {
	fnamepath, _ := io.ArgToFilename(0, "bar", ".obj", true)
	xmin := io.ArgToFloat(1, 0)
	xmax := io.ArgToFloat(2, 1)
	ndiv := io.ArgToInt(3, 10)
	if xmax <= xmin || ndiv < 1 {
		chk.Panic("need xmax > xmin and ndiv > 0 (got xmin=%g xmax=%g ndiv=%d)", xmin, xmax, ndiv)
	}

	var buf bytes.Buffer
	io.Ff(&buf, "# 1D bar: %d vertices along the x axis\n", ndiv+1)
	for _, x := range utl.LinSpace(xmin, xmax, ndiv+1) {
		io.Ff(&buf, "v %g 0.0 0.0\n", x)
	}
	if err := os.WriteFile(fnamepath, buf.Bytes(), 0666); err != nil {
		chk.Panic("cannot write mesh file:\n%v", err)
	}
	io.Pf("file <%s> written\n", fnamepath)
}
