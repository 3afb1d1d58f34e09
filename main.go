// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/Arthur-phys/Dzahui/fem"
	"github.com/Arthur-phys/Dzahui/inp"
	"github.com/Arthur-phys/Dzahui/logger"
	"github.com/Arthur-phys/Dzahui/out"
	"github.com/Arthur-phys/Dzahui/vis"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	saveResults := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nDzahui -- 1D Finite Element Solver\n")
		io.Pf("Copyright 2023 The Dzahui Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save final results", "saveResults", saveResults,
		))
	} else {
		logger.Disable()
	}

	// read and validate the simulation
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot load simulation:\n%v", err)
	}

	// solve in the background; the viewer owns the main thread
	bridge := fem.NewBridge()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := fem.Solve(ctx, sim, bridge)
		return err
	})

	if sim.Viewer.Show {
		viewer := vis.NewViewer(sim, bridge)
		if err := viewer.Run(); err != nil {
			chk.Panic("viewer failed:\n%v", err)
		}
		cancel() // closing the window stops a still-running solve
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		chk.Panic("simulation failed:\n%v", err)
	}

	// save final results
	if saveResults {
		if _, err := out.SaveCsv(sim.Data.DirOut, sim.Key, bridge.Latest()); err != nil {
			chk.Panic("cannot save results:\n%v", err)
		}
	}
}
