// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out saves solution snapshots to disk
package out

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Arthur-phys/Dzahui/fem"
	"github.com/Arthur-phys/Dzahui/logger"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SaveCsv writes one snapshot as a two-column (x,u) CSV file named
// <key>-<step>.csv inside dirout, creating the directory if needed.
// It returns the path of the written file
func SaveCsv(dirout, key string, snap *fem.Snapshot) (string, error) {
	if snap == nil {
		return "", chk.Err("no snapshot to save")
	}
	if err := os.MkdirAll(dirout, 0777); err != nil {
		return "", chk.Err("cannot create output directory %q:\n%v", dirout, err)
	}
	var buf bytes.Buffer
	io.Ff(&buf, "x,u\n")
	for i := range snap.X {
		io.Ff(&buf, "%g,%g\n", snap.X[i], snap.U[i])
	}
	fnpath := filepath.Join(dirout, io.Sf("%s-%d.csv", key, snap.Step))
	if err := os.WriteFile(fnpath, buf.Bytes(), 0666); err != nil {
		return "", chk.Err("cannot write results file:\n%v", err)
	}
	log := logger.Logger()
	log.Info().Str("file", fnpath).Msg("results saved")
	return fnpath, nil
}

// SaveJson writes one snapshot as a JSON file named <key>-<step>.json inside
// dirout. It returns the path of the written file
func SaveJson(dirout, key string, snap *fem.Snapshot) (string, error) {
	if snap == nil {
		return "", chk.Err("no snapshot to save")
	}
	if err := os.MkdirAll(dirout, 0777); err != nil {
		return "", chk.Err("cannot create output directory %q:\n%v", dirout, err)
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", chk.Err("cannot encode snapshot:\n%v", err)
	}
	fnpath := filepath.Join(dirout, io.Sf("%s-%d.json", key, snap.Step))
	if err := os.WriteFile(fnpath, b, 0666); err != nil {
		return "", chk.Err("cannot write results file:\n%v", err)
	}
	log := logger.Logger()
	log.Info().Str("file", fnpath).Msg("results saved")
	return fnpath, nil
}
