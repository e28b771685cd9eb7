// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gotraj/inp"
	"github.com/cpmech/gotraj/out"
	"github.com/cpmech/gotraj/traj"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".traj", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)
	dirout := io.ArgToString(3, "/tmp/gotraj")

	// message
	if verbose {
		io.PfWhite("\nGotraj -- Piecewise-Polynomial Trajectory Generator\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot profiles", "doplot", doplot,
			"directory for output", "dirout", dirout,
		))
	}

	// read plan
	plan := inp.ReadPlan(fnamepath)

	// generate trajectory
	tj, res, err := traj.Generate(plan, verbose && plan.Verbose)
	if err != nil {
		chk.Panic("generation failed:\n%v", err)
	}
	if verbose {
		io.Pf("exit flags = %v\n", res.Exitflags)
	}

	// save results
	outdata := struct {
		Poly      [][][][]float64 `json:"poly"`
		Durations []float64       `json:"durations"`
		Keytimes  []float64       `json:"keytimes"`
		Exitflags []int           `json:"exitflags"`
	}{tj.Poly, tj.Durations, tj.Keytimes, res.Exitflags}
	b, err := json.MarshalIndent(&outdata, "", "  ")
	if err != nil {
		chk.Panic("cannot encode results:\n%v", err)
	}
	var buf bytes.Buffer
	buf.Write(b)
	fnres := io.Sf("%s/%s-res.json", dirout, fnkey)
	io.WriteFile(fnres, &buf)
	if verbose {
		io.Pf("file <%s> written\n", fnres)
	}

	// plot
	if doplot {
		tab := out.Sample(tj, 201)
		out.PlotProfiles(tab, plan.MaxContderiv(), dirout, fnkey)
	}
}
