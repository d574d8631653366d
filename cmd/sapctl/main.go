// Copyright (c) 2025 The Sap Authors
// SPDX-License-Identifier: MIT

// sapctl runs the broad-phase collider over a batch of volumes
// described in a JSON-with-comments file, optionally writing the
// resulting pair report to disk and/or dropping into an interactive
// mode to add volumes one at a time.
package main

import (
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/sap-broadphase/sap"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	input := flag.StringP("input", "i", "", "batch input file (JSON with comments) listing volumes")
	out := flag.StringP("out", "o", "", "write the collision report to this file (atomic write)")
	interactive := flag.BoolP("interactive", "n", false, "start an interactive session after the batch run")
	flag.Parse()

	if err := run(*input, *out, *interactive); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func run(input, out string, interactive bool) error {
	var volumes []sap.Volume
	var specs []volumeSpec
	var err error

	if input != "" {
		volumes, specs, err = loadBatch(input)
		if err != nil {
			return err
		}
	}

	if len(volumes) > 0 {
		pairs := sap.Collide(volumes)
		if err := writeReport(pairs, specs, out); err != nil {
			return err
		}
	} else {
		log.Print("no volumes loaded, starting with zero volumes")
	}

	if interactive {
		return runInteractive(volumes, specs)
	}
	return nil
}
