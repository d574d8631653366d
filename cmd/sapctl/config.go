// Copyright (c) 2025 The Sap Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	"github.com/sap-broadphase/sap"
)

var errBatchFileRead = errors.New("reading batch file")
var errBatchFileInvalid = errors.New("invalid batch file")

// volumeSpec is one entry of the batch input file: a minimum-corner
// position plus the full size on each axis.
type volumeSpec struct {
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

type batchFile struct {
	Volumes []volumeSpec `json:"volumes"`
}

// loadBatch reads a JSON-with-comments batch file describing volumes
// and returns both the sap.Volume slice Collide consumes and the
// specs themselves (for labeling output by name).
func loadBatch(path string) ([]sap.Volume, []volumeSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator-supplied by design
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", errBatchFileRead, path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: invalid JSONC: %w", errBatchFileInvalid, path, err)
	}

	var batch batchFile
	if err := json.Unmarshal(standardized, &batch); err != nil {
		return nil, nil, fmt.Errorf("%w %s: invalid JSON: %w", errBatchFileInvalid, path, err)
	}

	volumes := make([]sap.Volume, len(batch.Volumes))
	for i, v := range batch.Volumes {
		volumes[i] = sap.NewAABB(v.X, v.Y, v.Z, v.Width, v.Length, v.Height)
	}
	return volumes, batch.Volumes, nil
}

// labelFor returns a human-readable name for volume index i, falling
// back to its index when the batch file didn't name it.
func labelFor(specs []volumeSpec, i int) string {
	if i < len(specs) && specs[i].Name != "" {
		return specs[i].Name
	}
	return fmt.Sprintf("#%d", i)
}
