// Copyright (c) 2025 The Sap Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"

	"github.com/natefinch/atomic"

	"github.com/sap-broadphase/sap"
)

type pairReport struct {
	A    int    `json:"a"`
	B    int    `json:"b"`
	Name string `json:"pair"`
}

// writeReport renders the collision pairs found for volumes (labeled
// via specs) and, if out is non-empty, atomically writes them to disk
// so a crash mid-write never leaves a truncated report behind.
func writeReport(pairs []sap.Pair, specs []volumeSpec, out string) error {
	reports := make([]pairReport, len(pairs))
	for i, p := range pairs {
		reports[i] = pairReport{
			A: p.IndexA, B: p.IndexB,
			Name: fmt.Sprintf("%s <-> %s", labelFor(specs, p.IndexA), labelFor(specs, p.IndexB)),
		}
	}

	for _, r := range reports {
		log.Printf("collision: %s", r.Name)
	}
	log.Printf("found %d colliding pair(s) among %d volumes", len(pairs), len(specs))

	if out == "" {
		return nil
	}

	buf, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	buf = append(buf, '\n')

	if err := atomic.WriteFile(out, bytes.NewReader(buf)); err != nil {
		return fmt.Errorf("writing report to %s: %w", out, err)
	}
	log.Printf("wrote report to %s", out)
	return nil
}
