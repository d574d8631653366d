// Copyright (c) 2025 The Sap Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/sys/unix"

	"github.com/sap-broadphase/sap"
)

// runInteractive starts a line-edited REPL that adds one volume at a
// time and reports any newly introduced collisions after each insert.
func runInteractive(seed []sap.Volume, specs []volumeSpec) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	volumes := append([]sap.Volume(nil), seed...)
	labels := append([]volumeSpec(nil), specs...)

	width := terminalWidth()
	fmt.Printf("sapctl interactive -- %d seed volume(s), terminal width %d\n", len(seed), width)
	fmt.Println("add <x> <y> <z> <w> <l> <h> [name]   |   list   |   exit")

	previousPairs := len(sap.Collide(volumes))

	for {
		text, err := line.Prompt("sap> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		line.AppendHistory(text)

		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "exit", "quit", "q":
			return nil
		case "list":
			for i, v := range volumes {
				fmt.Printf("  %s: %+v\n", labelFor(labels, i), v)
			}
		case "add":
			v, spec, err := parseAddArgs(fields[1:])
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			volumes = append(volumes, v)
			labels = append(labels, spec)

			pairs := sap.Collide(volumes)
			for _, p := range pairs[previousPairs:] {
				fmt.Printf("  new collision: %s <-> %s\n", labelFor(labels, p.IndexA), labelFor(labels, p.IndexB))
			}
			previousPairs = len(pairs)
		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

func parseAddArgs(args []string) (sap.AABB, volumeSpec, error) {
	if len(args) < 6 {
		return sap.AABB{}, volumeSpec{}, errors.New("usage: add <x> <y> <z> <w> <l> <h> [name]")
	}

	nums := make([]float64, 6)
	for i := 0; i < 6; i++ {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return sap.AABB{}, volumeSpec{}, fmt.Errorf("parsing field %d: %w", i, err)
		}
		nums[i] = f
	}

	name := ""
	if len(args) > 6 {
		name = strings.Join(args[6:], " ")
	}

	spec := volumeSpec{Name: name, X: nums[0], Y: nums[1], Z: nums[2], Width: nums[3], Length: nums[4], Height: nums[5]}
	return sap.NewAABB(nums[0], nums[1], nums[2], nums[3], nums[4], nums[5]), spec, nil
}

// terminalWidth reports the stdout terminal's column count, falling
// back to 80 when stdout isn't a terminal (piped output, CI logs).
func terminalWidth() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		log.Print("not a terminal, assuming width 80")
		return 80
	}
	return int(ws.Col)
}
