// Copyright (c) 2025 The Sap Authors
// SPDX-License-Identifier: MIT

package sap

import "github.com/sap-broadphase/sap/internal/bitset"

// findPairs runs the y-sweep: it walks the y-axis endpoint permutation,
// tracking which x-ranks are currently open on y in a bit-tree. At every
// open event it range-scans that bit-tree over the volume's x-candidate
// window, filters survivors with an x-overlap test (the rank window can
// also hold volumes that do not overlap v on x) and a z-overlap test,
// and appends each hit to emit. Every colliding pair is produced exactly once, at the open
// event of whichever of the two volumes opens later on y: the other
// volume must already be a member of activeY for the range scan to see
// it.
func findPairs(n int, sortedY []int, bounds candidateBounds, volumes []Volume, emit func(a, b int)) {
	activeY := bitset.New(uint(n))

	for _, ev := range sortedY {
		if ev < n {
			v := ev
			candidates := activeY.Range(uint(bounds.lower[v]), uint(bounds.upper[v]))

			vLoX, vHiX := volumes[v].ProjectX()
			vLoZ, vHiZ := volumes[v].ProjectZ()
			for _, r := range candidates {
				w := bounds.rankInv[r]
				wLoX, wHiX := volumes[w].ProjectX()
				if vHiX < wLoX || vLoX > wHiX {
					continue
				}
				wLoZ, wHiZ := volumes[w].ProjectZ()
				if vHiZ > wLoZ && vLoZ < wHiZ {
					emit(v, w)
				}
			}

			activeY.Insert(uint(bounds.rank[v]))
		} else {
			v := ev - n
			activeY.Remove(uint(bounds.rank[v]))
		}
	}
}
