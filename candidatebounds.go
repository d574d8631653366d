// Copyright (c) 2025 The Sap Authors
// SPDX-License-Identifier: MIT

package sap

import "github.com/sap-broadphase/sap/internal/bitset"

// candidateBounds holds, per volume id, the half-open x-rank interval
// that spans every volume overlapping it on the x-axis. The interval
// can also contain ranks of volumes that do not overlap it on x (one
// that opened and closed between an earlier, still-open volume and it).
type candidateBounds struct {
	rank    []int // rank[v]: x-rank volume v opened at
	rankInv []int // rankInv[r]: volume id whose x-rank is r
	lower   []int // lower[v]: smallest x-rank overlapping v (inclusive)
	upper   []int // upper[v]: largest x-rank overlapping v (exclusive)
}

// computeCandidateBounds runs the x-sweep: it walks the x-axis endpoint
// permutation, tracking which x-ranks are currently open in a bit-tree,
// and records for every volume the span of ranks that could still
// overlap it on x.
//
// lower[v] is fixed the instant v opens: any already-open volume with a
// smaller rank hasn't closed yet, so it overlaps v; nothing that opens
// later can have a smaller rank. upper[v] is fixed the instant v
// closes, as the count of opens seen so far -- the rank of whatever
// opens next, which by definition can no longer overlap v.
func computeCandidateBounds(n int, sortedX []int) candidateBounds {
	bounds := candidateBounds{
		rank:    make([]int, n),
		rankInv: make([]int, n),
		lower:   make([]int, n),
		upper:   make([]int, n),
	}

	active := bitset.New(uint(n))
	rank := 0

	for _, ev := range sortedX {
		if ev < n {
			v := ev
			bounds.rank[v] = rank
			bounds.rankInv[rank] = v
			active.Insert(uint(rank))
			min, _ := active.Min()
			bounds.lower[v] = int(min)
			rank++
		} else {
			v := ev - n
			bounds.upper[v] = rank
			active.Remove(uint(bounds.rank[v]))
		}
	}

	return bounds
}
