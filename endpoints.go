// Copyright (c) 2025 The Sap Authors
// SPDX-License-Identifier: MIT

package sap

import "github.com/sap-broadphase/sap/internal/radix"

// buildEndpoints lays out one axis's extents as [lows(0..n) | highs(n..2n)]
// and returns the permutation that visits those 2n endpoints in
// ascending coordinate order. A value v < n in the permutation is the
// opening of volume v; a value v >= n is the closing of volume v-n.
//
// Ties are broken by the pre-sort layout: every low bound is listed
// before every high bound, and the argsort is stable, so at equal
// coordinates opens sort before closes. That is what makes touching
// extents count as overlapping.
func buildEndpoints(n int, project func(i int) (lo, hi float64)) []int {
	coords := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		lo, hi := project(i)
		coords[i] = lo
		coords[n+i] = hi
	}
	return radix.ArgsortFloat64(coords)
}
