// Copyright (c) 2025 The Sap Authors
// SPDX-License-Identifier: MIT

package sap

// Collide returns every unordered pair of volumes whose 3-D extents
// overlap on all three axes. Output order is unspecified but
// deterministic for a given input: the radix argsort is stable and the
// sweep is otherwise free of randomness.
//
// An empty input, or a single volume, always yields an empty result --
// there is nothing to sweep. Behavior is undefined if any volume's
// projections are non-finite or have lo > hi.
func Collide(volumes []Volume) []Pair {
	n := len(volumes)
	if n < 2 {
		return nil
	}

	sortedX := buildEndpoints(n, func(i int) (float64, float64) { return volumes[i].ProjectX() })
	bounds := computeCandidateBounds(n, sortedX)

	sortedY := buildEndpoints(n, func(i int) (float64, float64) { return volumes[i].ProjectY() })

	var pairs []Pair
	findPairs(n, sortedY, bounds, volumes, func(a, b int) {
		pairs = append(pairs, Pair{
			IndexA: a, IndexB: b,
			A: volumes[a], B: volumes[b],
		})
	})
	return pairs
}
