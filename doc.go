// Copyright (c) 2025 The Sap Authors
// SPDX-License-Identifier: MIT

// Package sap implements a broad-phase collision detector for
// axis-aligned bounding volumes (AABBs) in three dimensions: given a
// collection of volumes, Collide returns every unordered pair whose
// extents overlap on all three axes.
//
// It replaces the O(N^2) pairwise test with a sweep-and-prune algorithm:
// endpoints are sorted on x and y with a radix argsort
// (internal/radix), and a succinct bit-tree set (internal/bitset) tracks
// the volumes currently "open" during each sweep so that candidate
// pairs can be enumerated in ascending order without a full scan. The
// z-axis is never sorted; it is tested point-wise at pair-emission time.
//
// Collide is synchronous, single-threaded and allocates only
// call-scoped buffers: nothing survives past the call that isn't in the
// returned pair slice. It is not safe, and not intended, for concurrent
// mutation of the input volumes while a call is in flight.
package sap
