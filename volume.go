// Copyright (c) 2025 The Sap Authors
// SPDX-License-Identifier: MIT

package sap

// Volume is the capability an input entity must provide: three axis
// projections, each a (lo, hi) pair of finite coordinates with
// lo <= hi. Projections must be pure and must return the same values
// for the lifetime of a single Collide call; Collide never mutates its
// inputs.
//
// Behavior is undefined if a projection returns lo > hi, NaN, or an
// infinite value.
type Volume interface {
	ProjectX() (lo, hi float64)
	ProjectY() (lo, hi float64)
	ProjectZ() (lo, hi float64)
}

// AABB is a ready-made Volume for the common case of an axis-aligned
// box given directly as three (lo, hi) extents.
type AABB struct {
	X, Y, Z Extent
}

// Extent is a single-axis (lo, hi) interval.
type Extent struct {
	Lo, Hi float64
}

func (b AABB) ProjectX() (lo, hi float64) { return b.X.Lo, b.X.Hi }
func (b AABB) ProjectY() (lo, hi float64) { return b.Y.Lo, b.Y.Hi }
func (b AABB) ProjectZ() (lo, hi float64) { return b.Z.Lo, b.Z.Hi }

// NewAABB builds an AABB from its minimum corner and full width/length/
// height (each extent is [pos, pos+size]), matching the (position, size)
// shape volumes are most often authored in.
func NewAABB(posX, posY, posZ, width, length, height float64) AABB {
	return AABB{
		X: Extent{posX, posX + width},
		Y: Extent{posY, posY + length},
		Z: Extent{posZ, posZ + height},
	}
}

// Pair is an unordered, colliding pair borrowed from the slice passed
// to Collide. IndexA and IndexB are the pair's positions in that slice;
// A and B are the volumes themselves, for callers who only hold the
// Volume interface and not the backing slice.
type Pair struct {
	IndexA, IndexB int
	A, B           Volume
}
