// Copyright (c) 2025 The Sap Authors
// SPDX-License-Identifier: MIT

package bitset

import (
	"reflect"
	"testing"
)

func TestLastLevelIsOneWord(t *testing.T) {
	tree := New(100)
	if got := len(tree.levels[len(tree.levels)-1]); got != 1 {
		t.Fatalf("top level has %d words, want 1", got)
	}
}

func TestInsertUpdatesParents(t *testing.T) {
	tree := New(4097)
	tree.Insert(4097)

	wordIdx := 4097 / 64
	if got := tree.levels[0][wordIdx]; got != 2 {
		t.Fatalf("levels[0][%d] = %d, want 2", wordIdx, got)
	}
	wordIdx /= 64
	if got := tree.levels[1][wordIdx]; got != 1 {
		t.Fatalf("levels[1][%d] = %d, want 1", wordIdx, got)
	}
}

func TestSuccessorSameWord(t *testing.T) {
	tree := New(100)
	tree.Insert(35)

	got, ok := tree.Successor(4)
	if !ok || got != 35 {
		t.Fatalf("Successor(4) = (%d, %v), want (35, true)", got, ok)
	}
}

func TestSuccessorDifferentWord(t *testing.T) {
	tree := New(100)
	tree.Insert(68)

	got, ok := tree.Successor(4)
	if !ok || got != 68 {
		t.Fatalf("Successor(4) = (%d, %v), want (68, true)", got, ok)
	}
}

func TestSuccessorNoneOnEmpty(t *testing.T) {
	tree := New(100)
	if _, ok := tree.Successor(4); ok {
		t.Fatalf("Successor(4) on empty tree returned ok=true")
	}
}

func TestMinOnEmpty(t *testing.T) {
	tree := New(100)
	if _, ok := tree.Min(); ok {
		t.Fatalf("Min() on empty tree returned ok=true")
	}
}

func TestMinReturnsSmallest(t *testing.T) {
	tree := New(100)
	for _, x := range []uint{23, 4, 60, 37} {
		tree.Insert(x)
	}
	got, ok := tree.Min()
	if !ok || got != 4 {
		t.Fatalf("Min() = (%d, %v), want (4, true)", got, ok)
	}
}

func TestRange(t *testing.T) {
	tree := New(100)
	want := []uint{4, 23, 28, 37, 60}
	for _, x := range want {
		tree.Insert(x)
	}

	got := tree.Range(3, 62)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Range(3, 62) = %v, want %v", got, want)
	}
}

func TestRangeAcrossWords(t *testing.T) {
	tree := New(262145)
	want := []uint{4, 65, 4097, 262145}
	for _, x := range want {
		tree.Insert(x)
	}

	got := tree.Range(3, 262146)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Range(3, 262146) = %v, want %v", got, want)
	}
}

func TestRemoveStopsAtFirstNonZeroWord(t *testing.T) {
	tree := New(4097)
	tree.Insert(4097)
	tree.Insert(4098)

	tree.Remove(4097)

	wordIdx := 4097 / 64
	if got := tree.levels[0][wordIdx]; got == 0 {
		t.Fatalf("levels[0][%d] cleared entirely, 4098 should remain", wordIdx)
	}
	wordIdx /= 64
	if got := tree.levels[1][wordIdx]; got != 1 {
		t.Fatalf("levels[1][%d] = %d, want 1 (4098 still a descendant)", wordIdx, got)
	}

	tree.Remove(4098)
	wordIdx = (4097 / 64) / 64
	if got := tree.levels[1][wordIdx]; got != 0 {
		t.Fatalf("levels[1][%d] = %d, want 0 once both descendants removed", wordIdx, got)
	}
}

func TestMembershipMatchesAbstractSet(t *testing.T) {
	tree := New(2000)
	present := map[uint]bool{}

	insert := func(x uint) {
		tree.Insert(x)
		present[x] = true
	}
	remove := func(x uint) {
		tree.Remove(x)
		delete(present, x)
	}

	insert(10)
	insert(500)
	insert(1999)
	insert(0)
	remove(500)
	insert(1)
	remove(0)

	var want []uint
	for x := range present {
		want = append(want, x)
	}
	got := tree.Range(0, tree.Cap())
	if len(got) != len(want) {
		t.Fatalf("Range returned %d members, abstract set has %d: %v vs set %v", len(got), len(want), got, present)
	}
	for _, x := range got {
		if !present[x] {
			t.Fatalf("Range returned %d which is not a member", x)
		}
	}
}
