// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package fortune

// cascade_map.go tracks the permutation that canonicalization applies
// to a board's 11 cascades, so a move recorded in canonical
// coordinates can be translated back to the caller's original
// cascade labeling. Grounded on original_source/src/cascade_map.rs.

import (
	"math"
	"sort"
)

// cascadeRank orders cascades for canonical sort: empty cascades sort
// last (they compare equal to each other and larger than any
// non-empty cascade); non-empty cascades compare by the packed byte
// of their bottom card (index 0), which is unique across a legal
// deal so ties never occur.
func cascadeRank(cascade []Card) uint32 {
	if len(cascade) == 0 {
		return math.MaxUint32
	}
	return uint32(cascade[0])
}

// CascadeMap is a length-11 permutation: indices[canonicalSlot] gives
// the original cascade label that currently sits in that canonical
// slot. It starts as the identity and accumulates the sort performed
// by each canonicalization it is advanced past.
type CascadeMap struct {
	indices [CascadeCount]uint8
}

// NewCascadeMap returns the identity mapping.
func NewCascadeMap() CascadeMap {
	cm := CascadeMap{}
	for i := range cm.indices {
		cm.indices[i] = uint8(i)
	}
	return cm
}

// Advance composes the current mapping with the sort that
// canonicalizing b would perform: b's cascades are read in their
// present (pre-sort) order, paired with the label each currently
// holds, then reordered by cascade rank. The result is the new
// canonical-slot -> original-label mapping.
func (cm *CascadeMap) Advance(b *Board) {
	type slot struct {
		label uint8
		rank  uint32
	}
	slots := make([]slot, CascadeCount)
	for i := 0; i < CascadeCount; i++ {
		slots[i] = slot{label: cm.indices[i], rank: cascadeRank(b.cascades[i])}
	}
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].rank < slots[j].rank })
	for i, s := range slots {
		cm.indices[i] = s.label
	}
}

// Translate rewrites a move's cascade endpoints from canonical
// indices to original indices. Cell and Foundation pass through
// unchanged.
func (cm CascadeMap) Translate(m Move) Move {
	return Move{From: cm.translateIndex(m.From), To: cm.translateIndex(m.To), Count: m.Count}
}

func (cm CascadeMap) translateIndex(l Location) Location {
	if isCascade(l) {
		return Location(cm.indices[uint8(l)])
	}
	return l
}
