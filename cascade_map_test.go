// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package fortune

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCascadeMapStartsIdentity(t *testing.T) {
	cm := NewCascadeMap()
	for i := 0; i < CascadeCount; i++ {
		assert.EqualValues(t, i, cm.translateIndex(Location(i)))
	}
	assert.Equal(t, Cell, cm.translateIndex(Cell))
	assert.Equal(t, Foundation, cm.translateIndex(Foundation))
}

func TestCascadeMapAdvanceTracksSort(t *testing.T) {
	cascades := emptyCascades()
	// Cascade 0 ranks highest (largest packed byte), cascade 1 lowest,
	// cascade 2 empty.
	cascades[0] = []Card{NewCard(KingRank, Yellow)}
	cascades[1] = []Card{NewCard(AceRank, Red)}
	b := NewBoard(0, false, cascades)

	cm := NewCascadeMap()
	cm.Advance(b)

	// Cascade 1 (lowest rank) should now be canonical slot 0, cascade
	// 0 somewhere after it, and the empty cascades trail at the end.
	assert.EqualValues(t, 1, cm.indices[0])
	last := cm.indices[CascadeCount-1]
	assert.Empty(t, b.cascades[last])
}

func TestCascadeMapTranslatePassesThroughSentinels(t *testing.T) {
	cm := NewCascadeMap()
	cm.indices[0], cm.indices[1] = 5, 2
	m := Move{From: Location(0), To: Cell, Count: 1}
	got := cm.Translate(m)
	assert.Equal(t, Location(5), got.From)
	assert.Equal(t, Cell, got.To)
}
