// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package render pretty-prints a board for the command line, fixed
// width columns so cascades line up. Grounded on
// original_source/src/board.rs's Display impl, in the vein of the
// teacher's own dumpBoard/dumpDeck debug helpers (logic.go).
package render

import (
	"fmt"
	"strings"

	"github.com/gazed/fortunesfoundation"
)

const cellWidth = 4

func cardStr(c fortune.Card, ok bool) string {
	if !ok {
		return strings.Repeat(" ", cellWidth)
	}
	return fmt.Sprintf("%-*s", cellWidth, c.String())
}

// Board renders the foundations on a header line, the cell beside
// them, then the 11 cascades dealt out row by row underneath.
func Board(b *fortune.Board) string {
	var sb strings.Builder

	low, high := b.MajorFoundation()
	sb.WriteString(cardStr(majorCard(low), low >= fortune.MajorMinRank && low <= fortune.MajorMaxRank))
	sb.WriteString(" ")
	sb.WriteString(cardStr(majorCard(high), high >= fortune.MajorMinRank && high <= fortune.MajorMaxRank))
	sb.WriteString("     ")

	cell, cellOK := b.Cell()
	sb.WriteString(cardStr(cell, cellOK))
	sb.WriteString("      ")

	for _, s := range [...]fortune.Suit{fortune.Red, fortune.Green, fortune.Blue, fortune.Yellow} {
		r := b.MinorFoundation(s)
		sb.WriteString(cardStr(fortune.NewCard(minorDisplayRank(r), s), r > 0))
	}

	cascades := b.Cascades()
	maxRows := 0
	for _, cascade := range cascades {
		if len(cascade) > maxRows {
			maxRows = len(cascade)
		}
	}

	for row := 0; row < maxRows; row++ {
		sb.WriteString("\n")
		for _, cascade := range cascades {
			if row < len(cascade) {
				sb.WriteString(cardStr(cascade[row], true))
			} else {
				sb.WriteString(strings.Repeat(" ", cellWidth))
			}
		}
	}
	return sb.String()
}

// majorCard returns a displayable card for a major foundation pointer
// that sits strictly inside the valid rank range; callers gate
// display on the accompanying bool from Board()'s range check.
func majorCard(rank int8) fortune.Card {
	if rank < fortune.MajorMinRank || rank > fortune.MajorMaxRank {
		return 0
	}
	return fortune.NewCard(uint8(rank), fortune.Major)
}

// minorDisplayRank clamps a zero (nothing foundationed yet) to the
// Ace so NewCard never sees a sub-Ace rank; callers gate display on
// r > 0 from Board()'s own check.
func minorDisplayRank(r uint8) uint8 {
	if r == 0 {
		return fortune.AceRank
	}
	return r
}
