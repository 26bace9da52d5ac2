// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package boardgen deals fresh, seeded Fortune's Foundation boards.
// It is a collaborator, not part of the search engine: the solver
// only ever consumes a *fortune.Board, however it was built.
//
// The shuffle is the teacher's own classic Microsoft rand()
// generator (gazed-purecell/logic.go: shuffle/srand/randClassic),
// generalized from a 52-card deck to Fortune's Foundation's 70-card
// deck. Dealing follows original_source/src/board.rs's Board::random:
// shuffle, then lay ten consecutive groups of seven cards into every
// cascade except index 5, which starts empty.
package boardgen

import (
	"github.com/gazed/fortunesfoundation"
)

// randMax32 mirrors the classic Microsoft rand()'s modulus, the same
// constant gazed-purecell/logic.go uses.
const randMax32 = (1 << 31) - 1

// lcg reproduces the classic Microsoft rand() sequence.
type lcg struct{ seed uint64 }

func newLCG(seed uint64) *lcg { return &lcg{seed: seed} }

func (g *lcg) next() uint64 {
	g.seed = (g.seed*214013 + 2531011) & randMax32
	return g.seed >> 16
}

// shuffle returns deck permuted by a Fisher-Yates-style draw driven
// by the classic generator, exactly as gazed-purecell/logic.go's
// shuffle does for its 52-card deck.
func shuffle(seed uint64, deck [70]fortune.Card) [70]fortune.Card {
	pool := deck
	remaining := uint64(len(pool))
	g := newLCG(seed)
	var dealt [70]fortune.Card
	for i := 0; i < len(dealt); i++ {
		j := g.next() % remaining
		dealt[i] = pool[j]
		remaining--
		pool[j] = pool[remaining]
	}
	return dealt
}

// Deal shuffles the 70-card deck with seed and lays it out into 11
// cascades the way original_source/src/board.rs's Board::random does:
// ten groups of seven cards, group i landing in cascade i for i <= 4
// and cascade i+1 for i > 4, leaving cascade 5 empty.
//
// Every minor foundation starts on its Ace: the deck holds no Aces,
// and NewBoard sets each suit's foundation one below its lowest dealt
// rank, 2, so each suit's 2 is the first card its foundation accepts.
func Deal(seed uint64) *fortune.Board {
	dealt := shuffle(seed, fortune.Deck())

	var cascades [fortune.CascadeCount][]fortune.Card
	for i, c := range dealt {
		group := i / 7
		slot := group
		if group > 4 {
			slot = group + 1
		}
		cascades[slot] = append(cascades[slot], c)
	}
	return fortune.NewBoard(0, false, cascades)
}
