// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package fortune

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveTriviallyWonStart(t *testing.T) {
	cascades := emptyCascades()
	b := NewBoard(0, false, cascades)
	require.True(t, b.IsWon())

	result := Solve(b, Options{MaxIterations: 10, MaxSteps: 10, ReturnOnFirstSolution: true})
	assert.Equal(t, Solved, result.Status)
	assert.EqualValues(t, 1, result.Iterations)
	assert.Empty(t, result.Moves)
}

func TestSolveMaxIterationsZero(t *testing.T) {
	cascades := emptyCascades()
	won := NewBoard(0, false, cascades)
	result := Solve(won, Options{MaxIterations: 0, MaxSteps: 10})
	assert.Equal(t, Solved, result.Status)
	assert.EqualValues(t, 0, result.Iterations)
	assert.Empty(t, result.Moves)

	cascades[0] = []Card{NewCard(AceRank, Red)}
	notWon := NewBoard(0, false, cascades)
	result = Solve(notWon, Options{MaxIterations: 0, MaxSteps: 10})
	assert.Equal(t, ReachedMaxIterations, result.Status)
	assert.EqualValues(t, 0, result.Iterations)
}

func TestSolveForcedAutoMovesOnly(t *testing.T) {
	cascades := emptyCascades()
	cascades[0] = []Card{NewCard(MajorMinRank, Major)}
	b := NewBoard(0, false, cascades)

	result := Solve(b, Options{MaxIterations: 10, MaxSteps: 10, ReturnOnFirstSolution: true})
	assert.Equal(t, Solved, result.Status)
	assert.Empty(t, result.Moves, "the single major resolves via auto-move alone, no explicit move is emitted")
}

func TestSolveOneExplicitMove(t *testing.T) {
	cascades := emptyCascades()
	// Bottom to top: King of Red, Queen of Blue, King of Blue. No other
	// Red or Blue card is on the board, so Red's foundation waits for
	// its King and Blue's for its Queen. The King of Blue sits on top
	// of the Queen and must be moved off (to any empty cascade) before
	// it, the Queen beneath it, or the King of Red at the bottom can
	// reach a foundation. That single unblocking move is the only
	// explicit move the solution needs; everything else follows from
	// auto-moves.
	cascades[0] = []Card{NewCard(KingRank, Red), NewCard(QueenRank, Blue), NewCard(KingRank, Blue)}
	b := NewBoard(0, false, cascades)
	require.False(t, b.canRemoveCard(NewCard(KingRank, Blue)), "King of Blue is blocked until Queen of Blue is foundationed")

	result := Solve(b, Options{MaxIterations: 1000, MaxSteps: 10, ReturnOnFirstSolution: true})
	require.Equal(t, Solved, result.Status)
	require.Len(t, result.Moves, 1)
	assert.True(t, isCascade(result.Moves[0].From) && result.Moves[0].To != Foundation,
		"the lone move unblocks the Queen of Blue, it does not send anything to a foundation directly")

	replay := b.Clone()
	for _, m := range result.Moves {
		replay.ApplyMove(m)
		replay.ApplyAutoMoves()
	}
	assert.True(t, replay.IsWon())
}

func TestSolveNoSolution(t *testing.T) {
	cascades := emptyCascades()
	// 3 of Red buries the Ace; rank 2 of Red never appears anywhere on
	// the board, so the suit can never advance past the Ace and the
	// game can never be won no matter how the single loose 3 is moved
	// around.
	cascades[0] = []Card{NewCard(AceRank, Red), NewCard(3, Red)}
	b := NewBoard(0, false, cascades)

	result := Solve(b, Options{MaxIterations: 5000, MaxSteps: 40})
	assert.Equal(t, NoSolution, result.Status)
	assert.Empty(t, result.Moves)
}

func TestReconstructedMovesAreInOriginalCoordinates(t *testing.T) {
	cascades := emptyCascades()
	// Three independent blocked pairs, one per minor suit, scattered
	// across out-of-order original cascade indices. Each pair needs
	// its own explicit unblocking move (moving the King off the Queen),
	// so the minimal solution is three explicit moves deep, and
	// canonical sort reorders the cascades differently after each one
	// -- exactly the multi-move, reordered-cascade case that exercises
	// path reconstruction's per-step cascade translation.
	cascades[7] = []Card{NewCard(QueenRank, Red), NewCard(KingRank, Red)}
	cascades[2] = []Card{NewCard(QueenRank, Blue), NewCard(KingRank, Blue)}
	cascades[9] = []Card{NewCard(QueenRank, Green), NewCard(KingRank, Green)}
	b := NewBoard(0, false, cascades)

	result := Solve(b, Options{MaxIterations: 20000, MaxSteps: 20, ReturnOnFirstSolution: true})
	require.Equal(t, Solved, result.Status)
	require.GreaterOrEqual(t, len(result.Moves), 3, "each of the three blocked suits needs its own explicit unblocking move")

	replay := b.Clone()
	for _, m := range result.Moves {
		require.True(t, isCascade(m.From) || m.From == Cell)
		replay.ApplyMove(m)
		replay.ApplyAutoMoves()
	}
	assert.True(t, replay.IsWon())
}
