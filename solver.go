// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package fortune

// solver.go is the best-first search over canonicalized boards. The
// pack's original_source/src/solver.rs shows the intended shape
// (a visited map plus a binary heap keyed on BoardNode) but its loop
// body stops short of a working implementation -- the full loop,
// staleness handling and path reconstruction below follow the
// prose/pseudocode the board and cascade map types were designed
// against.

import (
	"container/heap"
)

// SolveStatus reports how a Solve call ended.
type SolveStatus int

const (
	// Solved means a winning board was popped, in time to satisfy
	// either ReturnOnFirstSolution or the iteration budget.
	Solved SolveStatus = iota
	// ReachedMaxIterations means the iteration budget was spent
	// without ever popping a winning board.
	ReachedMaxIterations
	// NoSolution means the frontier was exhausted (every reachable
	// state visited) without ever popping a winning board.
	NoSolution
)

func (s SolveStatus) String() string {
	switch s {
	case Solved:
		return "solved"
	case ReachedMaxIterations:
		return "reached max iterations"
	case NoSolution:
		return "no solution"
	}
	return "unknown"
}

// SolveResult is the outcome of a Solve call.
type SolveResult struct {
	// Moves is the winning move sequence in the caller's original
	// cascade coordinates, empty unless Status == Solved.
	Moves []Move
	// Iterations is the number of heap pops processed.
	Iterations uint32
	Status     SolveStatus
}

// Options configures a Solve call.
type Options struct {
	// MaxIterations bounds the number of heap pops.
	MaxIterations uint32
	// MaxSteps bounds how many moves a candidate solution may take;
	// it tightens automatically once a solution is found, so a
	// shorter one found later can still displace it.
	MaxSteps uint32
	// ReturnOnFirstSolution stops the search at the first winning
	// pop instead of continuing to look for a shorter one within the
	// remaining iteration budget.
	ReturnOnFirstSolution bool
}

// Solve runs a best-first search from start toward a fully
// foundationed board, per Options.
func Solve(start *Board, opts Options) SolveResult {
	root := start.Clone()
	root.ApplyAutoMoves()

	if opts.MaxIterations == 0 {
		if root.IsWon() {
			return SolveResult{Status: Solved, Iterations: 0}
		}
		return SolveResult{Status: ReachedMaxIterations, Iterations: 0}
	}

	rootNode := &searchNode{board: root, key: root.Key(), step: 0, score: root.Score(0)}

	visited := map[string]*searchNode{rootNode.key: rootNode}
	queue := &searchHeap{rootNode}
	heap.Init(queue)

	var best *searchNode
	currentMaxSteps := int64(opts.MaxSteps)
	var iter uint32

	for iter < opts.MaxIterations {
		if queue.Len() == 0 {
			if best != nil {
				return SolveResult{Moves: reconstruct(start, best), Iterations: iter, Status: Solved}
			}
			return SolveResult{Iterations: iter, Status: NoSolution}
		}
		node := heap.Pop(queue).(*searchNode)
		iter++

		if visited[node.key] != node {
			// A shorter path superseded this entry after it was
			// pushed; it carries no new information.
			continue
		}

		if node.board.IsWon() {
			if best == nil || node.step < best.step {
				best = node
				if node.step == 0 {
					currentMaxSteps = -1
				} else {
					currentMaxSteps = int64(node.step) - 1
				}
			}
			if opts.ReturnOnFirstSolution {
				return SolveResult{Moves: reconstruct(start, best), Iterations: iter, Status: Solved}
			}
		}

		if int64(node.step) >= currentMaxSteps {
			continue
		}

		for _, m := range node.board.EnumerateMoves() {
			expand(visited, queue, node, m)
		}
	}

	if best != nil {
		return SolveResult{Moves: reconstruct(start, best), Iterations: iter, Status: Solved}
	}
	return SolveResult{Iterations: iter, Status: ReachedMaxIterations}
}

// expand applies m to node's board, canonicalizes the result, and
// either pushes a freshly discovered state or replaces a previously
// visited one if this path reaches it in fewer steps. A replacement
// is not re-pushed: the stale heap entry already queued for that
// state will fail the visited-identity check above and be skipped
// when it surfaces.
func expand(visited map[string]*searchNode, queue *searchHeap, node *searchNode, m Move) {
	nb := node.board.Clone()
	nb.ApplyMove(m)
	nb.Normalize()
	step := node.step + 1
	key := nb.Key()

	if existing, ok := visited[key]; ok {
		if step < existing.step {
			visited[key] = &searchNode{
				board: nb, key: key, predecessor: node, move: m, hasMove: true,
				step: step, score: nb.Score(step),
			}
		}
		return
	}

	next := &searchNode{
		board: nb, key: key, predecessor: node, move: m, hasMove: true,
		step: step, score: nb.Score(step),
	}
	visited[key] = next
	heap.Push(queue, next)
}

// reconstruct replays a winning node's canonical move path from the
// original (un-normalized) start board, translating each move through
// a CascadeMap so the emitted moves refer to the caller's original
// cascade indices rather than the search's canonical ones.
//
// shadow is never itself sorted -- ApplyMove/ApplyAutoMoves only ever
// mutate cascade contents, never cascade position -- so it stays in
// original-label order throughout. The first move was chosen against
// the root, which Solve only auto-moves and never sorts, so it is
// already in original coordinates and passes through untranslated.
// Every later move was emitted by the search against the
// canonicalization of the board reconstruct has just arrived at
// (after the earlier moves and their auto-moves), which is exactly a
// fresh identity sort of shadow's current state, never an
// accumulation of every canonicalization up to that point. A
// CascadeMap carried forward across iterations (composing sort atop
// sort) would drift from this; resetting to identity before every
// Advance keeps each translation grounded in the shadow board
// actually in hand.
func reconstruct(start *Board, winner *searchNode) []Move {
	canonicalMoves := winner.path()
	shadow := start.Clone()
	shadow.ApplyAutoMoves()

	translated := make([]Move, len(canonicalMoves))
	for i, m := range canonicalMoves {
		cm := NewCascadeMap()
		if i > 0 {
			cm.Advance(shadow)
		}
		tm := cm.Translate(m)
		translated[i] = tm
		shadow.ApplyMove(tm)
		shadow.ApplyAutoMoves()
	}
	return translated
}
