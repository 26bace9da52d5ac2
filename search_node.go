// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package fortune

// search_node.go is the search frontier's unit of work: a board
// paired with the move that produced it and a link back to its
// predecessor, so a winning node can be walked back to a full move
// list. Grounded on original_source/src/board_node.rs (BoardNode),
// generalized from a single linear undo-stack (teacher's logic.go
// moves type) to a DAG, since many frontier branches share the same
// ancestors.
type searchNode struct {
	board       *Board
	key         string
	predecessor *searchNode
	move        Move
	hasMove     bool
	step        uint32
	score       int64
}

// searchHeap is a max-heap over searchNode.score, implementing
// container/heap.Interface. Grounded on the PriorityQueue pattern in
// other_examples/83d78863_brettlyne-cards__go_solver-solver.go.go and
// the A*/Klotski solvers under other_examples/vxm-ppz.
type searchHeap []*searchNode

func (h searchHeap) Len() int { return len(h) }

// Less orders highest score first: container/heap builds a min-heap
// by default, so this is the standard max-heap inversion.
func (h searchHeap) Less(i, j int) bool { return h[i].score > h[j].score }

func (h searchHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *searchHeap) Push(x any) {
	*h = append(*h, x.(*searchNode))
}

func (h *searchHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return node
}

// path walks the predecessor chain back to the root and returns the
// moves in chronological order, each still in the canonical
// coordinates of the step that produced it.
func (n *searchNode) path() []Move {
	var reversed []Move
	for cur := n; cur != nil && cur.hasMove; cur = cur.predecessor {
		reversed = append(reversed, cur.move)
	}
	moves := make([]Move, len(reversed))
	for i, m := range reversed {
		moves[len(reversed)-1-i] = m
	}
	return moves
}
