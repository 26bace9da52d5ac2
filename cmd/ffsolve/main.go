// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// ffsolve reads a Fortune's Foundation board from a text file (or
// deals one from a seed), runs the best-first solver against it, and
// prints the resulting move sequence. Grounded on
// original_source/src/bin.rs's clap-based flag set and the teacher's
// main.go slog wiring (gazed-purecell).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/gazed/fortunesfoundation"
	"github.com/gazed/fortunesfoundation/internal/boardgen"
	"github.com/gazed/fortunesfoundation/internal/boardtext"
	"github.com/gazed/fortunesfoundation/internal/render"
	"github.com/gazed/fortunesfoundation/internal/solvecache"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	inputPath := flag.String("input", "", "path to a board text file (mutually exclusive with -seed)")
	seed := flag.Uint64("seed", 0, "deal a random board from this seed instead of -input")
	maxIter := flag.Uint("max-iter", 100_000, "maximum number of search iterations")
	maxSteps := flag.Uint("max-steps", 80, "maximum number of moves a solution may take")
	full := flag.Bool("full", false, "keep searching for a shorter solution instead of stopping at the first one found")
	hideBoards := flag.Bool("hide-boards", false, "print only the move list, not the board after each move")
	cachePath := flag.String("cache", "", "optional path to a YAML solve-outcome cache")
	flag.Parse()

	if err := run(*inputPath, *seed, uint32(*maxIter), uint32(*maxSteps), *full, *hideBoards, *cachePath); err != nil {
		slog.Error("ffsolve failed", "error", err)
		os.Exit(1)
	}
}

func run(inputPath string, seed uint64, maxIter, maxSteps uint32, full, hideBoards bool, cachePath string) error {
	board, err := loadBoard(inputPath, seed)
	if err != nil {
		return err
	}

	fmt.Printf("Board state:\n%s\n\n", render.Board(board))
	fmt.Printf("Max iterations: %d\n", maxIter)
	fmt.Printf("Max steps: %d\n", maxSteps)
	fmt.Printf("Evaluate all iterations: %t\n\n", full)

	var cache *solvecache.Cache
	var digest string
	if cachePath != "" {
		cache = solvecache.New(cachePath)
		cache.Restore()
		digest = solvecache.Digest(board)
	}

	var result fortune.SolveResult
	fromCache := false
	if cache != nil {
		if cached, ok := cache.Lookup(digest); ok && cached.Status == fortune.Solved.String() && uint32(cached.Moves) <= maxSteps {
			fmt.Println("Already solved, skipping search.")
			fmt.Println()
			result = fortune.SolveResult{Status: fortune.Solved, Iterations: cached.Iterations, Moves: make([]fortune.Move, cached.Moves)}
			fromCache = true
		}
	}
	if !fromCache {
		fmt.Println("Solving...")
		fmt.Println()
		result = fortune.Solve(board, fortune.Options{
			MaxIterations:         maxIter,
			MaxSteps:              maxSteps,
			ReturnOnFirstSolution: !full,
		})
		if cache != nil {
			cache.Record(digest, result)
		}
	}

	switch result.Status {
	case fortune.Solved:
		fmt.Printf("Found a solution with %d moves.\n", len(result.Moves))
	case fortune.ReachedMaxIterations:
		fmt.Println("No solution found.")
	case fortune.NoSolution:
		fmt.Println("No solution exists.")
	}

	if result.Status != fortune.Solved {
		return nil
	}
	if fromCache {
		// Only the move count was cached, not the moves themselves --
		// there is nothing to replay.
		return nil
	}

	fmt.Println()
	replay := board.Clone()
	for i, m := range result.Moves {
		if hideBoards {
			fmt.Printf("Move %d - %s\n", i+1, m)
			continue
		}
		replay.ApplyMove(m)
		replay.ApplyAutoMoves()
		fmt.Printf("Move %d - %s:\n%s\n\n", i+1, m, render.Board(replay))
	}
	return nil
}

func loadBoard(inputPath string, seed uint64) (*fortune.Board, error) {
	if inputPath == "" {
		return boardgen.Deal(seed), nil
	}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, errors.Wrapf(err, "read board file %s", inputPath)
	}
	board, err := boardtext.ParseBoard(string(data), "")
	if err != nil {
		return nil, errors.Wrapf(err, "parse board file %s", inputPath)
	}
	return board, nil
}
