// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package solvecache persists solve outcomes across command line
// invocations, so re-running ffsolve against a board already solved
// doesn't redo the search. Generalizes the teacher's save.go, which
// persists a map[uint]uint of high scores keyed by game seed, into a
// map of richer solve outcomes keyed by the board's own digest --
// a seed is only one way to arrive at a board (ffsolve also accepts
// one parsed straight from a text file, with no seed at all), so the
// cache is keyed on what was actually solved, not how it was obtained.
package solvecache

import (
	"encoding/hex"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gazed/fortunesfoundation"
)

// Entry is one cached solve outcome.
type Entry struct {
	Status     string `yaml:"status"`
	Iterations uint32 `yaml:"iterations"`
	Moves      int    `yaml:"moves"`
}

// Cache maps a board digest to its most recently recorded solve
// outcome.
type Cache struct {
	file string

	Results map[string]Entry `yaml:"results"`
}

// New returns an empty cache bound to file; it is not read from disk
// until Restore is called.
func New(file string) *Cache {
	return &Cache{file: file, Results: map[string]Entry{}}
}

// Digest returns the cache key for board: its Key() hex encoded (of
// the board as given, not normalized), so two different boards that happen to arrive by the same
// seed (or none at all) are never confused.
func Digest(board *fortune.Board) string {
	return hex.EncodeToString([]byte(board.Key()))
}

// Restore loads previously persisted results, if the file exists. A
// missing file is not an error -- a fresh cache starts empty.
func (c *Cache) Restore() {
	data, err := os.ReadFile(c.file)
	if err != nil {
		return
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		slog.Debug("restore solve cache", "error", err)
	}
}

// Record stores the outcome of solving the board with digest and
// persists the cache.
func (c *Cache) Record(digest string, result fortune.SolveResult) {
	c.Results[digest] = Entry{
		Status:     result.Status.String(),
		Iterations: result.Iterations,
		Moves:      len(result.Moves),
	}
	c.persist()
}

// Lookup returns a previously recorded outcome for digest, if any.
func (c *Cache) Lookup(digest string) (Entry, bool) {
	e, ok := c.Results[digest]
	return e, ok
}

func (c *Cache) persist() {
	data, err := yaml.Marshal(c)
	if err != nil {
		slog.Debug("encode solve cache", "error", err)
		return
	}
	if err := os.WriteFile(c.file, data, 0644); err != nil {
		slog.Debug("save solve cache", "error", err)
	}
}
