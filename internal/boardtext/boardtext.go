// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package boardtext parses the plain-text board notation used by the
// command line front end: one token per card, columns for cascades,
// "-" for an empty slot. Grounded on
// original_source/src/board_helper.rs (parse_card, parse_board).
package boardtext

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gazed/fortunesfoundation"
)

// ParseCard parses a single card token: a minor-arcana rank (A, 2-10,
// J, Q, K) followed by a suit letter (R, G, B, Y), or a bare major
// arcana rank (0-21, no suit letter). The token "-" parses as an
// empty slot: ok is false and err is nil.
func ParseCard(token string) (card fortune.Card, ok bool, err error) {
	if token == "-" {
		return 0, false, nil
	}
	if len(token) == 0 || len(token) > 3 {
		return 0, false, errors.Errorf("boardtext: %q is not a valid card", token)
	}

	last := token[len(token)-1]
	if last >= '0' && last <= '9' {
		rank, convErr := strconv.Atoi(token)
		if convErr != nil || rank < fortune.MajorMinRank || rank > fortune.MajorMaxRank {
			return 0, false, errors.Errorf("boardtext: %q is not a valid card", token)
		}
		return fortune.NewCard(uint8(rank), fortune.Major), true, nil
	}

	suit, suitErr := parseSuit(last)
	if suitErr != nil {
		return 0, false, errors.Wrapf(suitErr, "boardtext: %q is not a valid card", token)
	}
	rank, rankErr := parseMinorRank(token[:len(token)-1])
	if rankErr != nil {
		return 0, false, errors.Wrapf(rankErr, "boardtext: %q is not a valid card", token)
	}
	return fortune.NewCard(rank, suit), true, nil
}

func parseSuit(b byte) (fortune.Suit, error) {
	switch b {
	case 'R':
		return fortune.Red, nil
	case 'G':
		return fortune.Green, nil
	case 'B':
		return fortune.Blue, nil
	case 'Y':
		return fortune.Yellow, nil
	}
	return 0, errors.Errorf("unknown suit letter %q", string(b))
}

func parseMinorRank(s string) (uint8, error) {
	switch s {
	case "A":
		return fortune.AceRank, nil
	case "J":
		return fortune.JackRank, nil
	case "Q":
		return fortune.QueenRank, nil
	case "K":
		return fortune.KingRank, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || uint8(n) < fortune.MinorMinRank || uint8(n) > fortune.MinorMaxRank {
		return 0, errors.Errorf("rank %q out of range", s)
	}
	return uint8(n), nil
}

// UnexpectedCardError reports a card landing in a column whose rows
// above it are not all filled: cascades must be built bottom-up with
// no internal gaps, only a trailing run of "-" at the end.
type UnexpectedCardError struct {
	Column, Row int
	Card        fortune.Card
}

func (e *UnexpectedCardError) Error() string {
	return errors.Errorf("boardtext: unexpected card %s at column %d row %d", e.Card, e.Column, e.Row).Error()
}

// DuplicateCardError reports a card token appearing more than once
// across the board.
type DuplicateCardError struct{ Card fortune.Card }

func (e *DuplicateCardError) Error() string {
	return errors.Errorf("boardtext: duplicate card %s", e.Card).Error()
}

// ParseBoard parses whitespace-separated card tokens laid out
// column-major (token index i belongs to cascade i%11, row i/11) plus
// an optional cell token, and builds the resulting board.
func ParseBoard(cascadeText string, cellText string) (*fortune.Board, error) {
	var cascades [fortune.CascadeCount][]fortune.Card
	seen := make(map[fortune.Card]bool, 70)

	fields := strings.Fields(cascadeText)
	for index, token := range fields {
		column := index % fortune.CascadeCount
		row := index / fortune.CascadeCount

		card, ok, err := ParseCard(token)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if len(cascades[column]) != row {
			return nil, &UnexpectedCardError{Column: column, Row: row, Card: card}
		}
		if seen[card] {
			return nil, &DuplicateCardError{Card: card}
		}
		seen[card] = true
		cascades[column] = append(cascades[column], card)
	}

	var cell fortune.Card
	cellOccupied := false
	if strings.TrimSpace(cellText) != "" {
		c, ok, err := ParseCard(strings.TrimSpace(cellText))
		if err != nil {
			return nil, err
		}
		if ok {
			if seen[c] {
				return nil, &DuplicateCardError{Card: c}
			}
			cell, cellOccupied = c, true
		}
	}

	return fortune.NewBoard(cell, cellOccupied, cascades), nil
}
