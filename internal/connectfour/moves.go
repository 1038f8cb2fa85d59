package connectfour

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseMoves parses a move sequence of 0-based column indices.
//
// Two notations are accepted: a compact digit string where every character is
// one move ("3232323"), or integers separated by commas and/or whitespace
// ("3, 2, 10"). An empty string yields no moves.
func ParseMoves(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	isSep := func(r rune) bool { return r == ',' || unicode.IsSpace(r) }

	if strings.IndexFunc(s, isSep) < 0 {
		moves := make([]int, 0, len(s))
		for i, r := range s {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("connectfour: invalid move %q at offset %d", r, i)
			}
			moves = append(moves, int(r-'0'))
		}
		return moves, nil
	}

	fields := strings.FieldsFunc(s, isSep)
	moves := make([]int, 0, len(fields))
	for i, f := range fields {
		col, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("connectfour: invalid move %q at index %d: %w", f, i, err)
		}
		moves = append(moves, col)
	}
	return moves, nil
}

// FormatMoves renders moves as comma-separated column indices.
func FormatMoves(moves []int) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = strconv.Itoa(m)
	}
	return strings.Join(parts, ",")
}

// Replay applies moves to b in order and stops at the first rejected move,
// returning its *MoveError.
func Replay(b *Board, moves []int) error {
	for _, col := range moves {
		if err := b.ApplyMove(col); err != nil {
			return err
		}
	}
	return nil
}
