package connectfour

import "strings"

// Snapshot is an immutable copy of a board's state, used for replays,
// text output and tests.
type Snapshot struct {
	Rows          int
	Cols          int
	Grid          [][]Cell // Grid[row][col], row 0 at the top
	CurrentPlayer PlayerID
	MovesMade     int
	Status        Status
	History       []int
	WinningLine   []Position
}

// Snapshot returns a copy of the board's current state.
func (b *Board) Snapshot() Snapshot {
	return SnapshotOf(b)
}

// SnapshotOf copies the state visible through v.
func SnapshotOf(v View) Snapshot {
	grid := make([][]Cell, v.Rows())
	for r := range grid {
		grid[r] = make([]Cell, v.Cols())
		for c := range grid[r] {
			grid[r][c] = v.ContentsAt(r, c)
		}
	}

	return Snapshot{
		Rows:          v.Rows(),
		Cols:          v.Cols(),
		Grid:          grid,
		CurrentPlayer: v.CurrentPlayer(),
		MovesMade:     v.MovesMade(),
		Status:        v.Status(),
		History:       v.History(),
		WinningLine:   v.WinningLine(),
	}
}

// String renders the grid as text, one row per line, followed by a line of
// column indices (modulo 10).
//
//	. . . . . . .
//	. . . X . . .
//	. . O X . . .
//	0 1 2 3 4 5 6
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.Grow((s.Rows + 1) * (2*s.Cols + 1))

	for _, row := range s.Grid {
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(cell.Symbol())
		}
		sb.WriteByte('\n')
	}
	for c := 0; c < s.Cols; c++ {
		if c > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('0' + c%10))
	}
	return sb.String()
}
