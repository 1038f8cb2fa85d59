package connectfour

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

// drawnGame fills the standard board without either player connecting four.
const drawnGame = "344603526506503656131365205344011101424222"

// playMoves applies a compact move string and fails the test on any rejection.
func playMoves(t *testing.T, b *Board, moves string) {
	t.Helper()
	cols, err := ParseMoves(moves)
	if err != nil {
		t.Fatalf("ParseMoves(%q) failed: %v", moves, err)
	}
	for i, c := range cols {
		if err := b.ApplyMove(c); err != nil {
			t.Fatalf("move %d (column %d) failed: %v", i+1, c, err)
		}
	}
}

func occupiedCount(b *Board) int {
	n := 0
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if !b.ContentsAt(r, c).IsEmpty() {
				n++
			}
		}
	}
	return n
}

func TestNewBoardInitialState(t *testing.T) {
	b := New()

	if b.Rows() != 6 || b.Cols() != 7 {
		t.Fatalf("New() dimensions = %dx%d, expected 6x7", b.Rows(), b.Cols())
	}
	if b.CurrentPlayer() != PlayerOne {
		t.Errorf("CurrentPlayer() = %v, expected %v", b.CurrentPlayer(), PlayerOne)
	}
	if b.MovesMade() != 0 {
		t.Errorf("MovesMade() = %d, expected 0", b.MovesMade())
	}
	if b.Status().Kind() != InProgress {
		t.Errorf("Status() = %v, expected in progress", b.Status())
	}
	if occupiedCount(b) != 0 {
		t.Errorf("new board has %d occupied cells", occupiedCount(b))
	}
	if _, ok := b.LastMove(); ok {
		t.Error("LastMove() should report no move on a new board")
	}
	if len(b.ValidColumns()) != 7 {
		t.Errorf("ValidColumns() = %v, expected all 7 columns", b.ValidColumns())
	}
}

func TestNewWithSize(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wantErr    bool
	}{
		{"minimum", 4, 4, false},
		{"large", 8, 9, false},
		{"too few rows", 3, 7, true},
		{"too few cols", 6, 3, true},
		{"zero", 0, 0, true},
		{"negative", -6, 7, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := NewWithSize(tc.rows, tc.cols)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidDimensions) {
					t.Errorf("NewWithSize(%d, %d) error = %v, expected ErrInvalidDimensions", tc.rows, tc.cols, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewWithSize(%d, %d) failed: %v", tc.rows, tc.cols, err)
			}
			if b.Rows() != tc.rows || b.Cols() != tc.cols {
				t.Errorf("dimensions = %dx%d, expected %dx%d", b.Rows(), b.Cols(), tc.rows, tc.cols)
			}
		})
	}
}

func TestApplyMoveInvalidColumn(t *testing.T) {
	b := New()
	initial := b.Snapshot()

	for _, col := range []int{-1, b.Cols(), 100} {
		err := b.ApplyMove(col)
		if !errors.Is(err, ErrInvalidColumn) {
			t.Errorf("ApplyMove(%d) error = %v, expected ErrInvalidColumn", col, err)
		}

		var moveErr *MoveError
		if !errors.As(err, &moveErr) {
			t.Fatalf("ApplyMove(%d) error should be a *MoveError, got %T", col, err)
		}
		if moveErr.Column != col || moveErr.Move != 1 {
			t.Errorf("MoveError = %+v, expected Move 1 Column %d", moveErr, col)
		}
	}

	if !reflect.DeepEqual(b.Snapshot(), initial) {
		t.Errorf("board changed after invalid moves:\n%s", b.Snapshot())
	}
}

func TestApplyMoveGravity(t *testing.T) {
	b := New()
	playMoves(t, b, "333")

	expected := map[int]PlayerID{5: PlayerOne, 4: PlayerTwo, 3: PlayerOne}
	for row, player := range expected {
		got, ok := b.ContentsAt(row, 3).Player()
		if !ok || got != player {
			t.Errorf("ContentsAt(%d, 3) = %v, expected %v", row, b.ContentsAt(row, 3), OccupiedBy(player))
		}
	}
	for row := 0; row < 3; row++ {
		if !b.ContentsAt(row, 3).IsEmpty() {
			t.Errorf("ContentsAt(%d, 3) should be empty", row)
		}
	}

	last, ok := b.LastMove()
	if !ok || last != (Position{Row: 3, Col: 3}) {
		t.Errorf("LastMove() = %v, %v, expected {3 3}, true", last, ok)
	}
}

func TestApplyMoveColumnFull(t *testing.T) {
	b := New()
	playMoves(t, b, "000000")

	if b.CanDrop(0) {
		t.Error("CanDrop(0) should be false for a full column")
	}
	before := b.Snapshot()

	err := b.ApplyMove(0)
	if !errors.Is(err, ErrColumnFull) {
		t.Fatalf("ApplyMove(0) error = %v, expected ErrColumnFull", err)
	}
	if !reflect.DeepEqual(b.Snapshot(), before) {
		t.Error("board changed after move into full column")
	}
	if b.MovesMade() != 6 {
		t.Errorf("MovesMade() = %d, expected 6", b.MovesMade())
	}
	if b.CurrentPlayer() != PlayerOne {
		t.Errorf("CurrentPlayer() = %v, expected %v", b.CurrentPlayer(), PlayerOne)
	}

	// The other columns still accept discs.
	if err := b.ApplyMove(1); err != nil {
		t.Errorf("ApplyMove(1) failed after full column rejection: %v", err)
	}
}

func TestScenarioAVerticalWin(t *testing.T) {
	b := New()
	playMoves(t, b, "323232")

	if b.Status().IsOver() {
		t.Fatalf("game should still be in progress after 6 moves, got %v", b.Status())
	}

	if err := b.ApplyMove(3); err != nil {
		t.Fatalf("winning move failed: %v", err)
	}

	if b.Status() != WonBy(PlayerOne) {
		t.Errorf("Status() = %v, expected won by Player One", b.Status())
	}
	if b.MovesMade() != 7 {
		t.Errorf("MovesMade() = %d, expected 7", b.MovesMade())
	}
	if b.CurrentPlayer() != PlayerOne {
		t.Errorf("CurrentPlayer() = %v, expected it to stay %v", b.CurrentPlayer(), PlayerOne)
	}

	expectedLine := []Position{{2, 3}, {3, 3}, {4, 3}, {5, 3}}
	if !reflect.DeepEqual(b.WinningLine(), expectedLine) {
		t.Errorf("WinningLine() = %v, expected %v", b.WinningLine(), expectedLine)
	}
}

func TestWinDetection(t *testing.T) {
	tests := []struct {
		name   string
		moves  string
		winner PlayerID
	}{
		{"horizontal", "0011223", PlayerOne},
		{"horizontal gap filled", "0011332", PlayerOne},
		{"vertical", "3232323", PlayerOne},
		{"diagonal slash", "01122323363", PlayerOne},
		{"diagonal backslash", "65544343303", PlayerOne},
		{"player two vertical", "01010161", PlayerTwo},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New()
			prefix, last := tc.moves[:len(tc.moves)-1], tc.moves[len(tc.moves)-1:]
			playMoves(t, b, prefix)

			// Never earlier.
			if b.Status().IsOver() {
				t.Fatalf("status before final move = %v, expected in progress", b.Status())
			}

			playMoves(t, b, last)

			// Exactly at the completing move.
			if b.Status() != WonBy(tc.winner) {
				t.Fatalf("Status() = %v, expected won by %v", b.Status(), tc.winner)
			}
			if w, ok := b.Status().Winner(); !ok || w != tc.winner {
				t.Errorf("Winner() = %v, %v, expected %v, true", w, ok, tc.winner)
			}

			line := b.WinningLine()
			if len(line) < ConnectLength {
				t.Fatalf("WinningLine() = %v, expected at least %d cells", line, ConnectLength)
			}
			lastPos, _ := b.LastMove()
			containsLast := false
			for _, p := range line {
				if owner, ok := b.ContentsAt(p.Row, p.Col).Player(); !ok || owner != tc.winner {
					t.Errorf("winning line cell %v is %v", p, b.ContentsAt(p.Row, p.Col))
				}
				if p == lastPos {
					containsLast = true
				}
			}
			if !containsLast {
				t.Errorf("winning line %v does not contain last move %v", line, lastPos)
			}

			// Never later: the game accepts nothing more.
			if err := b.ApplyMove(5); !errors.Is(err, ErrGameOver) {
				t.Errorf("ApplyMove after win error = %v, expected ErrGameOver", err)
			}
		})
	}
}

func TestMoveAfterWinLeavesStateUnchanged(t *testing.T) {
	b := New()
	playMoves(t, b, "3232323")
	before := b.Snapshot()

	for _, col := range []int{0, 2, 3, 6} {
		if err := b.ApplyMove(col); !errors.Is(err, ErrGameOver) {
			t.Errorf("ApplyMove(%d) error = %v, expected ErrGameOver", col, err)
		}
	}

	// Column range is checked before game over.
	if err := b.ApplyMove(-1); !errors.Is(err, ErrInvalidColumn) {
		t.Errorf("ApplyMove(-1) error = %v, expected ErrInvalidColumn", err)
	}

	if !reflect.DeepEqual(b.Snapshot(), before) {
		t.Error("board changed after moves on a finished game")
	}
	if len(b.ValidColumns()) != 0 {
		t.Errorf("ValidColumns() = %v, expected none after the game ended", b.ValidColumns())
	}
}

func TestScenarioBDraw(t *testing.T) {
	b := New()
	playMoves(t, b, drawnGame[:41])

	if b.Status().IsOver() {
		t.Fatalf("status after 41 moves = %v, expected in progress", b.Status())
	}

	playMoves(t, b, drawnGame[41:])

	if b.Status() != Drawn() {
		t.Fatalf("Status() = %v, expected draw", b.Status())
	}
	if b.MovesMade() != 42 {
		t.Errorf("MovesMade() = %d, expected 42", b.MovesMade())
	}
	if b.CurrentPlayer() != PlayerTwo {
		t.Errorf("CurrentPlayer() = %v, expected %v (made the final move)", b.CurrentPlayer(), PlayerTwo)
	}
	if _, ok := b.Status().Winner(); ok {
		t.Error("a drawn game should have no winner")
	}
	if b.WinningLine() != nil {
		t.Errorf("WinningLine() = %v, expected nil", b.WinningLine())
	}

	before := b.Snapshot()
	for col := 0; col < b.Cols(); col++ {
		// Every column is full, but game over is reported first.
		if err := b.ApplyMove(col); !errors.Is(err, ErrGameOver) {
			t.Errorf("ApplyMove(%d) error = %v, expected ErrGameOver", col, err)
		}
	}
	if !reflect.DeepEqual(b.Snapshot(), before) {
		t.Error("board changed after moves on a drawn game")
	}
}

func TestWinOnFinalCellIsNotDraw(t *testing.T) {
	b := New()
	playMoves(t, b, "054161240250341554663240320325150633462116")

	if b.Status() != WonBy(PlayerTwo) {
		t.Errorf("Status() = %v, expected won by Player Two", b.Status())
	}
	if b.MovesMade() != 42 {
		t.Errorf("MovesMade() = %d, expected 42", b.MovesMade())
	}
}

func TestMinimumBoard(t *testing.T) {
	t.Run("vertical win", func(t *testing.T) {
		b, err := NewWithSize(4, 4)
		if err != nil {
			t.Fatalf("NewWithSize(4, 4) failed: %v", err)
		}
		playMoves(t, b, "0101010")
		if b.Status() != WonBy(PlayerOne) {
			t.Errorf("Status() = %v, expected won by Player One", b.Status())
		}
	})

	t.Run("draw", func(t *testing.T) {
		b, err := NewWithSize(4, 4)
		if err != nil {
			t.Fatalf("NewWithSize(4, 4) failed: %v", err)
		}
		playMoves(t, b, "0101232310320123")
		if b.Status() != Drawn() {
			t.Errorf("Status() = %v, expected draw", b.Status())
		}
		if b.MovesMade() != 16 {
			t.Errorf("MovesMade() = %d, expected 16", b.MovesMade())
		}
	})
}

func TestContentsAtOutOfRange(t *testing.T) {
	b := New()
	playMoves(t, b, "0")

	positions := []Position{{-1, 0}, {6, 0}, {0, -1}, {0, 7}}
	for _, p := range positions {
		if !b.ContentsAt(p.Row, p.Col).IsEmpty() {
			t.Errorf("ContentsAt(%d, %d) should read as empty", p.Row, p.Col)
		}
	}
}

func TestHistoryIsACopy(t *testing.T) {
	b := New()
	playMoves(t, b, "345")

	h := b.History()
	if !reflect.DeepEqual(h, []int{3, 4, 5}) {
		t.Fatalf("History() = %v, expected [3 4 5]", h)
	}
	h[0] = 6
	if b.History()[0] != 3 {
		t.Error("modifying History() result changed the board")
	}
}

func TestMoveErrorMessage(t *testing.T) {
	b := New()
	err := b.ApplyMove(7)
	if err == nil {
		t.Fatal("ApplyMove(7) should fail")
	}
	expected := "move 1 (column 7): invalid column"
	if err.Error() != expected {
		t.Errorf("Error() = %q, expected %q", err.Error(), expected)
	}
}

// TestRandomGamesKeepInvariants plays seeded random games and checks the
// board invariants after every move.
func TestRandomGamesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for game := 0; game < 200; game++ {
		b := New()
		for !b.Status().IsOver() {
			valid := b.ValidColumns()
			if len(valid) == 0 {
				t.Fatalf("game %d: no valid columns while in progress", game)
			}
			mover := b.CurrentPlayer()
			col := valid[rng.Intn(len(valid))]
			if err := b.ApplyMove(col); err != nil {
				t.Fatalf("game %d: ApplyMove(%d) failed: %v", game, col, err)
			}

			checkInvariants(t, b, mover)

			// A random out-of-range move is always rejected without effect.
			before := b.Snapshot()
			if err := b.ApplyMove(-1 - rng.Intn(3)); err == nil {
				t.Fatalf("game %d: negative column accepted", game)
			}
			if !reflect.DeepEqual(b.Snapshot(), before) {
				t.Fatalf("game %d: rejected move changed the board", game)
			}
		}
	}
}

func checkInvariants(t *testing.T, b *Board, mover PlayerID) {
	t.Helper()

	if got := occupiedCount(b); got != b.MovesMade() {
		t.Fatalf("occupied cells = %d, MovesMade() = %d", got, b.MovesMade())
	}

	for c := 0; c < b.Cols(); c++ {
		seenDisc := false
		for r := 0; r < b.Rows(); r++ {
			empty := b.ContentsAt(r, c).IsEmpty()
			if seenDisc && empty {
				t.Fatalf("gap below a disc in column %d at row %d:\n%s", c, r, b.Snapshot())
			}
			if !empty {
				seenDisc = true
			}
		}
	}

	last, _ := b.LastMove()
	if owner, _ := b.ContentsAt(last.Row, last.Col).Player(); owner != mover {
		t.Fatalf("last disc belongs to %v, expected mover %v", owner, mover)
	}

	if b.Status().IsOver() {
		if b.CurrentPlayer() != mover {
			t.Fatalf("CurrentPlayer() changed after the game ended")
		}
		if b.Status().Kind() == Draw && b.MovesMade() != b.Rows()*b.Cols() {
			t.Fatalf("draw declared with %d moves", b.MovesMade())
		}
		return
	}
	if b.CurrentPlayer() != mover.Other() {
		t.Fatalf("CurrentPlayer() = %v after %v moved, expected %v", b.CurrentPlayer(), mover, mover.Other())
	}
}
