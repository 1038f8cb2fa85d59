// Package connectfour implements the Connect Four game engine: the board,
// gravity resolution, turn alternation and win/draw detection.
//
// The engine is synchronous and has no locks. A Board is owned by a single
// goroutine; callers sharing one across goroutines must serialize every call.
// Observers registered with Subscribe run on the goroutine that applied the
// move and receive a read-only View. Calling ApplyMove from an observer panics.
package connectfour

import "fmt"

const (
	DefaultRows   = 6
	DefaultCols   = 7
	ConnectLength = 4 // discs in a row needed to win, also the minimum board dimension
)

// directions are the line deltas checked through the last disc:
// horizontal, vertical, diagonal "\" and diagonal "/".
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Board is the state of one game.
type Board struct {
	rows, cols int
	grid       []Cell // row-major, row 0 at the top
	current    PlayerID
	moves      int
	status     Status
	last       Position
	line       []Position
	history    []int
	notifier   Notifier
	notifying  bool
}

// New creates an empty standard 6x7 board with PlayerOne to move.
func New() *Board {
	return newBoard(DefaultRows, DefaultCols)
}

// NewWithSize creates an empty board with the given dimensions.
// Both dimensions must be at least ConnectLength.
func NewWithSize(rows, cols int) (*Board, error) {
	if rows < ConnectLength || cols < ConnectLength {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return newBoard(rows, cols), nil
}

func newBoard(rows, cols int) *Board {
	return &Board{
		rows:    rows,
		cols:    cols,
		grid:    make([]Cell, rows*cols),
		current: PlayerOne,
	}
}

// ApplyMove drops a disc for the current player into column.
// It panics when called from inside an observer.
//
// Checks run in order: column range (ErrInvalidColumn), game over (ErrGameOver),
// full column (ErrColumnFull). A rejected move returns a *MoveError and leaves the
// board untouched. On success the status is recomputed, the turn passes to the
// other player unless the game just ended, and observers are notified once.
func (b *Board) ApplyMove(column int) error {
	if b.notifying {
		panic("connectfour: ApplyMove called from an observer")
	}

	switch {
	case column < 0 || column >= b.cols:
		return b.reject(column, ErrInvalidColumn)
	case b.status.IsOver():
		return b.reject(column, ErrGameOver)
	case !b.grid[b.index(0, column)].IsEmpty():
		return b.reject(column, ErrColumnFull)
	}

	row := b.rows - 1
	for !b.grid[b.index(row, column)].IsEmpty() {
		row--
	}

	player := b.current
	b.grid[b.index(row, column)] = OccupiedBy(player)
	b.moves++
	b.history = append(b.history, column)
	b.last = Position{Row: row, Col: column}

	b.status, b.line = b.statusAfterMove(row, column, player)
	if !b.status.IsOver() {
		b.current = player.Other()
	}

	b.notifying = true
	defer func() { b.notifying = false }()
	b.notifier.Notify(readOnly{b})
	return nil
}

func (b *Board) reject(column int, err error) error {
	return &MoveError{Move: b.moves + 1, Column: column, Err: err}
}

// statusAfterMove computes the status after player placed a disc at (row, col).
// Only lines through that disc are examined: the board was not won before the
// move, so any new four-in-a-row must include it.
func (b *Board) statusAfterMove(row, col int, player PlayerID) (Status, []Position) {
	for _, d := range directions {
		if line := b.lineThrough(row, col, d[0], d[1], player); len(line) >= ConnectLength {
			return WonBy(player), line
		}
	}
	if b.moves == b.rows*b.cols {
		return Drawn(), nil
	}
	return Status{}, nil
}

// lineThrough returns the run of player's discs along (dr, dc) that contains (row, col),
// ordered from one end to the other.
func (b *Board) lineThrough(row, col, dr, dc int, player PlayerID) []Position {
	r, c := row, col
	for b.ownedBy(r-dr, c-dc, player) {
		r -= dr
		c -= dc
	}

	var line []Position
	for ; b.ownedBy(r, c, player); r, c = r+dr, c+dc {
		line = append(line, Position{Row: r, Col: c})
	}
	return line
}

func (b *Board) ownedBy(row, col int, player PlayerID) bool {
	if !b.inBounds(row, col) {
		return false
	}
	owner, ok := b.grid[b.index(row, col)].Player()
	return ok && owner == player
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// ContentsAt returns the cell at (row, col). Out-of-range positions read as Empty.
func (b *Board) ContentsAt(row, col int) Cell {
	if !b.inBounds(row, col) {
		return Empty
	}
	return b.grid[b.index(row, col)]
}

// CurrentPlayer returns the player to move. Once the game is over it is the
// player who made the final move.
func (b *Board) CurrentPlayer() PlayerID {
	return b.current
}

// MovesMade returns the number of successfully applied moves.
func (b *Board) MovesMade() int {
	return b.moves
}

// Status returns the game status.
func (b *Board) Status() Status {
	return b.status
}

// LastMove returns the position of the most recent disc, or false before the first move.
func (b *Board) LastMove() (Position, bool) {
	return b.last, b.moves > 0
}

// WinningLine returns the cells of the completed line once the game is won, nil otherwise.
func (b *Board) WinningLine() []Position {
	if b.line == nil {
		return nil
	}
	return append([]Position(nil), b.line...)
}

// History returns the columns of all successful moves in order.
func (b *Board) History() []int {
	return append([]int(nil), b.history...)
}

// CanDrop reports whether a move into column would currently be accepted.
func (b *Board) CanDrop(column int) bool {
	return column >= 0 && column < b.cols &&
		!b.status.IsOver() &&
		b.grid[b.index(0, column)].IsEmpty()
}

// ValidColumns returns every column that currently accepts a disc, in ascending order.
func (b *Board) ValidColumns() []int {
	var cols []int
	for c := 0; c < b.cols; c++ {
		if b.CanDrop(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// Subscribe registers an observer invoked after every successful move.
func (b *Board) Subscribe(o Observer) Subscription {
	return b.notifier.Subscribe(o)
}

// Unsubscribe removes an observer. It reports whether the subscription was registered.
func (b *Board) Unsubscribe(s Subscription) bool {
	return b.notifier.Unsubscribe(s)
}
