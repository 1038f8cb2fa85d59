package connectfour

import (
	"errors"
	"fmt"
)

// Errors returned by ApplyMove, wrapped in a *MoveError.
var (
	ErrInvalidColumn = errors.New("invalid column")
	ErrColumnFull    = errors.New("column is full")
	ErrGameOver      = errors.New("game is already over")
)

// ErrInvalidDimensions is returned by NewWithSize for boards smaller than ConnectLength.
var ErrInvalidDimensions = errors.New("connectfour: board dimensions must be at least 4x4")

// MoveError describes a rejected move. The board is unchanged when it is returned.
type MoveError struct {
	Move   int // 1-based number the move would have had
	Column int
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %d (column %d): %v", e.Move, e.Column, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
