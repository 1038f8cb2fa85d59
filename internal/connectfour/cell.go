package connectfour

import "fmt"

// PlayerID identifies one of the two players.
// The zero value is not a player; occupied cells always carry PlayerOne or PlayerTwo.
type PlayerID uint8

const (
	PlayerOne PlayerID = iota + 1
	PlayerTwo
)

// Valid reports whether p is PlayerOne or PlayerTwo.
func (p PlayerID) Valid() bool {
	return p == PlayerOne || p == PlayerTwo
}

// Other returns the opponent of p.
func (p PlayerID) Other() PlayerID {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case PlayerOne:
		return "Player One"
	case PlayerTwo:
		return "Player Two"
	default:
		return fmt.Sprintf("PlayerID(%d)", uint8(p))
	}
}

// Cell is the content of one grid position: either Empty or occupied by a player.
// The zero Cell is Empty.
type Cell struct {
	owner PlayerID
}

// Empty is the content of a cell with no disc.
var Empty = Cell{}

// OccupiedBy returns a cell holding a disc of player p.
// It panics if p is not a valid player.
func OccupiedBy(p PlayerID) Cell {
	if !p.Valid() {
		panic(fmt.Sprintf("connectfour: cannot occupy cell with %v", p))
	}
	return Cell{owner: p}
}

// IsEmpty reports whether the cell holds no disc.
func (c Cell) IsEmpty() bool {
	return c.owner == 0
}

// Player returns the owner of the disc and true, or false if the cell is empty.
func (c Cell) Player() (PlayerID, bool) {
	if c.IsEmpty() {
		return 0, false
	}
	return c.owner, true
}

// Symbol returns the plain-text glyph for the cell: '.', 'X' or 'O'.
func (c Cell) Symbol() rune {
	switch c.owner {
	case PlayerOne:
		return 'X'
	case PlayerTwo:
		return 'O'
	default:
		return '.'
	}
}

func (c Cell) String() string {
	if c.IsEmpty() {
		return "empty"
	}
	return "occupied by " + c.owner.String()
}

// Position addresses a grid cell. Row 0 is the top row.
type Position struct {
	Row int
	Col int
}
