package connectfour

// StatusKind is the phase of a game.
type StatusKind uint8

const (
	InProgress StatusKind = iota
	Won
	Draw
)

func (k StatusKind) String() string {
	switch k {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Status is InProgress, Won by a player, or Draw.
// The zero Status is InProgress.
type Status struct {
	kind   StatusKind
	winner PlayerID
}

// WonBy returns the terminal status for a game won by p.
func WonBy(p PlayerID) Status {
	return Status{kind: Won, winner: p}
}

// Drawn returns the terminal status for a full board without a winner.
func Drawn() Status {
	return Status{kind: Draw}
}

// Kind returns the phase of the game.
func (s Status) Kind() StatusKind {
	return s.kind
}

// Winner returns the winning player and true when the game was won.
func (s Status) Winner() (PlayerID, bool) {
	if s.kind != Won {
		return 0, false
	}
	return s.winner, true
}

// IsOver reports whether the status is terminal (Won or Draw).
func (s Status) IsOver() bool {
	return s.kind != InProgress
}

func (s Status) String() string {
	if s.kind == Won {
		return "won by " + s.winner.String()
	}
	return s.kind.String()
}
