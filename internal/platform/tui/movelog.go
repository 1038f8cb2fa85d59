package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connectfour/internal/connectfour"
)

// MoveLogger is a board observer that logs every applied move.
type MoveLogger struct {
	logger  *log.Logger
	variant string
}

// NewMoveLogger creates a move logger. A nil logger uses log.Default().
func NewMoveLogger(logger *log.Logger, variantID string) *MoveLogger {
	if logger == nil {
		logger = log.Default()
	}
	return &MoveLogger{logger: logger, variant: variantID}
}

// Observe logs the last move at debug level and the end of the game at info level.
func (l *MoveLogger) Observe(v connectfour.View) {
	pos, ok := v.LastMove()
	if !ok {
		return
	}
	mover, _ := v.ContentsAt(pos.Row, pos.Col).Player()

	l.logger.Debug("move applied",
		"variant", l.variant,
		"move", v.MovesMade(),
		"player", mover,
		"column", pos.Col,
		"row", pos.Row,
	)

	if status := v.Status(); status.IsOver() {
		l.logger.Info("game over",
			"variant", l.variant,
			"status", status,
			"moves", v.MovesMade(),
			"sequence", connectfour.FormatMoves(v.History()),
		)
	}
}
