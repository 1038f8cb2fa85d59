package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connectfour/internal/connectfour"
)

// ResultSaver persists finished games. *Store implements it.
type ResultSaver interface {
	SaveResult(Result) (Result, error)
}

var _ ResultSaver = (*Store)(nil)

// Recorder is a board observer that saves the game once it ends.
type Recorder struct {
	saver     ResultSaver
	variant   string
	playerOne string
	playerTwo string
	logger    *log.Logger

	done   bool
	result Result
	err    error
}

// NewRecorder creates a recorder for one game. A nil logger uses log.Default().
func NewRecorder(saver ResultSaver, variantID, playerOne, playerTwo string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{
		saver:     saver,
		variant:   variantID,
		playerOne: playerOne,
		playerTwo: playerTwo,
		logger:    logger,
	}
}

// Observe is the connectfour.Observer. It saves exactly one result, on the first
// notification with a terminal status, and ignores everything after it.
func (r *Recorder) Observe(v connectfour.View) {
	if r.done || !v.Status().IsOver() {
		return
	}
	r.done = true

	result := Result{
		Variant:   r.variant,
		PlayerOne: r.playerOne,
		PlayerTwo: r.playerTwo,
		Outcome:   OutcomeOf(v.Status()),
		Moves:     v.MovesMade(),
		Sequence:  connectfour.FormatMoves(v.History()),
	}

	saved, err := r.saver.SaveResult(result)
	if err != nil {
		r.err = err
		r.logger.Warn("failed to save result", "variant", r.variant, "err", err)
		return
	}
	r.result = saved
	r.logger.Debug("result saved", "game", saved.GameID, "outcome", saved.Outcome, "moves", saved.Moves)
}

// Result returns the saved result and true once the game has been recorded.
func (r *Recorder) Result() (Result, bool) {
	return r.result, r.done && r.err == nil
}

// Err returns the error of a failed save, if any.
func (r *Recorder) Err() error {
	return r.err
}

// OutcomeOf maps a terminal status to its stored outcome.
// It returns "" for a game still in progress.
func OutcomeOf(s connectfour.Status) Outcome {
	switch s.Kind() {
	case connectfour.Draw:
		return OutcomeDraw
	case connectfour.Won:
		if w, _ := s.Winner(); w == connectfour.PlayerTwo {
			return OutcomePlayerTwo
		}
		return OutcomePlayerOne
	}
	return ""
}
