package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connectfour/internal/storage"
)

// memStore is an in-memory ResultStore.
type memStore struct {
	results []storage.Result
}

func (s *memStore) SaveResult(r storage.Result) (storage.Result, error) {
	r.ID = int64(len(s.results) + 1)
	r.GameID = fmt.Sprintf("game-%d", r.ID)
	r.CreatedAt = time.Now()
	s.results = append(s.results, r)
	return r, nil
}

func (s *memStore) ResultsByVariant(variantID string, limit int) ([]storage.Result, error) {
	var out []storage.Result
	for i := len(s.results) - 1; i >= 0 && len(out) < limit; i-- {
		if s.results[i].Variant == variantID {
			out = append(out, s.results[i])
		}
	}
	return out, nil
}

func (s *memStore) Stats(variantID string) (*storage.Stats, error) {
	stats := &storage.Stats{Variant: variantID}
	total := 0
	for _, r := range s.results {
		if r.Variant != variantID {
			continue
		}
		stats.Games++
		total += r.Moves
		switch r.Outcome {
		case storage.OutcomePlayerOne:
			stats.PlayerOneWins++
		case storage.OutcomePlayerTwo:
			stats.PlayerTwoWins++
		case storage.OutcomeDraw:
			stats.Draws++
		}
	}
	if stats.Games > 0 {
		stats.AvgMoves = float64(total) / float64(stats.Games)
	}
	return stats, nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}
