package storage

import "github.com/vovakirdan/tui-simon/internal/simon"

// HighScores adapts a Store to simon.HighScoreStore.
// A nil Store makes every call a no-op, so the game still runs without a database.
type HighScores struct {
	Store *Store
}

// LoadHighScore implements simon.HighScoreStore.
func (h HighScores) LoadHighScore() (int, error) {
	if h.Store == nil {
		return 0, nil
	}
	return h.Store.HighScore()
}

// SaveHighScore implements simon.HighScoreStore.
func (h HighScores) SaveHighScore(score int) error {
	if h.Store == nil {
		return nil
	}
	_, err := h.Store.SaveHighScore(score)
	return err
}

// Ensure HighScores implements simon.HighScoreStore
var _ simon.HighScoreStore = HighScores{}
