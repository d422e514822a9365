package simon

// Listener receives score notifications for display.
type Listener interface {
	ReportScore(score int)
	ReportGameOver(finalScore int)
	ReportNewHighScore(score int)
}

// HighScoreStore persists the best score across processes.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

type nopListener struct{}

func (nopListener) ReportScore(int)        {}
func (nopListener) ReportGameOver(int)     {}
func (nopListener) ReportNewHighScore(int) {}

// Listeners fans notifications out to several listeners in order.
type Listeners []Listener

func (ls Listeners) ReportScore(score int) {
	for _, l := range ls {
		l.ReportScore(score)
	}
}

func (ls Listeners) ReportGameOver(finalScore int) {
	for _, l := range ls {
		l.ReportGameOver(finalScore)
	}
}

func (ls Listeners) ReportNewHighScore(score int) {
	for _, l := range ls {
		l.ReportNewHighScore(score)
	}
}
