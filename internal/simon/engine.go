package simon

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// State is the phase of the round state machine.
type State int

const (
	StateIdle State = iota
	StatePresenting
	StateAwaitingInput
	StateRoundAdvancing
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePresenting:
		return "Presenting"
	case StateAwaitingInput:
		return "AwaitingInput"
	case StateRoundAdvancing:
		return "RoundAdvancing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Running reports whether a game is in progress.
func (s State) Running() bool {
	return s == StatePresenting || s == StateAwaitingInput || s == StateRoundAdvancing
}

// Option configures an Engine.
type Option func(*Engine)

// WithDisplay sets the collaborator that lights pads.
func WithDisplay(d Display) Option {
	return func(e *Engine) { e.display = d }
}

// WithListener sets the collaborator notified of scores.
func WithListener(l Listener) Option {
	return func(e *Engine) { e.listener = l }
}

// WithHighScores sets the high score persistence collaborator.
func WithHighScores(s HighScoreStore) Option {
	return func(e *Engine) { e.highScores = s }
}

// WithRandSource sets the source used to generate sequences.
func WithRandSource(src rand.Source) Option {
	return func(e *Engine) { e.generator = NewGenerator(src) }
}

// WithSeed seeds the sequence generator.
func WithSeed(seed int64) Option {
	return WithRandSource(rand.NewSource(seed))
}

// WithLogger sets the logger for state transitions and persistence errors.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithNow sets the wall clock used to stamp sessions.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// Engine is the round controller. It owns the game state, the score and the
// current session, and is driven entirely by Start, Restart, Select and
// Advance. Engine is not safe for concurrent use; see Driver.
type Engine struct {
	settings Settings

	clock      *Clock
	generator  *Generator
	presenter  *Presenter
	playback   *Playback
	display    Display
	listener   Listener
	highScores HighScoreStore
	logger     *log.Logger
	now        func() time.Time

	state     State
	session   *Session
	highScore int
	newRecord bool
	stale     int
}

// New creates an engine in the Idle state and loads the high score once.
func New(settings Settings, opts ...Option) *Engine {
	e := &Engine{
		settings: settings,
		clock:    NewClock(),
		listener: nopListener{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.generator == nil {
		e.generator = NewGenerator(rand.NewSource(time.Now().UnixNano()))
	}
	if e.listener == nil {
		e.listener = nopListener{}
	}
	e.presenter = NewPresenter(e.display, settings.Settle)
	e.playback = NewPlayback(e.presenter)
	e.session = newSession(0, settings.Timing, e.now())

	if e.highScores != nil {
		high, err := e.highScores.LoadHighScore()
		if err != nil {
			e.logger.Warn("could not load high score", "error", err)
		} else {
			e.highScore = high
		}
	}

	return e
}

// State returns the current state.
func (e *Engine) State() State { return e.state }

// Score returns the score of the current game.
func (e *Engine) Score() int { return e.session.score }

// HighScore returns the best score known to the engine.
func (e *Engine) HighScore() int { return e.highScore }

// Session returns the current game session.
func (e *Engine) Session() *Session { return e.session }

// Clock returns the engine's event loop.
func (e *Engine) Clock() *Clock { return e.clock }

// StaleTimers returns how many timers were dropped because their game had
// been replaced.
func (e *Engine) StaleTimers() int { return e.stale }

// Start begins a new game from Idle or GameOver. It is ignored while a game
// is running.
func (e *Engine) Start() {
	if e.state.Running() {
		e.logger.Debug("start ignored", "state", e.state)
		return
	}
	e.newGame()
}

// Restart abandons any game in progress and starts a new one.
// Timers still pending for the old game are invalidated.
func (e *Engine) Restart() {
	e.newGame()
}

// Select handles one player selection. Selections outside AwaitingInput and
// signals outside the alphabet are ignored.
func (e *Engine) Select(sig Signal) {
	if !sig.Valid() || e.state != StateAwaitingInput {
		return
	}

	s := e.session
	verdict := s.validator.Submit(s.sequence, sig)
	if verdict == VerdictIgnored {
		return
	}
	e.presenter.Echo(e.scheduler(s), sig, s.timing)

	switch verdict {
	case VerdictBroken:
		e.gameOver(s)
	case VerdictComplete:
		e.roundComplete(s)
	}
}

// Advance moves time forward by d and runs every timer that comes due.
func (e *Engine) Advance(d time.Duration) {
	e.clock.Advance(d)
}

func (e *Engine) newGame() {
	prev := e.session
	e.session = newSession(prev.Generation+1, e.settings.Timing, e.now())
	e.newRecord = false
	e.presenter.Blank()

	e.setState(StateIdle)
	e.logger.Debug("new game", "id", e.session.ID, "generation", e.session.Generation)
	e.listener.ReportScore(0)
	e.beginRound(e.session)
}

func (e *Engine) beginRound(s *Session) {
	s.sequence = e.generator.Extend(s.sequence)
	s.validator.Reset()
	e.setState(StatePresenting)

	e.playback.Play(e.scheduler(s), s.sequence, s.timing, func() {
		s.validator.Open()
		e.setState(StateAwaitingInput)
	})
}

func (e *Engine) roundComplete(s *Session) {
	s.score++
	s.timing = e.settings.Difficulty.Adjust(s.timing, s.score)
	s.validator.Reset()
	e.setState(StateRoundAdvancing)
	e.listener.ReportScore(s.score)
	e.logger.Debug("round complete", "score", s.score, "timing", s.timing)

	e.scheduler(s).After(e.settings.InterRoundDelay, func() {
		e.beginRound(s)
	})
}

func (e *Engine) gameOver(s *Session) {
	e.setState(StateGameOver)
	e.listener.ReportGameOver(s.score)

	if s.score <= e.highScore {
		return
	}
	e.highScore = s.score
	e.newRecord = true
	if e.highScores != nil {
		if err := e.highScores.SaveHighScore(s.score); err != nil {
			e.logger.Warn("could not save high score", "score", s.score, "error", err)
		}
	}
	e.listener.ReportNewHighScore(s.score)
}

func (e *Engine) setState(next State) {
	if e.state == next {
		return
	}
	e.logger.Debug("state", "from", e.state, "to", next, "generation", e.session.Generation)
	e.state = next
}

func (e *Engine) scheduler(s *Session) Scheduler {
	return sessionScheduler{engine: e, session: s}
}

// Snapshot is a read-only view of the engine for rendering.
type Snapshot struct {
	State      State
	Score      int
	HighScore  int
	NewRecord  bool // The game just ended with a new high score
	Round      int  // Length of the current sequence
	Progress   int  // Selections made in the current round
	Timing     Timing
	SessionID  string
	Generation uint64
	Elapsed    time.Duration // Virtual time since the engine was created
}

// Snapshot returns the current view of the engine.
func (e *Engine) Snapshot() Snapshot {
	s := e.session
	return Snapshot{
		State:      e.state,
		Score:      s.score,
		HighScore:  e.highScore,
		NewRecord:  e.newRecord,
		Round:      s.sequence.Len(),
		Progress:   s.validator.Len(),
		Timing:     s.timing,
		SessionID:  s.ID,
		Generation: s.Generation,
		Elapsed:    e.clock.Now(),
	}
}
