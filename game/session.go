package game

import "math/rand"

// State is the coarse game state.
type State int

const (
	StateStart State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	}
	return "unknown"
}

// FeedbackKind marks how the just-resolved round went.
type FeedbackKind int

const (
	FeedbackCorrect FeedbackKind = iota
	FeedbackWrong
)

// Feedback marks a just-resolved pop for the renderer.
type Feedback struct {
	Kind     FeedbackKind
	BubbleID int
}

const (
	// StartLives is the life count at game start.
	StartLives = 5
	// PointsPerPop is the score awarded for a correct pop.
	PointsPerPop = 10

	// Resolution delays in milliseconds of virtual time. A wrong or correct
	// tap settles slowly so the feedback flash reads; escapes advance faster,
	// and an escape straight into game over is near-immediate.
	tapSettleDelay      = 600
	escapeAdvanceDelay  = 300
	escapeGameOverDelay = 100
)

// scheduledEvent is a delayed state transition, fired by Step once the
// session clock reaches fireAt.
type scheduledEvent struct {
	fireAt float64
	action func()
}

// Session owns the whole round state: equation, bubbles, score, lives,
// feedback and the processing latch. The presentation layer only reads it and
// dispatches events back in. Not safe for concurrent use; the caller drives
// it from a single frame loop.
type Session struct {
	r *rand.Rand

	state      State
	difficulty Difficulty

	equation *Equation
	bubbles  []*Bubble

	score int
	lives int

	feedback *Feedback
	popID    int // bubble marked for pop animation, -1 when none

	// processing latches from the moment a round outcome is detected until
	// the next round starts, making taps, hovers and motion ticks idempotent
	// against re-resolving the same round.
	processing bool

	now     float64
	pending []scheduledEvent
}

// NewSession returns a session on the start screen with the given difficulty.
func NewSession(r *rand.Rand, d Difficulty) *Session {
	return &Session{r: r, difficulty: d, popID: -1}
}

func (s *Session) State() State           { return s.state }
func (s *Session) Difficulty() Difficulty { return s.difficulty }
func (s *Session) Score() int             { return s.score }
func (s *Session) Lives() int             { return s.lives }
func (s *Session) Feedback() *Feedback    { return s.feedback }
func (s *Session) Processing() bool       { return s.processing }

// Equation returns the current round's equation, or nil outside a round.
func (s *Session) Equation() *Equation { return s.equation }

// Bubbles returns the full bubble set, escaped ones included.
func (s *Session) Bubbles() []*Bubble { return s.bubbles }

// VisibleBubbles filters the set down to bubbles still on screen.
func (s *Session) VisibleBubbles() []*Bubble {
	vis := make([]*Bubble, 0, len(s.bubbles))
	for _, b := range s.bubbles {
		if b.Visible() {
			vis = append(vis, b)
		}
	}
	return vis
}

// PopAnimation returns the id of the bubble marked for the pop animation and
// whether one is marked.
func (s *Session) PopAnimation() (int, bool) { return s.popID, s.popID >= 0 }

// SetDifficulty switches preset. Ignored mid-game; the start and game-over
// screens are the only places the preset can change.
func (s *Session) SetDifficulty(d Difficulty) {
	if s.state == StateStart || s.state == StateGameOver {
		s.difficulty = d
	}
}

// StartGame resets score and lives and begins the first round. Valid from
// the start and game-over screens.
func (s *Session) StartGame() {
	if s.state == StatePlaying || s.state == StatePaused {
		return
	}
	s.state = StatePlaying
	s.score = 0
	s.lives = StartLives
	s.pending = nil
	s.startNewRound()
}

// PauseGame freezes play. The session clock only advances while playing, so
// any pending resolution is deferred, not dropped.
func (s *Session) PauseGame() {
	if s.state == StatePlaying {
		s.state = StatePaused
	}
}

// ResumeGame returns from pause to play.
func (s *Session) ResumeGame() {
	if s.state == StatePaused {
		s.state = StatePlaying
	}
}

// QuitToStart abandons the session and returns to the start screen. Pending
// resolutions are dropped so nothing stale fires into a new game.
func (s *Session) QuitToStart() {
	if s.state != StatePaused && s.state != StateGameOver {
		return
	}
	s.state = StateStart
	s.equation = nil
	s.bubbles = nil
	s.feedback = nil
	s.popID = -1
	s.processing = false
	s.pending = nil
}

// OnEscapeKey pauses the game; honored only while playing.
func (s *Session) OnEscapeKey() { s.PauseGame() }

// HandleBubbleClick resolves a tap on a bubble. Stale or duplicate events
// (wrong state, no equation, outcome already resolving, unknown id) are
// silent no-ops.
func (s *Session) HandleBubbleClick(id int) {
	if s.state != StatePlaying || s.equation == nil || s.feedback != nil || s.processing {
		return
	}
	b := s.bubble(id)
	if b == nil {
		return
	}
	s.processing = true
	s.popID = id
	if b.Op == s.equation.Op {
		s.feedback = &Feedback{Kind: FeedbackCorrect, BubbleID: id}
		s.score += PointsPerPop
		s.schedule(tapSettleDelay, s.startNewRound)
		return
	}
	s.feedback = &Feedback{Kind: FeedbackWrong, BubbleID: id}
	s.lives--
	if s.lives <= 0 {
		s.schedule(tapSettleDelay, s.gameOver)
	} else {
		s.schedule(tapSettleDelay, s.startNewRound)
	}
}

// HandleBubbleHover toggles a bubble's hover-pause. Pointer enter/leave is
// independent per bubble, so several bubbles may be paused at once.
func (s *Session) HandleBubbleHover(id int, paused bool) {
	if s.processing || s.feedback != nil {
		return
	}
	if b := s.bubble(id); b != nil {
		b.Paused = paused
	}
}

func (s *Session) bubble(id int) *Bubble {
	for _, b := range s.bubbles {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// startNewRound replaces the equation and bubble set and releases the
// processing latch.
func (s *Session) startNewRound() {
	eq := NewEquation(s.r)
	s.equation = &eq
	s.bubbles = spawnBubbles(s.r, eq.Op, s.difficulty)
	s.feedback = nil
	s.popID = -1
	s.processing = false
}

func (s *Session) gameOver() {
	s.state = StateGameOver
	s.processing = false
}

func (s *Session) schedule(delay float64, action func()) {
	s.pending = append(s.pending, scheduledEvent{fireAt: s.now + delay, action: action})
}
