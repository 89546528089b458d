package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newPlaying(t *testing.T, seed int64) *Session {
	t.Helper()
	s := NewSession(rand.New(rand.NewSource(seed)), Easy)
	s.StartGame()
	require.Equal(t, StatePlaying, s.State())
	require.NotNil(t, s.Equation())
	require.Len(t, s.Bubbles(), 3)
	return s
}

func correctBubble(t *testing.T, s *Session) *Bubble {
	t.Helper()
	for _, b := range s.Bubbles() {
		if b.Op == s.Equation().Op {
			return b
		}
	}
	t.Fatal("no bubble carries the correct operator")
	return nil
}

func wrongBubble(t *testing.T, s *Session) *Bubble {
	t.Helper()
	for _, b := range s.Bubbles() {
		if b.Op != s.Equation().Op {
			return b
		}
	}
	t.Fatal("no wrong bubble in round")
	return nil
}

func TestStartGameResets(t *testing.T) {
	s := newPlaying(t, 10)
	require.Equal(t, 0, s.Score())
	require.Equal(t, StartLives, s.Lives())
	require.False(t, s.Processing())
	require.Nil(t, s.Feedback())
	_, popping := s.PopAnimation()
	require.False(t, popping)
}

func TestCorrectTapScoresAndAdvances(t *testing.T) {
	s := newPlaying(t, 11)
	first := s.Equation()

	s.HandleBubbleClick(correctBubble(t, s).ID)
	require.Equal(t, PointsPerPop, s.Score())
	require.Equal(t, StartLives, s.Lives())
	require.True(t, s.Processing())
	require.NotNil(t, s.Feedback())
	require.Equal(t, FeedbackCorrect, s.Feedback().Kind)
	id, popping := s.PopAnimation()
	require.True(t, popping)
	require.Equal(t, s.Feedback().BubbleID, id)

	s.Step(600)
	require.Equal(t, StatePlaying, s.State())
	require.False(t, s.Processing())
	require.Nil(t, s.Feedback())
	require.NotSame(t, first, s.Equation())
	require.Len(t, s.VisibleBubbles(), 3)
}

func TestWrongTapCostsLife(t *testing.T) {
	s := newPlaying(t, 12)

	s.HandleBubbleClick(wrongBubble(t, s).ID)
	require.Equal(t, 0, s.Score())
	require.Equal(t, StartLives-1, s.Lives())
	require.Equal(t, FeedbackWrong, s.Feedback().Kind)

	s.Step(600)
	require.Equal(t, StatePlaying, s.State())
	require.Equal(t, StartLives-1, s.Lives())
	require.Nil(t, s.Feedback())
}

func TestWrongTapOnLastLifeEndsGame(t *testing.T) {
	s := newPlaying(t, 13)
	s.lives = 1

	s.HandleBubbleClick(wrongBubble(t, s).ID)
	require.Equal(t, 0, s.Lives())
	require.Equal(t, StatePlaying, s.State(), "game over is delayed until the feedback settles")

	s.Step(600)
	require.Equal(t, StateGameOver, s.State())
}

func TestClickGuards(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(14)), Easy)
	s.HandleBubbleClick(0) // start screen, no equation
	require.Equal(t, StateStart, s.State())

	s.StartGame()
	s.HandleBubbleClick(99) // unknown id
	require.False(t, s.Processing())
	require.Equal(t, StartLives, s.Lives())
}

func TestResolutionIsIdempotent(t *testing.T) {
	s := newPlaying(t, 15)
	s.HandleBubbleClick(correctBubble(t, s).ID)
	score, lives := s.Score(), s.Lives()

	// latched: further taps and hovers change nothing until the next round
	for _, b := range s.Bubbles() {
		s.HandleBubbleClick(b.ID)
		s.HandleBubbleHover(b.ID, true)
		require.False(t, b.Paused)
	}
	require.Equal(t, score, s.Score())
	require.Equal(t, lives, s.Lives())
}

func TestHoverPausesBubble(t *testing.T) {
	s := newPlaying(t, 16)
	b := s.Bubbles()[0]
	s.HandleBubbleHover(b.ID, true)
	require.True(t, b.Paused)
	s.HandleBubbleHover(b.ID, false)
	require.False(t, b.Paused)

	// several bubbles paused at once is fine
	for _, b := range s.Bubbles() {
		s.HandleBubbleHover(b.ID, true)
	}
	for _, b := range s.Bubbles() {
		require.True(t, b.Paused)
	}
}

func TestPauseDefersPendingResolution(t *testing.T) {
	s := newPlaying(t, 17)
	s.HandleBubbleClick(wrongBubble(t, s).ID)

	s.OnEscapeKey()
	require.Equal(t, StatePaused, s.State())
	s.Step(5000) // clock frozen while paused
	require.Equal(t, StatePaused, s.State())
	require.NotNil(t, s.Feedback())

	s.ResumeGame()
	s.Step(600)
	require.Equal(t, StatePlaying, s.State())
	require.Nil(t, s.Feedback())
	require.False(t, s.Processing())
}

func TestQuitToStartDropsSession(t *testing.T) {
	s := newPlaying(t, 18)
	s.HandleBubbleClick(wrongBubble(t, s).ID)
	s.PauseGame()

	s.QuitToStart()
	require.Equal(t, StateStart, s.State())
	require.Nil(t, s.Equation())
	require.Empty(t, s.Bubbles())
	require.Nil(t, s.Feedback())
	require.False(t, s.Processing())
	require.Empty(t, s.pending)

	// a fresh game must not see the stale resolution fire
	s.StartGame()
	s.Step(600)
	require.Equal(t, StatePlaying, s.State())
	require.Equal(t, StartLives, s.Lives())
}

func TestSetDifficultyOnlyOnMenus(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(19)), Easy)
	s.SetDifficulty(Hard)
	require.Equal(t, Hard, s.Difficulty())

	s.StartGame()
	s.SetDifficulty(Easy)
	require.Equal(t, Hard, s.Difficulty())

	s.PauseGame()
	s.SetDifficulty(Easy)
	require.Equal(t, Hard, s.Difficulty())
}

func TestEscapeKeyOnlyWhilePlaying(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(20)), Easy)
	s.OnEscapeKey()
	require.Equal(t, StateStart, s.State())
	s.StartGame()
	s.OnEscapeKey()
	require.Equal(t, StatePaused, s.State())
	s.OnEscapeKey()
	require.Equal(t, StatePaused, s.State())
}

func TestThreeCorrectThenFiveWrong(t *testing.T) {
	s := newPlaying(t, 21)

	for i := 0; i < 3; i++ {
		s.HandleBubbleClick(correctBubble(t, s).ID)
		s.Step(600)
	}
	require.Equal(t, 3*PointsPerPop, s.Score())
	require.Equal(t, StartLives, s.Lives())
	require.Equal(t, StatePlaying, s.State())

	for i := 0; i < StartLives; i++ {
		s.HandleBubbleClick(wrongBubble(t, s).ID)
		s.Step(600)
	}
	require.Equal(t, 0, s.Lives())
	require.Equal(t, StateGameOver, s.State())
	require.Equal(t, 3*PointsPerPop, s.Score())

	// restart from the game-over screen
	s.StartGame()
	require.Equal(t, StatePlaying, s.State())
	require.Equal(t, 0, s.Score())
	require.Equal(t, StartLives, s.Lives())
}
