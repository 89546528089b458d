// Package ui renders the game and forwards pointer, touch and keyboard
// events into the core session. All game rules live in package game; this
// layer only reads state and dispatches events.
package ui

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"opdrop/game"
)

// BubbleRadius is the on-screen bubble radius in pixels.
const BubbleRadius = 28

// App drives the ebiten frame loop for one game session.
type App struct {
	session *game.Session
	log     *slog.Logger
	w, h    int

	prevState game.State
	touchIDs  []ebiten.TouchID
}

func New(session *game.Session, w, h int, log *slog.Logger) *App {
	return &App{session: session, log: log, w: w, h: h, prevState: session.State()}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) { return a.w, a.h }

func (a *App) Update() error {
	dt := 1.0 / 60.0 * 1000.0 // ms per frame approx

	switch a.session.State() {
	case game.StateStart:
		a.updateStart()
	case game.StatePlaying:
		a.updatePlaying()
	case game.StatePaused:
		a.updatePaused()
	case game.StateGameOver:
		a.updateGameOver()
	}

	a.session.Step(dt)

	if st := a.session.State(); st != a.prevState {
		a.log.Info("state change",
			"from", a.prevState.String(), "to", st.String(),
			"score", a.session.Score(), "lives", a.session.Lives())
		a.prevState = st
	}
	return nil
}

func (a *App) updateStart() {
	a.pickDifficulty()
	if confirmPressed() || a.tapped() {
		a.session.StartGame()
	}
}

func (a *App) updatePlaying() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.session.OnEscapeKey()
		return
	}

	// hover-to-hold: the flag tracks whether the pointer is over the bubble
	cx, cy := ebiten.CursorPosition()
	for _, b := range a.session.VisibleBubbles() {
		a.session.HandleBubbleHover(b.ID, a.hit(b, float64(cx), float64(cy)))
	}

	for _, p := range a.tapPoints() {
		for _, b := range a.session.VisibleBubbles() {
			if a.hit(b, p.x, p.y) {
				a.session.HandleBubbleClick(b.ID)
				break
			}
		}
	}
}

func (a *App) updatePaused() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || confirmPressed() {
		a.session.ResumeGame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.session.QuitToStart()
	}
}

func (a *App) updateGameOver() {
	a.pickDifficulty()
	if confirmPressed() || a.tapped() {
		a.session.StartGame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.session.QuitToStart()
	}
}

func (a *App) pickDifficulty() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		a.session.SetDifficulty(game.Easy)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		a.session.SetDifficulty(game.Medium)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		a.session.SetDifficulty(game.Hard)
	}
}

func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

type point struct{ x, y float64 }

// tapPoints collects this frame's just-pressed pointer and touch positions.
func (a *App) tapPoints() []point {
	var pts []point
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pts = append(pts, point{float64(x), float64(y)})
	}
	a.touchIDs = inpututil.AppendJustPressedTouchIDs(a.touchIDs[:0])
	for _, id := range a.touchIDs {
		x, y := ebiten.TouchPosition(id)
		pts = append(pts, point{float64(x), float64(y)})
	}
	return pts
}

func (a *App) tapped() bool { return len(a.tapPoints()) > 0 }

// px maps the session's percentage coordinates to pixels.
func (a *App) px(b *game.Bubble) (float64, float64) {
	return b.X / 100 * float64(a.w), b.Y / 100 * float64(a.h)
}

func (a *App) hit(b *game.Bubble, x, y float64) bool {
	bx, by := a.px(b)
	dx, dy := x-bx, y-by
	return dx*dx+dy*dy <= BubbleRadius*BubbleRadius
}
