package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"opdrop/game"
)

var (
	bgColor     = color.RGBA{0x10, 0x1C, 0x38, 0xFF}
	hudColor    = color.RGBA{0xE8, 0xEE, 0xF8, 0xFF}
	dimColor    = color.RGBA{0x90, 0x9C, 0xB8, 0xFF}
	holdColor   = color.RGBA{0xFF, 0xD7, 0x5E, 0xFF}
	okColor     = color.RGBA{0x5C, 0xB8, 0x5C, 0xFF}
	badColor    = color.RGBA{0xD9, 0x53, 0x4F, 0xFF}
	shadeColor  = color.RGBA{0, 0, 0, 0x90}
	bubbleColor = [4]color.RGBA{
		{0x3C, 0x8C, 0x50, 0xFF}, // +
		{0xB8, 0x7A, 0x2E, 0xFF}, // -
		{0x7A, 0x4E, 0xB0, 0xFF}, // ×
		{0x2B, 0x6C, 0xB0, 0xFF}, // /
	}
)

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	switch a.session.State() {
	case game.StateStart:
		a.drawStart(screen)
	case game.StatePlaying:
		a.drawPlay(screen)
	case game.StatePaused:
		a.drawPlay(screen)
		a.drawPaused(screen)
	case game.StateGameOver:
		a.drawGameOver(screen)
	}
}

func (a *App) drawPlay(screen *ebiten.Image) {
	for _, b := range a.session.VisibleBubbles() {
		a.drawBubble(screen, b)
	}

	// HUD
	s := a.session
	text.Draw(screen, fmt.Sprintf("Score: %d", s.Score()), basicfont.Face7x13, 10, 20, hudColor)
	text.Draw(screen, fmt.Sprintf("Lives: %d", s.Lives()), basicfont.Face7x13, 10, 40, hudColor)
	text.Draw(screen, s.Difficulty().String(), basicfont.Face7x13, 10, 60, dimColor)

	if eq := s.Equation(); eq != nil {
		a.drawCentered(screen, eq.Text(), 30, hudColor)
	}
	if fb := s.Feedback(); fb != nil {
		if fb.Kind == game.FeedbackCorrect {
			a.drawCentered(screen, "Correct!", 50, okColor)
		} else {
			a.drawCentered(screen, "Wrong!", 50, badColor)
		}
	}
}

func (a *App) drawBubble(screen *ebiten.Image, b *game.Bubble) {
	x, y := a.px(b)
	fillCircle(screen, x, y, BubbleRadius, bubbleColor[b.Op])
	if b.Paused {
		ringCircle(screen, x, y, BubbleRadius+4, holdColor)
	}
	if id, ok := a.session.PopAnimation(); ok && id == b.ID {
		c := okColor
		if fb := a.session.Feedback(); fb != nil && fb.Kind == game.FeedbackWrong {
			c = badColor
		}
		ringCircle(screen, x, y, BubbleRadius+7, c)
	}
	text.Draw(screen, b.Op.String(), basicfont.Face7x13, int(x)-3, int(y)+5, hudColor)
}

func (a *App) drawStart(screen *ebiten.Image) {
	a.drawCentered(screen, "O P E R A T O R   D R O P", a.h/3, hudColor)
	a.drawCentered(screen, "Pop the bubble that completes the equation", a.h/3+30, dimColor)
	a.drawCentered(screen, "Hover a bubble to hold it in place", a.h/3+50, dimColor)
	a.drawDifficultyMenu(screen, a.h/3+90)
	a.drawCentered(screen, "Enter to start", a.h/3+150, hudColor)
}

func (a *App) drawPaused(screen *ebiten.Image) {
	w, h := 360.0, 110.0
	rect(screen, (float64(a.w)-w)/2, (float64(a.h)-h)/2, w, h, shadeColor)
	a.drawCentered(screen, "Paused", a.h/2-20, hudColor)
	a.drawCentered(screen, "Enter to resume, Q to quit", a.h/2+10, dimColor)
}

func (a *App) drawGameOver(screen *ebiten.Image) {
	a.drawCentered(screen, "Game Over", a.h/3, badColor)
	a.drawCentered(screen, fmt.Sprintf("Final score: %d", a.session.Score()), a.h/3+30, hudColor)
	a.drawDifficultyMenu(screen, a.h/3+70)
	a.drawCentered(screen, "Enter to play again, Q for menu", a.h/3+130, dimColor)
}

func (a *App) drawDifficultyMenu(screen *ebiten.Image, y int) {
	for i, d := range [3]game.Difficulty{game.Easy, game.Medium, game.Hard} {
		label := fmt.Sprintf("[%d] %s", i+1, d)
		c := dimColor
		if d == a.session.Difficulty() {
			c = holdColor
		}
		a.drawCentered(screen, label, y+i*18, c)
	}
}

// drawCentered approximates horizontal centering from the fixed 7px advance
// of Face7x13.
func (a *App) drawCentered(screen *ebiten.Image, msg string, y int, c color.Color) {
	w := 7 * len([]rune(msg))
	text.Draw(screen, msg, basicfont.Face7x13, (a.w-w)/2, y, c)
}

// --- minimal drawing helpers (avoid additional deps) ---

func rect(img *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w < 1 || h < 1 {
		return
	}
	r := ebiten.NewImage(int(w), int(h))
	r.Fill(c)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	img.DrawImage(r, op)
}

// fillCircle draws a filled circle as horizontal scanlines.
func fillCircle(img *ebiten.Image, cx, cy, r float64, c color.Color) {
	for dy := -r; dy <= r; dy++ {
		half := math.Sqrt(r*r - dy*dy)
		rect(img, cx-half, cy+dy, half*2, 1, c)
	}
}

// ringCircle draws a dotted circle outline.
func ringCircle(img *ebiten.Image, cx, cy, r float64, c color.Color) {
	steps := int(math.Max(24, r*2))
	for i := 0; i < steps; i++ {
		ang := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + math.Cos(ang)*r
		y := cy + math.Sin(ang)*r
		rect(img, x-1, y-1, 2, 2, c)
	}
}
