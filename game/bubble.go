package game

import "math/rand"

// Difficulty selects one of three fixed fall-speed presets.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// ParseDifficulty maps a preset name to its Difficulty; unknown names fall
// back to Easy.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "medium":
		return Medium
	case "hard":
		return Hard
	}
	return Easy
}

// base and variance are percent-of-height per frame at the 60 fps reference.
var speedPresets = [3]struct{ base, variance float64 }{
	{0.15, 0.10}, // easy
	{0.30, 0.20}, // medium
	{0.50, 0.30}, // hard
}

// EscapeY is the vertical percentage beyond which a bubble counts as escaped.
// Slightly past 100 so a bubble can render partly below the bottom edge
// before it is culled.
const EscapeY = 110

// Bubble is one falling operator choice. X and Y are percentages of the play
// area (Y may start negative, above the visible area). Mutated in place each
// tick, replaced wholesale each round.
type Bubble struct {
	ID     int
	Op     Operator
	X      float64
	Y      float64
	Speed  float64
	Paused bool
}

// Visible reports whether the bubble is still on screen.
func (b *Bubble) Visible() bool { return b.Y <= EscapeY }

// spawnBubbles builds the round's three bubbles: the correct operator plus
// two distinct wrong ones, shuffled into screen order. Slots sit near 15%,
// 45% and 75% of the width with up to +10% jitter; bubbles start staggered
// above the visible area.
func spawnBubbles(r *rand.Rand, correct Operator, d Difficulty) []*Bubble {
	wrong := make([]Operator, 0, 3)
	for _, op := range Operators {
		if op != correct {
			wrong = append(wrong, op)
		}
	}
	r.Shuffle(len(wrong), func(i, j int) { wrong[i], wrong[j] = wrong[j], wrong[i] })

	ops := []Operator{correct, wrong[0], wrong[1]}
	r.Shuffle(len(ops), func(i, j int) { ops[i], ops[j] = ops[j], ops[i] })

	p := speedPresets[d]
	bubbles := make([]*Bubble, len(ops))
	for slot, op := range ops {
		bubbles[slot] = &Bubble{
			ID:    slot,
			Op:    op,
			X:     15 + float64(slot)*30 + r.Float64()*10,
			Y:     -10 - r.Float64()*20,
			Speed: p.base + r.Float64()*p.variance,
		}
	}
	return bubbles
}
