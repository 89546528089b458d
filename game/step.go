package game

// frameMS is the reference frame duration: bubble speeds are percent-of-
// height per frame at 60 fps, so motion scales by dt/frameMS.
const frameMS = 1000.0 / 60.0

// Step advances the session by dt milliseconds of virtual time: due
// scheduled transitions fire first, then bubble motion runs. Motion is
// frozen while paused, while feedback is showing and while an outcome is
// resolving; the clock itself only runs while playing, so pausing defers
// pending resolutions instead of letting them fire mid-pause.
func (s *Session) Step(dt float64) {
	if s.state != StatePlaying {
		return
	}
	s.now += dt
	s.firePending()

	if s.state != StatePlaying || s.feedback != nil || s.processing || s.equation == nil {
		return
	}

	// Apply motion tentatively: outcome checks run against the moved set,
	// and a triggered outcome discards this tick's positions.
	moved := make([]float64, len(s.bubbles))
	for i, b := range s.bubbles {
		moved[i] = b.Y
		if !b.Paused {
			moved[i] += b.Speed * dt / frameMS
		}
	}

	var escaped, unpausedVisible, pausedVisible int
	var survivorCorrect, correctEscaped bool
	for i, b := range s.bubbles {
		if moved[i] > EscapeY {
			escaped++
			if b.Op == s.equation.Op && !b.Paused {
				correctEscaped = true
			}
			continue
		}
		if b.Paused {
			pausedVisible++
			if b.Op == s.equation.Op {
				survivorCorrect = true
			}
		} else {
			unpausedVisible++
		}
	}

	switch {
	case escaped > 0 && unpausedVisible == 0 && pausedVisible > 0:
		// Everything else escaped while the player held a bubble: the held
		// bubble is their implicit choice.
		s.resolveEscape(survivorCorrect)
	case correctEscaped:
		s.resolveEscape(false)
	default:
		for i, b := range s.bubbles {
			b.Y = moved[i]
		}
	}
}

// resolveEscape settles a round that ended without a tap. The latch is set
// synchronously so no second outcome can trigger before the delayed
// transition fires.
func (s *Session) resolveEscape(correct bool) {
	s.processing = true
	if correct {
		s.schedule(escapeAdvanceDelay, s.startNewRound)
		return
	}
	s.lives--
	if s.lives <= 0 {
		s.schedule(escapeGameOverDelay, s.gameOver)
	} else {
		s.schedule(escapeAdvanceDelay, s.startNewRound)
	}
}

// firePending runs every scheduled event whose deadline has passed, in
// scheduling order.
func (s *Session) firePending() {
	for i := 0; i < len(s.pending); {
		ev := s.pending[i]
		if ev.fireAt > s.now {
			i++
			continue
		}
		s.pending = append(s.pending[:i], s.pending[i+1:]...)
		ev.action()
	}
}
