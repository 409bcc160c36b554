package gamestate

// Controls are the state-level presses for one frame.
type Controls struct {
	Pause   bool
	Select  bool
	Restart bool
	Jump    bool
}

// Handle applies c to the current state and reports whether the frame should
// go on to jump and tick. Restart only does anything after a game over.
func (s *Session) Handle(c Controls) (bool, error) {
	switch s.state {
	case StatePlaying:
		if c.Pause {
			return false, s.Pause()
		}
		return true, nil
	case StatePaused:
		if c.Pause || c.Select {
			return false, s.Resume()
		}
	case StateGameOver:
		if c.Restart || c.Select {
			return false, s.Restart()
		}
	case StateLevelComplete:
		if c.Select || c.Jump {
			_, err := s.Advance()
			return false, err
		}
	}
	return false, nil
}
