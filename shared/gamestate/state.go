// Package gamestate drives a playthrough: which state the game is in, the
// level attempt being simulated, and the score.
package gamestate

import (
	"errors"
	"fmt"

	"github.com/automoto/bounce/shared/leveldata"
)

type State int

const (
	StateStart State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateLevelComplete
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
		return "gameOver"
	case StateLevelComplete:
		return "levelComplete"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrInvalidTransition is returned when an action is not allowed from the
// current state. The session is left unchanged.
var ErrInvalidTransition = errors.New("invalid state transition")

func invalid(action string, from State) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, from)
}

// Scoring holds the points awarded by collision events.
type Scoring struct {
	StarPoints int `yaml:"star_points"`
	GoalBonus  int `yaml:"goal_bonus"`
}

func DefaultScoring() Scoring {
	return Scoring{StarPoints: 10, GoalBonus: 50}
}

// ErrLevelNotFound is returned by StartAt for an unknown level id.
var ErrLevelNotFound = leveldata.ErrLevelNotFound
