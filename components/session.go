package components

import (
	"github.com/automoto/bounce/shared/gamestate"
	"github.com/automoto/bounce/shared/leveldata"
	"github.com/automoto/bounce/shared/physics"
	"github.com/yohamta/donburi"
)

// SessionData links the ECS world to the game session it renders.
type SessionData struct {
	Session *gamestate.Session
	// Attempt is the session attempt the level entities were built for.
	Attempt int
	// Events holds what the last tick produced, for effects.
	Events []physics.Event
	// WasGrounded remembers the ball's contact state for landing squash.
	WasGrounded bool
	// Reloads delivers catalogs from the level pack watcher. May be nil.
	Reloads <-chan []leveldata.Level
	// Debug toggles the collision overlay.
	Debug bool
}

var Session = donburi.NewComponentType[SessionData]()
