package factory

import (
	"github.com/automoto/bounce/archetypes"
	"github.com/automoto/bounce/components"
	"github.com/automoto/bounce/shared/gamestate"
	"github.com/automoto/bounce/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession attaches a game session to the world. Level entities are
// built later by the SyncLevel system once the attempt counter moves.
func CreateSession(ecs *ecs.ECS, session *gamestate.Session, reloads <-chan []leveldata.Level, debug bool) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, components.SessionData{
		Session: session,
		Attempt: -1,
		Reloads: reloads,
		Debug:   debug,
	})
	return entry
}
