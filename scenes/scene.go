package scenes

import (
	"github.com/automoto/bounce/shared/gamestate"
	"github.com/automoto/bounce/shared/leveldata"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Context is shared by every scene of one game run. The session outlives
// scenes so the high score survives returning to the title.
type Context struct {
	Changer SceneChanger
	Session *gamestate.Session
	// Reloads carries catalogs from the level watcher; nil when not watching.
	Reloads <-chan []leveldata.Level
}
