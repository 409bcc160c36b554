package systems

import (
	"github.com/automoto/bounce/components"
	"github.com/automoto/bounce/config"
	"github.com/automoto/bounce/shared/gamestate"
	"github.com/automoto/bounce/systems/factory"
	"github.com/automoto/bounce/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBanner shows the level complete banner while the level is won and
// slides it into place.
func UpdateBanner(ecs *ecs.ECS) {
	data, ok := GetSession(ecs)
	if !ok {
		return
	}
	entry, exists := tags.Banner.First(ecs.World)
	won := data.Session.State() == gamestate.StateLevelComplete

	switch {
	case won && !exists:
		factory.CreateBanner(ecs)
		return
	case !won && exists:
		entry.Remove()
		return
	case !exists:
		return
	}

	banner := components.Banner.Get(entry)
	if banner.Settled {
		return
	}
	banner.Y, banner.Settled = banner.Tween.Update(float32(1) / float32(config.C.TPS))
}
