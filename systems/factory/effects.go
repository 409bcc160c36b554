package factory

import (
	"image/color"

	"github.com/automoto/bounce/archetypes"
	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloatingText spawns a label at a world position that rises and fades.
func CreateFloatingText(ecs *ecs.ECS, s string, x, y float64, c color.RGBA) *donburi.Entry {
	e := archetypes.FloatingText.Spawn(ecs)
	components.FloatingText.SetValue(e, components.FloatingTextData{
		Text:  s,
		X:     x,
		BaseY: y,
		Alpha: 1,
		Color: c,
		Tween: gween.New(0, cfg.Effects.PickupRise, cfg.Effects.PickupSeconds, ease.OutQuad),
	})
	return e
}

// CreateBanner spawns the level complete banner above the screen; it slides
// down to its resting place.
func CreateBanner(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Banner.Spawn(ecs)
	from := float32(-cfg.LevelComplete.BannerHeight)
	components.Banner.SetValue(e, components.BannerData{
		Y:     from,
		Tween: gween.New(from, float32(cfg.LevelComplete.RestY), cfg.LevelComplete.SlideSeconds, ease.OutBack),
	})
	return e
}
