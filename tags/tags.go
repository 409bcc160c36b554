package tags

import "github.com/yohamta/donburi"

var (
	Ball         = donburi.NewTag().SetName("Ball")
	Geometry     = donburi.NewTag().SetName("Geometry")
	FloatingText = donburi.NewTag().SetName("FloatingText")
	Banner       = donburi.NewTag().SetName("Banner")
)
