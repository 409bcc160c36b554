package leveldata

import "github.com/automoto/bounce/shared/gamemath"

// mid is the vertical centre of the 700 unit tall authoring canvas.
const mid = 350.0

func platform(x, y, w, h float64) Platform {
	return Platform{Position: gamemath.Vec2{X: x, Y: y}, Size: gamemath.Size{Width: w, Height: h}}
}

// spike places a row of three spikes; every authored spike strip has the same size.
func spike(x, y float64) Obstacle {
	return Obstacle{
		Position: gamemath.Vec2{X: x, Y: y},
		Size:     gamemath.Size{Width: SpikeWidth, Height: SpikeHeight},
		Kind:     ObstacleSpike,
	}
}

func star(x, y float64) Collectible {
	return Collectible{Position: gamemath.Vec2{X: x, Y: y}, Radius: StarRadius, Kind: CollectibleRing}
}

func goal(x, y float64) Goal {
	return Goal{Position: gamemath.Vec2{X: x, Y: y}, Size: gamemath.Size{Width: GoalWidth, Height: GoalHeight}}
}

// Builtin returns the five authored campaign levels. Every call builds fresh
// slices, so callers may keep or mutate the result.
func Builtin() []Level {
	return []Level{
		{
			ID:   1,
			Name: "The Gauntlet",
			Platforms: []Platform{
				platform(50, mid+100, 120, 20),
				platform(250, mid+50, 100, 20),
				platform(450, mid, 100, 20),
				platform(650, mid-50, 80, 20),
				platform(850, mid-100, 120, 20),
			},
			Obstacles: []Obstacle{
				spike(350, mid+20),
				spike(650, mid-30),
				spike(700, mid-30),
			},
			Collectibles: []Collectible{
				star(400, mid-80),
				star(690, mid-100),
				star(910, mid-150),
			},
			Goal:  goal(950, mid-150),
			Start: gamemath.Vec2{X: 110, Y: mid + 80},
		},
		{
			ID:   2,
			Name: "Spike Alley",
			Platforms: []Platform{
				platform(50, mid+50, 100, 20),
				platform(250, mid, 80, 20),
				platform(400, mid-50, 60, 20),
				platform(550, mid, 60, 20),
				platform(700, mid-50, 80, 20),
				platform(900, mid-100, 120, 20),
			},
			Obstacles: []Obstacle{
				spike(330, mid+20),
				spike(460, mid-30),
				spike(510, mid-30),
				spike(610, mid+20),
				spike(700, mid-30),
				spike(780, mid-30),
			},
			Collectibles: []Collectible{
				star(290, mid-50),
				star(505, mid-100),
				star(950, mid-150),
			},
			Goal:  goal(1000, mid-150),
			Start: gamemath.Vec2{X: 100, Y: mid + 30},
		},
		{
			ID:   3,
			Name: "Vertical Ascent",
			Platforms: []Platform{
				platform(50, mid+150, 150, 20),
				platform(100, mid+100, 100, 20),
				platform(150, mid+50, 100, 20),
				platform(200, mid, 100, 20),
				platform(250, mid-50, 100, 20),
				platform(300, mid-100, 100, 20),
				platform(350, mid-150, 200, 20),
			},
			Obstacles: []Obstacle{
				spike(150, mid+120),
				spike(250, mid+70),
				spike(350, mid+20),
				spike(450, mid-30),
			},
			Collectibles: []Collectible{
				star(200, mid+70),
				star(300, mid+20),
				star(400, mid-30),
				star(450, mid-200),
			},
			Goal:  goal(500, mid-200),
			Start: gamemath.Vec2{X: 125, Y: mid + 130},
		},
		{
			ID:   4,
			Name: "Precision Path",
			Platforms: []Platform{
				platform(50, mid, 80, 20),
				platform(180, mid+30, 50, 20),
				platform(280, mid, 50, 20),
				platform(380, mid-30, 50, 20),
				platform(480, mid, 50, 20),
				platform(580, mid+30, 50, 20),
				platform(700, mid, 120, 20),
				platform(900, mid-50, 40, 20),
				platform(1000, mid, 40, 20),
				platform(1100, mid-50, 40, 20),
				platform(1200, mid-100, 100, 20),
			},
			Obstacles: []Obstacle{
				spike(180, mid+50),
				spike(280, mid+20),
				spike(380, mid-10),
				spike(480, mid+20),
				spike(580, mid+50),
				spike(900, mid-30),
				spike(1000, mid+20),
				spike(1100, mid-30),
			},
			Collectibles: []Collectible{
				star(230, mid-50),
				star(530, mid-50),
				star(760, mid-50),
				star(1050, mid-100),
				star(1250, mid-150),
			},
			Goal:  goal(1300, mid-150),
			Start: gamemath.Vec2{X: 90, Y: mid - 20},
		},
		{
			ID:   5,
			Name: "The Ultimate Challenge",
			Platforms: []Platform{
				platform(50, mid+100, 100, 20),
				platform(200, mid+50, 80, 20),
				platform(350, mid, 80, 20),
				platform(400, mid-50, 80, 20),
				platform(450, mid-100, 80, 20),
				platform(500, mid-150, 80, 20),
				platform(600, mid-100, 60, 20),
				platform(750, mid-50, 60, 20),
				platform(900, mid, 50, 20),
				platform(1000, mid-50, 50, 20),
				platform(1100, mid, 50, 20),
				platform(1200, mid-100, 100, 20),
			},
			Obstacles: []Obstacle{
				spike(280, mid+70),
				spike(450, mid-130),
				spike(500, mid-180),
				spike(660, mid-80),
				spike(720, mid-80),
				spike(810, mid-30),
				spike(900, mid+20),
				spike(1000, mid-30),
				spike(1100, mid+20),
			},
			Collectibles: []Collectible{
				star(275, mid),
				star(475, mid-200),
				star(675, mid-150),
				star(950, mid-100),
				star(1050, mid-150),
				star(1250, mid-200),
			},
			Goal:  goal(1350, mid-200),
			Start: gamemath.Vec2{X: 100, Y: mid + 80},
		},
	}
}

// Campaign returns the builtin levels followed by the chunk-built bonus level.
func Campaign() []Level {
	return append(Builtin(), ChunkRun())
}
