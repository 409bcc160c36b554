package leveldata

import (
	"fmt"

	"github.com/automoto/bounce/shared/gamemath"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Chunk is a reusable level fragment in its own local coordinates. Entry and
// Exit are avatar centres resting on the chunk's first and last platforms.
type Chunk struct {
	ID           string
	Name         string
	Platforms    []Platform
	Obstacles    []Obstacle
	Collectibles []Collectible
	Difficulty   Difficulty
	Entry        gamemath.Vec2
	Exit         gamemath.Vec2
}

// Width returns the right-most x covered by the chunk.
func (c Chunk) Width() float64 {
	w := max(c.Entry.X, c.Exit.X)
	for _, p := range c.Platforms {
		w = max(w, p.Rect().Right())
	}
	for _, o := range c.Obstacles {
		w = max(w, o.Rect().Right())
	}
	for _, s := range c.Collectibles {
		w = max(w, s.Position.X+s.Radius)
	}
	return w
}

func obstacle(x, y, w, h float64) Obstacle {
	return Obstacle{Position: gamemath.Vec2{X: x, Y: y}, Size: gamemath.Size{Width: w, Height: h}, Kind: ObstacleSpike}
}

// Chunks returns the builtin chunk library.
func Chunks() []Chunk {
	return []Chunk{
		{
			ID:         "basicJump",
			Name:       "Basic Jump",
			Platforms:  []Platform{platform(0, 300, 100, 20), platform(200, 300, 100, 20)},
			Difficulty: DifficultyEasy,
			Entry:      gamemath.Vec2{X: 50, Y: 280},
			Exit:       gamemath.Vec2{X: 250, Y: 280},
		},
		{
			ID:         "spikeGap",
			Name:       "Spike Gap",
			Platforms:  []Platform{platform(0, 320, 120, 20), platform(220, 320, 120, 20)},
			Obstacles:  []Obstacle{obstacle(120, 338, 100, 18)},
			Difficulty: DifficultyMedium,
			Entry:      gamemath.Vec2{X: 60, Y: 300},
			Exit:       gamemath.Vec2{X: 280, Y: 300},
		},
		{
			ID:           "collectibleArc",
			Name:         "Collectible Arc",
			Platforms:    []Platform{platform(0, 350, 100, 20), platform(300, 350, 100, 20)},
			Collectibles: []Collectible{star(100, 320), star(170, 290), star(240, 320)},
			Difficulty:   DifficultyMedium,
			Entry:        gamemath.Vec2{X: 50, Y: 330},
			Exit:         gamemath.Vec2{X: 350, Y: 330},
		},
		{
			ID:   "verticalClimb",
			Name: "Vertical Climb",
			Platforms: []Platform{
				platform(0, 400, 100, 20),
				platform(60, 340, 100, 20),
				platform(120, 280, 100, 20),
				platform(180, 220, 100, 20),
			},
			Collectibles: []Collectible{star(210, 190)},
			Difficulty:   DifficultyHard,
			Entry:        gamemath.Vec2{X: 50, Y: 380},
			Exit:         gamemath.Vec2{X: 230, Y: 200},
		},
		{
			ID:        "obstacleTunnel",
			Name:      "Obstacle Tunnel",
			Platforms: []Platform{platform(0, 320, 400, 20)},
			Obstacles: []Obstacle{
				obstacle(80, 338, 40, 18),
				obstacle(180, 338, 40, 18),
				obstacle(280, 338, 40, 18),
			},
			Collectibles: []Collectible{star(360, 290)},
			Difficulty:   DifficultyHard,
			Entry:        gamemath.Vec2{X: 20, Y: 300},
			Exit:         gamemath.Vec2{X: 380, Y: 300},
		},
		{
			ID:           "easyFlat",
			Name:         "Easy Flat",
			Platforms:    []Platform{platform(0, 400, 300, 20)},
			Collectibles: []Collectible{star(150, 370)},
			Difficulty:   DifficultyEasy,
			Entry:        gamemath.Vec2{X: 30, Y: 380},
			Exit:         gamemath.Vec2{X: 270, Y: 380},
		},
	}
}

// ChunkByID looks a chunk up in the builtin library.
func ChunkByID(id string) (Chunk, bool) {
	for _, c := range Chunks() {
		if c.ID == id {
			return c, true
		}
	}
	return Chunk{}, false
}

// Compose lays chunks left to right, gap units apart. Each chunk is shifted
// vertically so its entry sits at the height of the previous chunk's exit.
// origin is where the first chunk's local (0,0) lands. The start is the first
// entry and the goal stands on the platform under the last exit.
func Compose(id int, name string, origin gamemath.Vec2, gap float64, chunks ...Chunk) (Level, error) {
	if len(chunks) == 0 {
		return Level{}, fmt.Errorf("compose level %d: %w", id, ErrNoLevels)
	}

	lvl := Level{ID: id, Name: name}
	offset := origin
	var exit gamemath.Vec2
	for i, c := range chunks {
		if i > 0 {
			offset.Y = exit.Y - c.Entry.Y
		}
		for _, p := range c.Platforms {
			p.Position = p.Position.Add(offset)
			lvl.Platforms = append(lvl.Platforms, p)
		}
		for _, o := range c.Obstacles {
			o.Position = o.Position.Add(offset)
			lvl.Obstacles = append(lvl.Obstacles, o)
		}
		for _, s := range c.Collectibles {
			s.Position = s.Position.Add(offset)
			s.Collected = false
			lvl.Collectibles = append(lvl.Collectibles, s)
		}
		if i == 0 {
			lvl.Start = c.Entry.Add(offset)
		}
		exit = c.Exit.Add(offset)
		offset.X += c.Width() + gap
	}

	// Exit points hover one avatar radius (20) above the platform top.
	floor := exit.Y + 20
	lvl.Goal = Goal{
		Position: gamemath.Vec2{X: exit.X - GoalWidth/2, Y: floor - GoalHeight},
		Size:     gamemath.Size{Width: GoalWidth, Height: GoalHeight},
	}
	return lvl, nil
}

// ChunkRun is the bonus level built from the chunk library. It has no ground,
// so missing a jump drops the ball out of the world.
func ChunkRun() Level {
	var parts []Chunk
	for _, id := range []string{"easyFlat", "basicJump", "collectibleArc", "spikeGap", "obstacleTunnel"} {
		c, _ := ChunkByID(id)
		parts = append(parts, c)
	}
	lvl, _ := Compose(6, "Chunk Run", gamemath.Vec2{X: 60}, 80, parts...)
	lvl.Bottomless = true
	return lvl
}
