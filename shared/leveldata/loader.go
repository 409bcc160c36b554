package leveldata

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/bounce/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files.
const (
	groupPlatforms = "Platforms"
	groupSpikes    = "Spikes"
	groupStars     = "Stars"
	groupGoal      = "Goal"
	groupSpawn     = "PlayerSpawn"
)

// LoadTMX parses one Tiled map into a Level. Rectangles in the Platforms and
// Spikes groups become platforms and obstacles, ellipses or points in Stars
// become collectibles, the first Goal rectangle is the goal and the first
// PlayerSpawn point is the start. The spawn object carries the level
// properties: levelId (required), levelName and bottomless.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var (
		lvl      Level
		hasGoal  bool
		hasSpawn bool
	)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlatforms:
			for _, o := range og.Objects {
				lvl.Platforms = append(lvl.Platforms, Platform{
					Position: gamemath.Vec2{X: o.X, Y: o.Y},
					Size:     gamemath.Size{Width: o.Width, Height: o.Height},
				})
			}
		case groupSpikes:
			for _, o := range og.Objects {
				w, h := o.Width, o.Height
				if w == 0 || h == 0 {
					w, h = SpikeWidth, SpikeHeight
				}
				lvl.Obstacles = append(lvl.Obstacles, Obstacle{
					Position: gamemath.Vec2{X: o.X, Y: o.Y},
					Size:     gamemath.Size{Width: w, Height: h},
					Kind:     ObstacleSpike,
				})
			}
		case groupStars:
			for _, o := range og.Objects {
				// Tiled stores ellipses by their bounding box; points have no size.
				c := Collectible{Radius: StarRadius, Kind: CollectibleRing}
				if o.Width > 0 {
					c.Radius = o.Width / 2
				}
				c.Position = gamemath.Vec2{X: o.X + o.Width/2, Y: o.Y + o.Height/2}
				lvl.Collectibles = append(lvl.Collectibles, c)
			}
		case groupGoal:
			if len(og.Objects) == 0 || hasGoal {
				continue
			}
			o := og.Objects[0]
			w, h := o.Width, o.Height
			if w == 0 || h == 0 {
				w, h = GoalWidth, GoalHeight
			}
			lvl.Goal = Goal{Position: gamemath.Vec2{X: o.X, Y: o.Y}, Size: gamemath.Size{Width: w, Height: h}}
			hasGoal = true
		case groupSpawn:
			if len(og.Objects) == 0 || hasSpawn {
				continue
			}
			o := og.Objects[0]
			lvl.Start = gamemath.Vec2{X: o.X, Y: o.Y}
			lvl.ID = o.Properties.GetInt("levelId")
			lvl.Name = o.Properties.GetString("levelName")
			lvl.Bottomless = o.Properties.GetBool("bottomless")
			hasSpawn = true
		}
	}

	if !hasSpawn {
		return Level{}, fmt.Errorf("load TMX %s: missing %s object", tmxPath, groupSpawn)
	}
	if !hasGoal {
		return Level{}, fmt.Errorf("load TMX %s: missing %s object", tmxPath, groupGoal)
	}
	if lvl.ID == 0 {
		return Level{}, fmt.Errorf("load TMX %s: spawn has no levelId property", tmxPath)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	}

	return lvl, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// ordered by level id. Duplicate ids are rejected.
func LoadAll(fsys fs.FS, levelsDir string) ([]Level, error) {
	pattern := levelsDir + "/*.tmx"
	if levelsDir == "" || levelsDir == "." {
		pattern = "*.tmx"
	}
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s: %w", levelsDir, ErrNoLevels)
	}

	levels := make([]Level, 0, len(matches))
	byID := make(map[int]string, len(matches))
	for _, path := range matches {
		lvl, err := LoadTMX(fsys, path)
		if err != nil {
			return nil, err
		}
		if prev, ok := byID[lvl.ID]; ok {
			return nil, fmt.Errorf("level id %d used by both %s and %s", lvl.ID, prev, path)
		}
		byID[lvl.ID] = path
		levels = append(levels, lvl)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadCatalog returns the builtin campaign when dir is empty, otherwise every
// TMX map in dir. The result is validated against limits.
func LoadCatalog(dir string, limits Limits) ([]Level, error) {
	levels := Campaign()
	if dir != "" {
		var err error
		if levels, err = LoadAll(os.DirFS(dir), "."); err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", dir, err)
		}
	}
	if err := ValidateAll(levels, limits); err != nil {
		return nil, err
	}
	return levels, nil
}
