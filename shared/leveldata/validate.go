package leveldata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/bounce/shared/gamemath"
)

// ErrInvalidLevel matches every *ValidationError.
var ErrInvalidLevel = errors.New("invalid level")

// Limits describe the world and the avatar's jumping ability, used to check
// that authored geometry can actually be played.
type Limits struct {
	GroundY  float64 // ground line, also the authoring floor
	Radius   float64 // avatar radius
	MaxRise  float64 // highest climb from a standing surface, air jump included
	MaxReach float64 // widest horizontal gap that can be crossed in one jump
}

// ValidationError lists every problem found in one level.
type ValidationError struct {
	LevelID  int
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("level %d: %s", e.LevelID, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidLevel
}

func (e *ValidationError) addf(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// New validates level against limits and returns a deep copy on success.
func New(level Level, limits Limits) (Level, error) {
	if err := Validate(&level, limits); err != nil {
		return Level{}, err
	}
	return level.Clone(), nil
}

// ValidateAll validates every level and rejects duplicate ids.
func ValidateAll(levels []Level, limits Limits) error {
	seen := make(map[int]bool, len(levels))
	var errs []error
	for i := range levels {
		if seen[levels[i].ID] {
			errs = append(errs, &ValidationError{LevelID: levels[i].ID, Problems: []string{"duplicate id"}})
		}
		seen[levels[i].ID] = true
		if err := Validate(&levels[i], limits); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Validate checks the authoring rules: positive sizes, everything inside the
// world and above the ground line, no overlapping platforms, no spike on the
// goal, and every platform plus the goal reachable from the start.
func Validate(l *Level, limits Limits) error {
	v := &ValidationError{LevelID: l.ID}

	if l.ID <= 0 {
		v.addf("id must be positive")
	}
	if strings.TrimSpace(l.Name) == "" {
		v.addf("name is empty")
	}

	checkBox := func(what string, r gamemath.Rect) {
		if r.W <= 0 || r.H <= 0 {
			v.addf("%s has non-positive size %gx%g", what, r.W, r.H)
		}
		if r.X < 0 {
			v.addf("%s starts left of the world at x=%g", what, r.X)
		}
		if r.Bottom() > limits.GroundY {
			v.addf("%s extends below the ground line (%g > %g)", what, r.Bottom(), limits.GroundY)
		}
	}

	for i, p := range l.Platforms {
		checkBox(fmt.Sprintf("platform %d", i), p.Rect())
	}
	for i, o := range l.Obstacles {
		checkBox(fmt.Sprintf("obstacle %d", i), o.Rect())
	}
	for i, c := range l.Collectibles {
		if c.Radius <= 0 {
			v.addf("collectible %d has non-positive radius", i)
			continue
		}
		checkBox(fmt.Sprintf("collectible %d", i), gamemath.SquareAround(c.Position, c.Radius))
	}
	checkBox("goal", l.Goal.Rect())
	checkBox("start", gamemath.SquareAround(l.Start, limits.Radius))

	for i := range l.Platforms {
		for j := i + 1; j < len(l.Platforms); j++ {
			if l.Platforms[i].Rect().Overlaps(l.Platforms[j].Rect()) {
				v.addf("platforms %d and %d overlap", i, j)
			}
		}
	}
	for i, o := range l.Obstacles {
		if o.Rect().Overlaps(l.Goal.Rect()) {
			v.addf("obstacle %d overlaps the goal", i)
		}
	}

	if len(v.Problems) == 0 {
		checkReachable(l, limits, v)
	}

	if len(v.Problems) > 0 {
		return v
	}
	return nil
}

// groundExtent stands in for the unbounded width of the ground plane.
const groundExtent = 1e9

// surface is the walkable top edge of a platform or the ground.
type surface struct {
	name string
	box  gamemath.Rect
}

func (s surface) top() float64 { return s.box.Y }

// checkReachable walks surfaces breadth-first from where the avatar first
// lands. A surface is reachable from another when the horizontal gap fits
// MaxReach and its top is no more than MaxRise above. Dropping down is always
// possible.
func checkReachable(l *Level, limits Limits, v *ValidationError) {
	surfaces := make([]surface, 0, len(l.Platforms)+1)
	for i, p := range l.Platforms {
		surfaces = append(surfaces, surface{name: fmt.Sprintf("platform %d", i), box: p.Rect()})
	}
	ground := -1
	if !l.Bottomless {
		ground = len(surfaces)
		surfaces = append(surfaces, surface{
			name: "ground",
			box:  gamemath.Rect{X: -groundExtent, Y: limits.GroundY, W: 2 * groundExtent},
		})
	}

	start := landingSurface(l, limits, surfaces)
	if start < 0 {
		start = ground
	}
	if start < 0 {
		v.addf("nothing under the start position")
		return
	}

	reached := make([]bool, len(surfaces))
	reached[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		from := surfaces[queue[0]]
		queue = queue[1:]
		for i, to := range surfaces {
			if reached[i] {
				continue
			}
			if from.box.HorizontalGap(to.box) > limits.MaxReach {
				continue
			}
			if to.top() < from.top()-limits.MaxRise {
				continue
			}
			reached[i] = true
			queue = append(queue, i)
		}
	}

	for i, s := range surfaces {
		if !reached[i] {
			v.addf("%s is unreachable", s.name)
		}
	}

	goal := l.Goal.Rect()
	for i, s := range surfaces {
		if !reached[i] || s.box.HorizontalGap(goal) > limits.MaxReach {
			continue
		}
		// The avatar's top edge climbs to top - 2r - MaxRise.
		if goal.Bottom() > s.top()-2*limits.Radius-limits.MaxRise {
			return
		}
	}
	v.addf("goal is unreachable")
}

// landingSurface returns the highest platform whose top lies below the
// avatar's spawn and that overlaps it horizontally, or -1.
func landingSurface(l *Level, limits Limits, surfaces []surface) int {
	avatar := gamemath.SquareAround(l.Start, limits.Radius)
	best := -1
	for i := range l.Platforms {
		s := surfaces[i]
		if s.box.Right() <= avatar.Left() || s.box.Left() >= avatar.Right() {
			continue
		}
		if s.top() < avatar.Top() {
			continue
		}
		if best < 0 || s.top() < surfaces[best].top() {
			best = i
		}
	}
	return best
}
