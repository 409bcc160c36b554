package physics

import (
	"math"
	"testing"

	"github.com/automoto/bounce/shared/gamemath"
	"github.com/automoto/bounce/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func vec(x, y float64) gamemath.Vec2 { return gamemath.Vec2{X: x, Y: y} }

func size(w, h float64) gamemath.Size { return gamemath.Size{Width: w, Height: h} }

// testLevel has one floating platform, a spike on the ground, a star in the
// air and the goal at the far right.
func testLevel() *leveldata.Level {
	return &leveldata.Level{
		ID:   1,
		Name: "Test",
		Platforms: []leveldata.Platform{
			{Position: vec(400, 300), Size: size(200, 20)},
		},
		Obstacles: []leveldata.Obstacle{
			{Position: vec(800, 532), Size: size(leveldata.SpikeWidth, leveldata.SpikeHeight), Kind: leveldata.ObstacleSpike},
		},
		Collectibles: []leveldata.Collectible{
			{Position: vec(700, 200), Radius: leveldata.StarRadius, Kind: leveldata.CollectibleRing},
		},
		Goal:  leveldata.Goal{Position: vec(1100, 490), Size: size(leveldata.GoalWidth, leveldata.GoalHeight)},
		Start: vec(100, 400),
	}
}

func newTestWorld(t *testing.T, lvl *leveldata.Level, mutate func(p *Params)) *World {
	t.Helper()
	p := DefaultParams()
	if mutate != nil {
		mutate(&p)
	}
	require.NoError(t, p.Validate())
	return NewWorld(lvl, p, DefaultWorldParams())
}

func kinds(events []Event) []EventKind {
	var out []EventKind
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func TestSpawnStartsJumpingAtRest(t *testing.T) {
	w := newTestWorld(t, testLevel(), nil)
	a := w.Spawn()
	assert.Equal(t, vec(100, 400), a.Position)
	assert.Equal(t, gamemath.Vec2{}, a.Velocity)
	assert.True(t, a.IsJumping)
	assert.False(t, a.Grounded)
	assert.Equal(t, 20.0, a.Radius)
}

func TestGroundingInvariant(t *testing.T) {
	w := newTestWorld(t, testLevel(), nil)
	a := w.Spawn()
	groundY := w.Bounds.GroundY

	for tick := 0; tick < 600; tick++ {
		in := Intent{MoveRight: tick%200 < 80, MoveLeft: tick%200 > 120}
		if tick%90 == 0 {
			w.Jump(&a)
		}
		w.Step(&a, in)
		if a.Bottom() >= groundY-eps {
			require.True(t, a.Grounded, "tick %d", tick)
			require.LessOrEqual(t, a.Bottom(), groundY+eps, "tick %d", tick)
		}
	}
}

func TestSettlesOnGround(t *testing.T) {
	w := newTestWorld(t, testLevel(), nil)
	a := w.Spawn()
	for range 300 {
		w.Step(&a, Intent{})
	}
	assert.True(t, a.Grounded)
	assert.False(t, a.IsJumping)
	assert.Zero(t, a.Velocity.Y)
	assert.InDelta(t, w.Bounds.GroundY-a.Radius, a.Position.Y, eps)
}

func TestSpeedIsClamped(t *testing.T) {
	w := newTestWorld(t, testLevel(), nil)
	a := w.Spawn()
	for tick := 0; tick < 300; tick++ {
		w.Step(&a, Intent{MoveRight: tick < 150, MoveLeft: tick >= 150})
		require.LessOrEqual(t, math.Abs(a.Velocity.X), w.Params.MaxSpeed, "tick %d", tick)
	}
}

func TestPlatformLanding(t *testing.T) {
	tests := []struct {
		name      string
		y         float64
		vy        float64
		wantVY    float64
		wantStill bool
	}{
		{name: "bounces", y: 275, vy: 5, wantVY: -(5 + 0.649) * 0.3675},
		// 0.5 + gravity stays under the settle threshold
		{name: "settles", y: 279.5, vy: 0.5, wantVY: 0, wantStill: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, testLevel(), nil)
			a := w.Spawn()
			a.Position = vec(500, tc.y)
			a.Velocity = vec(0, tc.vy)

			w.Step(&a, Intent{})

			assert.InDelta(t, 280.0, a.Position.Y, eps)
			assert.True(t, a.Grounded)
			assert.InDelta(t, tc.wantVY, a.Velocity.Y, eps)
			assert.Equal(t, !tc.wantStill, a.IsJumping)
		})
	}
}

func TestHeadHitStopsRise(t *testing.T) {
	w := newTestWorld(t, testLevel(), nil)
	a := w.Spawn()
	a.Position = vec(500, 345)
	a.Velocity = vec(0, -10)

	w.Step(&a, Intent{})

	assert.InDelta(t, 340.0, a.Position.Y, eps)
	assert.Zero(t, a.Velocity.Y)
	assert.False(t, a.Grounded)
}

func TestSideHitStopsHorizontalMotion(t *testing.T) {
	w := newTestWorld(t, testLevel(), nil)
	a := w.Spawn()
	a.Position = vec(375, 310)
	a.Velocity = vec(6, -0.649)

	w.Step(&a, Intent{})

	assert.InDelta(t, 380.0, a.Position.X, eps)
	assert.Zero(t, a.Velocity.X)
}

func TestWallBounce(t *testing.T) {
	w := newTestWorld(t, testLevel(), nil)
	a := w.Spawn()
	a.Position = vec(40, 300)
	a.Velocity = vec(-8, 0)

	w.Step(&a, Intent{})

	assert.InDelta(t, w.Bounds.WallThickness+a.Radius, a.Position.X, eps)
	assert.InDelta(t, 8*0.99*0.3675, a.Velocity.X, eps)
}

func TestPickupsAreIdempotent(t *testing.T) {
	lvl := testLevel()
	w := newTestWorld(t, lvl, nil)
	a := w.Spawn()
	a.Position = vec(705, 200)

	first := w.Pickups(&a)
	second := w.Pickups(&a)

	assert.Equal(t, []Event{{Kind: EventCollectiblePicked, Index: 0}}, first)
	assert.Empty(t, second)
	assert.True(t, lvl.Collectibles[0].Collected)
}

func TestPickupKeepsVelocity(t *testing.T) {
	w := newTestWorld(t, testLevel(), nil)
	a := w.Spawn()
	a.Position = vec(690, 200)
	a.Velocity = vec(3, -2)

	events := w.Step(&a, Intent{})

	assert.Equal(t, []EventKind{EventCollectiblePicked}, kinds(events))
	assert.InDelta(t, 3*0.99, a.Velocity.X, eps)
	assert.InDelta(t, -2+0.649, a.Velocity.Y, eps)
}

func TestSpikeDeath(t *testing.T) {
	w := newTestWorld(t, testLevel(), nil)
	a := w.Spawn()
	a.Position = vec(827, 532-20-0.5)
	a.IsJumping = false

	events := w.Step(&a, Intent{})

	assert.Equal(t, []EventKind{EventHitObstacle}, kinds(events))
}

func TestSingleObstacleEventPerTick(t *testing.T) {
	lvl := testLevel()
	lvl.Obstacles = append(lvl.Obstacles, leveldata.Obstacle{
		Position: vec(840, 532), Size: size(leveldata.SpikeWidth, leveldata.SpikeHeight), Kind: leveldata.ObstacleSpike,
	})
	w := newTestWorld(t, lvl, nil)
	a := w.Spawn()
	a.Position = vec(845, 520)

	events := w.Step(&a, Intent{})

	assert.Equal(t, []EventKind{EventHitObstacle}, kinds(events))
}

func TestReachingGoal(t *testing.T) {
	w := newTestWorld(t, testLevel(), nil)
	a := w.Spawn()
	a.Position = vec(1110, 520)

	events := w.Step(&a, Intent{})

	assert.Equal(t, []EventKind{EventReachedGoal}, kinds(events))
}

func TestFallingOffBottomlessLevel(t *testing.T) {
	lvl := testLevel()
	lvl.Bottomless = true
	w := newTestWorld(t, lvl, nil)
	require.False(t, w.Bounds.HasGround)

	a := w.Spawn()
	a.Position = vec(200, w.Bounds.FallY-0.1)

	events := w.Step(&a, Intent{})

	assert.False(t, a.Grounded)
	assert.Equal(t, []EventKind{EventFellOffWorld}, kinds(events))
}

func TestCoyoteWindow(t *testing.T) {
	noAirJump := func(p *Params) { p.AirJumpFactor = 0 }
	// Grounded on the platform's right edge, already clear of it horizontally.
	leaveEdge := func(w *World) Avatar {
		a := w.Spawn()
		a.Position = vec(621, 280)
		a.Grounded = true
		a.IsJumping = false
		return a
	}

	t.Run("one tick after leaving", func(t *testing.T) {
		w := newTestWorld(t, testLevel(), noAirJump)
		a := leaveEdge(w)
		w.Step(&a, Intent{})
		require.False(t, a.Grounded)
		require.True(t, a.LastGrounded)

		assert.Equal(t, JumpGround, w.Jump(&a))
		assert.Equal(t, w.Params.JumpForce, a.Velocity.Y)
		assert.True(t, a.IsJumping)
	})

	t.Run("two ticks after leaving", func(t *testing.T) {
		w := newTestWorld(t, testLevel(), noAirJump)
		a := leaveEdge(w)
		w.Step(&a, Intent{})
		w.Step(&a, Intent{})
		require.False(t, a.LastGrounded)

		vy := a.Velocity.Y
		assert.Equal(t, JumpNone, w.Jump(&a))
		assert.Equal(t, vy, a.Velocity.Y)
	})
}

func TestProximityJump(t *testing.T) {
	w := newTestWorld(t, testLevel(), func(p *Params) { p.AirJumpFactor = 0 })
	a := w.Spawn()
	a.Position = vec(500, 300-20-10)
	a.IsJumping = false

	assert.Equal(t, JumpGround, w.Jump(&a))
}

func TestAirJumpOnce(t *testing.T) {
	w := newTestWorld(t, testLevel(), nil)
	a := w.Spawn()
	a.Position = vec(900, 150)

	assert.Equal(t, JumpAir, w.Jump(&a))
	assert.InDelta(t, w.Params.JumpForce*w.Params.AirJumpFactor, a.Velocity.Y, eps)
	assert.Equal(t, JumpNone, w.Jump(&a))

	for !a.Grounded {
		w.Step(&a, Intent{})
	}
	assert.False(t, a.AirJumpUsed)
}

func TestRisingBlocksPrimaryJump(t *testing.T) {
	w := newTestWorld(t, testLevel(), func(p *Params) { p.AirJumpFactor = 0 })
	a := w.Spawn()
	a.Position = vec(200, 520)
	a.Velocity = vec(0, -5)
	a.IsJumping = true
	a.LastGrounded = true

	assert.Equal(t, JumpNone, w.Jump(&a))
}

func TestStepIsDeterministic(t *testing.T) {
	run := func() Avatar {
		w := newTestWorld(t, testLevel(), nil)
		a := w.Spawn()
		for tick := 0; tick < 400; tick++ {
			if tick%45 == 0 {
				w.Jump(&a)
			}
			w.Step(&a, Intent{MoveRight: tick%3 != 0})
		}
		return a
	}
	assert.Equal(t, run(), run())
}

func TestStepNeverMovesGeometry(t *testing.T) {
	lvl := testLevel()
	before := lvl.Clone()
	w := newTestWorld(t, lvl, nil)
	a := w.Spawn()
	for tick := 0; tick < 300; tick++ {
		w.Step(&a, Intent{MoveRight: true})
	}
	assert.Equal(t, before.Platforms, lvl.Platforms)
	assert.Equal(t, before.Obstacles, lvl.Obstacles)
	assert.Equal(t, before.Goal, lvl.Goal)
}

func TestBoundsWidenForWideLevels(t *testing.T) {
	levels := leveldata.Builtin()
	wp := DefaultWorldParams()

	assert.Equal(t, 1200.0, NewBounds(&levels[0], wp).Width)
	assert.Equal(t, 1450.0, NewBounds(&levels[4], wp).Width)

	b := NewBounds(&levels[0], wp)
	assert.Equal(t, 550.0, b.GroundY)
	assert.Equal(t, 820.0, b.FallY)
	assert.Equal(t, 14.0, b.WallThickness)
	assert.True(t, b.HasGround)
}

func TestReachLimits(t *testing.T) {
	limits := ReachLimits(DefaultParams(), DefaultWorldParams())
	assert.InDelta(t, 289.5, limits.MaxRise, 0.1)
	assert.Greater(t, limits.MaxReach, 800.0)
	assert.Equal(t, 550.0, limits.GroundY)

	assert.NoError(t, leveldata.ValidateAll(leveldata.Campaign(), limits))
}

func TestParamsValidate(t *testing.T) {
	assert.NoError(t, DefaultParams().Validate())
	assert.NoError(t, DefaultWorldParams().Validate())

	p := DefaultParams()
	p.Gravity = 0
	p.BounceFactor = 1.5
	err := p.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParams)
	assert.Contains(t, err.Error(), "gravity")
	assert.Contains(t, err.Error(), "bounce_factor")

	wp := DefaultWorldParams()
	wp.CellSize = 0
	assert.ErrorIs(t, wp.Validate(), ErrInvalidParams)
}

func TestEventStrings(t *testing.T) {
	assert.Equal(t, "hitObstacle", EventHitObstacle.String())
	assert.Equal(t, "collectiblePicked(2)", Event{Kind: EventCollectiblePicked, Index: 2}.String())
	assert.True(t, EventFellOffWorld.Terminal())
	assert.False(t, EventCollectiblePicked.Terminal())
	assert.Equal(t, "air", JumpAir.String())
}
