package gamestate

import (
	"testing"

	"github.com/automoto/bounce/shared/gamemath"
	"github.com/automoto/bounce/shared/leveldata"
	"github.com/automoto/bounce/shared/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(x, y float64) gamemath.Vec2 { return gamemath.Vec2{X: x, Y: y} }

var (
	goalSize  = gamemath.Size{Width: leveldata.GoalWidth, Height: leveldata.GoalHeight}
	spikeSize = gamemath.Size{Width: leveldata.SpikeWidth, Height: leveldata.SpikeHeight}
)

// goalLevel spawns the avatar inside its goal.
func goalLevel(id int) leveldata.Level {
	return leveldata.Level{
		ID:    id,
		Name:  "Goal",
		Goal:  leveldata.Goal{Position: vec(100, 490), Size: goalSize},
		Start: vec(120, 520),
	}
}

// spikeLevel spawns the avatar half a unit above a spike with a star at the
// spawn point.
func spikeLevel(id int) leveldata.Level {
	return leveldata.Level{
		ID:   id,
		Name: "Spike",
		Obstacles: []leveldata.Obstacle{
			{Position: vec(173, 532), Size: spikeSize, Kind: leveldata.ObstacleSpike},
		},
		Collectibles: []leveldata.Collectible{
			{Position: vec(200, 511.5), Radius: leveldata.StarRadius, Kind: leveldata.CollectibleRing},
		},
		Goal:  leveldata.Goal{Position: vec(1000, 490), Size: goalSize},
		Start: vec(200, 511.5),
	}
}

// idleLevel lets the avatar settle on the ground without any event.
func idleLevel(id int) leveldata.Level {
	return leveldata.Level{
		ID:   id,
		Name: "Idle",
		Collectibles: []leveldata.Collectible{
			{Position: vec(600, 300), Radius: leveldata.StarRadius, Kind: leveldata.CollectibleRing},
		},
		Goal:  leveldata.Goal{Position: vec(1000, 490), Size: goalSize},
		Start: vec(200, 400),
	}
}

func newTestSession(t *testing.T, opts Options, levels ...leveldata.Level) *Session {
	t.Helper()
	s, err := NewSession(levels, opts)
	require.NoError(t, err)
	return s
}

func TestNewSessionRejectsEmptyCatalog(t *testing.T) {
	_, err := NewSession(nil, Options{})
	assert.ErrorIs(t, err, leveldata.ErrNoLevels)
}

func TestNewSessionRejectsBadParams(t *testing.T) {
	p := physics.DefaultParams()
	p.Gravity = -1
	_, err := NewSession([]leveldata.Level{idleLevel(1)}, Options{Physics: p})
	assert.ErrorIs(t, err, physics.ErrInvalidParams)
}

func TestSessionStartsIdle(t *testing.T) {
	s := newTestSession(t, Options{}, idleLevel(1))
	assert.Equal(t, StateStart, s.State())

	before := s.Avatar()
	assert.Nil(t, s.Tick(physics.Intent{MoveRight: true}))
	assert.Equal(t, physics.JumpNone, s.Jump())
	assert.Equal(t, before, s.Avatar())
}

func TestStartBeginsFirstLevel(t *testing.T) {
	s := newTestSession(t, Options{}, idleLevel(1), idleLevel(2))
	attempt := s.Attempt()

	require.NoError(t, s.Start())

	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 0, s.LevelIndex())
	assert.Equal(t, 2, s.LevelCount())
	assert.Equal(t, attempt+1, s.Attempt())
	assert.Equal(t, vec(200, 400), s.Avatar().Position)
	assert.Zero(t, s.Score())
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(s *Session)
		action func(s *Session) error
	}{
		{name: "pause from start", action: (*Session).Pause},
		{name: "resume from start", action: (*Session).Resume},
		{name: "restart from start", action: (*Session).Restart},
		{name: "toggle from start", action: (*Session).TogglePause},
		{
			name:   "advance from start",
			action: func(s *Session) error { _, err := s.Advance(); return err },
		},
		{
			name:   "start while playing",
			setup:  func(s *Session) { _ = s.Start() },
			action: (*Session).Start,
		},
		{
			name:   "resume while playing",
			setup:  func(s *Session) { _ = s.Start() },
			action: (*Session).Resume,
		},
		{
			name:   "restart while paused",
			setup:  func(s *Session) { _ = s.Start(); _ = s.Pause() },
			action: (*Session).Restart,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, Options{}, idleLevel(1))
			if tc.setup != nil {
				tc.setup(s)
			}
			before := s.State()

			err := tc.action(s)

			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, before, s.State())
		})
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	s := newTestSession(t, Options{}, idleLevel(1))
	require.NoError(t, s.Start())
	s.Tick(physics.Intent{})

	require.NoError(t, s.TogglePause())
	assert.Equal(t, StatePaused, s.State())
	frozen := s.Avatar()
	for range 10 {
		assert.Nil(t, s.Tick(physics.Intent{MoveLeft: true}))
	}
	assert.Equal(t, frozen, s.Avatar())

	require.NoError(t, s.TogglePause())
	assert.Equal(t, StatePlaying, s.State())
	s.Tick(physics.Intent{})
	assert.NotEqual(t, frozen, s.Avatar())
}

func TestGoalCompletionAndAdvance(t *testing.T) {
	s := newTestSession(t, Options{}, goalLevel(1), goalLevel(2))
	require.NoError(t, s.Start())

	events := s.Tick(physics.Intent{})
	require.Len(t, events, 1)
	assert.Equal(t, physics.EventReachedGoal, events[0].Kind)
	assert.Equal(t, StateLevelComplete, s.State())
	assert.Equal(t, 50, s.Score())

	more, err := s.Advance()
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 1, s.LevelIndex())
	assert.Equal(t, 50, s.Score(), "score carries across levels")
	assert.Equal(t, vec(120, 520), s.Avatar().Position)

	s.Tick(physics.Intent{})
	assert.Equal(t, 100, s.Score())

	more, err = s.Advance()
	require.NoError(t, err)
	assert.False(t, more)
	assert.Equal(t, StateStart, s.State())
	assert.True(t, s.Finished())
	assert.Equal(t, 100, s.HighScore())
	assert.Equal(t, 0, s.LevelIndex())
}

func TestSpikeDeathUpdatesHighScore(t *testing.T) {
	s := newTestSession(t, Options{}, spikeLevel(1))
	require.NoError(t, s.Start())

	events := s.Tick(physics.Intent{})

	require.Len(t, events, 2)
	assert.Equal(t, physics.EventCollectiblePicked, events[0].Kind)
	assert.Equal(t, physics.EventHitObstacle, events[1].Kind)
	assert.Equal(t, StateGameOver, s.State())
	assert.Equal(t, 10, s.Score())
	assert.Equal(t, 10, s.HighScore())
}

func TestLowerScoreKeepsHighScore(t *testing.T) {
	s := newTestSession(t, Options{HighScore: 500}, spikeLevel(1))
	require.NoError(t, s.Start())
	s.Tick(physics.Intent{})

	assert.Equal(t, StateGameOver, s.State())
	assert.Equal(t, 500, s.HighScore())
}

func TestDeathBeatsGoalInSameTick(t *testing.T) {
	lvl := goalLevel(1)
	lvl.Obstacles = []leveldata.Obstacle{
		{Position: vec(100, 532), Size: spikeSize, Kind: leveldata.ObstacleSpike},
	}
	s := newTestSession(t, Options{}, lvl)
	require.NoError(t, s.Start())

	events := s.Tick(physics.Intent{})

	require.Len(t, events, 2)
	assert.Equal(t, StateGameOver, s.State())
	assert.Zero(t, s.Score())
}

func TestFallingOffEndsGame(t *testing.T) {
	lvl := idleLevel(1)
	lvl.Bottomless = true
	s := newTestSession(t, Options{}, lvl)
	require.NoError(t, s.Start())

	for i := 0; i < 200 && s.State() == StatePlaying; i++ {
		s.Tick(physics.Intent{})
	}

	assert.Equal(t, StateGameOver, s.State())
}

func TestRestartIsAFreshGame(t *testing.T) {
	s := newTestSession(t, Options{}, goalLevel(1), spikeLevel(2))
	require.NoError(t, s.Start())
	s.Tick(physics.Intent{})
	_, err := s.Advance()
	require.NoError(t, err)
	s.Tick(physics.Intent{})
	require.Equal(t, StateGameOver, s.State())
	require.Equal(t, 60, s.Score())

	require.NoError(t, s.Restart())

	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 0, s.LevelIndex())
	assert.Zero(t, s.Score())
	assert.Equal(t, 60, s.HighScore())
}

func TestCatalogStaysPristine(t *testing.T) {
	s := newTestSession(t, Options{}, spikeLevel(1))
	require.NoError(t, s.Start())
	s.Tick(physics.Intent{})
	require.True(t, s.Level().Collectibles[0].Collected)

	assert.False(t, s.Catalog()[0].Collectibles[0].Collected)

	require.NoError(t, s.Restart())
	assert.False(t, s.Level().Collectibles[0].Collected)
}

func TestStartAt(t *testing.T) {
	s := newTestSession(t, Options{}, idleLevel(1), idleLevel(2), idleLevel(3))

	err := s.StartAt(99)
	assert.ErrorIs(t, err, ErrLevelNotFound)
	assert.Equal(t, StateStart, s.State())

	require.NoError(t, s.StartAt(3))
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 2, s.LevelIndex())
	assert.Equal(t, 3, s.Level().ID)
}

func TestSetCatalogAppliesOnNextGame(t *testing.T) {
	s := newTestSession(t, Options{}, spikeLevel(1))
	require.NoError(t, s.Start())

	require.NoError(t, s.SetCatalog([]leveldata.Level{spikeLevel(7)}))
	assert.Equal(t, 1, s.Level().ID, "running attempt keeps its level")

	s.Tick(physics.Intent{})
	require.Equal(t, StateGameOver, s.State())
	require.NoError(t, s.Restart())
	assert.Equal(t, 7, s.Level().ID)

	assert.ErrorIs(t, s.SetCatalog(nil), leveldata.ErrNoLevels)
}

func TestSetCatalogOnTitleRefreshesPreview(t *testing.T) {
	s := newTestSession(t, Options{}, idleLevel(1))
	attempt := s.Attempt()

	require.NoError(t, s.SetCatalog([]leveldata.Level{idleLevel(4), idleLevel(5)}))

	assert.Equal(t, 4, s.Level().ID)
	assert.Equal(t, 2, s.LevelCount())
	assert.Greater(t, s.Attempt(), attempt)
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "levelComplete", StateLevelComplete.String())
	assert.Equal(t, "State(42)", State(42).String())
}

func TestExplicitZeroScoring(t *testing.T) {
	s := newTestSession(t, Options{Scoring: &Scoring{}}, spikeLevel(1))
	require.NoError(t, s.Start())

	events := s.Tick(physics.Intent{})

	require.Len(t, events, 2)
	assert.Zero(t, s.Score(), "zero star points are kept")
}
