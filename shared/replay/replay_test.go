package replay

import (
	"testing"

	"github.com/automoto/bounce/shared/gamemath"
	"github.com/automoto/bounce/shared/gamestate"
	"github.com/automoto/bounce/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runRight = `
level: 1
steps:
  - frames: 30
  - frames: 60
    right: true
    jump: true
  - frames: 20
    left: true
  - frames: 90
    right: true
    jump: true
`

func TestParseAndExpand(t *testing.T) {
	s, err := Parse([]byte(runRight))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Level)
	require.Len(t, s.Steps, 4)
	assert.Equal(t, 200, s.Frames())

	frames := s.Expand()
	require.Len(t, frames, 200)
	assert.False(t, frames[0].Jump)
	assert.True(t, frames[30].Jump)
	assert.True(t, frames[30].Intent.MoveRight)
	assert.False(t, frames[31].Jump, "jump fires once per step")
	assert.True(t, frames[90].Intent.MoveLeft)
}

func TestParseRejectsEmptyScript(t *testing.T) {
	_, err := Parse([]byte("level: 1\nsteps: []\n"))
	assert.ErrorIs(t, err, ErrEmptyScript)

	_, err = Parse([]byte("steps: [oops"))
	assert.Error(t, err)
}

func TestRunIsDeterministic(t *testing.T) {
	s, err := Parse([]byte(runRight))
	require.NoError(t, err)

	first, err := Run(leveldata.Builtin(), gamestate.Options{}, s)
	require.NoError(t, err)
	second, err := Run(leveldata.Builtin(), gamestate.Options{}, s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, leveldata.Builtin()[0].Start, first.Avatar.Position)
}

func TestRunStopsWhenLevelEnds(t *testing.T) {
	lvl := leveldata.Level{
		ID:    4,
		Name:  "Goal",
		Goal:  leveldata.Goal{Position: gamemath.Vec2{X: 100, Y: 490}, Size: gamemath.Size{Width: 40, Height: 60}},
		Start: gamemath.Vec2{X: 120, Y: 520},
	}
	script := Script{Level: 4, Steps: []Step{{Frames: 50}}}

	res, err := Run([]leveldata.Level{lvl}, gamestate.Options{}, script)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Frames)
	assert.Equal(t, gamestate.StateLevelComplete, res.State)
	assert.Equal(t, 50, res.Score)
	assert.Equal(t, []Record{
		{Frame: 1, Event: "reachedGoal"},
		{Frame: 1, Event: "levelComplete"},
	}, res.Records)
}

func TestRunUnknownLevel(t *testing.T) {
	_, err := Run(leveldata.Builtin(), gamestate.Options{}, Script{Level: 42, Steps: []Step{{Frames: 1}}})
	assert.ErrorIs(t, err, leveldata.ErrLevelNotFound)
}

func TestPausedFramesFreezeAvatar(t *testing.T) {
	session, err := gamestate.NewSession(leveldata.Builtin(), gamestate.Options{})
	require.NoError(t, err)
	p, err := NewPlayer(session, Script{Steps: []Step{
		{Frames: 10},
		{Frames: 20, Pause: true, Right: true},
	}})
	require.NoError(t, err)

	for range 10 {
		p.Step()
	}
	frozen := session.Avatar()
	for p.Step() {
	}

	assert.Equal(t, gamestate.StatePaused, session.State())
	assert.Equal(t, frozen, session.Avatar())
	assert.Equal(t, 30, p.Result().Frames)
}
