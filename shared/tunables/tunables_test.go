package tunables

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/bounce/shared/gamestate"
	"github.com/automoto/bounce/shared/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	got, err := Parse([]byte(`
physics:
  gravity: 0.5
  air_jump_factor: 0
scoring:
  star_points: 25
`))
	require.NoError(t, err)

	want := Default()
	want.Physics.Gravity = 0.5
	want.Physics.AirJumpFactor = 0
	want.Scoring.StarPoints = 25
	assert.Equal(t, want, got)
}

func TestParseEmptyIsDefault(t *testing.T) {
	got, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("physics:\n  gravty: 1\n"))
	assert.Error(t, err)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	_, err := Parse([]byte("physics:\n  bounce_factor: 2\n"))
	assert.ErrorIs(t, err, physics.ErrInvalidParams)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  width: 1600\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1600.0, got.World.Width)
	assert.Equal(t, physics.DefaultParams(), got.Physics)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalParsesBack(t *testing.T) {
	want := Default()
	want.Physics.MaxSpeed = 12
	data, err := want.Marshal()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestZeroScoringSurvivesOptions(t *testing.T) {
	got, err := Parse([]byte("scoring:\n  star_points: 0\n  goal_bonus: 0\n"))
	require.NoError(t, err)

	opts := got.Options()
	require.NotNil(t, opts.Scoring)
	assert.Equal(t, gamestate.Scoring{}, *opts.Scoring)
}
