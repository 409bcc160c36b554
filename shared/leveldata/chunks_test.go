package leveldata

import (
	"testing"

	"github.com/automoto/bounce/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkLibrary(t *testing.T) {
	ids := []string{"basicJump", "spikeGap", "collectibleArc", "verticalClimb", "obstacleTunnel", "easyFlat"}
	for _, id := range ids {
		c, ok := ChunkByID(id)
		require.True(t, ok, id)
		assert.Equal(t, id, c.ID)
		assert.NotEmpty(t, c.Platforms)
	}

	_, ok := ChunkByID("nope")
	assert.False(t, ok)
}

func TestComposeLaysChunksEndToEnd(t *testing.T) {
	flat, _ := ChunkByID("easyFlat")
	jump, _ := ChunkByID("basicJump")

	lvl, err := Compose(9, "Test Run", gamemath.Vec2{X: 60}, 80, flat, jump)
	require.NoError(t, err)

	assert.Equal(t, 9, lvl.ID)
	require.Len(t, lvl.Platforms, 3)
	assert.Equal(t, gamemath.Vec2{X: 60, Y: 400}, lvl.Platforms[0].Position)
	// easyFlat is 300 wide, so basicJump starts 80 units after it and is
	// lifted so its entry matches easyFlat's exit height.
	assert.Equal(t, gamemath.Vec2{X: 440, Y: 400}, lvl.Platforms[1].Position)
	assert.Equal(t, gamemath.Vec2{X: 640, Y: 400}, lvl.Platforms[2].Position)

	assert.Equal(t, gamemath.Vec2{X: 90, Y: 380}, lvl.Start)
	assert.Equal(t, gamemath.Vec2{X: 670, Y: 340}, lvl.Goal.Position)
	require.Len(t, lvl.Collectibles, 1)
	assert.Equal(t, gamemath.Vec2{X: 210, Y: 370}, lvl.Collectibles[0].Position)

	assert.NoError(t, Validate(&lvl, testLimits))
}

func TestComposeNeedsChunks(t *testing.T) {
	_, err := Compose(1, "empty", gamemath.Vec2{}, 0)
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestComposeDoesNotShareChunkSlices(t *testing.T) {
	arc, _ := ChunkByID("collectibleArc")
	lvl, err := Compose(1, "arc", gamemath.Vec2{}, 0, arc)
	require.NoError(t, err)

	lvl.Collectibles[0].Collected = true
	assert.False(t, arc.Collectibles[0].Collected)
}
