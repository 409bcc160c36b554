package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLevelsListsBuiltinCampaign(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, levelsAction(&out, "", ""))

	assert.Contains(t, out.String(), "The Gauntlet")
	assert.Contains(t, out.String(), "Chunk Run")
	assert.Contains(t, out.String(), "6 levels ok")
}

func TestRunPrintsOutcome(t *testing.T) {
	script := writeFile(t, "idle.yaml", "level: 1\nsteps:\n  - frames: 5\n")

	var out bytes.Buffer
	require.NoError(t, runAction(&out, script, "", ""))

	assert.Contains(t, out.String(), "level 1  state playing")
	assert.Contains(t, out.String(), "frames 5")
}

func TestRunAppliesTunables(t *testing.T) {
	script := writeFile(t, "hop.yaml", "steps:\n  - frames: 1\n    jump: true\n")
	tun := writeFile(t, "tunables.yaml", "physics:\n  gravity: 0.6\n")

	var out bytes.Buffer
	require.NoError(t, runAction(&out, script, tun, ""))
	assert.Contains(t, out.String(), "jump:ground")
	// -14.75 jump force plus the overridden gravity
	assert.Contains(t, out.String(), "moving (0.00, -14.15)")
}

func TestRunRequiresScript(t *testing.T) {
	assert.ErrorIs(t, runAction(&bytes.Buffer{}, "", "", ""), errNoScript)
	assert.ErrorIs(t, playAction("", "", "", 60), errNoScript)
}
