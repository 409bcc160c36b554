// Package tunables loads physics, world and scoring overrides from YAML.
package tunables

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/bounce/shared/gamestate"
	"github.com/automoto/bounce/shared/physics"
	"gopkg.in/yaml.v3"
)

// Tunables groups every value a YAML file may override.
type Tunables struct {
	Physics physics.Params      `yaml:"physics"`
	World   physics.WorldParams `yaml:"world"`
	Scoring gamestate.Scoring   `yaml:"scoring"`
}

func Default() Tunables {
	return Tunables{
		Physics: physics.DefaultParams(),
		World:   physics.DefaultWorldParams(),
		Scoring: gamestate.DefaultScoring(),
	}
}

// Options converts the tunables into session options.
func (t Tunables) Options() gamestate.Options {
	scoring := t.Scoring
	return gamestate.Options{Physics: t.Physics, World: t.World, Scoring: &scoring}
}

// Load reads a tunables file. Keys missing from the file keep their defaults.
func Load(path string) (Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tunables{}, fmt.Errorf("tunables: load %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Tunables{}, fmt.Errorf("tunables: %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes tunables over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Tunables, error) {
	t := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tunables{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := t.Physics.Validate(); err != nil {
		return Tunables{}, err
	}
	if err := t.World.Validate(); err != nil {
		return Tunables{}, err
	}
	return t, nil
}

// Marshal renders the tunables as YAML.
func (t Tunables) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}
