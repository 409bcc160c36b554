package leveldata

import (
	"errors"
	"fmt"
)

var (
	// ErrLevelNotFound is returned by Load when no level has the requested id.
	ErrLevelNotFound = errors.New("level not found")
	// ErrNoLevels is returned when a Manager is built from an empty catalog.
	ErrNoLevels = errors.New("no levels")
)

// Manager owns a private copy of the catalog for one playthrough and the
// cursor to its current level.
type Manager struct {
	levels []Level
	index  int
}

// NewManager deep-copies levels so collectible state never leaks back into
// the caller's catalog.
func NewManager(levels []Level) (*Manager, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	return &Manager{levels: CloneAll(levels)}, nil
}

// Current returns the level at the cursor.
func (m *Manager) Current() *Level {
	return &m.levels[m.index]
}

// Load moves the cursor to the level with the given id. The cursor is left
// untouched when the id is unknown.
func (m *Manager) Load(id int) (*Level, error) {
	for i := range m.levels {
		if m.levels[i].ID == id {
			m.index = i
			return m.Current(), nil
		}
	}
	return nil, fmt.Errorf("load level %d: %w", id, ErrLevelNotFound)
}

// Next advances the cursor. It returns false, without moving, at the last level.
func (m *Manager) Next() (*Level, bool) {
	if !m.HasNext() {
		return nil, false
	}
	m.index++
	return m.Current(), true
}

// Previous moves the cursor back. It returns false, without moving, at the
// first level.
func (m *Manager) Previous() (*Level, bool) {
	if !m.HasPrevious() {
		return nil, false
	}
	m.index--
	return m.Current(), true
}

// Reset clears the collected flag on every collectible of the current level.
func (m *Manager) Reset() {
	lvl := m.Current()
	for i := range lvl.Collectibles {
		lvl.Collectibles[i].Collected = false
	}
}

func (m *Manager) HasNext() bool     { return m.index < len(m.levels)-1 }
func (m *Manager) HasPrevious() bool { return m.index > 0 }
func (m *Manager) Count() int        { return len(m.levels) }
func (m *Manager) Index() int        { return m.index }
