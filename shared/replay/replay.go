// Package replay runs scripted input against a Session without a window. A
// script is a list of steps, each holding an input for a number of frames.
package replay

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/bounce/shared/gamestate"
	"github.com/automoto/bounce/shared/leveldata"
	"github.com/automoto/bounce/shared/physics"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrEmptyScript = errors.New("replay: script has no frames")

// Step holds an input for Frames ticks. Jump and Pause fire on the first
// frame of the step only.
type Step struct {
	Frames int  `yaml:"frames"`
	Left   bool `yaml:"left"`
	Right  bool `yaml:"right"`
	Jump   bool `yaml:"jump"`
	Pause  bool `yaml:"pause"`
}

// Script is a replay file. Level selects the starting level by id; zero
// starts at the first level.
type Script struct {
	Level int    `yaml:"level"`
	Steps []Step `yaml:"steps"`
}

// Frames returns the total length of the script in ticks.
func (s Script) Frames() int {
	n := 0
	for _, st := range s.Steps {
		n += max(st.Frames, 0)
	}
	return n
}

func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: load %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("replay: unmarshal: %w", err)
	}
	if s.Frames() == 0 {
		return Script{}, ErrEmptyScript
	}
	return s, nil
}

// Frame is one tick of expanded script input.
type Frame struct {
	Intent physics.Intent
	Jump   bool
	Pause  bool
}

// Expand flattens the script into per-tick frames.
func (s Script) Expand() []Frame {
	frames := make([]Frame, 0, s.Frames())
	for _, st := range s.Steps {
		for i := 0; i < st.Frames; i++ {
			frames = append(frames, Frame{
				Intent: physics.Intent{MoveLeft: st.Left, MoveRight: st.Right},
				Jump:   st.Jump && i == 0,
				Pause:  st.Pause && i == 0,
			})
		}
	}
	return frames
}

// Record is something that happened during a replay.
type Record struct {
	Frame int
	Event string
}

// Result summarises a finished replay.
type Result struct {
	Frames    int
	State     gamestate.State
	Score     int
	HighScore int
	LevelID   int
	Avatar    physics.Avatar
	Records   []Record
}

// Player steps a session through a script one frame at a time so callers
// can pace it.
type Player struct {
	session *gamestate.Session
	frames  []Frame
	next    int
	records []Record
}

// NewPlayer starts a new game on session at the script's level.
func NewPlayer(session *gamestate.Session, script Script) (*Player, error) {
	var err error
	if script.Level != 0 {
		err = session.StartAt(script.Level)
	} else {
		err = session.Start()
	}
	if err != nil {
		return nil, fmt.Errorf("replay: start: %w", err)
	}
	return &Player{session: session, frames: script.Expand()}, nil
}

// Step plays one frame. It returns false once the script is exhausted or the
// attempt has ended.
func (p *Player) Step() bool {
	if p.Done() {
		return false
	}
	f := p.frames[p.next]
	p.next++
	s := p.session

	if f.Pause {
		if err := s.TogglePause(); err == nil {
			p.record(s.State().String())
		}
	}
	if f.Jump {
		if kind := s.Jump(); kind != physics.JumpNone {
			p.record("jump:" + kind.String())
		}
	}
	before := s.State()
	for _, e := range s.Tick(f.Intent) {
		p.record(e.String())
	}
	if after := s.State(); after != before {
		p.record(after.String())
	}
	return !p.Done()
}

// Done reports whether the script is exhausted or the attempt has ended.
func (p *Player) Done() bool {
	if p.next >= len(p.frames) {
		return true
	}
	state := p.session.State()
	return state == gamestate.StateGameOver || state == gamestate.StateLevelComplete
}

func (p *Player) record(event string) {
	p.records = append(p.records, Record{Frame: p.next, Event: event})
	log.WithFields(log.Fields{"frame": p.next, "event": event}).Debug("replay")
}

// Result reports the session as it stands now.
func (p *Player) Result() Result {
	s := p.session
	return Result{
		Frames:    p.next,
		State:     s.State(),
		Score:     s.Score(),
		HighScore: s.HighScore(),
		LevelID:   s.Level().ID,
		Avatar:    s.Avatar(),
		Records:   append([]Record(nil), p.records...),
	}
}

// Run plays a whole script against a fresh session over catalog.
func Run(catalog []leveldata.Level, opts gamestate.Options, script Script) (Result, error) {
	session, err := gamestate.NewSession(catalog, opts)
	if err != nil {
		return Result{}, err
	}
	player, err := NewPlayer(session, script)
	if err != nil {
		return Result{}, err
	}
	for player.Step() {
	}
	return player.Result(), nil
}
