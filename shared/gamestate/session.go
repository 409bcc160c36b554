package gamestate

import (
	"fmt"

	"github.com/automoto/bounce/shared/leveldata"
	"github.com/automoto/bounce/shared/physics"
	log "github.com/sirupsen/logrus"
)

// Options configure a Session. Zero Physics and World values and a nil
// Scoring are replaced by the defaults. An explicit Scoring is used as is, so
// zero points are allowed.
type Options struct {
	Physics   physics.Params
	World     physics.WorldParams
	Scoring   *Scoring
	HighScore int
}

func (o Options) withDefaults() Options {
	if o.Physics == (physics.Params{}) {
		o.Physics = physics.DefaultParams()
	}
	if o.World == (physics.WorldParams{}) {
		o.World = physics.DefaultWorldParams()
	}
	if o.Scoring == nil {
		scoring := DefaultScoring()
		o.Scoring = &scoring
	} else {
		scoring := *o.Scoring
		o.Scoring = &scoring
	}
	return o
}

// Session is a single player's playthrough. It is not safe for concurrent
// use; every call is expected on the update goroutine.
type Session struct {
	opts    Options
	catalog []leveldata.Level

	manager *leveldata.Manager
	world   *physics.World
	avatar  physics.Avatar

	state     State
	score     int
	highScore int
	attempt   int
	finished  bool
}

// NewSession builds a session in the start state. The catalog is copied and
// stays pristine for every new game.
func NewSession(catalog []leveldata.Level, opts Options) (*Session, error) {
	if len(catalog) == 0 {
		return nil, leveldata.ErrNoLevels
	}
	opts = opts.withDefaults()
	if err := opts.Physics.Validate(); err != nil {
		return nil, err
	}
	if err := opts.World.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		opts:      opts,
		catalog:   leveldata.CloneAll(catalog),
		state:     StateStart,
		highScore: opts.HighScore,
	}
	if err := s.resetToTitle(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetCatalog swaps the catalog used by the next Start or Restart. A running
// attempt keeps its level.
func (s *Session) SetCatalog(catalog []leveldata.Level) error {
	if len(catalog) == 0 {
		return leveldata.ErrNoLevels
	}
	s.catalog = leveldata.CloneAll(catalog)
	log.WithField("levels", len(catalog)).Info("catalog replaced")
	if s.state == StateStart {
		return s.resetToTitle()
	}
	return nil
}

// Start begins a new game from the first level.
func (s *Session) Start() error {
	if s.state != StateStart {
		return invalid("start", s.state)
	}
	if err := s.newGame(); err != nil {
		return err
	}
	s.begin()
	return nil
}

// StartAt begins a new game at the level with the given id.
func (s *Session) StartAt(id int) error {
	if s.state != StateStart {
		return invalid("start", s.state)
	}
	manager, err := leveldata.NewManager(s.catalog)
	if err != nil {
		return err
	}
	if _, err := manager.Load(id); err != nil {
		return err
	}
	s.manager = manager
	s.score = 0
	s.finished = false
	s.begin()
	return nil
}

func (s *Session) Pause() error {
	if s.state != StatePlaying {
		return invalid("pause", s.state)
	}
	s.transition(StatePaused)
	return nil
}

func (s *Session) Resume() error {
	if s.state != StatePaused {
		return invalid("resume", s.state)
	}
	s.transition(StatePlaying)
	return nil
}

// TogglePause pauses a running game or resumes a paused one.
func (s *Session) TogglePause() error {
	switch s.state {
	case StatePlaying:
		return s.Pause()
	case StatePaused:
		return s.Resume()
	}
	return invalid("toggle pause", s.state)
}

// Restart starts over from the first level after a game over.
func (s *Session) Restart() error {
	if s.state != StateGameOver {
		return invalid("restart", s.state)
	}
	if err := s.newGame(); err != nil {
		return err
	}
	s.begin()
	return nil
}

// Advance moves on from a completed level. It reports false when the
// campaign is over and the session has returned to the start state.
func (s *Session) Advance() (bool, error) {
	if s.state != StateLevelComplete {
		return false, invalid("advance", s.state)
	}
	if _, ok := s.manager.Next(); ok {
		s.begin()
		return true, nil
	}

	s.recordHighScore()
	log.WithFields(log.Fields{"score": s.score, "highScore": s.highScore}).Info("campaign complete")
	if err := s.resetToTitle(); err != nil {
		return false, err
	}
	s.finished = true
	return false, nil
}

// Jump forwards a jump request to the engine while playing.
func (s *Session) Jump() physics.JumpKind {
	if s.state != StatePlaying {
		return physics.JumpNone
	}
	kind := s.world.Jump(&s.avatar)
	if kind != physics.JumpNone {
		log.WithField("kind", kind).Debug("jump")
	}
	return kind
}

// Tick runs one physics step and applies its events. Outside the playing
// state it does nothing.
func (s *Session) Tick(in physics.Intent) []physics.Event {
	if s.state != StatePlaying {
		return nil
	}
	events := s.world.Step(&s.avatar, in)
	s.apply(events)
	return events
}

func (s *Session) apply(events []physics.Event) {
	for _, e := range events {
		if e.Kind == physics.EventCollectiblePicked {
			s.score += s.opts.Scoring.StarPoints
			continue
		}
		// The first terminal event of a tick decides the outcome.
		if s.state != StatePlaying {
			continue
		}
		switch e.Kind {
		case physics.EventHitObstacle, physics.EventFellOffWorld:
			s.transition(StateGameOver)
			s.recordHighScore()
			log.WithFields(log.Fields{"cause": e.Kind, "score": s.score}).Info("game over")
		case physics.EventReachedGoal:
			s.score += s.opts.Scoring.GoalBonus
			s.transition(StateLevelComplete)
		}
	}
}

func (s *Session) newGame() error {
	manager, err := leveldata.NewManager(s.catalog)
	if err != nil {
		return err
	}
	s.manager = manager
	s.score = 0
	s.finished = false
	return nil
}

// begin starts an attempt at the manager's current level.
func (s *Session) begin() {
	s.manager.Reset()
	level := s.manager.Current()
	s.world = physics.NewWorld(level, s.opts.Physics, s.opts.World)
	s.avatar = s.world.Spawn()
	s.attempt++
	log.WithFields(log.Fields{"levelID": level.ID, "name": level.Name, "attempt": s.attempt}).Info("level started")
	s.transition(StatePlaying)
}

// resetToTitle returns to the start state showing the first level.
func (s *Session) resetToTitle() error {
	manager, err := leveldata.NewManager(s.catalog)
	if err != nil {
		return err
	}
	s.manager = manager
	s.world = physics.NewWorld(manager.Current(), s.opts.Physics, s.opts.World)
	s.avatar = s.world.Spawn()
	s.attempt++
	s.transition(StateStart)
	return nil
}

func (s *Session) transition(to State) {
	if s.state == to {
		return
	}
	log.WithFields(log.Fields{"from": s.state, "to": to}).Debug("state transition")
	s.state = to
}

func (s *Session) recordHighScore() {
	if s.score > s.highScore {
		s.highScore = s.score
	}
}

func (s *Session) State() State    { return s.state }
func (s *Session) Score() int      { return s.score }
func (s *Session) HighScore() int  { return s.highScore }
func (s *Session) Attempt() int    { return s.attempt }
func (s *Session) LevelIndex() int { return s.manager.Index() }
func (s *Session) LevelCount() int { return s.manager.Count() }

// Finished reports whether the last game ended by clearing every level.
func (s *Session) Finished() bool { return s.finished }

// Avatar returns a copy of the avatar state.
func (s *Session) Avatar() physics.Avatar { return s.avatar }

// Level returns the level being played. Callers must treat it as read-only.
func (s *Session) Level() *leveldata.Level { return s.world.Level }

func (s *Session) Bounds() physics.Bounds { return s.world.Bounds }

// World exposes the running physics world for debug drawing.
func (s *Session) World() *physics.World { return s.world }

// Catalog returns a copy of the pristine catalog.
func (s *Session) Catalog() []leveldata.Level { return leveldata.CloneAll(s.catalog) }

func (s *Session) String() string {
	return fmt.Sprintf("%s level=%d/%d score=%d high=%d", s.state, s.LevelIndex()+1, s.LevelCount(), s.score, s.highScore)
}
