package systems

import (
	"fmt"

	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/shared/gamestate"
	"github.com/automoto/bounce/shared/physics"
	"github.com/automoto/bounce/systems/factory"
	"github.com/automoto/bounce/tags"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession feeds this frame's input to the game session: state actions
// first, then jump and one physics tick while playing.
func UpdateSession(ecs *ecs.ECS) {
	data, ok := GetSession(ecs)
	if !ok {
		return
	}
	s := data.Session
	input := getOrCreateInput(ecs)
	data.Events = data.Events[:0]

	drainReloads(data)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		data.Debug = !data.Debug
	}

	play, err := s.Handle(gamestate.Controls{
		Pause:   GetAction(input, cfg.ActionPause).JustPressed,
		Select:  GetAction(input, cfg.ActionMenuSelect).JustPressed,
		Restart: GetAction(input, cfg.ActionRestart).JustPressed,
		Jump:    GetAction(input, cfg.ActionJump).JustPressed,
	})
	if play {
		playTick(ecs, data, input)
	}
	if err != nil {
		log.WithError(err).WithField("state", s.State()).Warn("session action rejected")
	}
}

func playTick(ecs *ecs.ECS, data *components.SessionData, input *components.InputData) {
	s := data.Session

	if GetAction(input, cfg.ActionJump).JustPressed {
		if kind := s.Jump(); kind != physics.JumpNone {
			triggerBallSquash(ecs, cfg.Effects.JumpScaleX, cfg.Effects.JumpScaleY)
		}
	}

	impact := s.Avatar().Velocity.Y
	data.Events = append(data.Events, s.Tick(physics.Intent{
		MoveLeft:  input.Current[cfg.ActionMoveLeft],
		MoveRight: input.Current[cfg.ActionMoveRight],
	})...)

	avatar := s.Avatar()
	if avatar.Grounded && !data.WasGrounded && impact > cfg.Effects.LandMinSpeed {
		triggerBallSquash(ecs, cfg.Effects.LandScaleX, cfg.Effects.LandScaleY)
	}
	data.WasGrounded = avatar.Grounded

	for _, ev := range data.Events {
		switch ev.Kind {
		case physics.EventCollectiblePicked:
			star := s.Level().Collectibles[ev.Index]
			factory.CreateFloatingText(ecs,
				fmt.Sprintf("+%d", cfg.Scoring.StarPoints),
				star.Position.X, star.Position.Y-star.Radius,
				cfg.Effects.PickupColor)
		case physics.EventHitObstacle, physics.EventFellOffWorld:
			TriggerScreenShake(ecs, cfg.Effects.DeathShake, cfg.Effects.DeathShakeFrames)
		}
	}
}

// drainReloads swaps in the newest catalog the level watcher produced.
func drainReloads(data *components.SessionData) {
	if data.Reloads == nil {
		return
	}
	for {
		select {
		case levels := <-data.Reloads:
			if err := data.Session.SetCatalog(levels); err != nil {
				log.WithError(err).Warn("reloaded catalog rejected")
				continue
			}
			log.WithField("levels", len(levels)).Info("level pack reloaded")
		default:
			return
		}
	}
}

func triggerBallSquash(ecs *ecs.ECS, scaleX, scaleY float64) {
	if ball, ok := tags.Ball.First(ecs.World); ok {
		TriggerSquashStretch(ball, scaleX, scaleY)
	}
}

// GetSession returns the singleton Session component.
func GetSession(ecs *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

// IsPaused reports whether the session is paused.
func IsPaused(ecs *ecs.ECS) bool {
	data, ok := GetSession(ecs)
	return ok && data.Session.State() == gamestate.StatePaused
}

// WithPauseCheck wraps a system to skip execution when the game is paused
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// SyncLevel rebuilds the level entities whenever the session begins a new
// attempt, so stars and the ball match the fresh level copy.
func SyncLevel(ecs *ecs.ECS) {
	data, ok := GetSession(ecs)
	if !ok {
		return
	}
	s := data.Session
	if data.Attempt == s.Attempt() {
		return
	}
	data.Attempt = s.Attempt()
	data.WasGrounded = false
	factory.CreateLevel(ecs, s.Level())
	SnapCamera(ecs)

	log.WithFields(log.Fields{
		"levelID": s.Level().ID,
		"attempt": s.Attempt(),
	}).Debug("level entities rebuilt")
}

// ballEntry is a helper for renderers that need the ball entity.
func ballEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Ball.First(ecs.World)
}
