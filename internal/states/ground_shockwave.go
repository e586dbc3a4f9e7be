package states

import (
	"time"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
)

// GroundShockwave is a wave sent along the ground. With RequiresGround set,
// leaving the ground during the action stage aborts it.
type GroundShockwave struct {
	StaticData   ability.GroundShockwave `json:"static_data"`
	Timer        time.Duration           `json:"timer"`
	StageSection StageSection            `json:"stage_section"`
	Exhausted    bool                    `json:"exhausted"`
}

func (GroundShockwave) Kind() ability.Kind      { return ability.KindGroundShockwave }
func (s GroundShockwave) Section() StageSection { return s.StageSection }
func (GroundShockwave) Interruptible() bool     { return false }
func (GroundShockwave) state()                  {}

// Tick advances the shockwave
func (s GroundShockwave) Tick(in *Input) Update {
	var effects Effects
	var done bool

	switch s.StageSection {
	case StageBuildup:
		if s.Timer, done = step(s.Timer, in.Dt, s.StaticData.BuildupDuration); done {
			if s.groundLost(in) {
				return ended(EndAborted, effects)
			}
			s.StageSection = StageAction
			s.release(&effects)
		}
	case StageAction:
		if s.groundLost(in) {
			return ended(EndAborted, effects)
		}
		s.release(&effects)
		if s.Timer, done = step(s.Timer, in.Dt, s.StaticData.ShockwaveDuration); done {
			s.StageSection = StageRecover
		} else {
			effects.ShockwaveRadius = s.Radius()
		}
	case StageRecover:
		if s.Timer, done = step(s.Timer, in.Dt, s.StaticData.RecoverDuration); done {
			return ended(EndCompleted, effects)
		}
	default:
		return ended(EndAborted, effects)
	}

	return running(s, effects)
}

// Radius is how far the wave front has travelled during the action stage
func (s GroundShockwave) Radius() float32 {
	if s.StageSection != StageAction {
		return 0
	}
	return s.StaticData.ShockwaveSpeed * float32(s.Timer.Seconds())
}

func (s GroundShockwave) groundLost(in *Input) bool {
	return s.StaticData.RequiresGround && !in.Physics.OnGround
}

func (s *GroundShockwave) release(effects *Effects) {
	if s.Exhausted {
		return
	}
	s.Exhausted = true
	effects.Shockwaves = append(effects.Shockwaves, Shockwave{
		Damage:         s.StaticData.Damage,
		Knockback:      s.StaticData.Knockback,
		Angle:          s.StaticData.ShockwaveAngle,
		Speed:          s.StaticData.ShockwaveSpeed,
		Duration:       s.StaticData.ShockwaveDuration,
		RequiresGround: s.StaticData.RequiresGround,
	})
}
