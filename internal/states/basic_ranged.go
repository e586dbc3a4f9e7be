package states

import (
	"time"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
)

// BasicRanged is a single shot in progress. A holdable shot waits in the
// action stage until the input is released.
type BasicRanged struct {
	StaticData   ability.BasicRanged `json:"static_data"`
	Timer        time.Duration       `json:"timer"`
	StageSection StageSection        `json:"stage_section"`
	Exhausted    bool                `json:"exhausted"`
}

func (BasicRanged) Kind() ability.Kind      { return ability.KindBasicRanged }
func (s BasicRanged) Section() StageSection { return s.StageSection }
func (BasicRanged) Interruptible() bool     { return false }
func (BasicRanged) state()                  {}

// Tick advances the shot
func (s BasicRanged) Tick(in *Input) Update {
	var effects Effects
	var done bool

	switch s.StageSection {
	case StageBuildup:
		if s.Timer, done = step(s.Timer, in.Dt, s.StaticData.PrepareDuration); done {
			s.StageSection = StageAction
			s.fire(in, &effects)
		}
	case StageAction:
		if !s.Exhausted {
			s.Timer += in.Dt
			s.fire(in, &effects)
			break
		}
		s.Timer = 0
		s.StageSection = StageRecover
	case StageRecover:
		if s.Timer, done = step(s.Timer, in.Dt, s.StaticData.RecoverDuration); done {
			return ended(EndCompleted, effects)
		}
	default:
		return ended(EndAborted, effects)
	}

	return running(s, effects)
}

func (s *BasicRanged) fire(in *Input, effects *Effects) {
	if s.Exhausted || (s.StaticData.Holdable && in.Held) {
		return
	}
	s.Exhausted = true
	s.Timer = 0
	effects.Projectiles = append(effects.Projectiles, ProjectileSpawn{
		Projectile: s.StaticData.Projectile,
		Body:       s.StaticData.ProjectileBody,
		Light:      s.StaticData.ProjectileLight,
		Gravity:    s.StaticData.ProjectileGravity,
		Speed:      s.StaticData.ProjectileSpeed,
	})
}
