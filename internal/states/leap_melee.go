package states

import (
	"time"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
)

// LeapMelee is a leap followed by a strike on landing
type LeapMelee struct {
	StaticData   ability.LeapMelee `json:"static_data"`
	Timer        time.Duration     `json:"timer"`
	StageSection StageSection      `json:"stage_section"`
	Exhausted    bool              `json:"exhausted"`
	Initialize   bool              `json:"initialize"`
}

func (LeapMelee) Kind() ability.Kind      { return ability.KindLeapMelee }
func (s LeapMelee) Section() StageSection { return s.StageSection }
func (LeapMelee) Interruptible() bool     { return false }
func (LeapMelee) state()                  {}

// Tick advances the leap. The leap impulse is applied once, on the first tick.
func (s LeapMelee) Tick(in *Input) Update {
	var effects Effects
	var done bool
	tuning := in.tuning()

	if s.Initialize {
		s.Initialize = false
		effects.Movement = &Movement{
			Forward:  s.StaticData.LeapSpeed,
			Vertical: s.StaticData.LeapVertSpeed,
			Impulse:  true,
		}
	}

	switch s.StageSection {
	case StageBuildup:
		if s.Timer, done = step(s.Timer, in.Dt, s.StaticData.BuildupDuration); done {
			s.StageSection = StageAction
			s.strike(&effects, tuning.SweepAngle)
		}
	case StageAction:
		s.strike(&effects, tuning.SweepAngle)
		if s.Timer, done = step(s.Timer, in.Dt, s.StaticData.MovementDuration); done {
			s.StageSection = StageRecover
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

func (s *LeapMelee) strike(effects *Effects, sweep float32) {
	if s.Exhausted {
		return
	}
	s.Exhausted = true
	effects.attack(Attack{
		HealthChange: -int32(s.StaticData.BaseDamage),
		Knockback:    s.StaticData.Knockback,
		Range:        s.StaticData.Range,
		MaxAngle:     sweep,
	})
}
