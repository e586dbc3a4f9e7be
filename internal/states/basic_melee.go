package states

import (
	"time"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
)

// BasicMelee is a single strike in progress
type BasicMelee struct {
	StaticData   ability.BasicMelee `json:"static_data"`
	Timer        time.Duration      `json:"timer"`
	StageSection StageSection       `json:"stage_section"`
	Exhausted    bool               `json:"exhausted"`
}

func (BasicMelee) Kind() ability.Kind      { return ability.KindBasicMelee }
func (s BasicMelee) Section() StageSection { return s.StageSection }
func (BasicMelee) Interruptible() bool     { return false }
func (BasicMelee) state()                  {}

// Tick advances the strike. It lands on the tick the action stage is entered
// and the action stage itself has no length.
func (s BasicMelee) Tick(in *Input) Update {
	var effects Effects
	var done bool

	switch s.StageSection {
	case StageBuildup:
		if s.Timer, done = step(s.Timer, in.Dt, s.StaticData.BuildupDuration); done {
			s.StageSection = StageAction
			s.strike(&effects)
		}
	case StageAction:
		s.strike(&effects)
		if s.Timer, done = step(s.Timer, in.Dt, 0); done {
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

func (s *BasicMelee) strike(effects *Effects) {
	if s.Exhausted {
		return
	}
	s.Exhausted = true
	effects.attack(Attack{
		HealthChange: s.StaticData.BaseHealthchange,
		Knockback:    s.StaticData.Knockback,
		Range:        s.StaticData.Range,
		MaxAngle:     s.StaticData.MaxAngle,
	})
}
