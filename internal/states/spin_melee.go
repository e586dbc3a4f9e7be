package states

import (
	"time"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
)

// SpinMelee is a series of spins. The first spin is implied by entering the
// action stage, so SpinsRemaining counts the repeats still owed.
type SpinMelee struct {
	StaticData     ability.SpinMelee `json:"static_data"`
	Timer          time.Duration     `json:"timer"`
	SpinsRemaining uint32            `json:"spins_remaining"`
	StageSection   StageSection      `json:"stage_section"`
	Exhausted      bool              `json:"exhausted"`
}

func (SpinMelee) Kind() ability.Kind      { return ability.KindSpinMelee }
func (s SpinMelee) Section() StageSection { return s.StageSection }
func (s SpinMelee) Interruptible() bool   { return s.StaticData.IsInterruptible }
func (SpinMelee) state()                  {}

// Tick advances the spin. Each completed swing either starts another spin,
// re-arming the hit, or moves on to recovery. Infinite spins continue while
// the input is held and each new spin's energy cost can be paid.
func (s SpinMelee) Tick(in *Input) Update {
	var effects Effects
	var done bool
	tuning := in.tuning()

	switch s.StageSection {
	case StageBuildup:
		if s.Timer, done = step(s.Timer, in.Dt, s.StaticData.BuildupDuration); done {
			s.StageSection = StageAction
			s.strike(&effects, tuning.SweepAngle)
		}
	case StageAction:
		s.strike(&effects, tuning.SweepAngle)
		effects.Movement = s.movement(tuning.HelicopterLift)
		if s.Timer, done = step(s.Timer, in.Dt, s.StaticData.SwingDuration); !done {
			break
		}
		if s.spinAgain(in, &effects) {
			s.Exhausted = false
			s.strike(&effects, tuning.SweepAngle)
			break
		}
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

func (s *SpinMelee) spinAgain(in *Input, effects *Effects) bool {
	if s.StaticData.IsInfinite {
		return in.Held && debit(in, int32(s.StaticData.EnergyCost), effects)
	}
	if s.SpinsRemaining == 0 {
		return false
	}
	s.SpinsRemaining--
	return true
}

func (s SpinMelee) movement(lift float32) *Movement {
	m := &Movement{Forward: s.StaticData.ForwardSpeed}
	if s.StaticData.IsHelicopter {
		m.Vertical = lift
	}
	return m
}

func (s *SpinMelee) strike(effects *Effects, sweep float32) {
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
