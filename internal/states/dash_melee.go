package states

import (
	"time"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
)

// DashMelee is a charging dash that ends in a swing. Damage and knockback
// scale with how much of the charge was completed.
type DashMelee struct {
	StaticData     ability.DashMelee `json:"static_data"`
	Timer          time.Duration     `json:"timer"`
	StageSection   StageSection      `json:"stage_section"`
	Exhausted      bool              `json:"exhausted"`
	EndCharge      bool              `json:"end_charge"`
	ChargeFraction float32           `json:"charge_fraction"`
}

func (DashMelee) Kind() ability.Kind      { return ability.KindDashMelee }
func (s DashMelee) Section() StageSection { return s.StageSection }
func (s DashMelee) Interruptible() bool   { return s.StaticData.IsInterruptible }
func (DashMelee) state()                  {}

// Tick advances the dash. Charging stops when the charge duration is reached
// or, with infinite charge, when the input is released. Running out of energy
// for the drain stops it early either way.
func (s DashMelee) Tick(in *Input) Update {
	var effects Effects
	var done bool

	switch s.StageSection {
	case StageBuildup:
		if s.Timer, done = step(s.Timer, in.Dt, s.StaticData.BuildupDuration); done {
			s.StageSection = StageCharge
		}
	case StageCharge:
		if !s.EndCharge && s.charging(in.Held) {
			if debit(in, drainFor(s.StaticData.EnergyDrain, in.Dt), &effects) {
				s.Timer += in.Dt
				effects.Movement = &Movement{Forward: s.StaticData.ForwardSpeed}
			} else {
				s.EndCharge = true
			}
		}
		if s.EndCharge || !s.charging(in.Held) {
			s.ChargeFraction = fraction(s.Timer, s.StaticData.ChargeDuration)
			s.Timer = 0
			s.StageSection = StageAction
			s.strike(&effects)
		}
	case StageAction:
		s.strike(&effects)
		if s.Timer, done = step(s.Timer, in.Dt, s.StaticData.SwingDuration); done {
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

func (s DashMelee) charging(held bool) bool {
	if s.StaticData.InfiniteCharge {
		return held
	}
	return s.Timer < s.StaticData.ChargeDuration.Std()
}

func (s *DashMelee) strike(effects *Effects) {
	if s.Exhausted {
		return
	}
	s.Exhausted = true
	damage := lerpUint(s.StaticData.BaseDamage, s.StaticData.MaxDamage, s.ChargeFraction)
	effects.attack(Attack{
		HealthChange: -int32(damage),
		Knockback:    lerp(s.StaticData.BaseKnockback, s.StaticData.MaxKnockback, s.ChargeFraction),
		Range:        s.StaticData.Range,
		MaxAngle:     s.StaticData.Angle,
	})
}
