package states

import (
	"time"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
)

// ChargedRanged is a shot charged while the input is held. ChargeTimer runs
// separately from the prepare timer.
type ChargedRanged struct {
	StaticData   ability.ChargedRanged `json:"static_data"`
	Timer        time.Duration         `json:"timer"`
	ChargeTimer  time.Duration         `json:"charge_timer"`
	StageSection StageSection          `json:"stage_section"`
	Exhausted    bool                  `json:"exhausted"`
}

func (ChargedRanged) Kind() ability.Kind      { return ability.KindChargedRanged }
func (s ChargedRanged) Section() StageSection { return s.StageSection }
func (ChargedRanged) Interruptible() bool     { return false }
func (ChargedRanged) state()                  {}

// Tick advances the shot. While charging, energy_drain per second is debited
// (rounded to the nearest point per tick) and the charge grows by dt. If the
// drain cannot be paid the shot fires at the charge reached so far, without
// crediting that tick. Releasing fires too. A full charge is held for free.
func (s ChargedRanged) Tick(in *Input) Update {
	var effects Effects
	var done bool
	tuning := in.tuning()

	switch s.StageSection {
	case StageBuildup:
		if s.Timer, done = step(s.Timer, in.Dt, s.StaticData.PrepareDuration); done {
			s.StageSection = StageCharge
		}
	case StageCharge:
		if !in.Held {
			s.fire(&effects, tuning.ProjectileLifetime)
			break
		}
		if s.ChargeTimer >= s.StaticData.ChargeDuration.Std() {
			break
		}
		if !debit(in, drainFor(s.StaticData.EnergyDrain, in.Dt), &effects) {
			s.fire(&effects, tuning.ProjectileLifetime)
			break
		}
		s.ChargeTimer += in.Dt
	case StageAction:
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

// ChargeFraction is the share of the charge duration completed, in [0, 1]
func (s ChargedRanged) ChargeFraction() float32 {
	return fraction(s.ChargeTimer, s.StaticData.ChargeDuration)
}

func (s *ChargedRanged) fire(effects *Effects, lifetime ability.Duration) {
	s.StageSection = StageAction
	s.Timer = 0
	if s.Exhausted {
		return
	}
	s.Exhausted = true

	charge := s.ChargeFraction()
	effects.Projectiles = append(effects.Projectiles, ProjectileSpawn{
		Projectile: ability.Projectile{
			Damage:    lerpUint(s.StaticData.InitialDamage, s.StaticData.MaxDamage, charge),
			Knockback: lerp(s.StaticData.InitialKnockback, s.StaticData.MaxKnockback, charge),
			TimeLeft:  lifetime,
		},
		Body:    s.StaticData.ProjectileBody,
		Light:   s.StaticData.ProjectileLight,
		Gravity: s.StaticData.ProjectileGravity,
		Speed:   lerp(s.StaticData.InitialProjectileSpeed, s.StaticData.MaxProjectileSpeed, charge),
	})
}
