package states

import (
	"math"
	"time"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
)

// ComboStaticData is a ComboMelee entry prepared for ticking. SpeedIncrease
// holds 1 - speed_increase and MaxSpeedIncrease holds max_speed_increase - 1,
// so the speed modifier is 1 + MaxSpeedIncrease*(1 - SpeedIncrease^combo).
type ComboStaticData struct {
	StageData         []ability.ComboStage `json:"stage_data"`
	NumStages         uint32               `json:"num_stages"`
	InitialEnergyGain uint32               `json:"initial_energy_gain"`
	MaxEnergyGain     uint32               `json:"max_energy_gain"`
	EnergyIncrease    uint32               `json:"energy_increase"`
	SpeedIncrease     float32              `json:"speed_increase"`
	MaxSpeedIncrease  float32              `json:"max_speed_increase"`
	IsInterruptible   bool                 `json:"is_interruptible"`
}

// ComboMelee is a chain of strikes. Stage is 1-indexed. A follow-up press
// during recovery sets NextStage, which chains into the next stage instead of
// finishing. The chain never goes past the last stage.
type ComboMelee struct {
	StaticData   ComboStaticData `json:"static_data"`
	Stage        uint32          `json:"stage"`
	Combo        uint32          `json:"combo"`
	Timer        time.Duration   `json:"timer"`
	StageSection StageSection    `json:"stage_section"`
	NextStage    bool            `json:"next_stage"`
	Exhausted    bool            `json:"exhausted"`
}

func (ComboMelee) Kind() ability.Kind      { return ability.KindComboMelee }
func (s ComboMelee) Section() StageSection { return s.StageSection }
func (s ComboMelee) Interruptible() bool   { return s.StaticData.IsInterruptible }
func (ComboMelee) state()                  {}

// minSpeedModifier keeps stage timers moving whatever the static data says
const minSpeedModifier float32 = 0.1

// SpeedModifier scales how fast stage timers run for the current combo. It
// never drops below minSpeedModifier.
func (s ComboMelee) SpeedModifier() float32 {
	decay := math.Pow(float64(s.StaticData.SpeedIncrease), float64(s.Combo))
	modifier := 1 + s.StaticData.MaxSpeedIncrease*float32(1-decay)
	if modifier < minSpeedModifier {
		return minSpeedModifier
	}
	return modifier
}

// Tick advances the current stage
func (s ComboMelee) Tick(in *Input) Update {
	var effects Effects
	var done bool

	if s.Stage == 0 || s.Stage > s.StaticData.NumStages || int(s.Stage) > len(s.StaticData.StageData) {
		return ended(EndAborted, effects)
	}
	stage := s.StaticData.StageData[s.Stage-1]
	dt := time.Duration(float64(in.Dt) * float64(s.SpeedModifier()))

	switch s.StageSection {
	case StageBuildup:
		effects.Movement = &Movement{Forward: stage.ForwardMovement}
		if s.Timer, done = step(s.Timer, dt, stage.BaseBuildupDuration); done {
			s.StageSection = StageAction
			s.strike(in, stage, &effects)
		}
	case StageAction:
		s.strike(in, stage, &effects)
		if s.Timer, done = step(s.Timer, dt, stage.BaseSwingDuration); done {
			s.StageSection = StageRecover
		}
	case StageRecover:
		if in.FollowUp {
			s.NextStage = true
		}
		if s.Timer, done = step(s.Timer, dt, stage.BaseRecoverDuration); !done {
			break
		}
		if !s.NextStage || s.Stage >= s.StaticData.NumStages {
			return ended(EndCompleted, effects)
		}
		s.Stage++
		s.StageSection = StageBuildup
		s.NextStage = false
		s.Exhausted = false
	default:
		return ended(EndAborted, effects)
	}

	return running(s, effects)
}

// strike lands the current stage's hit, grows the combo and credits energy
func (s *ComboMelee) strike(in *Input, stage ability.ComboStage, effects *Effects) {
	if s.Exhausted {
		return
	}
	s.Exhausted = true

	damage := stage.BaseDamage + s.Combo*stage.DamageIncrease
	if damage > stage.MaxDamage {
		damage = stage.MaxDamage
	}
	effects.attack(Attack{
		HealthChange: -int32(damage),
		Knockback:    stage.Knockback,
		Range:        stage.Range,
		MaxAngle:     stage.Angle,
	})

	gain := s.StaticData.InitialEnergyGain + s.Combo*s.StaticData.EnergyIncrease
	if gain > s.StaticData.MaxEnergyGain {
		gain = s.StaticData.MaxEnergyGain
	}
	credit(in, int32(gain), effects)

	s.Combo++
}
