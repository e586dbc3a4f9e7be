package states

import (
	"time"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
)

// Boost pushes the entity for a fixed duration. It has no stages.
type Boost struct {
	StaticData ability.Boost `json:"static_data"`
	Timer      time.Duration `json:"timer"`
}

func (Boost) Kind() ability.Kind    { return ability.KindBoost }
func (Boost) Section() StageSection { return StageNone }
func (Boost) Interruptible() bool   { return false }
func (Boost) state()                {}

// Tick applies one tick of acceleration until the duration is spent
func (s Boost) Tick(in *Input) Update {
	var effects Effects
	if s.Timer >= s.StaticData.Duration.Std() {
		return ended(EndCompleted, effects)
	}

	dt := float32(in.Dt.Seconds())
	tuning := in.tuning()
	if s.StaticData.OnlyUp {
		effects.Movement = &Movement{Vertical: tuning.BoostUpAccel * dt, Impulse: true}
	} else {
		effects.Movement = &Movement{Forward: tuning.BoostForwardAccel * dt, Impulse: true}
	}
	s.Timer += in.Dt

	return running(s, effects)
}
