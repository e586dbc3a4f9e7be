package states

import (
	"time"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
)

// RollDuration is how long every dodge roll lasts
const RollDuration = 500 * time.Millisecond

// RollEnergyCost is what starting a dodge roll debits
const RollEnergyCost int32 = 220

// Roll is a dodge roll in progress. WasWielded is set by whoever starts the
// roll and tells the driver to return to a wielding stance afterwards.
type Roll struct {
	RemainingDuration time.Duration `json:"remaining_duration"`
	WasWielded        bool          `json:"was_wielded"`
}

func (Roll) Kind() ability.Kind    { return ability.KindRoll }
func (Roll) Section() StageSection { return StageNone }
func (Roll) Interruptible() bool   { return false }
func (Roll) state()                {}

// Tick moves the entity forward until the remaining duration runs out
func (s Roll) Tick(in *Input) Update {
	var effects Effects
	if s.RemainingDuration <= 0 {
		return ended(EndCompleted, effects)
	}

	effects.Movement = &Movement{Forward: in.tuning().RollSpeed}
	s.RemainingDuration -= in.Dt
	if s.RemainingDuration < 0 {
		s.RemainingDuration = 0
	}

	return running(s, effects)
}
