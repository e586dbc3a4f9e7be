package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
)

// Compile builds the initial execution state for a. It copies the catalog
// fields as static data and zeroes progress, except where a variant needs a
// seeded value. It panics on an ability type outside the closed set.
func Compile(a ability.Ability) states.State {
	switch a := a.(type) {
	case ability.BasicMelee:
		return states.BasicMelee{StaticData: a, StageSection: states.StageBuildup}
	case ability.BasicRanged:
		return states.BasicRanged{StaticData: a, StageSection: states.StageBuildup}
	case ability.Boost:
		return states.Boost{StaticData: a}
	case ability.DashMelee:
		return states.DashMelee{StaticData: a, StageSection: states.StageBuildup}
	case ability.BasicBlock:
		return states.BasicBlock{}
	case ability.Roll:
		return states.Roll{RemainingDuration: states.RollDuration}
	case ability.ComboMelee:
		return compileCombo(a)
	case ability.LeapMelee:
		return states.LeapMelee{StaticData: a, StageSection: states.StageBuildup, Initialize: true}
	case ability.SpinMelee:
		var remaining uint32
		if a.NumSpins > 0 {
			remaining = a.NumSpins - 1
		}
		return states.SpinMelee{StaticData: a, SpinsRemaining: remaining, StageSection: states.StageBuildup}
	case ability.ChargedRanged:
		return states.ChargedRanged{StaticData: a, StageSection: states.StageBuildup}
	case ability.GroundShockwave:
		return states.GroundShockwave{StaticData: a, StageSection: states.StageBuildup}
	default:
		panic(fmt.Sprintf("engine: no execution state for ability %T", a))
	}
}

func compileCombo(a ability.ComboMelee) states.ComboMelee {
	stages := make([]ability.ComboStage, len(a.StageData))
	copy(stages, a.StageData)

	return states.ComboMelee{
		StaticData: states.ComboStaticData{
			StageData:         stages,
			NumStages:         uint32(len(stages)),
			InitialEnergyGain: a.InitialEnergyGain,
			MaxEnergyGain:     a.MaxEnergyGain,
			EnergyIncrease:    a.EnergyIncrease,
			SpeedIncrease:     1 - a.SpeedIncrease,
			MaxSpeedIncrease:  a.MaxSpeedIncrease - 1,
			IsInterruptible:   a.IsInterruptible,
		},
		Stage:        1,
		StageSection: states.StageBuildup,
	}
}
