package engine

import (
	"strconv"

	"github.com/KirkDiggler/rpg-abilities/internal/states"
)

// AbilityType tags a running state for animation and telemetry
type AbilityType struct {
	Kind string `json:"kind"`

	// Section and Stage are only set for combos
	Section states.StageSection `json:"section,omitempty"`
	Stage   uint32              `json:"stage,omitempty"`
}

// String returns the kind, with the combo position when present
func (t AbilityType) String() string {
	if t.Stage == 0 {
		return t.Kind
	}
	return t.Kind + "/" + t.Section.String() + "/" + strconv.FormatUint(uint64(t.Stage), 10)
}

// Classify tags a running state. Each kind maps to its own tag, charged
// ranged and ground shockwave included. It returns false for a nil state.
func Classify(state states.State) (AbilityType, bool) {
	if state == nil {
		return AbilityType{}, false
	}

	t := AbilityType{Kind: state.Kind().String()}
	if combo, ok := state.(states.ComboMelee); ok {
		t.Section = combo.StageSection
		t.Stage = combo.Stage
	}
	return t, true
}
