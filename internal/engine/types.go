package engine

import (
	"github.com/KirkDiggler/rpg-abilities/internal/energy"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
)

// RejectReason explains why an ability did not start
type RejectReason string

// Reject reasons
const (
	RejectNone         RejectReason = ""
	RejectBusy         RejectReason = "busy"
	RejectRequirements RejectReason = "requirements_not_met"
)

// StartAbilityInput is the request to start an ability
type StartAbilityInput struct {
	Ability ability.Ability
	Physics physics.Snapshot
	Energy  energy.Pool

	// Current is the entity's running state, nil when idle. A running state
	// that is not interruptible blocks the start.
	Current states.State

	// Wielding is whether the entity had a weapon out. A roll remembers it.
	Wielding bool
}

// StartAbilityOutput is the gate decision and, when admitted, the new state
type StartAbilityOutput struct {
	Admitted bool
	Reason   RejectReason
	State    states.State
	Type     AbilityType
}

// AdvanceAbilityInput is one tick of a running state
type AdvanceAbilityInput struct {
	State states.State
	Tick  states.Input
}

// AdvanceAbilityOutput is the tick result
type AdvanceAbilityOutput struct {
	Update states.Update

	// Transition is set when the stage section changed during the tick
	Transition *StageTransition
}

// StageTransition records a stage section change
type StageTransition struct {
	From states.StageSection
	To   states.StageSection
}
