package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
)

type engine struct {
	tuning states.Tuning
}

// Config holds the engine dependencies
type Config struct {
	// Tuning is applied to every tick that does not carry its own; nil uses
	// states.DefaultTuning
	Tuning *states.Tuning
}

// Validate checks the config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return errors.Wrap(err, "invalid tuning")
	}
	return nil
}

// New creates an Engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &engine{tuning: cfg.Tuning.WithDefaults()}, nil
}

// StartAbility implements Engine
func (e *engine) StartAbility(_ context.Context, input *StartAbilityInput) (*StartAbilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Ability == nil {
		return nil, errors.InvalidArgument("ability is required")
	}
	if input.Energy == nil {
		return nil, errors.InvalidArgument("energy pool is required")
	}

	if !CanInterrupt(input.Current) {
		return &StartAbilityOutput{Reason: RejectBusy}, nil
	}

	if !RequirementsPaid(input.Ability, input.Physics, input.Energy) {
		return &StartAbilityOutput{Reason: RejectRequirements}, nil
	}

	state := Compile(input.Ability)
	if roll, ok := state.(states.Roll); ok {
		roll.WasWielded = input.Wielding
		state = roll
	}

	abilityType, _ := Classify(state)
	return &StartAbilityOutput{
		Admitted: true,
		State:    state,
		Type:     abilityType,
	}, nil
}

// AdvanceAbility implements Engine
func (e *engine) AdvanceAbility(_ context.Context, input *AdvanceAbilityInput) (*AdvanceAbilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.State == nil {
		return nil, errors.FailedPrecondition("no ability is running")
	}
	if input.Tick.Dt < 0 {
		return nil, errors.InvalidArgumentf("tick duration must not be negative, got %s", input.Tick.Dt)
	}

	tick := input.Tick
	if tick.Tuning == nil {
		tick.Tuning = &e.tuning
	}
	from := input.State.Section()
	update := input.State.Tick(&tick)

	output := &AdvanceAbilityOutput{Update: update}
	if update.State != nil && update.State.Section() != from {
		output.Transition = &StageTransition{From: from, To: update.State.Section()}
	}
	return output, nil
}

// CanInterrupt reports whether a new ability may replace current. Idle
// entities and interruptible states can always be replaced.
func CanInterrupt(current states.State) bool {
	return current == nil || current.Interruptible()
}
