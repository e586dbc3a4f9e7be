// Package engine decides whether an ability may start and turns catalog
// entries into running execution states.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-abilities/internal/engine Engine

import (
	"context"
)

// Engine runs the gate, the compiler and the tick for a single entity's
// ability. Implementations hold no per-entity state.
type Engine interface {
	// StartAbility evaluates the gate and, when admitted, compiles the
	// execution state. Rejection is reported through Admitted, not an error.
	StartAbility(ctx context.Context, input *StartAbilityInput) (*StartAbilityOutput, error)

	// AdvanceAbility ticks a running state once
	AdvanceAbility(ctx context.Context, input *AdvanceAbilityInput) (*AdvanceAbilityOutput, error)
}
