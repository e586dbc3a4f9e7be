package combat

import (
	"time"

	"github.com/KirkDiggler/rpg-abilities/internal/engine"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/item"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
)

// RegisterCombatantInput defines the request for registering a combatant
type RegisterCombatantInput struct {
	EntityID string
	Body     physics.Body

	// MaxEnergy sizes the energy pool. Zero uses the configured default.
	MaxEnergy int32

	// ActiveItemID and SecondItemID name catalog tools for a fresh loadout.
	// They are ignored when a stored loadout exists.
	ActiveItemID string
	SecondItemID string
}

// RegisterCombatantOutput defines the response for registering a combatant
type RegisterCombatantOutput struct {
	Combatant *Combatant

	// Restored is true when the loadout came from storage
	Restored bool
}

// EquipInput defines the request for changing one loadout slot
type EquipInput struct {
	EntityID string
	Slot     equipment.Slot

	// ItemID names a catalog item. Empty unequips the slot.
	ItemID string
}

// EquipOutput defines the response for changing one loadout slot
type EquipOutput struct {
	Previous  *item.Item
	Combatant *Combatant
}

// SwapWeaponsInput defines the request for swapping active and second weapons
type SwapWeaponsInput struct {
	EntityID string
}

// SwapWeaponsOutput defines the response for swapping weapons
type SwapWeaponsOutput struct {
	Combatant *Combatant
}

// ActivateAbilityInput defines the request for starting an ability
type ActivateAbilityInput struct {
	EntityID string
	Slot     equipment.AbilitySlot
	Physics  physics.Snapshot
}

// ActivateAbilityOutput defines the response for starting an ability. A
// rejected start is not an error: Started is false and Reason says why.
type ActivateAbilityOutput struct {
	Started     bool
	Reason      engine.RejectReason
	ExecutionID string
	Type        engine.AbilityType
	Energy      int32
}

// TickInput defines one frame for a combatant
type TickInput struct {
	EntityID string
	Dt       time.Duration
	Held     bool
	FollowUp bool
	Physics  physics.Snapshot
}

// TickOutput defines the result of one frame. An idle combatant returns
// Running false and no effects.
type TickOutput struct {
	Running     bool
	ExecutionID string
	Type        engine.AbilityType
	Section     states.StageSection
	Effects     states.Effects
	End         states.EndReason
	Energy      int32
}

// GetCombatantInput defines the request for reading a combatant
type GetCombatantInput struct {
	EntityID string
}

// GetCombatantOutput defines the response for reading a combatant
type GetCombatantOutput struct {
	Combatant *Combatant
}

// RemoveCombatantInput defines the request for dropping a combatant
type RemoveCombatantInput struct {
	EntityID string
}

// RemoveCombatantOutput defines the response for dropping a combatant
type RemoveCombatantOutput struct{}

// Combatant is a read-only view of a registered entity
type Combatant struct {
	EntityID        string
	Body            physics.Body
	Loadout         *equipment.Loadout
	DamageReduction float32
	Energy          int32
	MaxEnergy       int32

	// Active is nil while the combatant is idle
	Active *ActiveAbility
}

// ActiveAbility describes the running execution
type ActiveAbility struct {
	ExecutionID   string
	Type          engine.AbilityType
	Section       states.StageSection
	Interruptible bool
}
