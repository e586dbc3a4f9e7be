package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
)

// Entity types reported to the toolkit
const (
	EntityTypeCombatant = "combatant"
	EntityTypeAbility   = "ability"
)

// CombatantEntity is a combatant seen through the core.Entity interface
type CombatantEntity struct {
	ID   string
	Body physics.Body
}

// GetID returns the combatant's ID
func (c *CombatantEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CombatantEntity) GetType() string {
	return EntityTypeCombatant
}

// AbilityEntity is one execution of an ability, used as an event target
type AbilityEntity struct {
	ExecutionID string
	Kind        ability.Kind
}

// GetID returns the execution ID
func (a *AbilityEntity) GetID() string {
	return a.ExecutionID
}

// GetType returns the entity type for rpg-toolkit
func (a *AbilityEntity) GetType() string {
	return EntityTypeAbility
}
