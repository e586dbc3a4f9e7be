package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-abilities/internal/energy"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
)

// rollMinSpeedSquared is the horizontal speed squared a roll needs
const rollMinSpeedSquared float32 = 0.5

// RequirementsPaid decides whether a may start and pays its entry cost in the
// same step. On success the pool has already been debited; on failure it is
// untouched. It performs no I/O.
func RequirementsPaid(a ability.Ability, snapshot physics.Snapshot, pool energy.Pool) bool {
	switch a := a.(type) {
	case ability.Roll:
		return snapshot.OnGround &&
			snapshot.Body.IsHumanoid() &&
			snapshot.Velocity.HorizontalMagnitudeSquared() > rollMinSpeedSquared &&
			pay(pool, uint32(states.RollEnergyCost))
	case ability.BasicMelee:
		return pay(pool, a.EnergyCost)
	case ability.BasicRanged:
		return pay(pool, a.EnergyCost)
	case ability.ChargedRanged:
		return pay(pool, a.EnergyCost)
	case ability.DashMelee:
		return pay(pool, a.EnergyCost)
	case ability.LeapMelee:
		return pay(pool, a.EnergyCost)
	case ability.SpinMelee:
		return pay(pool, a.EnergyCost)
	case ability.GroundShockwave:
		return pay(pool, a.EnergyCost)
	default:
		return a != nil
	}
}

// pay debits cost from pool. A cost no pool can hold is refused without
// touching the pool.
func pay(pool energy.Pool, cost uint32) bool {
	if cost > math.MaxInt32 {
		return false
	}
	return pool.TryChangeBy(-int32(cost), energy.SourceAbility) == nil
}
