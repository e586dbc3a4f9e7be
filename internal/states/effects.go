package states

import (
	"github.com/KirkDiggler/rpg-abilities/internal/energy"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
)

// Effects is everything a tick asks the world to do. Nothing here has been
// applied except EnergyChanges, which the state already made to the pool.
type Effects struct {
	EnergyChanges []energy.Change   `json:"energy_changes,omitempty"`
	Attacks       []Attack          `json:"attacks,omitempty"`
	Projectiles   []ProjectileSpawn `json:"projectiles,omitempty"`
	Shockwaves    []Shockwave       `json:"shockwaves,omitempty"`
	Movement      *Movement         `json:"movement,omitempty"`

	// ShockwaveRadius is how far an active shockwave front has travelled
	ShockwaveRadius float32 `json:"shockwave_radius,omitempty"`
}

// IsEmpty reports whether the tick produced nothing
func (e Effects) IsEmpty() bool {
	return len(e.EnergyChanges) == 0 &&
		len(e.Attacks) == 0 &&
		len(e.Projectiles) == 0 &&
		len(e.Shockwaves) == 0 &&
		e.Movement == nil &&
		e.ShockwaveRadius == 0
}

// Attack is a melee hit request. Hit detection picks the targets inside
// Range and MaxAngle. A negative HealthChange is damage.
type Attack struct {
	HealthChange int32   `json:"health_change"`
	Knockback    float32 `json:"knockback"`
	Range        float32 `json:"range"`
	MaxAngle     float32 `json:"max_angle"`
}

// ProjectileSpawn asks for a projectile entity
type ProjectileSpawn struct {
	Projectile ability.Projectile    `json:"projectile"`
	Body       physics.Body          `json:"body"`
	Light      *ability.LightEmitter `json:"light,omitempty"`
	Gravity    *ability.Gravity      `json:"gravity,omitempty"`
	Speed      float32               `json:"speed"`
}

// Shockwave asks for an expanding ground wave
type Shockwave struct {
	Damage         uint32           `json:"damage"`
	Knockback      float32          `json:"knockback"`
	Angle          float32          `json:"angle"`
	Speed          float32          `json:"speed"`
	Duration       ability.Duration `json:"duration"`
	RequiresGround bool             `json:"requires_ground"`
}

// Movement is the velocity an ability imposes this tick. Impulse movements
// are one-shot velocity changes; the rest hold only for the tick.
type Movement struct {
	Forward  float32 `json:"forward"`
	Vertical float32 `json:"vertical"`
	Impulse  bool    `json:"impulse,omitempty"`
}

func (e *Effects) attack(a Attack) {
	e.Attacks = append(e.Attacks, a)
}

func (e *Effects) energyChanged(amount int32, source energy.Source) {
	e.EnergyChanges = append(e.EnergyChanges, energy.Change{Amount: amount, Source: source})
}
