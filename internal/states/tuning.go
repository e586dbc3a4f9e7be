package states

import (
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
)

// Tuning holds the movement and effect values that are shared by every
// ability of a kind instead of being set per catalog entry. Zero fields fall
// back to DefaultTuning.
type Tuning struct {
	// RollSpeed is the forward speed of a dodge roll
	RollSpeed float32 `json:"roll_speed,omitempty" yaml:"roll_speed,omitempty" jsonschema:"minimum=0"`

	// BoostForwardAccel and BoostUpAccel are per-second accelerations
	BoostForwardAccel float32 `json:"boost_forward_accel,omitempty" yaml:"boost_forward_accel,omitempty" jsonschema:"minimum=0"`
	BoostUpAccel      float32 `json:"boost_up_accel,omitempty" yaml:"boost_up_accel,omitempty" jsonschema:"minimum=0"`

	// HelicopterLift is the vertical movement of a helicopter spin
	HelicopterLift float32 `json:"helicopter_lift,omitempty" yaml:"helicopter_lift,omitempty" jsonschema:"minimum=0"`

	// ProjectileLifetime is how long a charged shot stays in flight
	ProjectileLifetime ability.Duration `json:"projectile_lifetime,omitempty" yaml:"projectile_lifetime,omitempty" jsonschema:"minimum=0"`

	// SweepAngle is the attack cone of spin and leap strikes, in degrees
	SweepAngle float32 `json:"sweep_angle,omitempty" yaml:"sweep_angle,omitempty" jsonschema:"minimum=0,maximum=360"`
}

// DefaultTuning is the tuning used when none is configured
func DefaultTuning() Tuning {
	return Tuning{
		RollSpeed:          25,
		BoostForwardAccel:  500,
		BoostUpAccel:       5,
		HelicopterLift:     1,
		ProjectileLifetime: ability.Millis(15000),
		SweepAngle:         180,
	}
}

// Validate checks that no value is negative and the sweep fits in a circle
func (t *Tuning) Validate() error {
	if t == nil {
		return nil
	}

	vb := errors.NewValidationBuilder()
	rates := []struct {
		field string
		value float32
	}{
		{"roll_speed", t.RollSpeed},
		{"boost_forward_accel", t.BoostForwardAccel},
		{"boost_up_accel", t.BoostUpAccel},
		{"helicopter_lift", t.HelicopterLift},
	}
	for _, rate := range rates {
		if rate.value < 0 {
			vb.Field(rate.field, "must not be negative")
		}
	}
	if t.ProjectileLifetime < 0 {
		vb.Field("projectile_lifetime", "must not be negative")
	}
	if t.SweepAngle < 0 || t.SweepAngle > 360 {
		vb.Field("sweep_angle", "must be between 0 and 360")
	}
	return vb.Build()
}

// WithDefaults returns t with every zero field taken from DefaultTuning
func (t *Tuning) WithDefaults() Tuning {
	out := DefaultTuning()
	if t == nil {
		return out
	}
	if t.RollSpeed > 0 {
		out.RollSpeed = t.RollSpeed
	}
	if t.BoostForwardAccel > 0 {
		out.BoostForwardAccel = t.BoostForwardAccel
	}
	if t.BoostUpAccel > 0 {
		out.BoostUpAccel = t.BoostUpAccel
	}
	if t.HelicopterLift > 0 {
		out.HelicopterLift = t.HelicopterLift
	}
	if t.ProjectileLifetime > 0 {
		out.ProjectileLifetime = t.ProjectileLifetime
	}
	if t.SweepAngle > 0 {
		out.SweepAngle = t.SweepAngle
	}
	return out
}
