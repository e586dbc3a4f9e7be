// Package physics holds the per-tick physical snapshot the ability runtime
// consumes. Integration itself happens elsewhere; these are inputs only.
package physics

// BodyKind classifies an entity body
type BodyKind string

// Body kinds
const (
	BodyHumanoid       BodyKind = "humanoid"
	BodyQuadrupedSmall BodyKind = "quadruped_small"
	BodyQuadrupedLarge BodyKind = "quadruped_large"
	BodyBirdMedium     BodyKind = "bird_medium"
	BodyGolem          BodyKind = "golem"
	BodyObject         BodyKind = "object"
)

// IsValid checks if the body kind is known
func (k BodyKind) IsValid() bool {
	switch k {
	case BodyHumanoid, BodyQuadrupedSmall, BodyQuadrupedLarge,
		BodyBirdMedium, BodyGolem, BodyObject:
		return true
	default:
		return false
	}
}

// Body is an entity or projectile body. Variant names an object model
// (arrow, fire_bolt) and is informational.
type Body struct {
	Kind    BodyKind `json:"kind" yaml:"kind"`
	Variant string   `json:"variant,omitempty" yaml:"variant,omitempty"`
}

// IsHumanoid reports whether the body may dodge-roll
func (b Body) IsHumanoid() bool {
	return b.Kind == BodyHumanoid
}

// Vec3 is a world-space vector in world units
type Vec3 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// HorizontalMagnitudeSquared returns |v.xy|²
func (v Vec3) HorizontalMagnitudeSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Snapshot is the physical state of an entity for one tick
type Snapshot struct {
	OnGround bool `json:"on_ground"`
	Body     Body `json:"body"`
	Velocity Vec3 `json:"velocity"`
}
