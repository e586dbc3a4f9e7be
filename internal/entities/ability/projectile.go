package ability

// Projectile describes what a fired projectile does on impact
type Projectile struct {
	Damage         uint32   `json:"damage" yaml:"damage"`
	Knockback      float32  `json:"knockback" yaml:"knockback"`
	TimeLeft       Duration `json:"time_left" yaml:"time_left"`
	PierceEntities bool     `json:"pierce_entities,omitempty" yaml:"pierce_entities,omitempty"`
	VanishOnSolid  bool     `json:"vanish_on_solid,omitempty" yaml:"vanish_on_solid,omitempty"`
}

// Rgb is a light color
type Rgb struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
}

// LightEmitter is an optional light attached to a projectile
type LightEmitter struct {
	Col      Rgb     `json:"col" yaml:"col"`
	Strength float32 `json:"strength" yaml:"strength"`
	Flicker  float32 `json:"flicker" yaml:"flicker"`
	Animated bool    `json:"animated" yaml:"animated"`
}

// Gravity scales world gravity for a projectile
type Gravity float32
