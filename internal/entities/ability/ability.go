// Package ability defines the immutable catalog entries describing every
// combat and movement action.
package ability

import "github.com/KirkDiggler/rpg-abilities/internal/entities/physics"

// Ability is one catalog entry. The set of implementations is closed and they
// are always held as values, never pointers, so a type switch over the
// variant structs is exhaustive.
type Ability interface {
	Kind() Kind
	ability()
}

// BasicMelee is a single strike in front of the entity
type BasicMelee struct {
	EnergyCost       uint32   `json:"energy_cost" yaml:"energy_cost" jsonschema:"maximum=2147483647"`
	BuildupDuration  Duration `json:"buildup_duration" yaml:"buildup_duration"`
	RecoverDuration  Duration `json:"recover_duration" yaml:"recover_duration"`
	BaseHealthchange int32    `json:"base_healthchange" yaml:"base_healthchange"`
	Knockback        float32  `json:"knockback" yaml:"knockback"`
	Range            float32  `json:"range" yaml:"range"`
	MaxAngle         float32  `json:"max_angle" yaml:"max_angle"`
}

// BasicRanged fires one projectile, optionally held before release
type BasicRanged struct {
	EnergyCost        uint32        `json:"energy_cost" yaml:"energy_cost" jsonschema:"maximum=2147483647"`
	Holdable          bool          `json:"holdable" yaml:"holdable"`
	PrepareDuration   Duration      `json:"prepare_duration" yaml:"prepare_duration"`
	RecoverDuration   Duration      `json:"recover_duration" yaml:"recover_duration"`
	Projectile        Projectile    `json:"projectile" yaml:"projectile"`
	ProjectileBody    physics.Body  `json:"projectile_body" yaml:"projectile_body"`
	ProjectileLight   *LightEmitter `json:"projectile_light,omitempty" yaml:"projectile_light,omitempty"`
	ProjectileGravity *Gravity      `json:"projectile_gravity,omitempty" yaml:"projectile_gravity,omitempty"`
	ProjectileSpeed   float32       `json:"projectile_speed" yaml:"projectile_speed"`
}

// Boost pushes the entity forward, or only upward
type Boost struct {
	Duration Duration `json:"duration" yaml:"duration"`
	OnlyUp   bool     `json:"only_up" yaml:"only_up"`
}

// DashMelee charges forward and strikes with damage scaled by charge time
type DashMelee struct {
	EnergyCost      uint32   `json:"energy_cost" yaml:"energy_cost" jsonschema:"maximum=2147483647"`
	BaseDamage      uint32   `json:"base_damage" yaml:"base_damage"`
	MaxDamage       uint32   `json:"max_damage" yaml:"max_damage"`
	BaseKnockback   float32  `json:"base_knockback" yaml:"base_knockback"`
	MaxKnockback    float32  `json:"max_knockback" yaml:"max_knockback"`
	Range           float32  `json:"range" yaml:"range"`
	Angle           float32  `json:"angle" yaml:"angle"`
	EnergyDrain     uint32   `json:"energy_drain" yaml:"energy_drain"`
	ForwardSpeed    float32  `json:"forward_speed" yaml:"forward_speed"`
	BuildupDuration Duration `json:"buildup_duration" yaml:"buildup_duration"`
	ChargeDuration  Duration `json:"charge_duration" yaml:"charge_duration"`
	SwingDuration   Duration `json:"swing_duration" yaml:"swing_duration"`
	RecoverDuration Duration `json:"recover_duration" yaml:"recover_duration"`
	InfiniteCharge  bool     `json:"infinite_charge" yaml:"infinite_charge"`
	IsInterruptible bool     `json:"is_interruptible" yaml:"is_interruptible"`
}

// BasicBlock raises a block while the input is held
type BasicBlock struct{}

// Roll is the dodge roll. Its duration and cost are fixed by the runtime.
type Roll struct{}

// ComboStage is one strike of a ComboMelee chain
type ComboStage struct {
	Stage               uint32   `json:"stage" yaml:"stage"`
	BaseDamage          uint32   `json:"base_damage" yaml:"base_damage"`
	MaxDamage           uint32   `json:"max_damage" yaml:"max_damage"`
	DamageIncrease      uint32   `json:"damage_increase" yaml:"damage_increase"`
	Knockback           float32  `json:"knockback" yaml:"knockback"`
	Range               float32  `json:"range" yaml:"range"`
	Angle               float32  `json:"angle" yaml:"angle"`
	BaseBuildupDuration Duration `json:"base_buildup_duration" yaml:"base_buildup_duration"`
	BaseSwingDuration   Duration `json:"base_swing_duration" yaml:"base_swing_duration"`
	BaseRecoverDuration Duration `json:"base_recover_duration" yaml:"base_recover_duration"`
	ForwardMovement     float32  `json:"forward_movement" yaml:"forward_movement"`
}

// ComboMelee chains strikes while the follow-up input keeps arriving
type ComboMelee struct {
	StageData         []ComboStage `json:"stage_data" yaml:"stage_data"`
	InitialEnergyGain uint32       `json:"initial_energy_gain" yaml:"initial_energy_gain"`
	MaxEnergyGain     uint32       `json:"max_energy_gain" yaml:"max_energy_gain"`
	EnergyIncrease    uint32       `json:"energy_increase" yaml:"energy_increase"`
	SpeedIncrease     float32      `json:"speed_increase" yaml:"speed_increase" jsonschema:"minimum=0,maximum=1"`
	MaxSpeedIncrease  float32      `json:"max_speed_increase" yaml:"max_speed_increase"`
	IsInterruptible   bool         `json:"is_interruptible" yaml:"is_interruptible"`
}

// LeapMelee jumps toward the target and strikes on the way down
type LeapMelee struct {
	EnergyCost       uint32   `json:"energy_cost" yaml:"energy_cost" jsonschema:"maximum=2147483647"`
	MovementDuration Duration `json:"movement_duration" yaml:"movement_duration"`
	BuildupDuration  Duration `json:"buildup_duration" yaml:"buildup_duration"`
	RecoverDuration  Duration `json:"recover_duration" yaml:"recover_duration"`
	LeapSpeed        float32  `json:"leap_speed" yaml:"leap_speed"`
	LeapVertSpeed    float32  `json:"leap_vert_speed" yaml:"leap_vert_speed"`
	BaseDamage       uint32   `json:"base_damage" yaml:"base_damage"`
	Knockback        float32  `json:"knockback" yaml:"knockback"`
	Range            float32  `json:"range" yaml:"range"`
}

// SpinMelee spins num_spins times, or for as long as the input is held
type SpinMelee struct {
	BuildupDuration Duration `json:"buildup_duration" yaml:"buildup_duration"`
	SwingDuration   Duration `json:"swing_duration" yaml:"swing_duration"`
	RecoverDuration Duration `json:"recover_duration" yaml:"recover_duration"`
	BaseDamage      uint32   `json:"base_damage" yaml:"base_damage"`
	Knockback       float32  `json:"knockback" yaml:"knockback"`
	Range           float32  `json:"range" yaml:"range"`
	EnergyCost      uint32   `json:"energy_cost" yaml:"energy_cost" jsonschema:"maximum=2147483647"`
	IsInfinite      bool     `json:"is_infinite" yaml:"is_infinite"`
	IsHelicopter    bool     `json:"is_helicopter" yaml:"is_helicopter"`
	IsInterruptible bool     `json:"is_interruptible" yaml:"is_interruptible"`
	ForwardSpeed    float32  `json:"forward_speed" yaml:"forward_speed"`
	NumSpins        uint32   `json:"num_spins" yaml:"num_spins"`
}

// ChargedRanged charges a shot while held; release fires it
type ChargedRanged struct {
	EnergyCost             uint32        `json:"energy_cost" yaml:"energy_cost" jsonschema:"maximum=2147483647"`
	EnergyDrain            uint32        `json:"energy_drain" yaml:"energy_drain"`
	InitialDamage          uint32        `json:"initial_damage" yaml:"initial_damage"`
	MaxDamage              uint32        `json:"max_damage" yaml:"max_damage"`
	InitialKnockback       float32       `json:"initial_knockback" yaml:"initial_knockback"`
	MaxKnockback           float32       `json:"max_knockback" yaml:"max_knockback"`
	PrepareDuration        Duration      `json:"prepare_duration" yaml:"prepare_duration"`
	ChargeDuration         Duration      `json:"charge_duration" yaml:"charge_duration"`
	RecoverDuration        Duration      `json:"recover_duration" yaml:"recover_duration"`
	ProjectileBody         physics.Body  `json:"projectile_body" yaml:"projectile_body"`
	ProjectileLight        *LightEmitter `json:"projectile_light,omitempty" yaml:"projectile_light,omitempty"`
	ProjectileGravity      *Gravity      `json:"projectile_gravity,omitempty" yaml:"projectile_gravity,omitempty"`
	InitialProjectileSpeed float32       `json:"initial_projectile_speed" yaml:"initial_projectile_speed"`
	MaxProjectileSpeed     float32       `json:"max_projectile_speed" yaml:"max_projectile_speed"`
}

// GroundShockwave sends an expanding wave along the ground
type GroundShockwave struct {
	EnergyCost        uint32   `json:"energy_cost" yaml:"energy_cost" jsonschema:"maximum=2147483647"`
	BuildupDuration   Duration `json:"buildup_duration" yaml:"buildup_duration"`
	RecoverDuration   Duration `json:"recover_duration" yaml:"recover_duration"`
	Damage            uint32   `json:"damage" yaml:"damage"`
	Knockback         float32  `json:"knockback" yaml:"knockback"`
	ShockwaveAngle    float32  `json:"shockwave_angle" yaml:"shockwave_angle"`
	ShockwaveSpeed    float32  `json:"shockwave_speed" yaml:"shockwave_speed"`
	ShockwaveDuration Duration `json:"shockwave_duration" yaml:"shockwave_duration"`
	RequiresGround    bool     `json:"requires_ground" yaml:"requires_ground"`
}

func (BasicMelee) Kind() Kind      { return KindBasicMelee }
func (BasicRanged) Kind() Kind     { return KindBasicRanged }
func (Boost) Kind() Kind           { return KindBoost }
func (DashMelee) Kind() Kind       { return KindDashMelee }
func (BasicBlock) Kind() Kind      { return KindBasicBlock }
func (Roll) Kind() Kind            { return KindRoll }
func (ComboMelee) Kind() Kind      { return KindComboMelee }
func (LeapMelee) Kind() Kind       { return KindLeapMelee }
func (SpinMelee) Kind() Kind       { return KindSpinMelee }
func (ChargedRanged) Kind() Kind   { return KindChargedRanged }
func (GroundShockwave) Kind() Kind { return KindGroundShockwave }

func (BasicMelee) ability()      {}
func (BasicRanged) ability()     {}
func (Boost) ability()           {}
func (DashMelee) ability()       {}
func (BasicBlock) ability()      {}
func (Roll) ability()            {}
func (ComboMelee) ability()      {}
func (LeapMelee) ability()       {}
func (SpinMelee) ability()       {}
func (ChargedRanged) ability()   {}
func (GroundShockwave) ability() {}
