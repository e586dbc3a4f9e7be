package ability

// Kind names an ability variant. It is the discriminator in serialized entries.
type Kind string

// Ability kinds
const (
	KindBasicMelee      Kind = "basic_melee"
	KindBasicRanged     Kind = "basic_ranged"
	KindBoost           Kind = "boost"
	KindDashMelee       Kind = "dash_melee"
	KindBasicBlock      Kind = "basic_block"
	KindRoll            Kind = "roll"
	KindComboMelee      Kind = "combo_melee"
	KindLeapMelee       Kind = "leap_melee"
	KindSpinMelee       Kind = "spin_melee"
	KindChargedRanged   Kind = "charged_ranged"
	KindGroundShockwave Kind = "ground_shockwave"
)

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// AllKinds returns every ability kind in declaration order
func AllKinds() []Kind {
	return []Kind{
		KindBasicMelee,
		KindBasicRanged,
		KindBoost,
		KindDashMelee,
		KindBasicBlock,
		KindRoll,
		KindComboMelee,
		KindLeapMelee,
		KindSpinMelee,
		KindChargedRanged,
		KindGroundShockwave,
	}
}
