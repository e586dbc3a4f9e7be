package catalog

import (
	"math"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/item"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
)

var armorKinds = map[item.ArmorKind]bool{
	item.ArmorShoulder: true,
	item.ArmorChest:    true,
	item.ArmorBelt:     true,
	item.ArmorHand:     true,
	item.ArmorPants:    true,
	item.ArmorFoot:     true,
	item.ArmorBack:     true,
	item.ArmorRing:     true,
	item.ArmorNeck:     true,
	item.ArmorHead:     true,
	item.ArmorTabard:   true,
}

func validateAbility(path string, a ability.Ability, vb *errors.ValidationBuilder) {
	if cost, ok := energyCost(a); ok && cost > math.MaxInt32 {
		vb.Fieldf(path+".energy_cost", "must not exceed %d", math.MaxInt32)
	}

	switch a := a.(type) {
	case nil:
		vb.RequiredField(path)
	case ability.ComboMelee:
		if len(a.StageData) == 0 {
			vb.Field(path+".stage_data", "must have at least one stage")
		}
		for i, stage := range a.StageData {
			if stage.BaseDamage > stage.MaxDamage {
				vb.Fieldf(path+".stage_data", "stage %d base_damage exceeds max_damage", i)
			}
		}
		if a.InitialEnergyGain > a.MaxEnergyGain {
			vb.Field(path+".initial_energy_gain", "must not exceed max_energy_gain")
		}
		if a.SpeedIncrease < 0 || a.SpeedIncrease > 1 {
			vb.Field(path+".speed_increase", "must be between 0 and 1")
		}
		if a.MaxSpeedIncrease <= 0 {
			vb.Field(path+".max_speed_increase", "must be positive")
		}
	case ability.SpinMelee:
		if a.NumSpins == 0 && !a.IsInfinite {
			vb.Field(path+".num_spins", "must be at least 1 unless is_infinite")
		}
	case ability.DashMelee:
		if a.BaseDamage > a.MaxDamage {
			vb.Field(path+".base_damage", "must not exceed max_damage")
		}
	case ability.ChargedRanged:
		if a.InitialDamage > a.MaxDamage {
			vb.Field(path+".initial_damage", "must not exceed max_damage")
		}
		if a.ChargeDuration <= 0 {
			vb.Field(path+".charge_duration", "must be positive")
		}
	case ability.GroundShockwave:
		if a.ShockwaveSpeed < 0 {
			vb.Field(path+".shockwave_speed", "must not be negative")
		}
	}
}

// energyCost reports the entry cost of abilities that carry one
func energyCost(a ability.Ability) (uint32, bool) {
	switch a := a.(type) {
	case ability.BasicMelee:
		return a.EnergyCost, true
	case ability.BasicRanged:
		return a.EnergyCost, true
	case ability.ChargedRanged:
		return a.EnergyCost, true
	case ability.DashMelee:
		return a.EnergyCost, true
	case ability.LeapMelee:
		return a.EnergyCost, true
	case ability.SpinMelee:
		return a.EnergyCost, true
	case ability.GroundShockwave:
		return a.EnergyCost, true
	}
	return 0, false
}

func validateItem(path string, def ItemDocument, abilities map[string]ability.Entry, vb *errors.ValidationBuilder) {
	errors.ValidateRequired(path+".name", def.Name, vb)

	switch def.Kind {
	case item.KindTool:
		if def.Tool == nil {
			vb.RequiredField(path + ".tool")
			return
		}
		errors.ValidateRequired(path+".tool.kind", string(def.Tool.Kind), vb)
		for i, id := range def.Tool.Abilities {
			if _, ok := abilities[id]; !ok {
				vb.Fieldf(path+".tool.abilities", "entry %d references unknown ability %q", i, id)
			}
		}
	case item.KindArmor:
		if def.Armor == nil {
			vb.RequiredField(path + ".armor")
			return
		}
		if !armorKinds[def.Armor.Kind] {
			vb.Fieldf(path+".armor.kind", "unknown armor kind %q", def.Armor.Kind)
		}
	case item.KindLantern, item.KindGlider, item.KindConsumable:
	default:
		vb.Fieldf(path+".kind", "unknown item kind %q", def.Kind)
	}
}
