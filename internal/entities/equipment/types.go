// Package equipment composes an entity's equipped items into its loadout and
// the set of abilities it can currently select.
package equipment

import "github.com/KirkDiggler/rpg-abilities/internal/entities/item"

// Slot is a loadout position that can hold one item
type Slot string

// Weapon and utility slots
const (
	SlotActiveItem Slot = "active_item"
	SlotSecondItem Slot = "second_item"
	SlotLantern    Slot = "lantern"
	SlotGlider     Slot = "glider"
)

// Armor slots, in the fixed order Armor reports them
const (
	SlotShoulder Slot = "shoulder"
	SlotChest    Slot = "chest"
	SlotBelt     Slot = "belt"
	SlotHand     Slot = "hand"
	SlotPants    Slot = "pants"
	SlotFoot     Slot = "foot"
	SlotBack     Slot = "back"
	SlotRing     Slot = "ring"
	SlotNeck     Slot = "neck"
	SlotHead     Slot = "head"
	SlotTabard   Slot = "tabard"
)

var armorSlots = []Slot{
	SlotShoulder,
	SlotChest,
	SlotBelt,
	SlotHand,
	SlotPants,
	SlotFoot,
	SlotBack,
	SlotRing,
	SlotNeck,
	SlotHead,
	SlotTabard,
}

// String returns the string representation of the slot
func (s Slot) String() string {
	return string(s)
}

// IsWeapon reports whether the slot holds a weapon
func (s Slot) IsWeapon() bool {
	return s == SlotActiveItem || s == SlotSecondItem
}

// IsArmor reports whether the slot holds armor
func (s Slot) IsArmor() bool {
	for _, slot := range armorSlots {
		if slot == s {
			return true
		}
	}
	return false
}

// IsValid checks if the slot is known
func (s Slot) IsValid() bool {
	switch s {
	case SlotActiveItem, SlotSecondItem, SlotLantern, SlotGlider:
		return true
	default:
		return s.IsArmor()
	}
}

// ArmorSlots returns the armor slots in reporting order
func ArmorSlots() []Slot {
	out := make([]Slot, len(armorSlots))
	copy(out, armorSlots)
	return out
}

// AllSlots returns every slot
func AllSlots() []Slot {
	return append([]Slot{SlotActiveItem, SlotSecondItem, SlotLantern, SlotGlider}, armorSlots...)
}

// SlotFromString converts a string to a Slot
// Returns the slot and true if valid, empty slot and false if invalid
func SlotFromString(s string) (Slot, bool) {
	slot := Slot(s)
	if slot.IsValid() {
		return slot, true
	}
	return "", false
}

// CanEquipToSlot checks if the item fits the slot. Weapons need a tool, armor
// needs a piece whose kind names the slot, utility slots need the matching
// item kind.
func CanEquipToSlot(it *item.Item, slot Slot) bool {
	switch {
	case it == nil:
		return false
	case slot.IsWeapon():
		return it.IsTool()
	case slot == SlotLantern:
		return it.Kind == item.KindLantern
	case slot == SlotGlider:
		return it.Kind == item.KindGlider
	case slot.IsArmor():
		return it.IsArmor() && string(it.Armor.Kind) == string(slot)
	default:
		return false
	}
}

// AbilitySlot selects one of the active weapon's abilities
type AbilitySlot string

// Ability slots. Slots 1 to 5 are filled from the weapon's ability list;
// block and dodge are fixed.
const (
	AbilitySlot1     AbilitySlot = "ability1"
	AbilitySlot2     AbilitySlot = "ability2"
	AbilitySlot3     AbilitySlot = "ability3"
	AbilitySlot4     AbilitySlot = "ability4"
	AbilitySlot5     AbilitySlot = "ability5"
	AbilitySlotBlock AbilitySlot = "block"
	AbilitySlotDodge AbilitySlot = "dodge"
)

// NumAbilitySlots is the number of weapon-provided ability slots
const NumAbilitySlots = 5

// index returns the 0-based weapon slot index, or -1 for block and dodge
func (s AbilitySlot) index() int {
	switch s {
	case AbilitySlot1:
		return 0
	case AbilitySlot2:
		return 1
	case AbilitySlot3:
		return 2
	case AbilitySlot4:
		return 3
	case AbilitySlot5:
		return 4
	default:
		return -1
	}
}

// IsValid checks if the ability slot is known
func (s AbilitySlot) IsValid() bool {
	return s.index() >= 0 || s == AbilitySlotBlock || s == AbilitySlotDodge
}
