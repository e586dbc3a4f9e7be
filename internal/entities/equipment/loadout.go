package equipment

import (
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/item"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
)

// protectionScale is the protection total at which damage is halved
const protectionScale float32 = 60

// Loadout is everything an entity has equipped
type Loadout struct {
	ActiveItem *ItemConfig `json:"active_item,omitempty"`
	SecondItem *ItemConfig `json:"second_item,omitempty"`
	Lantern    *item.Item  `json:"lantern,omitempty"`
	Glider     *item.Item  `json:"glider,omitempty"`

	Shoulder *item.Item `json:"shoulder,omitempty"`
	Chest    *item.Item `json:"chest,omitempty"`
	Belt     *item.Item `json:"belt,omitempty"`
	Hand     *item.Item `json:"hand,omitempty"`
	Pants    *item.Item `json:"pants,omitempty"`
	Foot     *item.Item `json:"foot,omitempty"`
	Back     *item.Item `json:"back,omitempty"`
	Ring     *item.Item `json:"ring,omitempty"`
	Neck     *item.Item `json:"neck,omitempty"`
	Head     *item.Item `json:"head,omitempty"`
	Tabard   *item.Item `json:"tabard,omitempty"`
}

// ArmorPiece is an occupied armor slot
type ArmorPiece struct {
	Slot Slot
	Item *item.Item
}

// armorField returns the storage for an armor slot, nil for non-armor slots
func (l *Loadout) armorField(slot Slot) **item.Item {
	switch slot {
	case SlotShoulder:
		return &l.Shoulder
	case SlotChest:
		return &l.Chest
	case SlotBelt:
		return &l.Belt
	case SlotHand:
		return &l.Hand
	case SlotPants:
		return &l.Pants
	case SlotFoot:
		return &l.Foot
	case SlotBack:
		return &l.Back
	case SlotRing:
		return &l.Ring
	case SlotNeck:
		return &l.Neck
	case SlotHead:
		return &l.Head
	case SlotTabard:
		return &l.Tabard
	default:
		return nil
	}
}

// Armor returns every armor slot in fixed slot order. Item is nil for an
// empty slot.
func (l *Loadout) Armor() []ArmorPiece {
	pieces := make([]ArmorPiece, 0, len(armorSlots))
	for _, slot := range armorSlots {
		piece := ArmorPiece{Slot: slot}
		if l != nil {
			piece.Item = *l.armorField(slot)
		}
		pieces = append(pieces, piece)
	}
	return pieces
}

// DamageReduction is the fraction of incoming damage the worn armor removes.
// Any invincible piece gives 1. Otherwise the summed protection p maps to
// p / (60 + |p|), which is 0.5 at p = 60 and negative when p is negative.
func (l *Loadout) DamageReduction() float32 {
	var total float32
	for _, piece := range l.Armor() {
		if piece.Item == nil || !piece.Item.IsArmor() {
			continue
		}
		protection := piece.Item.Armor.Protection
		if protection.Invincible {
			return 1
		}
		total += protection.Value
	}

	magnitude := total
	if magnitude < 0 {
		magnitude = -magnitude
	}
	return total / (protectionScale + magnitude)
}

// Ability returns the ability bound to slot on the active weapon
func (l *Loadout) Ability(slot AbilitySlot) (ability.Ability, bool) {
	if l == nil {
		return nil, false
	}
	return l.ActiveItem.Ability(slot)
}

// Get returns the item in slot, nil when empty
func (l *Loadout) Get(slot Slot) *item.Item {
	if l == nil {
		return nil
	}

	switch slot {
	case SlotActiveItem:
		if l.ActiveItem != nil {
			return &l.ActiveItem.Item
		}
		return nil
	case SlotSecondItem:
		if l.SecondItem != nil {
			return &l.SecondItem.Item
		}
		return nil
	case SlotLantern:
		return l.Lantern
	case SlotGlider:
		return l.Glider
	}

	if field := l.armorField(slot); field != nil {
		return *field
	}
	return nil
}

// Equip places it into slot and returns what was there before
func (l *Loadout) Equip(slot Slot, it item.Item) (*item.Item, error) {
	if !slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown slot %q", slot)
	}
	if !CanEquipToSlot(&it, slot) {
		return nil, errors.InvalidArgumentf("item %q cannot be equipped to slot %s", it.ID, slot).
			WithMeta("item_kind", string(it.Kind)).
			WithMeta("slot", slot.String())
	}

	previous := l.Get(slot)

	switch slot {
	case SlotActiveItem, SlotSecondItem:
		cfg, err := NewItemConfig(it)
		if err != nil {
			return nil, err
		}
		if slot == SlotActiveItem {
			l.ActiveItem = cfg
		} else {
			l.SecondItem = cfg
		}
	case SlotLantern:
		l.Lantern = &it
	case SlotGlider:
		l.Glider = &it
	default:
		*l.armorField(slot) = &it
	}

	return previous, nil
}

// Unequip empties slot and returns what was there
func (l *Loadout) Unequip(slot Slot) (*item.Item, error) {
	if !slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown slot %q", slot)
	}

	previous := l.Get(slot)

	switch slot {
	case SlotActiveItem:
		l.ActiveItem = nil
	case SlotSecondItem:
		l.SecondItem = nil
	case SlotLantern:
		l.Lantern = nil
	case SlotGlider:
		l.Glider = nil
	default:
		*l.armorField(slot) = nil
	}

	return previous, nil
}

// SwapWeapons exchanges the active and second weapons
func (l *Loadout) SwapWeapons() {
	l.ActiveItem, l.SecondItem = l.SecondItem, l.ActiveItem
}
