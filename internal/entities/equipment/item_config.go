package equipment

import (
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/item"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
)

// ItemConfig is a weapon resolved into its ability slots
type ItemConfig struct {
	Item         item.Item                       `json:"item"`
	Abilities    [NumAbilitySlots]*ability.Entry `json:"abilities"`
	BlockAbility *ability.Entry                  `json:"block_ability,omitempty"`
	DodgeAbility *ability.Entry                  `json:"dodge_ability,omitempty"`
}

// NewItemConfig drains the tool's abilities, in order, into slots 1 to 5 and
// fixes block and dodge. Abilities past the fifth are not reachable.
//
// Only tools resolve into ability slots. Any other item is a caller bug and
// returns a FailedPrecondition error.
func NewItemConfig(it item.Item) (*ItemConfig, error) {
	if !it.IsTool() {
		return nil, errors.FailedPreconditionf("item %q is not a tool: only tools resolve into ability slots", it.ID).
			WithMeta("item_id", it.ID).
			WithMeta("item_kind", string(it.Kind))
	}

	cfg := &ItemConfig{
		Item:         it,
		BlockAbility: ability.NewEntry(ability.BasicBlock{}),
		DodgeAbility: ability.NewEntry(ability.Roll{}),
	}

	abilities := it.Abilities()
	for i := 0; i < NumAbilitySlots && i < len(abilities); i++ {
		cfg.Abilities[i] = ability.NewEntry(abilities[i])
	}

	return cfg, nil
}

// MustItemConfig is NewItemConfig for items known to be tools. It panics
// otherwise.
func MustItemConfig(it item.Item) *ItemConfig {
	cfg, err := NewItemConfig(it)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Ability returns the ability bound to slot, if any
func (c *ItemConfig) Ability(slot AbilitySlot) (ability.Ability, bool) {
	if c == nil {
		return nil, false
	}

	var entry *ability.Entry
	switch slot {
	case AbilitySlotBlock:
		entry = c.BlockAbility
	case AbilitySlotDodge:
		entry = c.DodgeAbility
	default:
		idx := slot.index()
		if idx < 0 {
			return nil, false
		}
		entry = c.Abilities[idx]
	}

	if entry == nil || entry.Ability == nil {
		return nil, false
	}
	return entry.Ability, true
}
