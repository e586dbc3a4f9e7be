package equipment

import (
	"github.com/KirkDiggler/rpg-abilities/internal/entities/item"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
)

// Builder assembles a Loadout one slot at a time. The first failing step is
// reported by Build; later steps are skipped.
type Builder struct {
	loadout Loadout
	err     error
}

// NewBuilder starts an empty loadout
func NewBuilder() *Builder {
	return &Builder{}
}

// ActiveItem equips the active weapon
func (b *Builder) ActiveItem(it item.Item) *Builder {
	return b.With(SlotActiveItem, it)
}

// SecondItem equips the off weapon
func (b *Builder) SecondItem(it item.Item) *Builder {
	return b.With(SlotSecondItem, it)
}

// Lantern equips a lantern
func (b *Builder) Lantern(it item.Item) *Builder {
	return b.With(SlotLantern, it)
}

// Glider equips a glider
func (b *Builder) Glider(it item.Item) *Builder {
	return b.With(SlotGlider, it)
}

// Armor equips an armor piece into the slot its armor kind names
func (b *Builder) Armor(it item.Item) *Builder {
	if !it.IsArmor() {
		if b.err == nil {
			b.err = errors.InvalidArgumentf("item %q is not armor", it.ID)
		}
		return b
	}
	return b.With(Slot(it.Armor.Kind), it)
}

// With equips it into an explicit slot
func (b *Builder) With(slot Slot, it item.Item) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := b.loadout.Equip(slot, it); err != nil {
		b.err = errors.Wrapf(err, "failed to equip %s", slot)
	}
	return b
}

// Build returns the loadout or the first error encountered
func (b *Builder) Build() (*Loadout, error) {
	if b.err != nil {
		return nil, b.err
	}
	out := b.loadout
	return &out, nil
}
