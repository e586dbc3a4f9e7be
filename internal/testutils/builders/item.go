// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/item"
)

// ItemBuilder provides a fluent interface for building test items
type ItemBuilder struct {
	item item.Item
}

// NewItemBuilder creates a builder for a plain consumable with the given ID
func NewItemBuilder(id string) *ItemBuilder {
	return &ItemBuilder{
		item: item.Item{
			ID:   id,
			Name: "Test item " + id,
			Kind: item.KindConsumable,
		},
	}
}

// WithName sets the display name
func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.item.Name = name
	return b
}

// AsTool makes the item a weapon granting abilities in slot order
func (b *ItemBuilder) AsTool(kind item.ToolKind, abilities ...ability.Ability) *ItemBuilder {
	tool := &item.Tool{Kind: kind}
	for _, a := range abilities {
		tool.Abilities = append(tool.Abilities, ability.Entry{Ability: a})
	}
	b.item.Kind = item.KindTool
	b.item.Tool = tool
	b.item.Armor = nil
	return b
}

// AsArmor makes the item an armor piece for the slot named by kind
func (b *ItemBuilder) AsArmor(kind item.ArmorKind, value float32) *ItemBuilder {
	b.item.Kind = item.KindArmor
	b.item.Armor = &item.Armor{
		Kind:       kind,
		Protection: item.Protection{Value: value},
	}
	b.item.Tool = nil
	return b
}

// Invincible marks an armor piece as mitigating all damage. It has no effect
// on other items.
func (b *ItemBuilder) Invincible() *ItemBuilder {
	if b.item.Armor != nil {
		b.item.Armor.Protection.Invincible = true
	}
	return b
}

// AsLantern makes the item a lantern
func (b *ItemBuilder) AsLantern() *ItemBuilder {
	return b.asKind(item.KindLantern)
}

// AsGlider makes the item a glider
func (b *ItemBuilder) AsGlider() *ItemBuilder {
	return b.asKind(item.KindGlider)
}

func (b *ItemBuilder) asKind(kind item.Kind) *ItemBuilder {
	b.item.Kind = kind
	b.item.Tool = nil
	b.item.Armor = nil
	return b
}

// Build returns the built item
func (b *ItemBuilder) Build() item.Item {
	return b.item
}
