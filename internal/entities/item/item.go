// Package item describes equippable items: weapons (tools), armor and the
// utility items a loadout can carry.
package item

import (
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
)

// Kind classifies an item
type Kind string

// Item kinds
const (
	KindTool       Kind = "tool"
	KindArmor      Kind = "armor"
	KindLantern    Kind = "lantern"
	KindGlider     Kind = "glider"
	KindConsumable Kind = "consumable"
)

// ToolKind is the weapon family of a tool
type ToolKind string

// Tool kinds
const (
	ToolSword  ToolKind = "sword"
	ToolAxe    ToolKind = "axe"
	ToolHammer ToolKind = "hammer"
	ToolBow    ToolKind = "bow"
	ToolStaff  ToolKind = "staff"
	ToolDagger ToolKind = "dagger"
)

// ArmorKind names the body location an armor piece covers. The values match
// equipment armor slot names.
type ArmorKind string

// Armor kinds
const (
	ArmorShoulder ArmorKind = "shoulder"
	ArmorChest    ArmorKind = "chest"
	ArmorBelt     ArmorKind = "belt"
	ArmorHand     ArmorKind = "hand"
	ArmorPants    ArmorKind = "pants"
	ArmorFoot     ArmorKind = "foot"
	ArmorBack     ArmorKind = "back"
	ArmorRing     ArmorKind = "ring"
	ArmorNeck     ArmorKind = "neck"
	ArmorHead     ArmorKind = "head"
	ArmorTabard   ArmorKind = "tabard"
)

// Item is a single item instance
type Item struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Kind        Kind   `json:"kind" yaml:"kind"`
	Tool        *Tool  `json:"tool,omitempty" yaml:"tool,omitempty"`
	Armor       *Armor `json:"armor,omitempty" yaml:"armor,omitempty"`
}

// Tool is a weapon and the abilities it grants, in slot order
type Tool struct {
	Kind      ToolKind        `json:"kind" yaml:"kind"`
	Abilities []ability.Entry `json:"abilities" yaml:"abilities"`
}

// Armor is a worn piece
type Armor struct {
	Kind       ArmorKind  `json:"kind" yaml:"kind"`
	Protection Protection `json:"protection" yaml:"protection"`
}

// Protection is the mitigation an armor piece contributes. Invincible pieces
// mitigate everything regardless of Value.
type Protection struct {
	Invincible bool    `json:"invincible,omitempty" yaml:"invincible,omitempty"`
	Value      float32 `json:"value" yaml:"value"`
}

// IsTool reports whether the item carries weapon abilities
func (i *Item) IsTool() bool {
	return i != nil && i.Kind == KindTool && i.Tool != nil
}

// IsArmor reports whether the item is wearable armor
func (i *Item) IsArmor() bool {
	return i != nil && i.Kind == KindArmor && i.Armor != nil
}

// Abilities returns a copy of the tool's ability list, nil for non-tools
func (i *Item) Abilities() []ability.Ability {
	if !i.IsTool() {
		return nil
	}
	out := make([]ability.Ability, 0, len(i.Tool.Abilities))
	for _, entry := range i.Tool.Abilities {
		if entry.Ability != nil {
			out = append(out, entry.Ability)
		}
	}
	return out
}
