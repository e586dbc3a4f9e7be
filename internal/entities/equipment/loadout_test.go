package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/item"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
)

type LoadoutTestSuite struct {
	suite.Suite

	sword item.Item
}

func TestLoadoutSuite(t *testing.T) {
	suite.Run(t, new(LoadoutTestSuite))
}

func (s *LoadoutTestSuite) SetupTest() {
	s.sword = item.Item{
		ID:   "sword-1",
		Name: "Iron Sword",
		Kind: item.KindTool,
		Tool: &item.Tool{
			Kind: item.ToolSword,
			Abilities: []ability.Entry{
				{Ability: ability.ComboMelee{StageData: []ability.ComboStage{{Stage: 0}, {Stage: 1}}}},
				{Ability: ability.DashMelee{BaseDamage: 100}},
				{Ability: ability.SpinMelee{NumSpins: 2}},
			},
		},
	}
}

func armorPiece(kind item.ArmorKind, value float32) item.Item {
	return item.Item{
		ID:    string(kind) + "-piece",
		Kind:  item.KindArmor,
		Armor: &item.Armor{Kind: kind, Protection: item.Protection{Value: value}},
	}
}

func (s *LoadoutTestSuite) TestItemConfigFillsSlots() {
	cfg, err := equipment.NewItemConfig(s.sword)
	s.Require().NoError(err)

	a, ok := cfg.Ability(equipment.AbilitySlot1)
	s.Require().True(ok)
	s.Equal(ability.KindComboMelee, a.Kind())

	a, ok = cfg.Ability(equipment.AbilitySlot3)
	s.Require().True(ok)
	s.Equal(ability.KindSpinMelee, a.Kind())

	_, ok = cfg.Ability(equipment.AbilitySlot4)
	s.False(ok)

	a, ok = cfg.Ability(equipment.AbilitySlotBlock)
	s.Require().True(ok)
	s.Equal(ability.KindBasicBlock, a.Kind())

	a, ok = cfg.Ability(equipment.AbilitySlotDodge)
	s.Require().True(ok)
	s.Equal(ability.KindRoll, a.Kind())
}

func (s *LoadoutTestSuite) TestItemConfigDropsExtraAbilities() {
	for i := 0; i < 4; i++ {
		s.sword.Tool.Abilities = append(s.sword.Tool.Abilities, ability.Entry{Ability: ability.BasicMelee{}})
	}

	cfg, err := equipment.NewItemConfig(s.sword)
	s.Require().NoError(err)
	for _, entry := range cfg.Abilities {
		s.NotNil(entry)
	}
}

func (s *LoadoutTestSuite) TestItemConfigRejectsNonTool() {
	_, err := equipment.NewItemConfig(armorPiece(item.ArmorChest, 10))
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	s.Panics(func() {
		equipment.MustItemConfig(armorPiece(item.ArmorChest, 10))
	})
}

func (s *LoadoutTestSuite) TestDamageReduction() {
	testCases := []struct {
		name     string
		pieces   []item.Item
		expected float32
	}{
		{
			name:     "no armor",
			expected: 0,
		},
		{
			name:     "sixty protection halves damage",
			pieces:   []item.Item{armorPiece(item.ArmorChest, 40), armorPiece(item.ArmorHead, 20)},
			expected: 0.5,
		},
		{
			name:     "negative protection amplifies damage",
			pieces:   []item.Item{armorPiece(item.ArmorRing, -60)},
			expected: -0.5,
		},
		{
			name: "invincible piece",
			pieces: []item.Item{
				armorPiece(item.ArmorChest, -500),
				{
					ID:    "aegis",
					Kind:  item.KindArmor,
					Armor: &item.Armor{Kind: item.ArmorBack, Protection: item.Protection{Invincible: true}},
				},
			},
			expected: 1,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			b := equipment.NewBuilder()
			for _, piece := range tc.pieces {
				b.Armor(piece)
			}
			loadout, err := b.Build()
			s.Require().NoError(err)
			s.InDelta(tc.expected, loadout.DamageReduction(), 1e-6)
		})
	}
}

func (s *LoadoutTestSuite) TestArmorOrder() {
	loadout, err := equipment.NewBuilder().
		Armor(armorPiece(item.ArmorTabard, 1)).
		Armor(armorPiece(item.ArmorShoulder, 1)).
		Armor(armorPiece(item.ArmorFoot, 1)).
		Build()
	s.Require().NoError(err)

	expected := []equipment.Slot{
		equipment.SlotShoulder,
		equipment.SlotChest,
		equipment.SlotBelt,
		equipment.SlotHand,
		equipment.SlotPants,
		equipment.SlotFoot,
		equipment.SlotBack,
		equipment.SlotRing,
		equipment.SlotNeck,
		equipment.SlotHead,
		equipment.SlotTabard,
	}

	pieces := loadout.Armor()
	s.Require().Len(pieces, len(expected))
	for i, piece := range pieces {
		s.Equal(expected[i], piece.Slot)
		switch piece.Slot {
		case equipment.SlotShoulder, equipment.SlotFoot, equipment.SlotTabard:
			s.NotNil(piece.Item, "slot %s", piece.Slot)
		default:
			s.Nil(piece.Item, "slot %s", piece.Slot)
		}
	}
}

func (s *LoadoutTestSuite) TestEmptyLoadoutListsEverySlot() {
	pieces := (&equipment.Loadout{}).Armor()
	s.Len(pieces, 11)
	for _, piece := range pieces {
		s.Nil(piece.Item)
	}
	s.Zero((&equipment.Loadout{}).DamageReduction())

	var missing *equipment.Loadout
	s.Len(missing.Armor(), 11)
	s.Nil(missing.Get(equipment.SlotActiveItem))
	s.Nil(missing.Get(equipment.SlotHead))
}

func (s *LoadoutTestSuite) TestEquipRejectsWrongSlot() {
	loadout := &equipment.Loadout{}

	_, err := loadout.Equip(equipment.SlotHead, armorPiece(item.ArmorChest, 5))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = loadout.Equip(equipment.SlotActiveItem, armorPiece(item.ArmorChest, 5))
	s.Require().Error(err)

	_, err = loadout.Equip(equipment.Slot("pocket"), s.sword)
	s.Require().Error(err)
}

func (s *LoadoutTestSuite) TestEquipSwapAndUnequip() {
	bow := item.Item{
		ID:   "bow-1",
		Kind: item.KindTool,
		Tool: &item.Tool{
			Kind:      item.ToolBow,
			Abilities: []ability.Entry{{Ability: ability.BasicRanged{}}},
		},
	}

	loadout, err := equipment.NewBuilder().ActiveItem(s.sword).SecondItem(bow).Build()
	s.Require().NoError(err)

	a, ok := loadout.Ability(equipment.AbilitySlot1)
	s.Require().True(ok)
	s.Equal(ability.KindComboMelee, a.Kind())

	loadout.SwapWeapons()
	a, ok = loadout.Ability(equipment.AbilitySlot1)
	s.Require().True(ok)
	s.Equal(ability.KindBasicRanged, a.Kind())

	removed, err := loadout.Unequip(equipment.SlotActiveItem)
	s.Require().NoError(err)
	s.Require().NotNil(removed)
	s.Equal("bow-1", removed.ID)

	_, ok = loadout.Ability(equipment.AbilitySlotDodge)
	s.False(ok)
}

func (s *LoadoutTestSuite) TestEquipReturnsPrevious() {
	loadout := &equipment.Loadout{}

	previous, err := loadout.Equip(equipment.SlotChest, armorPiece(item.ArmorChest, 5))
	s.Require().NoError(err)
	s.Nil(previous)

	previous, err = loadout.Equip(equipment.SlotChest, armorPiece(item.ArmorChest, 9))
	s.Require().NoError(err)
	s.Require().NotNil(previous)
	s.Equal(float32(5), previous.Armor.Protection.Value)
}

func (s *LoadoutTestSuite) TestBuilderReportsFirstError() {
	_, err := equipment.NewBuilder().
		Armor(s.sword).
		ActiveItem(s.sword).
		Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
