package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-abilities/internal/catalog"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/item"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
)

type CatalogTestSuite struct {
	suite.Suite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) TestLoadYAML() {
	c, err := catalog.Load("testdata/catalog.yaml")
	s.Require().NoError(err)

	combo, err := c.Ability("sword_combo")
	s.Require().NoError(err)
	s.Require().IsType(ability.ComboMelee{}, combo)
	s.Len(combo.(ability.ComboMelee).StageData, 2)
	s.Equal(ability.Millis(150), combo.(ability.ComboMelee).StageData[0].BaseBuildupDuration)

	sword, err := c.Item("starter_sword")
	s.Require().NoError(err)
	s.True(sword.IsTool())
	s.Equal("starter_sword", sword.ID)
	s.Equal(item.ToolSword, sword.Tool.Kind)

	abilities := sword.Abilities()
	s.Require().Len(abilities, 3)
	s.Equal(ability.KindComboMelee, abilities[0].Kind())
	s.Equal(ability.KindDashMelee, abilities[1].Kind())
	s.Equal(ability.KindSpinMelee, abilities[2].Kind())

	tabard, err := c.Item("admin_tabard")
	s.Require().NoError(err)
	s.True(tabard.IsArmor())
	s.True(tabard.Armor.Protection.Invincible)

	tuning := c.Tuning()
	s.Equal(float32(30), tuning.RollSpeed)
	s.Equal(ability.Millis(10000), tuning.ProjectileLifetime)
	s.Equal(states.DefaultTuning().SweepAngle, tuning.SweepAngle)
}

func (s *CatalogTestSuite) TestTuningDefaultsWhenAbsent() {
	c, err := catalog.Load("testdata/catalog.json")
	s.Require().NoError(err)
	s.Equal(states.DefaultTuning(), *c.Tuning())
}

func (s *CatalogTestSuite) TestLoadJSON() {
	c, err := catalog.Load("testdata/catalog.json")
	s.Require().NoError(err)

	s.Equal([]string{"axe_leap", "staff_boost"}, c.AbilityIDs())
	s.Equal([]string{"iron_axe"}, c.ItemIDs())

	leap, err := c.Ability("axe_leap")
	s.Require().NoError(err)
	s.Equal(ability.LeapMelee{
		EnergyCost:       450,
		MovementDuration: ability.Millis(800),
		BuildupDuration:  ability.Millis(100),
		RecoverDuration:  ability.Millis(600),
		LeapSpeed:        24,
		LeapVertSpeed:    8,
		BaseDamage:       240,
		Knockback:        12,
		Range:            4.5,
	}, leap)
}

func (s *CatalogTestSuite) TestLoadUnsupportedExtension() {
	_, err := catalog.Load("testdata/catalog.toml")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestLoadMissingFile() {
	_, err := catalog.Load("testdata/missing.yaml")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestLookupMisses() {
	c, err := catalog.Load("testdata/catalog.json")
	s.Require().NoError(err)

	_, err = c.Ability("nope")
	s.True(errors.IsNotFound(err))

	_, err = c.Item("nope")
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestParseRejectsUnknownKind() {
	_, err := catalog.Parse([]byte(`
abilities:
  weird:
    kind: teleport
`), catalog.FormatYAML)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestParseRejectsUnknownAbilityReference() {
	_, err := catalog.Parse([]byte(`{
  "abilities": {},
  "items": {
    "stick": {"name": "Stick", "kind": "tool", "tool": {"kind": "sword", "abilities": ["missing"]}}
  }
}`), catalog.FormatJSON)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	s.Contains(meta, "validation_errors")
}

func (s *CatalogTestSuite) TestBuildValidation() {
	testCases := []struct {
		name string
		doc  *catalog.Document
	}{
		{
			name: "combo without stages",
			doc: &catalog.Document{Abilities: map[string]ability.Entry{
				"combo": {Ability: ability.ComboMelee{}},
			}},
		},
		{
			name: "combo stage base above max",
			doc: &catalog.Document{Abilities: map[string]ability.Entry{
				"combo": {Ability: ability.ComboMelee{StageData: []ability.ComboStage{{BaseDamage: 20, MaxDamage: 10}}}},
			}},
		},
		{
			name: "combo with speed increase above one",
			doc: &catalog.Document{Abilities: map[string]ability.Entry{
				"combo": {Ability: ability.ComboMelee{
					StageData:        []ability.ComboStage{{MaxDamage: 10}},
					SpeedIncrease:    1.5,
					MaxSpeedIncrease: 0.8,
				}},
			}},
		},
		{
			name: "combo with no max speed increase",
			doc: &catalog.Document{Abilities: map[string]ability.Entry{
				"combo": {Ability: ability.ComboMelee{
					StageData:     []ability.ComboStage{{MaxDamage: 10}},
					SpeedIncrease: 1,
				}},
			}},
		},
		{
			name: "energy cost above the pool limit",
			doc: &catalog.Document{Abilities: map[string]ability.Entry{
				"slam": {Ability: ability.BasicMelee{EnergyCost: 3_000_000_000}},
			}},
		},
		{
			name: "finite spin with no spins",
			doc: &catalog.Document{Abilities: map[string]ability.Entry{
				"spin": {Ability: ability.SpinMelee{}},
			}},
		},
		{
			name: "charged ranged with no charge duration",
			doc: &catalog.Document{Abilities: map[string]ability.Entry{
				"charged": {Ability: ability.ChargedRanged{MaxDamage: 10}},
			}},
		},
		{
			name: "armor with unknown kind",
			doc: &catalog.Document{Items: map[string]catalog.ItemDocument{
				"hat": {Name: "Hat", Kind: item.KindArmor, Armor: &item.Armor{Kind: "crown"}},
			}},
		},
		{
			name: "tool without tool data",
			doc: &catalog.Document{Items: map[string]catalog.ItemDocument{
				"stick": {Name: "Stick", Kind: item.KindTool},
			}},
		},
		{
			name: "item without name",
			doc: &catalog.Document{Items: map[string]catalog.ItemDocument{
				"lamp": {Kind: item.KindLantern},
			}},
		},
		{
			name: "tuning sweep past a full circle",
			doc:  &catalog.Document{Tuning: &states.Tuning{SweepAngle: 400}},
		},
		{
			name: "nil document",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := catalog.Build(tc.doc)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *CatalogTestSuite) TestSchemaNames() {
	names := catalog.SchemaNames()
	s.Equal(catalog.SchemaItem, names[0])
	s.Equal(catalog.SchemaTuning, names[1])
	s.Len(names, len(ability.AllKinds())+2)
}

func (s *CatalogTestSuite) TestSchemaForEveryName() {
	for _, name := range catalog.SchemaNames() {
		s.Run(name, func() {
			schema, err := catalog.Schema(name)
			s.Require().NoError(err)
			s.NotEmpty(schema.Title)

			data, err := json.Marshal(schema)
			s.Require().NoError(err)
			s.Contains(string(data), "$schema")
		})
	}
}

func (s *CatalogTestSuite) TestSchemaUnknownName() {
	_, err := catalog.Schema("teleport")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}
