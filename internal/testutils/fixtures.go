package testutils

import (
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/item"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
)

// Fixture IDs
const (
	TestEntityID = "entity-test-001"
	TestSwordID  = "sword-test-001"
	TestBowID    = "bow-test-001"
	TestHammerID = "hammer-test-001"
)

// TestBasicMelee is a quick strike: 100ms buildup, 300ms recover, 10 energy
func TestBasicMelee() ability.BasicMelee {
	return ability.BasicMelee{
		EnergyCost:       10,
		BuildupDuration:  ability.Millis(100),
		RecoverDuration:  ability.Millis(300),
		BaseHealthchange: -50,
		Knockback:        5,
		Range:            3.5,
		MaxAngle:         60,
	}
}

// TestComboMelee is a two stage chain
func TestComboMelee() ability.ComboMelee {
	return ability.ComboMelee{
		StageData: []ability.ComboStage{
			{
				Stage:               0,
				BaseDamage:          90,
				MaxDamage:           110,
				DamageIncrease:      10,
				Knockback:           10,
				Range:               4,
				Angle:               30,
				BaseBuildupDuration: ability.Millis(100),
				BaseSwingDuration:   ability.Millis(100),
				BaseRecoverDuration: ability.Millis(300),
				ForwardMovement:     0.5,
			},
			{
				Stage:               1,
				BaseDamage:          130,
				MaxDamage:           160,
				DamageIncrease:      15,
				Knockback:           10,
				Range:               4,
				Angle:               180,
				BaseBuildupDuration: ability.Millis(200),
				BaseSwingDuration:   ability.Millis(200),
				BaseRecoverDuration: ability.Millis(300),
			},
		},
		InitialEnergyGain: 25,
		MaxEnergyGain:     175,
		EnergyIncrease:    30,
		SpeedIncrease:     0.1,
		MaxSpeedIncrease:  0.8,
		IsInterruptible:   true,
	}
}

// TestChargedRanged charges for 1s while draining 300 energy per second
func TestChargedRanged() ability.ChargedRanged {
	return ability.ChargedRanged{
		EnergyDrain:            300,
		InitialDamage:          10,
		MaxDamage:              200,
		InitialKnockback:       10,
		MaxKnockback:           20,
		PrepareDuration:        ability.Millis(100),
		ChargeDuration:         ability.Millis(1000),
		RecoverDuration:        ability.Millis(500),
		ProjectileBody:         physics.Body{Kind: physics.BodyObject, Variant: "arrow"},
		InitialProjectileSpeed: 100,
		MaxProjectileSpeed:     250,
	}
}

// TestGroundShockwave needs ground contact
func TestGroundShockwave() ability.GroundShockwave {
	return ability.GroundShockwave{
		EnergyCost:        300,
		BuildupDuration:   ability.Millis(500),
		RecoverDuration:   ability.Millis(800),
		Damage:            200,
		Knockback:         25,
		ShockwaveAngle:    360,
		ShockwaveSpeed:    20,
		ShockwaveDuration: ability.Millis(1000),
		RequiresGround:    true,
	}
}

// CreateTestSword creates a sword with basic melee and combo abilities
func CreateTestSword() item.Item {
	return CreateTestTool(TestSwordID, item.ToolSword, TestBasicMelee(), TestComboMelee())
}

// CreateTestBow creates a bow with a charged shot
func CreateTestBow() item.Item {
	return CreateTestTool(TestBowID, item.ToolBow, TestChargedRanged())
}

// CreateTestHammer creates a hammer with a ground shockwave
func CreateTestHammer() item.Item {
	return CreateTestTool(TestHammerID, item.ToolHammer, TestGroundShockwave())
}

// CreateTestTool creates a tool granting abilities in slot order
func CreateTestTool(id string, kind item.ToolKind, abilities ...ability.Ability) item.Item {
	tool := &item.Tool{Kind: kind}
	for _, a := range abilities {
		tool.Abilities = append(tool.Abilities, ability.Entry{Ability: a})
	}
	return item.Item{
		ID:   id,
		Name: "Test " + string(kind),
		Kind: item.KindTool,
		Tool: tool,
	}
}

// CreateTestArmor creates an armor piece
func CreateTestArmor(kind item.ArmorKind, value float32) item.Item {
	return item.Item{
		ID:   "armor-test-" + string(kind),
		Name: "Test " + string(kind),
		Kind: item.KindArmor,
		Armor: &item.Armor{
			Kind:       kind,
			Protection: item.Protection{Value: value},
		},
	}
}

// TestSnapshot is a grounded humanoid at rest
func TestSnapshot() physics.Snapshot {
	return physics.Snapshot{
		OnGround: true,
		Body:     physics.Body{Kind: physics.BodyHumanoid},
	}
}
