package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-abilities/internal/engine"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
)

func TestCompileCoversEveryKind(t *testing.T) {
	samples := map[ability.Kind]ability.Ability{
		ability.KindBasicMelee:      ability.BasicMelee{},
		ability.KindBasicRanged:     ability.BasicRanged{},
		ability.KindBoost:           ability.Boost{},
		ability.KindDashMelee:       ability.DashMelee{},
		ability.KindBasicBlock:      ability.BasicBlock{},
		ability.KindRoll:            ability.Roll{},
		ability.KindComboMelee:      ability.ComboMelee{},
		ability.KindLeapMelee:       ability.LeapMelee{},
		ability.KindSpinMelee:       ability.SpinMelee{},
		ability.KindChargedRanged:   ability.ChargedRanged{},
		ability.KindGroundShockwave: ability.GroundShockwave{},
	}

	for _, kind := range ability.AllKinds() {
		a, ok := samples[kind]
		require.True(t, ok, "no sample for %s", kind)

		state := engine.Compile(a)
		require.NotNil(t, state)
		assert.Equal(t, kind, state.Kind())
	}
}

func TestCompileStartsInBuildup(t *testing.T) {
	timed := []ability.Ability{
		ability.BasicMelee{},
		ability.BasicRanged{},
		ability.DashMelee{},
		ability.ComboMelee{},
		ability.LeapMelee{},
		ability.SpinMelee{NumSpins: 1},
		ability.ChargedRanged{},
		ability.GroundShockwave{},
	}
	for _, a := range timed {
		assert.Equal(t, states.StageBuildup, engine.Compile(a).Section(), "kind %s", a.Kind())
	}

	assert.Equal(t, states.StageNone, engine.Compile(ability.BasicBlock{}).Section())
}

func TestCompileCopiesStaticData(t *testing.T) {
	melee := ability.BasicMelee{
		EnergyCost:       10,
		BuildupDuration:  ability.Millis(200),
		RecoverDuration:  ability.Millis(100),
		BaseHealthchange: -40,
		Knockback:        2,
		Range:            3.5,
		MaxAngle:         20,
	}

	state, ok := engine.Compile(melee).(states.BasicMelee)
	require.True(t, ok)
	assert.Equal(t, melee, state.StaticData)
	assert.False(t, state.Exhausted)
	assert.Zero(t, state.Timer)
}

func TestCompileRoll(t *testing.T) {
	state, ok := engine.Compile(ability.Roll{}).(states.Roll)
	require.True(t, ok)
	assert.Equal(t, 500*time.Millisecond, state.RemainingDuration)
	assert.False(t, state.WasWielded)
}

func TestCompileCombo(t *testing.T) {
	combo := ability.ComboMelee{
		StageData: []ability.ComboStage{
			{Stage: 1, BaseDamage: 10},
			{Stage: 2, BaseDamage: 20},
			{Stage: 3, BaseDamage: 30},
		},
		InitialEnergyGain: 5,
		MaxEnergyGain:     50,
		EnergyIncrease:    5,
		SpeedIncrease:     0.25,
		MaxSpeedIncrease:  1.8,
		IsInterruptible:   true,
	}

	state, ok := engine.Compile(combo).(states.ComboMelee)
	require.True(t, ok)

	assert.Equal(t, uint32(1), state.Stage)
	assert.Equal(t, uint32(3), state.StaticData.NumStages)
	assert.Equal(t, uint32(0), state.Combo)
	assert.InDelta(t, 0.75, state.StaticData.SpeedIncrease, 1e-6)
	assert.InDelta(t, 0.8, state.StaticData.MaxSpeedIncrease, 1e-6)
	assert.True(t, state.Interruptible())

	// compiled stages are a copy
	combo.StageData[0].BaseDamage = 999
	assert.Equal(t, uint32(10), state.StaticData.StageData[0].BaseDamage)
}

func TestCompileSpinAndLeap(t *testing.T) {
	spin, ok := engine.Compile(ability.SpinMelee{NumSpins: 4}).(states.SpinMelee)
	require.True(t, ok)
	assert.Equal(t, uint32(3), spin.SpinsRemaining)

	spin, ok = engine.Compile(ability.SpinMelee{}).(states.SpinMelee)
	require.True(t, ok)
	assert.Equal(t, uint32(0), spin.SpinsRemaining)

	leap, ok := engine.Compile(ability.LeapMelee{}).(states.LeapMelee)
	require.True(t, ok)
	assert.True(t, leap.Initialize)

	charged, ok := engine.Compile(ability.ChargedRanged{ChargeDuration: ability.Millis(900)}).(states.ChargedRanged)
	require.True(t, ok)
	assert.Zero(t, charged.ChargeTimer)
	assert.Zero(t, charged.Timer)
}

func TestClassify(t *testing.T) {
	_, ok := engine.Classify(nil)
	assert.False(t, ok)

	charged, ok := engine.Classify(engine.Compile(ability.ChargedRanged{}))
	require.True(t, ok)
	shockwave, ok := engine.Classify(engine.Compile(ability.GroundShockwave{}))
	require.True(t, ok)
	assert.NotEqual(t, charged, shockwave)
	assert.Equal(t, "charged_ranged", charged.String())
	assert.Equal(t, "ground_shockwave", shockwave.String())

	combo, ok := engine.Classify(states.ComboMelee{Stage: 2, StageSection: states.StageRecover})
	require.True(t, ok)
	assert.Equal(t, "combo_melee/recover/2", combo.String())
}
