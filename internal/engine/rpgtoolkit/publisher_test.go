package rpgtoolkit

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
)

func TestEntities(t *testing.T) {
	combatant := &CombatantEntity{ID: "knight-1", Body: physics.Body{Kind: physics.BodyHumanoid}}
	assert.Equal(t, "knight-1", combatant.GetID())
	assert.Equal(t, "combatant", combatant.GetType())

	execution := &AbilityEntity{ExecutionID: "exec-1", Kind: ability.KindDashMelee}
	assert.Equal(t, "exec-1", execution.GetID())
	assert.Equal(t, "ability", execution.GetType())
}

func TestNewPublisherValidation(t *testing.T) {
	_, err := NewPublisher(nil)
	require.Error(t, err)

	_, err = NewPublisher(&PublisherConfig{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPublisherLifecycle(t *testing.T) {
	bus := events.NewBus()
	publisher, err := NewPublisher(&PublisherConfig{EventBus: bus})
	require.NoError(t, err)

	var received []events.Event
	record := func(_ context.Context, event events.Event) error {
		received = append(received, event)
		return nil
	}
	bus.SubscribeFunc(EventAbilityStarted, 0, record)
	bus.SubscribeFunc(EventAbilityStageChanged, 0, record)
	bus.SubscribeFunc(EventAbilityEnded, 0, record)

	ctx := context.Background()
	combatant := &CombatantEntity{ID: "knight-1"}
	execution := &AbilityEntity{ExecutionID: "exec-1", Kind: ability.KindSpinMelee}

	require.NoError(t, publisher.AbilityStarted(ctx, combatant, execution, 75))
	require.NoError(t, publisher.StageChanged(ctx, combatant, execution, states.StageBuildup, states.StageAction))
	require.NoError(t, publisher.AbilityEnded(ctx, combatant, execution, states.EndAborted))

	require.Len(t, received, 3)
	assert.Equal(t, EventAbilityStarted, received[0].Type())
	assert.Equal(t, "knight-1", received[0].Source().GetID())
	assert.Equal(t, "exec-1", received[0].Target().GetID())

	kind, ok := received[0].Context().Get(ContextKeyAbilityKind)
	require.True(t, ok)
	assert.Equal(t, "spin_melee", kind)

	to, ok := received[1].Context().Get(ContextKeyToStage)
	require.True(t, ok)
	assert.Equal(t, "action", to)

	reason, ok := received[2].Context().Get(ContextKeyEndReason)
	require.True(t, ok)
	assert.Equal(t, "aborted", reason)
}
