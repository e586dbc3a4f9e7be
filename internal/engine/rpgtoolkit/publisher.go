// Package rpgtoolkit connects the ability runtime to rpg-toolkit: combatants
// become core entities and ability lifecycle changes are published on the
// toolkit event bus.
package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
)

// Ability lifecycle event types
const (
	EventAbilityStarted      = "ability.started"
	EventAbilityStageChanged = "ability.stage_changed"
	EventAbilityEnded        = "ability.ended"
)

// Event context keys
const (
	ContextKeyAbilityKind = "ability_kind"
	ContextKeyFromStage   = "from_stage"
	ContextKeyToStage     = "to_stage"
	ContextKeyEndReason   = "end_reason"
	ContextKeyEnergy      = "energy"
)

// PublisherConfig holds the publisher dependencies
type PublisherConfig struct {
	EventBus events.EventBus
}

// Validate checks that all required dependencies are provided
func (c *PublisherConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	return vb.Build()
}

// Publisher emits ability lifecycle events
type Publisher struct {
	bus events.EventBus
}

// NewPublisher creates a Publisher
func NewPublisher(cfg *PublisherConfig) (*Publisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Publisher{bus: cfg.EventBus}, nil
}

// AbilityStarted announces that source started the execution
func (p *Publisher) AbilityStarted(ctx context.Context, source core.Entity, execution *AbilityEntity, energy int32) error {
	event := events.NewGameEvent(EventAbilityStarted, source, execution)
	event.Context().Set(ContextKeyAbilityKind, execution.Kind.String())
	event.Context().Set(ContextKeyEnergy, energy)

	return p.publish(ctx, event)
}

// StageChanged announces a stage section transition
func (p *Publisher) StageChanged(ctx context.Context, source core.Entity, execution *AbilityEntity, from, to states.StageSection) error {
	event := events.NewGameEvent(EventAbilityStageChanged, source, execution)
	event.Context().Set(ContextKeyAbilityKind, execution.Kind.String())
	event.Context().Set(ContextKeyFromStage, from.String())
	event.Context().Set(ContextKeyToStage, to.String())

	return p.publish(ctx, event)
}

// AbilityEnded announces that the execution stopped and why
func (p *Publisher) AbilityEnded(ctx context.Context, source core.Entity, execution *AbilityEntity, reason states.EndReason) error {
	event := events.NewGameEvent(EventAbilityEnded, source, execution)
	event.Context().Set(ContextKeyAbilityKind, execution.Kind.String())
	event.Context().Set(ContextKeyEndReason, string(reason))

	return p.publish(ctx, event)
}

func (p *Publisher) publish(ctx context.Context, event events.Event) error {
	if err := p.bus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s", event.Type())
	}
	return nil
}
