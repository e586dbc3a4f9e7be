// Package combat runs abilities for registered combatants: it owns each
// entity's loadout, energy pool and running execution state.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/rpg-abilities/internal/orchestrators/combat Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-abilities/internal/energy"
	"github.com/KirkDiggler/rpg-abilities/internal/engine"
	"github.com/KirkDiggler/rpg-abilities/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/item"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-abilities/internal/repositories/loadout"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
)

// DefaultMaxEnergy is the pool size used when neither the request nor the
// config sets one
const DefaultMaxEnergy int32 = 1000

// Service defines the interface for combat operations
type Service interface {
	// RegisterCombatant adds an entity with a full energy pool. A stored
	// loadout is restored; otherwise one is built from the named tools.
	RegisterCombatant(ctx context.Context, input *RegisterCombatantInput) (*RegisterCombatantOutput, error)

	// Equip changes one loadout slot and persists the loadout
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)

	// SwapWeapons exchanges the active and second weapons and persists the loadout
	SwapWeapons(ctx context.Context, input *SwapWeaponsInput) (*SwapWeaponsOutput, error)

	// ActivateAbility runs the gate for the ability in a slot and starts it
	ActivateAbility(ctx context.Context, input *ActivateAbilityInput) (*ActivateAbilityOutput, error)

	// Tick advances the combatant's running ability by one frame
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// GetCombatant returns a snapshot of the combatant
	GetCombatant(ctx context.Context, input *GetCombatantInput) (*GetCombatantOutput, error)

	// RemoveCombatant drops the runtime. The stored loadout is kept.
	RemoveCombatant(ctx context.Context, input *RemoveCombatantInput) (*RemoveCombatantOutput, error)
}

// ItemSource resolves catalog items
type ItemSource interface {
	Item(id string) (item.Item, error)
}

// EventPublisher announces ability lifecycle changes
type EventPublisher interface {
	AbilityStarted(ctx context.Context, source core.Entity, execution *rpgtoolkit.AbilityEntity, energy int32) error
	StageChanged(ctx context.Context, source core.Entity, execution *rpgtoolkit.AbilityEntity, from, to states.StageSection) error
	AbilityEnded(ctx context.Context, source core.Entity, execution *rpgtoolkit.AbilityEntity, reason states.EndReason) error
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	Engine      engine.Engine
	Items       ItemSource
	LoadoutRepo loadout.Repository
	Publisher   EventPublisher
	IDGenerator idgen.Generator

	// DefaultMaxEnergy sizes pools when a registration does not. Zero uses
	// DefaultMaxEnergy.
	DefaultMaxEnergy int32
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Items == nil {
		vb.RequiredField("Items")
	}
	if c.LoadoutRepo == nil {
		vb.RequiredField("LoadoutRepo")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.DefaultMaxEnergy < 0 {
		vb.Field("DefaultMaxEnergy", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	engine      engine.Engine
	items       ItemSource
	loadoutRepo loadout.Repository
	publisher   EventPublisher
	idGen       idgen.Generator
	maxEnergy   int32

	mu         sync.RWMutex
	combatants map[string]*combatant
}

// combatant is one entity's runtime. Its mutex serializes everything that
// touches the loadout, pool or running state.
type combatant struct {
	mu        sync.Mutex
	entity    *rpgtoolkit.CombatantEntity
	loadout   *equipment.Loadout
	energy    *energy.Ledger
	active    states.State
	execution *rpgtoolkit.AbilityEntity
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxEnergy := cfg.DefaultMaxEnergy
	if maxEnergy == 0 {
		maxEnergy = DefaultMaxEnergy
	}

	return &orchestrator{
		engine:      cfg.Engine,
		items:       cfg.Items,
		loadoutRepo: cfg.LoadoutRepo,
		publisher:   cfg.Publisher,
		idGen:       cfg.IDGenerator,
		maxEnergy:   maxEnergy,
		combatants:  make(map[string]*combatant),
	}, nil
}

// RegisterCombatant adds an entity to the runtime
func (o *orchestrator) RegisterCombatant(ctx context.Context, input *RegisterCombatantInput) (*RegisterCombatantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("entity_id", input.EntityID, vb)
	if !input.Body.Kind.IsValid() {
		vb.Fieldf("body.kind", "unknown body kind %q", input.Body.Kind)
	}
	if input.MaxEnergy < 0 {
		vb.Field("max_energy", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	maxEnergy := input.MaxEnergy
	if maxEnergy == 0 {
		maxEnergy = o.maxEnergy
	}
	ledger, err := energy.NewLedger(maxEnergy)
	if err != nil {
		return nil, err
	}

	o.mu.RLock()
	_, exists := o.combatants[input.EntityID]
	o.mu.RUnlock()
	if exists {
		return nil, errors.AlreadyExistsf("combatant %s is already registered", input.EntityID)
	}

	l, restored, err := o.loadLoadout(ctx, input)
	if err != nil {
		return nil, err
	}

	c := &combatant{
		entity:  &rpgtoolkit.CombatantEntity{ID: input.EntityID, Body: input.Body},
		loadout: l,
		energy:  ledger,
	}

	o.mu.Lock()
	if _, exists := o.combatants[input.EntityID]; exists {
		o.mu.Unlock()
		return nil, errors.AlreadyExistsf("combatant %s is already registered", input.EntityID)
	}
	o.combatants[input.EntityID] = c
	o.mu.Unlock()

	slog.Info("Combatant registered",
		"entity_id", input.EntityID,
		"body", input.Body.Kind,
		"max_energy", maxEnergy,
		"restored", restored,
	)

	c.mu.Lock()
	defer c.mu.Unlock()
	return &RegisterCombatantOutput{
		Combatant: c.view(),
		Restored:  restored,
	}, nil
}

// loadLoadout restores the stored loadout or builds and stores a new one
func (o *orchestrator) loadLoadout(ctx context.Context, input *RegisterCombatantInput) (*equipment.Loadout, bool, error) {
	stored, err := o.loadoutRepo.Get(ctx, loadout.GetInput{EntityID: input.EntityID})
	if err == nil {
		return stored.Loadout, true, nil
	}
	if !errors.IsNotFound(err) {
		return nil, false, errors.Wrapf(err, "failed to load loadout for %s", input.EntityID)
	}

	builder := equipment.NewBuilder()
	if input.ActiveItemID != "" {
		it, err := o.items.Item(input.ActiveItemID)
		if err != nil {
			return nil, false, err
		}
		builder.ActiveItem(it)
	}
	if input.SecondItemID != "" {
		it, err := o.items.Item(input.SecondItemID)
		if err != nil {
			return nil, false, err
		}
		builder.SecondItem(it)
	}

	l, err := builder.Build()
	if err != nil {
		return nil, false, err
	}

	if _, err := o.loadoutRepo.Update(ctx, loadout.UpdateInput{EntityID: input.EntityID, Loadout: l}); err != nil {
		return nil, false, errors.Wrapf(err, "failed to store loadout for %s", input.EntityID)
	}
	return l, false, nil
}

// Equip changes one loadout slot
func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown slot %q", input.Slot)
	}

	c, err := o.get(input.EntityID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := *c.loadout
	var previous *item.Item
	if input.ItemID == "" {
		previous, err = next.Unequip(input.Slot)
	} else {
		var it item.Item
		it, err = o.items.Item(input.ItemID)
		if err != nil {
			return nil, err
		}
		previous, err = next.Equip(input.Slot, it)
	}
	if err != nil {
		return nil, err
	}

	if err := o.store(ctx, input.EntityID, &next); err != nil {
		return nil, err
	}
	c.loadout = &next

	slog.Info("Loadout slot changed",
		"entity_id", input.EntityID,
		"slot", input.Slot,
		"item_id", input.ItemID,
	)

	return &EquipOutput{
		Previous:  previous,
		Combatant: c.view(),
	}, nil
}

// SwapWeapons exchanges the active and second weapons
func (o *orchestrator) SwapWeapons(ctx context.Context, input *SwapWeaponsInput) (*SwapWeaponsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.get(input.EntityID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := *c.loadout
	next.SwapWeapons()
	if err := o.store(ctx, input.EntityID, &next); err != nil {
		return nil, err
	}
	c.loadout = &next

	return &SwapWeaponsOutput{Combatant: c.view()}, nil
}

// ActivateAbility runs the gate and starts the ability in a slot
func (o *orchestrator) ActivateAbility(ctx context.Context, input *ActivateAbilityInput) (*ActivateAbilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown ability slot %q", input.Slot)
	}

	c, err := o.get(input.EntityID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.loadout.Ability(input.Slot)
	if !ok {
		return nil, errors.FailedPreconditionf("no ability in slot %s", input.Slot).
			WithMeta("entity_id", input.EntityID)
	}

	started, err := o.engine.StartAbility(ctx, &engine.StartAbilityInput{
		Ability:  a,
		Physics:  input.Physics,
		Energy:   c.energy,
		Current:  c.active,
		Wielding: c.loadout.ActiveItem != nil,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to start ability in slot %s", input.Slot)
	}

	if !started.Admitted {
		slog.Debug("Ability rejected",
			"entity_id", input.EntityID,
			"slot", input.Slot,
			"kind", a.Kind(),
			"reason", started.Reason,
		)
		return &ActivateAbilityOutput{
			Reason: started.Reason,
			Energy: c.energy.Current(),
		}, nil
	}

	if c.active != nil {
		o.publishEnded(ctx, c, states.EndAborted)
	}

	c.active = started.State
	c.execution = &rpgtoolkit.AbilityEntity{
		ExecutionID: o.idGen.Generate(),
		Kind:        a.Kind(),
	}

	if err := o.publisher.AbilityStarted(ctx, c.entity, c.execution, c.energy.Current()); err != nil {
		slog.Warn("Failed to publish ability start",
			"entity_id", input.EntityID,
			"execution_id", c.execution.ExecutionID,
			"error", err,
		)
	}

	return &ActivateAbilityOutput{
		Started:     true,
		ExecutionID: c.execution.ExecutionID,
		Type:        started.Type,
		Energy:      c.energy.Current(),
	}, nil
}

// Tick advances the running ability by one frame
func (o *orchestrator) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.get(input.EntityID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return &TickOutput{Energy: c.energy.Current()}, nil
	}

	advanced, err := o.engine.AdvanceAbility(ctx, &engine.AdvanceAbilityInput{
		State: c.active,
		Tick: states.Input{
			Dt:       input.Dt,
			Physics:  input.Physics,
			Held:     input.Held,
			FollowUp: input.FollowUp,
			Energy:   c.energy,
		},
	})
	if err != nil {
		return nil, err
	}

	update := advanced.Update
	output := &TickOutput{
		ExecutionID: c.execution.ExecutionID,
		Effects:     update.Effects,
		End:         update.End,
	}

	if transition := advanced.Transition; transition != nil {
		if err := o.publisher.StageChanged(ctx, c.entity, c.execution, transition.From, transition.To); err != nil {
			slog.Warn("Failed to publish stage change",
				"entity_id", input.EntityID,
				"execution_id", c.execution.ExecutionID,
				"error", err,
			)
		}
	}

	if update.Ended() {
		output.Type, _ = engine.Classify(c.active)
		o.publishEnded(ctx, c, update.End)
		c.active = nil
		c.execution = nil
	} else {
		c.active = update.State
		output.Running = true
		output.Section = update.State.Section()
		output.Type, _ = engine.Classify(update.State)
	}

	output.Energy = c.energy.Current()
	return output, nil
}

// GetCombatant returns a snapshot of the combatant
func (o *orchestrator) GetCombatant(_ context.Context, input *GetCombatantInput) (*GetCombatantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.get(input.EntityID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return &GetCombatantOutput{Combatant: c.view()}, nil
}

// RemoveCombatant drops the runtime for an entity
func (o *orchestrator) RemoveCombatant(ctx context.Context, input *RemoveCombatantInput) (*RemoveCombatantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	c, ok := o.combatants[input.EntityID]
	delete(o.combatants, input.EntityID)
	o.mu.Unlock()

	if !ok {
		return nil, errors.NotFoundf("combatant %s not found", input.EntityID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil {
		o.publishEnded(ctx, c, states.EndAborted)
		c.active = nil
		c.execution = nil
	}

	slog.Info("Combatant removed", "entity_id", input.EntityID)
	return &RemoveCombatantOutput{}, nil
}

func (o *orchestrator) get(entityID string) (*combatant, error) {
	if entityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	c, ok := o.combatants[entityID]
	if !ok {
		return nil, errors.NotFoundf("combatant %s not found", entityID)
	}
	return c, nil
}

func (o *orchestrator) store(ctx context.Context, entityID string, l *equipment.Loadout) error {
	_, err := o.loadoutRepo.Update(ctx, loadout.UpdateInput{EntityID: entityID, Loadout: l})
	if err != nil {
		return errors.Wrapf(err, "failed to store loadout for %s", entityID)
	}
	return nil
}

// publishEnded must be called with c.mu held
func (o *orchestrator) publishEnded(ctx context.Context, c *combatant, reason states.EndReason) {
	if err := o.publisher.AbilityEnded(ctx, c.entity, c.execution, reason); err != nil {
		slog.Warn("Failed to publish ability end",
			"entity_id", c.entity.ID,
			"execution_id", c.execution.ExecutionID,
			"error", err,
		)
	}
}

// view must be called with c.mu held
func (c *combatant) view() *Combatant {
	l := *c.loadout
	view := &Combatant{
		EntityID:        c.entity.ID,
		Body:            c.entity.Body,
		Loadout:         &l,
		DamageReduction: l.DamageReduction(),
		Energy:          c.energy.Current(),
		MaxEnergy:       c.energy.Maximum(),
	}

	if c.active != nil {
		abilityType, _ := engine.Classify(c.active)
		view.Active = &ActiveAbility{
			ExecutionID:   c.execution.ExecutionID,
			Type:          abilityType,
			Section:       c.active.Section(),
			Interruptible: c.active.Interruptible(),
		}
	}
	return view
}
