// Package v1alpha1 handles the AbilityService gRPC interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/orchestrators/combat"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CombatService combat.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.CombatService == nil {
		return errors.InvalidArgument("combat service is required")
	}
	return nil
}

// Handler implements AbilityServiceServer
type Handler struct {
	combatService combat.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		combatService: cfg.CombatService,
	}, nil
}

// RegisterCombatant adds a combatant to the runtime
func (h *Handler) RegisterCombatant(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in RegisterCombatantRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.combatService.RegisterCombatant(ctx, &combat.RegisterCombatantInput{
		EntityID:     in.EntityID,
		Body:         in.Body,
		MaxEnergy:    in.MaxEnergy,
		ActiveItemID: in.ActiveItemID,
		SecondItemID: in.SecondItemID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&RegisterCombatantResponse{
		Combatant: toCombatantResponse(output.Combatant),
		Restored:  output.Restored,
	})
}

// Equip changes one loadout slot
func (h *Handler) Equip(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in EquipRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	slot, ok := equipment.SlotFromString(in.Slot)
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("unknown slot %q", in.Slot))
	}

	output, err := h.combatService.Equip(ctx, &combat.EquipInput{
		EntityID: in.EntityID,
		Slot:     slot,
		ItemID:   in.ItemID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&EquipResponse{
		Previous:  output.Previous,
		Combatant: toCombatantResponse(output.Combatant),
	})
}

// SwapWeapons exchanges the active and second weapons
func (h *Handler) SwapWeapons(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in EntityRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.combatService.SwapWeapons(ctx, &combat.SwapWeaponsInput{EntityID: in.EntityID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&CombatantEnvelope{Combatant: toCombatantResponse(output.Combatant)})
}

// ActivateAbility starts the ability in a slot. A rejection is a normal
// response with started false.
func (h *Handler) ActivateAbility(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ActivateAbilityRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.combatService.ActivateAbility(ctx, &combat.ActivateAbilityInput{
		EntityID: in.EntityID,
		Slot:     equipment.AbilitySlot(in.Slot),
		Physics:  in.Physics,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &ActivateAbilityResponse{
		Started:     output.Started,
		Reason:      string(output.Reason),
		ExecutionID: output.ExecutionID,
		Energy:      output.Energy,
	}
	if output.Started {
		resp.Type = output.Type.String()
	}
	return respond(resp)
}

// Tick advances the combatant's running ability
func (h *Handler) Tick(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in TickRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.combatService.Tick(ctx, &combat.TickInput{
		EntityID: in.EntityID,
		Dt:       dtFromMillis(in.DtMs),
		Held:     in.Held,
		FollowUp: in.FollowUp,
		Physics:  in.Physics,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &TickResponse{
		Running:     output.Running,
		ExecutionID: output.ExecutionID,
		Section:     output.Section,
		Effects:     output.Effects,
		End:         string(output.End),
		Energy:      output.Energy,
	}
	if output.ExecutionID != "" {
		resp.Type = output.Type.String()
	}
	return respond(resp)
}

// GetCombatant returns the combatant view
func (h *Handler) GetCombatant(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in EntityRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.combatService.GetCombatant(ctx, &combat.GetCombatantInput{EntityID: in.EntityID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&CombatantEnvelope{Combatant: toCombatantResponse(output.Combatant)})
}

// RemoveCombatant drops a combatant from the runtime
func (h *Handler) RemoveCombatant(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in EntityRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.combatService.RemoveCombatant(ctx, &combat.RemoveCombatantInput{EntityID: in.EntityID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(struct{}{})
}

func respond(v interface{}) (*structpb.Struct, error) {
	out, err := Encode(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
