package v1alpha1

import (
	"encoding/json"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/item"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
)

// RegisterCombatantRequest is the RegisterCombatant payload
type RegisterCombatantRequest struct {
	EntityID     string       `json:"entity_id"`
	Body         physics.Body `json:"body"`
	MaxEnergy    int32        `json:"max_energy,omitempty"`
	ActiveItemID string       `json:"active_item_id,omitempty"`
	SecondItemID string       `json:"second_item_id,omitempty"`
}

// EquipRequest is the Equip payload. An empty item_id unequips.
type EquipRequest struct {
	EntityID string `json:"entity_id"`
	Slot     string `json:"slot"`
	ItemID   string `json:"item_id,omitempty"`
}

// EntityRequest is the payload of SwapWeapons, GetCombatant and
// RemoveCombatant
type EntityRequest struct {
	EntityID string `json:"entity_id"`
}

// ActivateAbilityRequest is the ActivateAbility payload
type ActivateAbilityRequest struct {
	EntityID string           `json:"entity_id"`
	Slot     string           `json:"slot"`
	Physics  physics.Snapshot `json:"physics"`
}

// TickRequest is the Tick payload
type TickRequest struct {
	EntityID string           `json:"entity_id"`
	DtMs     float64          `json:"dt_ms"`
	Held     bool             `json:"held,omitempty"`
	FollowUp bool             `json:"follow_up,omitempty"`
	Physics  physics.Snapshot `json:"physics"`
}

// CombatantResponse is the combatant view returned by most methods
type CombatantResponse struct {
	EntityID        string             `json:"entity_id"`
	Body            physics.Body       `json:"body"`
	Energy          int32              `json:"energy"`
	MaxEnergy       int32              `json:"max_energy"`
	DamageReduction float32            `json:"damage_reduction"`
	Loadout         *equipment.Loadout `json:"loadout"`
	Active          *ActiveResponse    `json:"active,omitempty"`
}

// ActiveResponse describes the running ability
type ActiveResponse struct {
	ExecutionID   string              `json:"execution_id"`
	Type          string              `json:"type"`
	Section       states.StageSection `json:"section"`
	Interruptible bool                `json:"interruptible"`
}

// RegisterCombatantResponse is the RegisterCombatant result
type RegisterCombatantResponse struct {
	Combatant *CombatantResponse `json:"combatant"`
	Restored  bool               `json:"restored"`
}

// EquipResponse is the Equip result
type EquipResponse struct {
	Previous  *item.Item         `json:"previous,omitempty"`
	Combatant *CombatantResponse `json:"combatant"`
}

// CombatantEnvelope wraps a combatant for SwapWeapons and GetCombatant
type CombatantEnvelope struct {
	Combatant *CombatantResponse `json:"combatant"`
}

// ActivateAbilityResponse is the ActivateAbility result
type ActivateAbilityResponse struct {
	Started     bool   `json:"started"`
	Reason      string `json:"reason,omitempty"`
	ExecutionID string `json:"execution_id,omitempty"`
	Type        string `json:"type,omitempty"`
	Energy      int32  `json:"energy"`
}

// TickResponse is the Tick result
type TickResponse struct {
	Running     bool                `json:"running"`
	ExecutionID string              `json:"execution_id,omitempty"`
	Type        string              `json:"type,omitempty"`
	Section     states.StageSection `json:"section"`
	Effects     states.Effects      `json:"effects"`
	End         string              `json:"end,omitempty"`
	Energy      int32               `json:"energy"`
}

// Decode reads a Struct payload into v
func Decode(in *structpb.Struct, v interface{}) error {
	if in == nil {
		return errors.InvalidArgument("request payload is required")
	}

	data, err := protojson.Marshal(in)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request payload")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request payload")
	}
	return nil
}

// Encode writes v as a Struct payload
func Encode(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response payload")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode response payload")
	}
	return out, nil
}

func dtFromMillis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

func toCombatantResponse(c *combat.Combatant) *CombatantResponse {
	if c == nil {
		return nil
	}

	resp := &CombatantResponse{
		EntityID:        c.EntityID,
		Body:            c.Body,
		Energy:          c.Energy,
		MaxEnergy:       c.MaxEnergy,
		DamageReduction: c.DamageReduction,
		Loadout:         c.Loadout,
	}
	if c.Active != nil {
		resp.Active = &ActiveResponse{
			ExecutionID:   c.Active.ExecutionID,
			Type:          c.Active.Type.String(),
			Section:       c.Active.Section,
			Interruptible: c.Active.Interruptible,
		}
	}
	return resp
}
