package ability

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Entry wraps an Ability for serialization. The encoded form is the variant's
// fields plus a "kind" discriminator:
//
//	{"kind": "basic_melee", "energy_cost": 10, "buildup_duration": 200, ...}
type Entry struct {
	Ability Ability
}

// NewEntry wraps a into an Entry
func NewEntry(a Ability) *Entry {
	return &Entry{Ability: a}
}

type kindHeader struct {
	Kind Kind `json:"kind" yaml:"kind"`
}

type decodeFunc func(target interface{}) error

var decoders = map[Kind]func(decodeFunc) (Ability, error){
	KindBasicMelee:      decodeAs[BasicMelee],
	KindBasicRanged:     decodeAs[BasicRanged],
	KindBoost:           decodeAs[Boost],
	KindDashMelee:       decodeAs[DashMelee],
	KindBasicBlock:      decodeAs[BasicBlock],
	KindRoll:            decodeAs[Roll],
	KindComboMelee:      decodeAs[ComboMelee],
	KindLeapMelee:       decodeAs[LeapMelee],
	KindSpinMelee:       decodeAs[SpinMelee],
	KindChargedRanged:   decodeAs[ChargedRanged],
	KindGroundShockwave: decodeAs[GroundShockwave],
}

func decodeAs[T Ability](decode decodeFunc) (Ability, error) {
	var v T
	if err := decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func decoderFor(kind Kind) (func(decodeFunc) (Ability, error), error) {
	if kind == "" {
		return nil, fmt.Errorf("ability entry is missing kind")
	}
	decoder, ok := decoders[kind]
	if !ok {
		return nil, fmt.Errorf("unknown ability kind %q", kind)
	}
	return decoder, nil
}

// Zero returns the zero value of the variant named by kind
func Zero(kind Kind) (Ability, error) {
	decoder, err := decoderFor(kind)
	if err != nil {
		return nil, err
	}
	return decoder(func(interface{}) error { return nil })
}

// MarshalJSON encodes the variant fields with the kind discriminator
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Ability == nil {
		return []byte("null"), nil
	}

	raw, err := json.Marshal(e.Ability)
	if err != nil {
		return nil, err
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	kind, err := json.Marshal(e.Ability.Kind())
	if err != nil {
		return nil, err
	}
	fields["kind"] = kind

	return json.Marshal(fields)
}

// UnmarshalJSON decodes an entry, selecting the variant by kind
func (e *Entry) UnmarshalJSON(data []byte) error {
	var header kindHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return err
	}

	decoder, err := decoderFor(header.Kind)
	if err != nil {
		return err
	}

	a, err := decoder(func(target interface{}) error {
		return json.Unmarshal(data, target)
	})
	if err != nil {
		return fmt.Errorf("decode %s: %w", header.Kind, err)
	}

	e.Ability = a
	return nil
}

// MarshalYAML encodes the variant fields with the kind discriminator first
func (e Entry) MarshalYAML() (interface{}, error) {
	if e.Ability == nil {
		return nil, nil
	}

	var node yaml.Node
	if err := node.Encode(e.Ability); err != nil {
		return nil, err
	}

	kindKey := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "kind"}
	kindValue := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(e.Ability.Kind())}
	node.Content = append([]*yaml.Node{kindKey, kindValue}, node.Content...)

	return &node, nil
}

// UnmarshalYAML decodes an entry, selecting the variant by kind
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	var header kindHeader
	if err := value.Decode(&header); err != nil {
		return err
	}

	decoder, err := decoderFor(header.Kind)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}

	a, err := decoder(value.Decode)
	if err != nil {
		return fmt.Errorf("line %d: decode %s: %w", value.Line, header.Kind, err)
	}

	e.Ability = a
	return nil
}
