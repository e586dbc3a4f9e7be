package catalog

import (
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
)

// Schema names that are not ability kinds
const (
	SchemaItem   = "item"
	SchemaTuning = "tuning"
)

// SchemaNames lists every schema Schema can build: the item and tuning
// schemas followed by one per ability kind
func SchemaNames() []string {
	names := []string{SchemaItem, SchemaTuning}
	for _, kind := range ability.AllKinds() {
		names = append(names, kind.String())
	}
	return names
}

// Schema builds the JSON schema for an item or for one ability kind
func Schema(name string) (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}

	if name == SchemaItem {
		schema := reflector.Reflect(new(ItemDocument))
		schema.Title = "Catalog item"
		schema.Description = "An entry under items in a catalog file. Tools list ability IDs."
		return schema, nil
	}

	if name == SchemaTuning {
		schema := reflector.Reflect(new(states.Tuning))
		schema.Title = "Catalog tuning"
		schema.Description = "Shared movement and effect values. Omitted fields use the defaults."
		return schema, nil
	}

	a, err := ability.Zero(ability.Kind(name))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, fmt.Sprintf("no schema named %q", name))
	}

	schema := reflector.Reflect(a)
	schema.Title = fmt.Sprintf("Ability %s", name)
	schema.Description = fmt.Sprintf("An entry under abilities with kind: %s. Durations are integer milliseconds.", name)
	return schema, nil
}
