// Package catalog loads ability and item content from YAML or JSON files.
package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/item"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
)

// Format is a content file encoding
type Format string

// Supported formats
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.InvalidArgumentf("unsupported catalog file extension %q", filepath.Ext(path))
	}
}

// Document is the on-disk content layout. Tools name their abilities by ID.
type Document struct {
	Abilities map[string]ability.Entry `json:"abilities" yaml:"abilities"`
	Items     map[string]ItemDocument  `json:"items" yaml:"items"`
	Tuning    *states.Tuning           `json:"tuning,omitempty" yaml:"tuning,omitempty"`
}

// ItemDocument is an item as authored
type ItemDocument struct {
	Name        string        `json:"name" yaml:"name" jsonschema:"title=Name,minLength=1,required"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty" jsonschema:"description=Tooltip text"`
	Kind        item.Kind     `json:"kind" yaml:"kind" jsonschema:"title=Item kind,enum=tool,enum=armor,enum=lantern,enum=glider,enum=consumable,required"`
	Tool        *ToolDocument `json:"tool,omitempty" yaml:"tool,omitempty" jsonschema:"description=Required when kind is tool"`
	Armor       *item.Armor   `json:"armor,omitempty" yaml:"armor,omitempty" jsonschema:"description=Required when kind is armor"`
}

// ToolDocument is a tool as authored, abilities given by catalog ID in slot
// order
type ToolDocument struct {
	Kind      item.ToolKind `json:"kind" yaml:"kind" jsonschema:"title=Tool kind,required"`
	Abilities []string      `json:"abilities" yaml:"abilities" jsonschema:"description=Ability IDs filling slots 1 to 5 in order"`
}

// Catalog is loaded, validated content with every reference resolved
type Catalog struct {
	abilities map[string]ability.Ability
	items     map[string]item.Item
	tuning    states.Tuning
}

// Load reads and parses a catalog file
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, "failed to read catalog file").
			WithMeta("path", path)
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog %s", path)
	}
	return c, nil
}

// Parse decodes and validates catalog content
func Parse(data []byte, format Format) (*Catalog, error) {
	var doc Document
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, errors.InvalidArgumentf("unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}

	return Build(&doc)
}

// Build validates a document and resolves tool ability references
func Build(doc *Document) (*Catalog, error) {
	if doc == nil {
		return nil, errors.InvalidArgument("document is required")
	}

	vb := errors.NewValidationBuilder()
	for _, id := range sortedKeys(doc.Abilities) {
		validateAbility("abilities."+id, doc.Abilities[id].Ability, vb)
	}
	for _, id := range sortedKeys(doc.Items) {
		validateItem("items."+id, doc.Items[id], doc.Abilities, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}
	if err := doc.Tuning.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog tuning")
	}

	c := &Catalog{
		abilities: make(map[string]ability.Ability, len(doc.Abilities)),
		items:     make(map[string]item.Item, len(doc.Items)),
		tuning:    doc.Tuning.WithDefaults(),
	}
	for id, entry := range doc.Abilities {
		c.abilities[id] = entry.Ability
	}
	for id, def := range doc.Items {
		c.items[id] = c.resolveItem(id, def)
	}

	return c, nil
}

func (c *Catalog) resolveItem(id string, def ItemDocument) item.Item {
	it := item.Item{
		ID:          id,
		Name:        def.Name,
		Description: def.Description,
		Kind:        def.Kind,
		Armor:       def.Armor,
	}
	if def.Tool != nil {
		tool := &item.Tool{Kind: def.Tool.Kind}
		for _, abilityID := range def.Tool.Abilities {
			tool.Abilities = append(tool.Abilities, ability.Entry{Ability: c.abilities[abilityID]})
		}
		it.Tool = tool
	}
	return it
}

// Ability returns the ability with the given ID
func (c *Catalog) Ability(id string) (ability.Ability, error) {
	a, ok := c.abilities[id]
	if !ok {
		return nil, errors.NotFoundf("ability %q not found", id)
	}
	return a, nil
}

// Item returns the item with the given ID
func (c *Catalog) Item(id string) (item.Item, error) {
	it, ok := c.items[id]
	if !ok {
		return item.Item{}, errors.NotFoundf("item %q not found", id)
	}
	return it, nil
}

// Tuning returns the shared movement and effect values, defaults filled in
func (c *Catalog) Tuning() *states.Tuning {
	tuning := c.tuning
	return &tuning
}

// AbilityIDs returns every ability ID in order
func (c *Catalog) AbilityIDs() []string {
	return sortedKeys(c.abilities)
}

// ItemIDs returns every item ID in order
func (c *Catalog) ItemIDs() []string {
	return sortedKeys(c.items)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
