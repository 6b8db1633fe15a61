package report

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/invopop/jsonschema"

	"github.com/nathoo/liferpg/types"
)

// schemaTargets maps each result name to a zero value of its type.
var schemaTargets = map[string]any{
	"complete": types.CompleteResult{},
	"miss":     types.MissResult{},
	"day":      types.DayResult{},
	"status":   types.Snapshot{},
	"player":   types.PlayerSnapshot{},
	"quests":   types.QuestList{},
	"help":     types.HelpResult{},
	"error":    types.ErrorResult{},
}

// SchemaNames returns the result names Schema accepts, sorted.
func SchemaNames() []string {
	names := make([]string, 0, len(schemaTargets))
	for name := range schemaTargets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schema reflects the JSON Schema of a named result shape.
func Schema(name string) (*jsonschema.Schema, error) {
	target, ok := schemaTargets[name]
	if !ok {
		return nil, fmt.Errorf("unknown result %q", name)
	}
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(target)
	schema.Title = "Life RPG " + name + " result"
	schema.Description = fmt.Sprintf("JSON output of the %s command", name)
	return schema, nil
}

// SchemaJSON returns the indented JSON Schema document for a result.
func SchemaJSON(name string) ([]byte, error) {
	schema, err := Schema(name)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
