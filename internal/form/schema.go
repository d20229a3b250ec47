package form

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const (
	phonePattern   = `^[0-9+()./\s-]{7,}$`
	websitePattern = `^(https?://)?[^\s/$.?#][^\s]*\.[^\s]+$`
	nonBlank       = `\S`
)

// BuildSchema translates the catalog's field rules into a draft-07 JSON
// Schema document. Conditional fields become if/then clauses so they are
// only required while their trigger answer is selected.
func BuildSchema(c *Catalog) map[string]any {
	properties := make(map[string]any)
	var required []string
	var conditions []any

	for _, f := range c.Fields() {
		properties[f.Key] = propertySchema(f)

		if !f.Required {
			continue
		}
		if f.ShowWhen == nil {
			required = append(required, f.Key)
			continue
		}

		trigger, _ := c.Field(f.ShowWhen.Key)
		var match map[string]any
		if trigger.Kind == KindCheckbox {
			match = map[string]any{"contains": map[string]any{"const": f.ShowWhen.Value}}
		} else {
			match = map[string]any{"const": f.ShowWhen.Value}
		}
		conditions = append(conditions, map[string]any{
			"if": map[string]any{
				"properties": map[string]any{trigger.Key: match},
				"required":   []string{trigger.Key},
			},
			"then": map[string]any{
				"required": []string{f.Key},
			},
		})
	}

	doc := map[string]any{
		"$schema":    "http://json-schema.org/draft-07/schema#",
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	if len(conditions) > 0 {
		doc["allOf"] = conditions
	}
	return doc
}

func propertySchema(f Field) map[string]any {
	switch f.Kind {
	case KindEmail:
		return map[string]any{"type": "string", "format": "email"}
	case KindURL:
		return map[string]any{"type": "string", "pattern": websitePattern}
	case KindPhone:
		return map[string]any{"type": "string", "pattern": phonePattern}
	case KindDate:
		return map[string]any{"type": "string", "format": "date"}
	case KindRadio:
		return map[string]any{"type": "string", "enum": f.OptionValues()}
	case KindCheckbox:
		s := map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string", "enum": f.OptionValues()},
			"uniqueItems": true,
		}
		if f.Required {
			s["minItems"] = 1
		}
		return s
	default:
		s := map[string]any{"type": "string"}
		if f.Required {
			s["pattern"] = nonBlank
		}
		return s
	}
}

// compileSchema compiles the catalog's rules once per registry.
func compileSchema(c *Catalog) (*gojsonschema.Schema, error) {
	raw, err := json.Marshal(BuildSchema(c))
	if err != nil {
		return nil, fmt.Errorf("marshaling field schema: %w", err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compiling field schema: %w", err)
	}
	return schema, nil
}
