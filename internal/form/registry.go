package form

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/voiceintake/internal/logger"
	"github.com/xeipuuv/gojsonschema"
)

// Record maps field keys to answers: string for single-value fields,
// []string for checkbox fields. Unset answers are absent.
type Record map[string]any

// Registry holds the current answers and the per-field error state.
// It is owned by a single session and is not safe for concurrent use.
type Registry struct {
	catalog *Catalog
	schema  *gojsonschema.Schema
	values  Record
	errors  map[string]string
}

// NewRegistry compiles the catalog's rules and returns an empty registry.
func NewRegistry(c *Catalog) (*Registry, error) {
	schema, err := compileSchema(c)
	if err != nil {
		return nil, err
	}
	return &Registry{
		catalog: c,
		schema:  schema,
		values:  make(Record),
		errors:  make(map[string]string),
	}, nil
}

// Catalog returns the catalog the registry validates against.
func (r *Registry) Catalog() *Catalog {
	return r.catalog
}

// Set stores an answer. Empty strings and empty selections clear the key so
// "required" rules see the field as missing. Setting a value clears the
// field's error; rules are re-evaluated only by Validate.
func (r *Registry) Set(key string, value any) {
	delete(r.errors, key)

	switch v := value.(type) {
	case nil:
		delete(r.values, key)
	case string:
		if v == "" {
			delete(r.values, key)
			return
		}
		r.values[key] = v
	case []string:
		if len(v) == 0 {
			delete(r.values, key)
			return
		}
		r.values[key] = append([]string(nil), v...)
	default:
		r.values[key] = v
	}
}

// Load replaces all answers with the given record, normalizing JSON/YAML
// decoded lists into []string.
func (r *Registry) Load(rec Record) {
	r.values = make(Record, len(rec))
	r.errors = make(map[string]string)
	for k, v := range rec {
		r.Set(k, normalize(v))
	}
}

// Reset clears every answer and error.
func (r *Registry) Reset() {
	r.values = make(Record)
	r.errors = make(map[string]string)
}

// String returns a single-value answer, or "" when unset.
func (r *Registry) String(key string) string {
	s, _ := r.values[key].(string)
	return s
}

// Strings returns a checkbox answer, or nil when unset.
func (r *Registry) Strings(key string) []string {
	s, _ := r.values[key].([]string)
	return append([]string(nil), s...)
}

// Values returns a copy of the full record.
func (r *Registry) Values() Record {
	out := make(Record, len(r.values))
	for k, v := range r.values {
		if s, ok := v.([]string); ok {
			v = append([]string(nil), s...)
		}
		out[k] = v
	}
	return out
}

// Visible reports whether a field should currently be shown. Fields
// without a condition are always visible.
func (r *Registry) Visible(f Field) bool {
	if f.ShowWhen == nil {
		return true
	}
	trigger, ok := r.catalog.Field(f.ShowWhen.Key)
	if !ok {
		return false
	}
	if trigger.Kind == KindCheckbox {
		for _, v := range r.Strings(trigger.Key) {
			if v == f.ShowWhen.Value {
				return true
			}
		}
		return false
	}
	return r.String(trigger.Key) == f.ShowWhen.Value
}

// ErrorFor returns the current error message for a field, or "".
func (r *Registry) ErrorFor(key string) string {
	return r.errors[key]
}

// Errors returns a copy of the per-field error map.
func (r *Registry) Errors() map[string]string {
	out := make(map[string]string, len(r.errors))
	for k, v := range r.errors {
		out[k] = v
	}
	return out
}

// Validate evaluates the rules and updates the error state of the given
// keys. It returns true when none of them has an error. Errors on keys
// outside the set are left untouched.
func (r *Registry) Validate(keys []string) bool {
	scope := make(map[string]bool, len(keys))
	for _, k := range keys {
		scope[k] = true
		delete(r.errors, k)
	}

	found := r.evaluate()
	ok := true
	for key, msg := range found {
		if !scope[key] {
			continue
		}
		r.errors[key] = msg
		ok = false
	}

	if !ok {
		logger.Debug("Validation failed for %d of %d fields: %s", countIn(found, scope), len(keys), strings.Join(sortedKeys(found, scope), ", "))
	}
	return ok
}

// IsValid reports whether the whole record passes every rule, without
// touching the error state.
func (r *Registry) IsValid() bool {
	result, err := r.schema.Validate(gojsonschema.NewGoLoader(map[string]any(r.values)))
	if err != nil {
		logger.Error("Schema validation failed to run: %v", err)
		return false
	}
	return result.Valid()
}

// evaluate runs the schema and maps each error onto a field key.
func (r *Registry) evaluate() map[string]string {
	out := make(map[string]string)
	result, err := r.schema.Validate(gojsonschema.NewGoLoader(map[string]any(r.values)))
	if err != nil {
		logger.Error("Schema validation failed to run: %v", err)
		for _, f := range r.catalog.Fields() {
			out[f.Key] = "could not validate this field"
		}
		return out
	}
	for _, e := range result.Errors() {
		key := errorKey(e)
		f, known := r.catalog.Field(key)
		if !known {
			continue
		}
		if _, seen := out[key]; seen {
			continue
		}
		out[key] = message(f, e)
	}
	return out
}

// errorKey resolves the field a schema error belongs to. Required errors
// are reported against the parent object, so the key comes from details.
func errorKey(e gojsonschema.ResultError) string {
	if e.Type() == "required" {
		if p, ok := e.Details()["property"].(string); ok {
			return p
		}
	}
	field := e.Field()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[:i]
	}
	return field
}

func message(f Field, e gojsonschema.ResultError) string {
	label := f.Label
	switch e.Type() {
	case "required", "array_min_items":
		if f.Kind == KindCheckbox {
			return "Select at least one option"
		}
		if f.Kind.IsChoice() {
			return "Please choose an option"
		}
		if f.Conditional() {
			return fmt.Sprintf("Please provide details for %q", f.ShowWhen.Value)
		}
		return fmt.Sprintf("%s is required", label)
	case "format":
		switch f.Kind {
		case KindEmail:
			return "Enter a valid email address"
		case KindDate:
			return "Enter a date as YYYY-MM-DD"
		}
	case "pattern":
		switch f.Kind {
		case KindPhone:
			return "Enter a valid phone number"
		case KindURL:
			return "Enter a valid web address"
		default:
			return fmt.Sprintf("%s is required", label)
		}
	case "enum":
		return "Choose one of the listed options"
	case "unique":
		return "Each option can only be selected once"
	}
	return e.Description()
}

// normalize converts decoded []any lists into []string.
func normalize(v any) any {
	list, ok := v.([]any)
	if !ok {
		return v
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, fmt.Sprint(item))
	}
	return out
}

func countIn(found map[string]string, scope map[string]bool) int {
	n := 0
	for k := range found {
		if scope[k] {
			n++
		}
	}
	return n
}

func sortedKeys(found map[string]string, scope map[string]bool) []string {
	var keys []string
	for k := range found {
		if scope[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
