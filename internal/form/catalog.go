package form

import "fmt"

// Step is one page of the questionnaire. Content is an opaque panel handle
// supplied by the rendering layer; the catalog never inspects it.
type Step struct {
	Index       int
	Title       string
	Description string
	Fields      []Field
	Content     any
}

// Keys returns the field keys in scope of the step, conditional ones included.
func (s Step) Keys() []string {
	keys := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Catalog is the ordered, immutable list of steps. Order is both display
// order and validation-dependency order.
type Catalog struct {
	steps  []Step
	fields map[string]Field
}

// NewCatalog copies steps into a catalog, assigning indices by position.
// Field keys must be unique across the whole catalog and every condition
// must reference a known choice field.
func NewCatalog(steps []Step) (*Catalog, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("catalog needs at least one step")
	}

	c := &Catalog{
		steps:  make([]Step, len(steps)),
		fields: make(map[string]Field),
	}
	for i, s := range steps {
		s.Index = i
		s.Fields = append([]Field(nil), s.Fields...)
		for _, f := range s.Fields {
			if f.Key == "" {
				return nil, fmt.Errorf("step %q has a field without a key", s.Title)
			}
			if _, dup := c.fields[f.Key]; dup {
				return nil, fmt.Errorf("duplicate field key %q", f.Key)
			}
			c.fields[f.Key] = f
		}
		c.steps[i] = s
	}

	for _, f := range c.fields {
		if f.ShowWhen == nil {
			continue
		}
		trigger, ok := c.fields[f.ShowWhen.Key]
		if !ok {
			return nil, fmt.Errorf("field %q depends on unknown field %q", f.Key, f.ShowWhen.Key)
		}
		if !trigger.Kind.IsChoice() {
			return nil, fmt.Errorf("field %q depends on %q which is not a choice field", f.Key, trigger.Key)
		}
	}

	return c, nil
}

// MustCatalog is NewCatalog for static definitions; it panics on error.
func MustCatalog(steps []Step) *Catalog {
	c, err := NewCatalog(steps)
	if err != nil {
		panic(err)
	}
	return c
}

// WithContent returns a copy of the catalog whose steps carry the content
// produced by fn. The receiver is left untouched.
func (c *Catalog) WithContent(fn func(Step) any) *Catalog {
	out := &Catalog{
		steps:  make([]Step, len(c.steps)),
		fields: c.fields,
	}
	for i, s := range c.steps {
		s.Content = fn(s)
		out.steps[i] = s
	}
	return out
}

// Len returns the number of steps.
func (c *Catalog) Len() int { return len(c.steps) }

// Last returns the index of the last step.
func (c *Catalog) Last() int { return len(c.steps) - 1 }

// Step returns the step at index i. It panics when i is out of range.
func (c *Catalog) Step(i int) Step { return c.steps[i] }

// Steps returns a copy of all steps.
func (c *Catalog) Steps() []Step {
	return append([]Step(nil), c.steps...)
}

// Titles returns the step titles in order.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.steps))
	for i, s := range c.steps {
		titles[i] = s.Title
	}
	return titles
}

// Field looks up a field definition by key.
func (c *Catalog) Field(key string) (Field, bool) {
	f, ok := c.fields[key]
	return f, ok
}

// Fields returns every field in catalog order.
func (c *Catalog) Fields() []Field {
	var out []Field
	for _, s := range c.steps {
		out = append(out, s.Fields...)
	}
	return out
}

// KeysThrough returns the accumulated keys of steps [0, i].
func (c *Catalog) KeysThrough(i int) []string {
	if i >= len(c.steps) {
		i = len(c.steps) - 1
	}
	var keys []string
	for idx := 0; idx <= i; idx++ {
		keys = append(keys, c.steps[idx].Keys()...)
	}
	return keys
}

// AllKeys returns every key in the catalog.
func (c *Catalog) AllKeys() []string {
	return c.KeysThrough(len(c.steps) - 1)
}
