// Package form holds the questionnaire definition (the step catalog) and the
// field registry that owns answer values and per-field validation state.
package form

// Kind identifies how a field is entered and which rules apply to it.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindURL
	KindPhone
	KindDate
	KindTextArea
	KindRadio
	KindCheckbox
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindEmail:
		return "email"
	case KindURL:
		return "url"
	case KindPhone:
		return "phone"
	case KindDate:
		return "date"
	case KindTextArea:
		return "textarea"
	case KindRadio:
		return "radio"
	case KindCheckbox:
		return "checkbox"
	default:
		return "unknown"
	}
}

// IsChoice reports whether the field picks from a fixed option list.
func (k Kind) IsChoice() bool {
	return k == KindRadio || k == KindCheckbox
}

// OtherOption is the option value that reveals a free-text follow-up field.
const OtherOption = "Other"

// Option is a single selectable answer. Value is what gets submitted.
type Option struct {
	Value string
	Label string
}

// Condition makes a field visible (and, if Required, mandatory) only while
// another field holds a given answer: equality for radio triggers,
// membership for checkbox triggers.
type Condition struct {
	Key   string
	Value string
}

// Field describes one questionnaire input.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Kind        Kind
	Options     []Option
	Required    bool
	ShowWhen    *Condition
}

// Conditional reports whether the field depends on another answer.
func (f Field) Conditional() bool {
	return f.ShowWhen != nil
}

// OptionValues returns the submitted values of the field's options.
func (f Field) OptionValues() []string {
	values := make([]string, len(f.Options))
	for i, o := range f.Options {
		values[i] = o.Value
	}
	return values
}

// opts builds options whose label equals their value.
func opts(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: v}
	}
	return out
}

// otherFor builds the required free-text follow-up revealed by picking "Other".
func otherFor(trigger, key, label string) Field {
	return Field{
		Key:         key,
		Label:       label,
		Kind:        KindText,
		Required:    true,
		Placeholder: "Please specify",
		ShowWhen:    &Condition{Key: trigger, Value: OtherOption},
	}
}
