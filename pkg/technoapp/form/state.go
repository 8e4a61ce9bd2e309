package form

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind selects the validator a field runs.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindPassword
	KindConfirmation
	KindDate
	KindChoice
)

// Field describes one input on a screen.
type Field struct {
	Name     string   // Key used by Set and Value
	Label    string   // Display label
	Kind     Kind     // Validator to run
	Required bool     // Blank blocks submission
	Options  []string // Allowed values for KindChoice
	Matches  string   // Name of the password field a KindConfirmation mirrors
}

// Masked reports whether the field echoes as bullets.
func (f Field) Masked() bool {
	return f.Kind == KindPassword || f.Kind == KindConfirmation
}

// State holds the current values of one screen's fields. It is created
// when the screen is entered and dropped when it is left.
type State struct {
	ID     uuid.UUID
	fields []Field
	values map[string]string
}

// NewState creates an empty form for fields.
func NewState(fields ...Field) *State {
	return &State{
		ID:     uuid.New(),
		fields: fields,
		values: make(map[string]string, len(fields)),
	}
}

// Fields returns the form's fields in display order.
func (s *State) Fields() []Field {
	return s.fields
}

// Field looks up a field by name.
func (s *State) Field(name string) (Field, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Set stores value for the named field.
func (s *State) Set(name, value string) error {
	if _, ok := s.Field(name); !ok {
		return fmt.Errorf("form: unknown field %q", name)
	}
	s.values[name] = value
	return nil
}

// Value returns the raw value of the named field.
func (s *State) Value(name string) string {
	return s.values[name]
}

// Display returns the value as it should be echoed on screen.
func (s *State) Display(name string) string {
	f, ok := s.Field(name)
	if !ok {
		return ""
	}
	if f.Masked() {
		return Mask(s.values[name])
	}
	return s.values[name]
}

// Inline runs only the field's own validator. Blank values pass, so this
// is what renderers show under the field while the user types.
func (s *State) Inline(name string) Result {
	f, found := s.Field(name)
	if !found {
		return passed
	}
	v := s.values[name]

	switch f.Kind {
	case KindEmail:
		return ValidateEmail(v)
	case KindPassword:
		return ValidatePassword(v)
	case KindConfirmation:
		return ValidateConfirmation(s.values[f.Matches], v)
	case KindDate:
		return ValidateDate(v)
	case KindChoice:
		return ValidateChoice(v, f.Options)
	default:
		return passed
	}
}

// Check runs the required rule and then the field's own validator.
func (s *State) Check(name string) Result {
	f, ok := s.Field(name)
	if !ok {
		return Result{Reason: fmt.Sprintf("unknown field %q", name)}
	}
	if f.Required {
		if r := ValidateRequired(f.Label, s.values[name]); !r.Valid {
			return r
		}
	}
	return s.Inline(name)
}

// Results returns Check for every field, keyed by name.
func (s *State) Results() map[string]Result {
	out := make(map[string]Result, len(s.fields))
	for _, f := range s.fields {
		out[f.Name] = s.Check(f.Name)
	}
	return out
}

// Valid is the conjunction of Check over all fields; it gates submission.
func (s *State) Valid() bool {
	return s.FirstInvalid() == ""
}

// FirstInvalid returns the name of the first field failing Check, or "".
func (s *State) FirstInvalid() string {
	for _, f := range s.fields {
		if !s.Check(f.Name).Valid {
			return f.Name
		}
	}
	return ""
}
