package schema

import (
	"fmt"

	"github.com/tosca-go/tosca/location"
)

// ParseConstraints builds a Constraint slice from a decoded YAML sequence of
// single-key mappings, e.g. `[{greater_than: 0}, {less_than: 100}]`. A nil
// or empty raw value yields a nil slice.
func ParseConstraints(raw any) ([]Constraint, error) {
	if raw == nil {
		return nil, nil
	}
	seq, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("schema: constraints must be a sequence, got %T", raw)
	}
	out := make([]Constraint, 0, len(seq))
	for _, entry := range seq {
		m, ok := entry.(map[string]any)
		if !ok || len(m) != 1 {
			return nil, fmt.Errorf("schema: each constraint must be a single-key mapping, got %v", entry)
		}
		for op, arg := range m {
			c, err := NewConstraint(op, arg)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}
	return out, nil
}

// ParsePropertySchema builds a PropertySchema from a decoded YAML mapping of
// the shape `{type, description, required, default, constraints}`. This
// shape is shared by schema property declarations and topology input
// declarations.
func ParsePropertySchema(name string, raw any, span location.Span) (PropertySchema, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return PropertySchema{}, fmt.Errorf("schema: property %q must be a mapping, got %T", name, raw)
	}

	typ, _ := m["type"].(string)
	desc, _ := m["description"].(string)
	required, hasRequired := m["required"].(bool)
	if !hasRequired {
		required = false
	}

	defaultVal, hasDefault := m["default"]

	constraints, err := ParseConstraints(m["constraints"])
	if err != nil {
		return PropertySchema{}, fmt.Errorf("schema: property %q: %w", name, err)
	}

	return NewPropertySchema(name, typ, desc, required, hasDefault, defaultVal, constraints, span), nil
}
