package schema

import "github.com/tosca-go/tosca/location"

// PropertySchema describes a single declared property slot: its type,
// documentation, required-ness, validation constraints, and default value.
//
// PropertySchema values are immutable after construction.
type PropertySchema struct {
	name        string
	typ         string
	description string
	required    bool
	hasDefault  bool
	defaultVal  any
	constraints []Constraint
	span        location.Span
}

// NewPropertySchema creates a PropertySchema. defaultVal/hasDefault are
// split so a declared default of nil is distinguishable from "no default".
func NewPropertySchema(name, typ, description string, required bool, hasDefault bool, defaultVal any, constraints []Constraint, span location.Span) PropertySchema {
	return PropertySchema{
		name:        name,
		typ:         typ,
		description: description,
		required:    required,
		hasDefault:  hasDefault,
		defaultVal:  defaultVal,
		constraints: append([]Constraint(nil), constraints...),
		span:        span,
	}
}

// Name returns the property name.
func (p PropertySchema) Name() string { return p.name }

// Type returns the declared TOSCA type name (e.g. "string", "integer").
func (p PropertySchema) Type() string { return p.typ }

// Description returns the documentation string, if any.
func (p PropertySchema) Description() string { return p.description }

// Required reports whether the property must be present on a template.
func (p PropertySchema) Required() bool { return p.required }

// Default returns the declared default value and whether one was declared.
func (p PropertySchema) Default() (any, bool) { return p.defaultVal, p.hasDefault }

// Constraints returns a defensive copy of the validation constraints.
func (p PropertySchema) Constraints() []Constraint {
	return append([]Constraint(nil), p.constraints...)
}

// Span returns the source location of the property declaration.
func (p PropertySchema) Span() location.Span { return p.span }
