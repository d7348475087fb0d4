package eval

// Topology is the minimal view a resolver needs of the enclosing document:
// look up a node template by name, and look up a declared input by name.
type Topology interface {
	Template(name string) (NodeView, bool)
	Input(name string) (InputView, bool)
}

// NodeView is the minimal view of a node template a resolver needs: its
// raw (unresolved) property values, its capabilities, and the resolved
// target template name bound to a requirement slot.
type NodeView interface {
	Name() string
	RawProperty(name string) (any, bool)

	// DeclaredPropertyValue returns the effective unresolved value for a
	// property declared on the entity's type: the template's raw value if
	// one was given, otherwise the property schema's declared default
	// (nil if the schema has none). ok is false only when name does not
	// name a property declared on the type at all -- an absent value for
	// a declared property is not an error.
	DeclaredPropertyValue(name string) (any, bool)

	Capability(name string) (CapabilityView, bool)

	// RequirementTarget returns the template name bound to slot, and false
	// if the slot does not exist or is unbound (targets a type, not a
	// template).
	RequirementTarget(slot string) (string, bool)
}

// CapabilityView is the minimal view of a materialized capability a
// resolver needs: its raw (unresolved) property values.
type CapabilityView interface {
	RawProperty(name string) (any, bool)

	// DeclaredPropertyValue returns the effective unresolved value for a
	// property declared on the capability's type, falling back to its
	// schema default when the template left it unset. See
	// [NodeView.DeclaredPropertyValue].
	DeclaredPropertyValue(name string) (any, bool)
}

// InputView is the minimal view of a topology input a resolver needs: its
// effective value (bound value, falling back to its declared default), and
// whether one exists at all.
type InputView interface {
	Value() (any, bool)
}
