package schema

// CapabilityRef declares a capability a node type offers: the name by which
// node templates and requirements refer to it, and the capability type it
// is an instance of.
type CapabilityRef struct {
	name string
	typ  string
}

// NewCapabilityRef creates a CapabilityRef.
func NewCapabilityRef(name, typ string) CapabilityRef {
	return CapabilityRef{name: name, typ: typ}
}

// Name returns the capability's slot name on the owning node type.
func (c CapabilityRef) Name() string { return c.name }

// Type returns the capability type's qualified or short name.
func (c CapabilityRef) Type() string { return c.typ }
