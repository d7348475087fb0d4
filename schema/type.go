package schema

import (
	"slices"

	"github.com/tosca-go/tosca/location"
)

// TypeDescriptor is an entity type after merging with its parent chain.
// Which fields are populated depends on Kind: nodes carry
// properties/capabilities/requirements/interfaces; relations carry
// valid_targets/interfaces; capabilities carry properties; interfaces
// carry an operation map.
//
// TypeDescriptor is immutable after [TypeDescriptor.Seal].
type TypeDescriptor struct {
	toscaName   string
	shortName   string
	kind        EntityKind
	derivedFrom string // qualified name of parent type; "" for root types
	span        location.Span
	sealed      bool

	properties   map[string]PropertySchema
	capabilities map[string]CapabilityRef
	requirements []RequirementSpec
	interfaces   map[string]string // interface name -> interface type name
	validTargets []string
	operations   map[string]Operation
}

// NewTypeDescriptor creates an empty TypeDescriptor for name/kind. Callers
// populate it via the Set* methods during merge, then call Seal.
func NewTypeDescriptor(toscaName string, kind EntityKind, derivedFrom string, span location.Span) *TypeDescriptor {
	return &TypeDescriptor{
		toscaName:   toscaName,
		shortName:   ShortName(toscaName),
		kind:        kind,
		derivedFrom: derivedFrom,
		span:        span,
	}
}

// Name returns the fully qualified type name.
func (t *TypeDescriptor) Name() string { return t.toscaName }

// ShortName returns the last dotted segment of the qualified name.
func (t *TypeDescriptor) ShortName() string { return t.shortName }

// Kind returns the entity kind.
func (t *TypeDescriptor) Kind() EntityKind { return t.kind }

// DerivedFrom returns the qualified parent type name, or "" for a root type.
func (t *TypeDescriptor) DerivedFrom() string { return t.derivedFrom }

// IsRoot reports whether this type has no parent.
func (t *TypeDescriptor) IsRoot() bool { return t.derivedFrom == "" }

// Span returns the source location of the type declaration.
func (t *TypeDescriptor) Span() location.Span { return t.span }

// Property returns the named property schema (own or inherited).
func (t *TypeDescriptor) Property(name string) (PropertySchema, bool) {
	p, ok := t.properties[name]
	return p, ok
}

// Properties returns a defensive copy of the property map.
func (t *TypeDescriptor) Properties() map[string]PropertySchema {
	return cloneMap(t.properties)
}

// Capability returns the named capability reference (own or inherited).
func (t *TypeDescriptor) Capability(name string) (CapabilityRef, bool) {
	c, ok := t.capabilities[name]
	return c, ok
}

// Capabilities returns a defensive copy of the capability map.
func (t *TypeDescriptor) Capabilities() map[string]CapabilityRef {
	return cloneMap(t.capabilities)
}

// Requirements returns a defensive copy of the ordered requirement specs.
func (t *TypeDescriptor) Requirements() []RequirementSpec {
	return slices.Clone(t.requirements)
}

// Interfaces returns a defensive copy of the interface-name -> interface-type map.
func (t *TypeDescriptor) Interfaces() map[string]string {
	return cloneMap(t.interfaces)
}

// ValidTargets returns a defensive copy of the relation's valid target type names.
func (t *TypeDescriptor) ValidTargets() []string {
	return slices.Clone(t.validTargets)
}

// Operation returns the named operation (interface kind only).
func (t *TypeDescriptor) Operation(name string) (Operation, bool) {
	op, ok := t.operations[name]
	return op, ok
}

// Operations returns a defensive copy of the operation map (interface kind only).
func (t *TypeDescriptor) Operations() map[string]Operation {
	return cloneMap(t.operations)
}

// --- Internal setters used during merge/completion ---

// Seal marks the descriptor as immutable. Called once merge completes.
func (t *TypeDescriptor) Seal() { t.sealed = true }

// IsSealed reports whether the descriptor has been sealed.
func (t *TypeDescriptor) IsSealed() bool { return t.sealed }

func (t *TypeDescriptor) mustNotBeSealed() {
	if t.sealed {
		panic("schema: cannot mutate sealed TypeDescriptor")
	}
}

// SetProperties sets the merged property map.
func (t *TypeDescriptor) SetProperties(m map[string]PropertySchema) {
	t.mustNotBeSealed()
	t.properties = cloneMap(m)
}

// SetCapabilities sets the merged capability map.
func (t *TypeDescriptor) SetCapabilities(m map[string]CapabilityRef) {
	t.mustNotBeSealed()
	t.capabilities = cloneMap(m)
}

// SetRequirements sets the merged, ordered requirement specs.
func (t *TypeDescriptor) SetRequirements(r []RequirementSpec) {
	t.mustNotBeSealed()
	t.requirements = slices.Clone(r)
}

// SetInterfaces sets the merged interface-name -> interface-type map.
func (t *TypeDescriptor) SetInterfaces(m map[string]string) {
	t.mustNotBeSealed()
	t.interfaces = cloneMap(m)
}

// SetValidTargets sets the merged valid-target type names (relation kind).
func (t *TypeDescriptor) SetValidTargets(v []string) {
	t.mustNotBeSealed()
	t.validTargets = slices.Clone(v)
}

// SetOperations sets the merged operation map (interface kind).
func (t *TypeDescriptor) SetOperations(m map[string]Operation) {
	t.mustNotBeSealed()
	t.operations = cloneMap(m)
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	cp := make(map[K]V, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
