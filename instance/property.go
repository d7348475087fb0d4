package instance

import (
	"github.com/tosca-go/tosca/instance/eval"
	"github.com/tosca-go/tosca/schema"
)

// Property is a materialized value slot: a declared schema paired with a
// template's raw value for it, a non-owning handle to the owning entity
// (needed only by get_ref_property), and the topology used to resolve
// deferred values. Resolution is lazy: Value re-evaluates on every call.
type Property struct {
	name   string
	schema schema.PropertySchema
	raw    any
	hasRaw bool
	parent eval.NodeView
	topo   eval.Topology
}

func newProperty(name string, sch schema.PropertySchema, raw any, hasRaw bool, parent eval.NodeView, topo eval.Topology) *Property {
	return &Property{name: name, schema: sch, raw: raw, hasRaw: hasRaw, parent: parent, topo: topo}
}

// Name returns the property name.
func (p *Property) Name() string { return p.name }

// Schema returns the declared schema for this property.
func (p *Property) Schema() schema.PropertySchema { return p.schema }

// HasRawValue reports whether the template supplied a value for this
// property at all (as opposed to relying on the schema default).
func (p *Property) HasRawValue() bool { return p.hasRaw }

// RawValue returns the value as stored in the template, without resolving
// deferred functions.
func (p *Property) RawValue() any { return p.raw }

// Value resolves the property's effective value: its raw value if present
// (following get_input/get_property/get_ref_property as needed), else the
// schema's declared default, else nil.
func (p *Property) Value() (any, error) {
	if !p.hasRaw {
		if def, ok := p.schema.Default(); ok {
			return def, nil
		}
		return nil, nil
	}
	return eval.Resolve(p.topo, p.raw, p.parent)
}

// Check validates Value() against the property's declared constraints.
// inclusiveLength selects strict vs inclusive min_length/max_length
// semantics, matching the Constraint.Check contract.
func (p *Property) Check(inclusiveLength bool) ([]string, error) {
	v, err := p.Value()
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	var failures []string
	for _, c := range p.schema.Constraints() {
		ok, err := c.Check(v, inclusiveLength)
		if err != nil {
			return nil, err
		}
		if !ok {
			failures = append(failures, p.name+" fails constraint "+c.String())
		}
	}
	return failures, nil
}
