package instance

import (
	"sort"

	"github.com/tosca-go/tosca/instance/eval"
	"github.com/tosca-go/tosca/schema"
)

// CapabilityInstance is a materialized capability slot on a node: its
// resolved capability type and the template's raw fragment for it, if any.
type CapabilityInstance struct {
	name  string
	typ   *schema.TypeDescriptor
	raw   map[string]any
	owner eval.NodeView
	topo  eval.Topology
}

func newCapabilityInstance(name string, typ *schema.TypeDescriptor, raw map[string]any, owner eval.NodeView, topo eval.Topology) *CapabilityInstance {
	return &CapabilityInstance{name: name, typ: typ, raw: raw, owner: owner, topo: topo}
}

// Name returns the capability's slot name on the owning node.
func (c *CapabilityInstance) Name() string { return c.name }

// Type returns the resolved capability TypeDescriptor.
func (c *CapabilityInstance) Type() *schema.TypeDescriptor { return c.typ }

// Property materializes the named property, reading the template's
// capabilities[name].properties[propName] value if present.
func (c *CapabilityInstance) Property(propName string) (*Property, bool) {
	ps, ok := c.typ.Property(propName)
	if !ok {
		return nil, false
	}
	raw, hasRaw := c.rawProperties()[propName]
	return newProperty(propName, ps, raw, hasRaw, c.owner, c.topo), true
}

// Properties returns an iterator over the capability's declared properties,
// in stable name order.
func (c *CapabilityInstance) Properties() func(yield func(*Property) bool) {
	names := make([]string, 0, len(c.typ.Properties()))
	for name := range c.typ.Properties() {
		names = append(names, name)
	}
	sort.Strings(names)
	return func(yield func(*Property) bool) {
		for _, name := range names {
			p, _ := c.Property(name)
			if !yield(p) {
				return
			}
		}
	}
}

func (c *CapabilityInstance) rawProperties() map[string]any {
	if c.raw == nil {
		return nil
	}
	props, _ := c.raw["properties"].(map[string]any)
	return props
}

// RawProperty returns the raw (unresolved) value of the named property, if
// present on the template. It satisfies [eval.CapabilityView].
func (c *CapabilityInstance) RawProperty(name string) (any, bool) {
	v, ok := c.rawProperties()[name]
	return v, ok
}

// DeclaredPropertyValue returns the effective unresolved value for a
// property declared on the capability's type: the template's raw value if
// set, otherwise the property schema's declared default. It satisfies
// [eval.CapabilityView]. ok is false only when name is not declared on the
// capability's type at all.
func (c *CapabilityInstance) DeclaredPropertyValue(name string) (any, bool) {
	ps, ok := c.typ.Property(name)
	if !ok {
		return nil, false
	}
	if raw, ok := c.RawProperty(name); ok {
		return raw, true
	}
	def, _ := ps.Default()
	return def, true
}
