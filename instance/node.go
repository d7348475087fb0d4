package instance

import (
	"sort"

	"github.com/tosca-go/tosca/immutable"
	"github.com/tosca-go/tosca/instance/eval"
	"github.com/tosca-go/tosca/internal/ident"
	"github.com/tosca-go/tosca/internal/normalize"
	"github.com/tosca-go/tosca/schema"
)

// NodeInstance is a materialized node template: its name, raw template
// fragment, resolved type, and the topology it was materialized from.
// It is a view — it borrows from the topology for the
// duration of a query and does not outlive it.
type NodeInstance struct {
	name        string
	raw         map[string]any
	typ         *schema.TypeDescriptor
	hier        *schema.TypeHierarchy
	topo        eval.Topology
	prov        *Provenance
	foldedProps immutable.Properties
}

// NewNodeInstance materializes a NodeInstance from a template fragment and
// its resolved type.
func NewNodeInstance(name string, raw map[string]any, typ *schema.TypeDescriptor, hier *schema.TypeHierarchy, topo eval.Topology, prov *Provenance) *NodeInstance {
	n := &NodeInstance{name: name, raw: raw, typ: typ, hier: hier, topo: topo, prov: prov}
	if props, ok := raw["properties"].(map[string]any); ok {
		n.foldedProps = immutable.WrapPropertiesClone(props)
	}
	return n
}

// Name returns the template name.
func (n *NodeInstance) Name() string { return n.name }

// Type returns the resolved node TypeDescriptor.
func (n *NodeInstance) Type() *schema.TypeDescriptor { return n.typ }

// Provenance returns the template's source location metadata, if tracked.
func (n *NodeInstance) Provenance() *Provenance { return n.prov }

// View returns an [eval.NodeView] backed by this instance, for use when
// implementing [eval.Topology].
func (n *NodeInstance) View() eval.NodeView { return nodeView{n} }

// DebugTree returns a loggable snapshot of the node's resolved property
// values and requirement bindings, for trace output. Requirement slot
// names are canonicalized to lower_snake_case so the tree's keys are
// stable regardless of the source document's naming convention, and
// property values are flattened with [normalize.Normalize] so arbitrary
// resolved values (structs, TextMarshalers) are safe to hand to a
// structured logger.
func (n *NodeInstance) DebugTree() map[string]any {
	tree := make(map[string]any, 3)
	tree["name"] = n.name
	if n.typ != nil {
		tree["type"] = n.typ.Name()
	}

	raw := make(map[string]any)
	for p := range n.Properties() {
		if v, err := p.Value(); err == nil {
			raw[p.Name()] = v
		}
	}
	if len(raw) > 0 {
		tree["properties"] = normalize.Normalize(raw)
	}

	if rels, err := n.Requirements(); err == nil && len(rels) > 0 {
		bindings := make(map[string]any, len(rels))
		for _, r := range rels {
			bindings[ident.ToLowerSnake(r.Slot())] = map[string]any{
				"relation_type": r.RelationTypeName(),
				"bound":         r.Bound(),
				"target":        r.targetName,
			}
		}
		tree["requirements"] = bindings
	}
	return tree
}

func (n *NodeInstance) rawProperties() map[string]any {
	props, _ := n.raw["properties"].(map[string]any)
	return props
}

// RawProperty returns the raw (unresolved) value of the named property, if
// present on the template. It satisfies [eval.NodeView]. The lookup falls
// back to an ASCII case-insensitive match when no exact key matches, so a
// template authored with inconsistent property-name casing still binds.
func (n *NodeInstance) RawProperty(name string) (any, bool) {
	if v, ok := n.rawProperties()[name]; ok {
		return v, true
	}
	if v, ok := n.foldedProps.GetFold(name); ok {
		return unwrapPlain(v), true
	}
	return nil, false
}

// unwrapPlain converts an [immutable.Value] back into the plain Go shape
// ([map[string]any], []any, or a scalar) that the rest of the module
// expects a raw property value to have -- [immutable.Value.Unwrap] alone
// would leak the internal [immutable.Map]/[immutable.Slice] wrapper types
// for nested structures.
func unwrapPlain(v immutable.Value) any {
	if m, ok := v.Map(); ok {
		return m.Clone()
	}
	if s, ok := v.Slice(); ok {
		return s.Clone()
	}
	return v.Unwrap()
}

// DeclaredPropertyValue returns the effective unresolved value for a
// property declared on the node's type: the template's raw value if set,
// otherwise the property schema's declared default. It satisfies
// [eval.NodeView]. ok is false only when name is not declared on the
// node's type at all.
func (n *NodeInstance) DeclaredPropertyValue(name string) (any, bool) {
	ps, ok := n.typ.Property(name)
	if !ok {
		return nil, false
	}
	if raw, ok := n.RawProperty(name); ok {
		return raw, true
	}
	def, _ := ps.Default()
	return def, true
}

// Property materializes the named declared property, reading the
// template's properties[name] value if present.
func (n *NodeInstance) Property(name string) (*Property, bool) {
	ps, ok := n.typ.Property(name)
	if !ok {
		return nil, false
	}
	raw, hasRaw := n.RawProperty(name)
	return newProperty(name, ps, raw, hasRaw, n.View(), n.topo), true
}

// Properties returns an iterator over declared properties, in stable name
// order.
func (n *NodeInstance) Properties() func(yield func(*Property) bool) {
	declared := n.typ.Properties()
	names := make([]string, 0, len(declared))
	for name := range declared {
		names = append(names, name)
	}
	sort.Strings(names)
	return func(yield func(*Property) bool) {
		for _, name := range names {
			p, _ := n.Property(name)
			if !yield(p) {
				return
			}
		}
	}
}

// Capability materializes the named declared capability, looking up its
// capability type and reading the template's capabilities[name] fragment
// if present.
func (n *NodeInstance) Capability(name string) (*CapabilityInstance, bool) {
	ref, ok := n.typ.Capability(name)
	if !ok {
		return nil, false
	}
	var capType *schema.TypeDescriptor
	if n.hier != nil {
		capType, _ = n.hier.GetKind(ref.Type(), schema.CapabilityKind)
	}
	if capType == nil {
		return nil, false
	}
	raw, _ := n.raw["capabilities"].(map[string]any)
	var frag map[string]any
	if raw != nil {
		frag, _ = raw[name].(map[string]any)
	}
	return newCapabilityInstance(name, capType, frag, n.View(), n.topo), true
}

// Capabilities returns an iterator over declared capabilities, in stable
// name order.
func (n *NodeInstance) Capabilities() func(yield func(*CapabilityInstance) bool) {
	declared := n.typ.Capabilities()
	names := make([]string, 0, len(declared))
	for name := range declared {
		names = append(names, name)
	}
	sort.Strings(names)
	return func(yield func(*CapabilityInstance) bool) {
		for _, name := range names {
			c, ok := n.Capability(name)
			if !ok {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Interfaces returns the operations of the node's single selected
// interface type: the first declared interface-name key, its
// operations drawn from the resolved interface TypeDescriptor, each paired
// with the template's interfaces[op_name] fragment if present.
func (n *NodeInstance) Interfaces() ([]*InterfaceOperationInstance, error) {
	declared := n.typ.Interfaces()
	if len(declared) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(declared))
	for name := range declared {
		names = append(names, name)
	}
	sort.Strings(names)
	ifaceTypeName := declared[names[0]]

	var ifaceType *schema.TypeDescriptor
	if n.hier != nil {
		ifaceType, _ = n.hier.GetKind(ifaceTypeName, schema.InterfaceKind)
	}
	if ifaceType == nil {
		return nil, nil
	}

	ops := ifaceType.Operations()
	opNames := make([]string, 0, len(ops))
	for name := range ops {
		opNames = append(opNames, name)
	}
	sort.Strings(opNames)

	templateIfaces, _ := n.raw["interfaces"].(map[string]any)

	out := make([]*InterfaceOperationInstance, 0, len(opNames))
	for _, opName := range opNames {
		var frag map[string]any
		if templateIfaces != nil {
			frag, _ = templateIfaces[opName].(map[string]any)
		}
		out = append(out, newInterfaceOperationInstance(opName, ops[opName], frag, n.View(), n.topo))
	}
	return out, nil
}

// nodeView adapts *NodeInstance to [eval.NodeView]. Name, RawProperty, and
// RequirementTarget are promoted by embedding; only Capability needs an
// explicit override since NodeInstance.Capability's concrete return type
// does not itself satisfy eval.NodeView's interface-typed signature.
type nodeView struct{ *NodeInstance }

func (v nodeView) Capability(name string) (eval.CapabilityView, bool) {
	c, ok := v.NodeInstance.Capability(name)
	if !ok {
		return nil, false
	}
	return c, true
}
