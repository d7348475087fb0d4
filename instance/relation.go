package instance

import (
	"sort"
	"strings"

	"github.com/tosca-go/tosca/instance/eval"
	"github.com/tosca-go/tosca/schema"
)

// RelationInstance is a materialized requirement binding: the slot it
// fills, the relation class selected for it, and its resolved target
// template name, if bound.
type RelationInstance struct {
	slot             string
	relationTypeName string
	relationType     *schema.TypeDescriptor
	targetName       string
	bound            bool
	raw              any
	topo             eval.Topology
}

// Slot returns the requirement's slot name.
func (r *RelationInstance) Slot() string { return r.slot }

// RelationTypeName returns the selected relation type's name.
func (r *RelationInstance) RelationTypeName() string { return r.relationTypeName }

// RelationType returns the resolved relation TypeDescriptor, if found.
func (r *RelationInstance) RelationType() (*schema.TypeDescriptor, bool) {
	return r.relationType, r.relationType != nil
}

// Bound reports whether the requirement resolves to a concrete template
// (as opposed to an unbound requirement awaiting an orchestrator).
func (r *RelationInstance) Bound() bool { return r.bound }

// RawTarget returns the raw value under the slot key, unresolved.
func (r *RelationInstance) RawTarget() any { return r.raw }

// Target returns the bound target NodeInstance, if any.
func (r *RelationInstance) Target() (*NodeInstance, bool) {
	if !r.bound || r.topo == nil {
		return nil, false
	}
	view, ok := r.topo.Template(r.targetName)
	if !ok {
		return nil, false
	}
	nv, ok := view.(nodeView)
	if !ok {
		return nil, false
	}
	return nv.NodeInstance, true
}

// requirementEntry is a single requirement binding parsed from a
// template's raw "requirements" sequence.
type requirementEntry struct {
	slot         string
	target       any
	relationType string
}

// requirementEntries pairs each raw requirement-sequence element with its
// slot name: the single key not in the framework-reserved set.
// An entry with more than one non-reserved key is ambiguous.
func (n *NodeInstance) requirementEntries() (map[string]requirementEntry, error) {
	seq, _ := n.raw["requirements"].([]any)
	out := make(map[string]requirementEntry, len(seq))
	for _, e := range seq {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		var candidates []string
		for k := range m {
			if !schema.IsFrameworkReservedKey(k) {
				candidates = append(candidates, k)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		if len(candidates) > 1 {
			sort.Strings(candidates)
			return nil, &AmbiguousRequirementError{Template: n.name, Keys: candidates}
		}
		slot := candidates[0]
		// "relationship_type" is the explicit relation-class override key; it is
		// also the name reserved in schema.IsFrameworkReservedKey, so a
		// requirement entry can never mistake it for a slot name.
		relType, _ := m["relationship_type"].(string)
		out[slot] = requirementEntry{slot: slot, target: m[slot], relationType: relType}
	}
	return out, nil
}

// classifyRequirementTarget interprets the raw value under a requirement's
// slot key: a string not prefixed "tosca." names a bound
// template; a "tosca."-prefixed string or any non-string value is unbound.
func classifyRequirementTarget(raw any) (name string, bound bool) {
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(s, "tosca.") {
		return "", false
	}
	return s, true
}

// defaultRelationType applies the slot-name fallback of the relation class
// selection priority: explicit relationship_type on the template
// entry always wins before this is consulted.
func defaultRelationType(slot string) string {
	switch slot {
	case "host":
		return "tosca.relations.HostedOn"
	case "dependency":
		return "tosca.relations.DependsOn"
	default:
		return "tosca.relations.ConnectsTo"
	}
}

// RequirementTarget returns the resolved target template name bound to
// slot, and false if the slot is absent or unbound. It satisfies
// [eval.NodeView], used by get_ref_property.
func (n *NodeInstance) RequirementTarget(slot string) (string, bool) {
	entries, err := n.requirementEntries()
	if err != nil {
		return "", false
	}
	e, ok := entries[slot]
	if !ok {
		return "", false
	}
	name, bound := classifyRequirementTarget(e.target)
	return name, bound
}

// Requirement materializes a single requirement binding by slot name.
func (n *NodeInstance) Requirement(slot string) (*RelationInstance, bool) {
	all, err := n.Requirements()
	if err != nil {
		return nil, false
	}
	for _, r := range all {
		if r.Slot() == slot {
			return r, true
		}
	}
	return nil, false
}

// Requirements materializes every requirement declared on the node's type,
// pairing each with its matching template entry by slot name and selecting
// a relation class by priority.
func (n *NodeInstance) Requirements() ([]*RelationInstance, error) {
	entries, err := n.requirementEntries()
	if err != nil {
		return nil, err
	}

	specs := n.typ.Requirements()
	out := make([]*RelationInstance, 0, len(specs))
	for _, spec := range specs {
		e, hasEntry := entries[spec.Name()]

		var raw any
		relTypeName := ""
		if hasEntry {
			raw = e.target
			relTypeName = e.relationType
		}
		if relTypeName == "" {
			relTypeName = defaultRelationType(spec.Name())
		}

		targetName, bound := classifyRequirementTarget(raw)

		var relType *schema.TypeDescriptor
		if n.hier != nil {
			relType, _ = n.hier.GetKind(relTypeName, schema.RelationKind)
		}

		out = append(out, &RelationInstance{
			slot:             spec.Name(),
			relationTypeName: relTypeName,
			relationType:     relType,
			targetName:       targetName,
			bound:            bound,
			raw:              raw,
			topo:             n.topo,
		})
	}
	return out, nil
}
