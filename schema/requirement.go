package schema

// RequirementSpec declares a single requirement slot on a node type: the
// capability type it must connect to, the node type it may target, the
// relationship type to use, and cardinality.
//
// RequirementSpec values are immutable after construction.
type RequirementSpec struct {
	name         string
	capability   string
	node         string
	relationship string
	lower        int
	upper        int // -1 means unbounded
}

// NewRequirementSpec creates a RequirementSpec. Pass upper = -1 for an
// unbounded occurrence count.
func NewRequirementSpec(name, capability, node, relationship string, lower, upper int) RequirementSpec {
	return RequirementSpec{
		name: name, capability: capability, node: node,
		relationship: relationship, lower: lower, upper: upper,
	}
}

// Name returns the requirement's slot name.
func (r RequirementSpec) Name() string { return r.name }

// Capability returns the declared target capability type name, if any.
func (r RequirementSpec) Capability() string { return r.capability }

// Node returns the declared target node type name, if any.
func (r RequirementSpec) Node() string { return r.node }

// Relationship returns the declared relationship type name, if any.
func (r RequirementSpec) Relationship() string { return r.relationship }

// Occurrences returns the lower/upper cardinality bounds. Upper of -1 means
// unbounded.
func (r RequirementSpec) Occurrences() (lower, upper int) { return r.lower, r.upper }

// frameworkReservedKeys is the set of requirement-entry keys that are never
// slot names: everything else in a template requirement mapping
// is assumed to be the single slot-name key.
var frameworkReservedKeys = map[string]bool{
	"interfaces":        true,
	"relationship_type": true,
	"derived_from":      true,
	"constraints":       true,
	"lower_bound":       true,
	"upper_bound":       true,
	"type":              true,
}

// IsFrameworkReservedKey reports whether key is one of the reserved keys
// that can never be a requirement slot name.
func IsFrameworkReservedKey(key string) bool {
	return frameworkReservedKeys[key]
}
