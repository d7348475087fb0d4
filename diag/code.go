package diag

// CodeCategory represents the semantic domain of an error code.
//
// Categories represent the semantic domain of an error, not necessarily the
// API layer that emits it. Most codes are emitted exclusively by their
// category's layer, but some codes represent cross-cutting concerns.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategorySchema is for schema-loading and type-hierarchy errors.
	CategorySchema

	// CategorySyntax is for document parse/lexer errors.
	CategorySyntax

	// CategoryInstance is for topology template and entity materialization errors.
	CategoryInstance

	// CategoryResolve is for deferred-value resolution errors.
	CategoryResolve

	// CategoryTopology is for topology-facade errors (binding, input/output lookup).
	CategoryTopology

	// CategoryAdapter is for YAML adapter parsing errors.
	CategoryAdapter
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategorySchema:
		return "schema"
	case CategorySyntax:
		return "syntax"
	case CategoryInstance:
		return "instance"
	case CategoryResolve:
		return "resolve"
	case CategoryTopology:
		return "topology"
	case CategoryAdapter:
		return "adapter"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes—only codes defined in this package are valid.
//
// Code.String() values are globally unique across all categories. The
// CodeCategory is informational metadata for filtering and grouping.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_UNKNOWN_TYPE").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor—callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit limit notification.
	// It does not automatically trigger Result.LimitReached(); use
	// Collector.LimitReached() to check limit status. Callers may inject
	// this code manually when desired.
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug indicator).
	// Use for conditions that should never occur in correct code.
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)
)

// Schema codes.
var (
	// E_CYCLIC_DERIVATION indicates a derived_from chain contains a cycle.
	E_CYCLIC_DERIVATION = code("E_CYCLIC_DERIVATION", CategorySchema)

	// E_UNKNOWN_TYPE indicates a referenced type cannot be found in the hierarchy.
	E_UNKNOWN_TYPE = code("E_UNKNOWN_TYPE", CategorySchema)

	// E_DUPLICATE_TYPE indicates a type name is defined more than once within a kind.
	E_DUPLICATE_TYPE = code("E_DUPLICATE_TYPE", CategorySchema)

	// E_UNKNOWN_CONSTRAINT indicates a constraint operator outside the closed set.
	E_UNKNOWN_CONSTRAINT = code("E_UNKNOWN_CONSTRAINT", CategorySchema)

	// E_INVALID_CONSTRAINT indicates a constraint's argument shape is invalid for its operator.
	E_INVALID_CONSTRAINT = code("E_INVALID_CONSTRAINT", CategorySchema)

	// E_SHAPE_MISMATCH indicates a merged field changes shape (mapping,
	// sequence, scalar) between a parent type and its child during
	// derived_from completion. The child's value wins; this is a warning,
	// not a hard failure.
	E_SHAPE_MISMATCH = code("E_SHAPE_MISMATCH", CategorySchema)

	// E_AMBIGUOUS_REQUIREMENT indicates a requirement entry has more than one
	// non-framework key, so its slot name cannot be determined.
	E_AMBIGUOUS_REQUIREMENT = code("E_AMBIGUOUS_REQUIREMENT", CategorySchema)
)

// Syntax codes.
var (
	// E_DOCUMENT_PARSE indicates a YAML syntax error in a schema or topology document.
	E_DOCUMENT_PARSE = code("E_DOCUMENT_PARSE", CategorySyntax)
)

// Instance codes.
var (
	// E_UNKNOWN_ENTITY indicates a referenced node/relation template cannot be found.
	E_UNKNOWN_ENTITY = code("E_UNKNOWN_ENTITY", CategoryInstance)

	// E_UNKNOWN_PROPERTY indicates a referenced property cannot be found on its entity.
	E_UNKNOWN_PROPERTY = code("E_UNKNOWN_PROPERTY", CategoryInstance)

	// E_UNKNOWN_SLOT indicates a requirement slot name is not present on the node.
	E_UNKNOWN_SLOT = code("E_UNKNOWN_SLOT", CategoryInstance)

	// E_UNKNOWN_CAPABILITY_PROPERTY indicates a property cannot be found on a
	// referenced capability.
	E_UNKNOWN_CAPABILITY_PROPERTY = code("E_UNKNOWN_CAPABILITY_PROPERTY", CategoryInstance)

	// E_CONSTRAINT_FAIL indicates a property value failed a constraint check.
	E_CONSTRAINT_FAIL = code("E_CONSTRAINT_FAIL", CategoryInstance)

	// E_MISSING_REQUIRED indicates a required property is missing from a template.
	E_MISSING_REQUIRED = code("E_MISSING_REQUIRED", CategoryInstance)
)

// Resolve codes.
var (
	// E_UNKNOWN_INPUT indicates a get_input reference names an undeclared input.
	E_UNKNOWN_INPUT = code("E_UNKNOWN_INPUT", CategoryResolve)

	// E_RESOLUTION_CYCLE indicates deferred value resolution exceeded the
	// recursion depth limit.
	E_RESOLUTION_CYCLE = code("E_RESOLUTION_CYCLE", CategoryResolve)

	// E_INVALID_DEFERRED_FORM indicates a get_input/get_property/get_ref_property
	// mapping whose argument does not have the shape that function requires.
	E_INVALID_DEFERRED_FORM = code("E_INVALID_DEFERRED_FORM", CategoryResolve)
)

// Topology codes.
var (
	// E_INPUT_ALREADY_BOUND indicates bind_inputs was called more than once
	// for the same input name.
	E_INPUT_ALREADY_BOUND = code("E_INPUT_ALREADY_BOUND", CategoryTopology)

	// E_UNKNOWN_TEMPLATE indicates a node/relation template name has no
	// corresponding entry in the topology.
	E_UNKNOWN_TEMPLATE = code("E_UNKNOWN_TEMPLATE", CategoryTopology)
)

// Adapter codes.
var (
	// E_ADAPTER_PARSE indicates a YAML adapter decoding error unrelated to syntax
	// (e.g. an unsupported scalar tag).
	E_ADAPTER_PARSE = code("E_ADAPTER_PARSE", CategoryAdapter)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	// Sentinel
	E_LIMIT_REACHED,
	E_INTERNAL,
	// Schema
	E_CYCLIC_DERIVATION,
	E_UNKNOWN_TYPE,
	E_DUPLICATE_TYPE,
	E_UNKNOWN_CONSTRAINT,
	E_INVALID_CONSTRAINT,
	E_AMBIGUOUS_REQUIREMENT,
	E_SHAPE_MISMATCH,
	// Syntax
	E_DOCUMENT_PARSE,
	// Instance
	E_UNKNOWN_ENTITY,
	E_UNKNOWN_PROPERTY,
	E_UNKNOWN_SLOT,
	E_UNKNOWN_CAPABILITY_PROPERTY,
	E_CONSTRAINT_FAIL,
	E_MISSING_REQUIRED,
	// Resolve
	E_UNKNOWN_INPUT,
	E_RESOLUTION_CYCLE,
	E_INVALID_DEFERRED_FORM,
	// Topology
	E_INPUT_ALREADY_BOUND,
	E_UNKNOWN_TEMPLATE,
	// Adapter
	E_ADAPTER_PARSE,
}

// AllCodes returns all defined codes.
//
// This function is useful for tooling and testing. The returned slice is a
// copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
//
// The returned slice is a new allocation; modifications do not affect
// internal state.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
