package diag

// Detail provides key-value context for diagnostic issues.
//
// Details are used to add structured information to issues that can be
// programmatically inspected by tools. Use the standard detail key constants
// to ensure consistent key naming across the codebase.
type Detail struct {
	Key   string
	Value string
}

// Standard detail keys for consistent diagnostic metadata.
//
// Use these constants to avoid stringly-typed drift and enable programmatic
// inspection of diagnostic details. Custom detail keys are permitted for
// domain-specific diagnostics; use lower_snake_case for custom keys.
const (
	// DetailKeyExpected is the expected value or type.
	DetailKeyExpected = "expected"

	// DetailKeyGot is the actual value or type received.
	DetailKeyGot = "got"

	// DetailKeyTypeName is the type name involved in the diagnostic
	// (e.g. "tosca.nodes.WebServer").
	DetailKeyTypeName = "type"

	// DetailKeyPropertyName is the property name involved.
	DetailKeyPropertyName = "property"

	// DetailKeySlotName is the requirement slot name involved
	// (e.g. "host", "database_endpoint").
	DetailKeySlotName = "slot"

	// DetailKeyCapabilityName is the capability name involved.
	DetailKeyCapabilityName = "capability"

	// DetailKeyTemplateName is the node or relationship template name involved.
	DetailKeyTemplateName = "template"

	// DetailKeyInputName is the input name (for get_input / bind_inputs errors).
	DetailKeyInputName = "input"

	// DetailKeyOperator is the constraint operator name
	// (e.g. "greater_than", "valid_values").
	DetailKeyOperator = "operator"

	// DetailKeyReason is the failure reason discriminant.
	DetailKeyReason = "reason"

	// DetailKeyField is the data-level field name (for unknown/unexpected fields).
	DetailKeyField = "field"

	// DetailKeyDetail is the specific error description (constraint reason,
	// parse error, etc.).
	DetailKeyDetail = "detail"

	// DetailKeyFormat is the adapter format identifier (e.g., "yaml").
	DetailKeyFormat = "format"

	// DetailKeyCycle is the cycle participants as a joined string
	// (for derivation or resolution cycle errors).
	DetailKeyCycle = "cycle"

	// DetailKeyName is the invalid identifier name (for naming errors).
	DetailKeyName = "name"

	// DetailKeyContext is contextual information (e.g., "Builder", "Loader").
	DetailKeyContext = "context"

	// DetailKeyId is the identifier value (e.g., synthetic SourceID).
	DetailKeyId = "id"

	// DetailKeyDepth is the recursion depth reached (for resolution limits).
	DetailKeyDepth = "depth"
)

// ExpectedGot creates a pair of details for type mismatch diagnostics.
//
// This is the standard pattern for reporting "expected X, got Y" errors.
func ExpectedGot(expected, got string) []Detail {
	return []Detail{
		{Key: DetailKeyExpected, Value: expected},
		{Key: DetailKeyGot, Value: got},
	}
}

// TypeProp creates detail entries for type+property diagnostics.
//
// Use for diagnostics involving a specific property on a type or entity.
func TypeProp(typeName, propName string) []Detail {
	return []Detail{
		{Key: DetailKeyTypeName, Value: typeName},
		{Key: DetailKeyPropertyName, Value: propName},
	}
}

// TemplateSlot creates detail entries for requirement-slot diagnostics.
//
// Use for diagnostics involving a specific requirement slot on a node template.
func TemplateSlot(templateName, slotName string) []Detail {
	return []Detail{
		{Key: DetailKeyTemplateName, Value: templateName},
		{Key: DetailKeySlotName, Value: slotName},
	}
}

// SlotCapabilityProp creates detail entries for get_ref_property diagnostics.
//
// Use for diagnostics involving a requirement slot, an optional capability
// name on its target, and a property name.
func SlotCapabilityProp(slotName, capabilityName, propName string) []Detail {
	return []Detail{
		{Key: DetailKeySlotName, Value: slotName},
		{Key: DetailKeyCapabilityName, Value: capabilityName},
		{Key: DetailKeyPropertyName, Value: propName},
	}
}
