package instance

import (
	"fmt"

	"github.com/tosca-go/tosca/diag"
)

// UnknownTypeError indicates a template references a type not present in
// the hierarchy.
type UnknownTypeError struct {
	Template string
	TypeName string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("instance: template %q references unknown type %q", e.Template, e.TypeName)
}

func (e *UnknownTypeError) Code() diag.Code { return diag.E_UNKNOWN_TYPE }

// AmbiguousRequirementError indicates a template requirement entry has
// more than one candidate slot-name key.
type AmbiguousRequirementError struct {
	Template string
	Keys     []string
}

func (e *AmbiguousRequirementError) Error() string {
	return fmt.Sprintf("instance: template %q has an ambiguous requirement entry: candidate keys %v", e.Template, e.Keys)
}

func (e *AmbiguousRequirementError) Code() diag.Code { return diag.E_AMBIGUOUS_REQUIREMENT }
