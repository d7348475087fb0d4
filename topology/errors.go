package topology

import (
	"fmt"

	"github.com/tosca-go/tosca/diag"
)

// UnknownInputError indicates BindInputs was given a name not declared in
// the topology's inputs.
type UnknownInputError struct{ Name string }

func (e *UnknownInputError) Error() string {
	return fmt.Sprintf("topology: unknown input %q", e.Name)
}

func (e *UnknownInputError) Code() diag.Code { return diag.E_UNKNOWN_INPUT }

// InputAlreadyBoundError indicates BindInputs attempted to bind a value to
// an input that was already bound.
type InputAlreadyBoundError struct{ Name string }

func (e *InputAlreadyBoundError) Error() string {
	return fmt.Sprintf("topology: input %q is already bound", e.Name)
}

func (e *InputAlreadyBoundError) Code() diag.Code { return diag.E_INPUT_ALREADY_BOUND }

// UnknownTemplateTypeError indicates a node_templates entry names a type
// not present in the type hierarchy.
type UnknownTemplateTypeError struct {
	Template string
	TypeName string
}

func (e *UnknownTemplateTypeError) Error() string {
	return fmt.Sprintf("topology: template %q references unknown type %q", e.Template, e.TypeName)
}

func (e *UnknownTemplateTypeError) Code() diag.Code { return diag.E_UNKNOWN_TYPE }
