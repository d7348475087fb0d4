package schema

import (
	"fmt"

	"github.com/tosca-go/tosca/diag"
)

// UnknownConstraintError indicates a constraint operator outside the closed
// set recognized by NewConstraint.
type UnknownConstraintError struct {
	Operator string
}

func (e *UnknownConstraintError) Error() string {
	return fmt.Sprintf("schema: unknown constraint operator %q", e.Operator)
}

// Code returns the canonical diag code for this error.
func (e *UnknownConstraintError) Code() diag.Code { return diag.E_UNKNOWN_CONSTRAINT }

// InvalidConstraintError indicates a constraint's argument shape does not
// match what its operator requires (e.g. in_range with the wrong arity).
type InvalidConstraintError struct {
	Op     string
	Reason string
}

func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("schema: invalid constraint %q: %s", e.Op, e.Reason)
}

// Code returns the canonical diag code for this error.
func (e *InvalidConstraintError) Code() diag.Code { return diag.E_INVALID_CONSTRAINT }

// CyclicDerivationError indicates the derived_from chain among a set of
// types could not be linearized because it contains a cycle.
type CyclicDerivationError struct {
	Kind  EntityKind
	Names []string // the types still unresolved when the cycle was detected
}

func (e *CyclicDerivationError) Error() string {
	return fmt.Sprintf("schema: cyclic derived_from chain among %s types %v", e.Kind, e.Names)
}

// Code returns the canonical diag code for this error.
func (e *CyclicDerivationError) Code() diag.Code { return diag.E_CYCLIC_DERIVATION }

// UnknownTypeError indicates a referenced type name could not be found in
// the hierarchy for the given kind.
type UnknownTypeError struct {
	Kind EntityKind
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("schema: unknown %s type %q", e.Kind, e.Name)
}

// Code returns the canonical diag code for this error.
func (e *UnknownTypeError) Code() diag.Code { return diag.E_UNKNOWN_TYPE }

// DuplicateTypeError indicates a type name was declared more than once
// within the same kind.
type DuplicateTypeError struct {
	Kind EntityKind
	Name string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("schema: duplicate %s type %q", e.Kind, e.Name)
}

// Code returns the canonical diag code for this error.
func (e *DuplicateTypeError) Code() diag.Code { return diag.E_DUPLICATE_TYPE }

// SchemaParseError wraps a YAML syntax error encountered while decoding a
// schema document.
type SchemaParseError struct {
	Source string
	Err    error
}

func (e *SchemaParseError) Error() string {
	return fmt.Sprintf("schema: parse error in %s: %v", e.Source, e.Err)
}

func (e *SchemaParseError) Unwrap() error { return e.Err }

// Code returns the canonical diag code for this error.
func (e *SchemaParseError) Code() diag.Code { return diag.E_DOCUMENT_PARSE }

// AmbiguousRequirementError indicates a requirement entry in a node template
// could not be resolved to exactly one declared slot name.
type AmbiguousRequirementError struct {
	Template string
	Keys     []string
}

func (e *AmbiguousRequirementError) Error() string {
	return fmt.Sprintf("schema: ambiguous requirement entry on %q: candidate keys %v", e.Template, e.Keys)
}

// Code returns the canonical diag code for this error.
func (e *AmbiguousRequirementError) Code() diag.Code { return diag.E_AMBIGUOUS_REQUIREMENT }
