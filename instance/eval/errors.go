package eval

import (
	"fmt"

	"github.com/tosca-go/tosca/diag"
)

// InvalidDeferredFormError indicates a deferred-function mapping's argument
// shape does not match what the function requires (e.g. get_property
// without a two-element sequence argument).
type InvalidDeferredFormError struct {
	Function string
	Reason   string
}

func (e *InvalidDeferredFormError) Error() string {
	return fmt.Sprintf("eval: invalid %s form: %s", e.Function, e.Reason)
}

func (e *InvalidDeferredFormError) Code() diag.Code { return diag.E_INVALID_DEFERRED_FORM }

// UnknownInputError indicates get_input named an input not declared on the
// topology.
type UnknownInputError struct{ Name string }

func (e *UnknownInputError) Error() string {
	return fmt.Sprintf("eval: unknown input %q", e.Name)
}

func (e *UnknownInputError) Code() diag.Code { return diag.E_UNKNOWN_INPUT }

// UnknownEntityError indicates get_property or get_ref_property named a
// template that does not exist in the topology.
type UnknownEntityError struct{ Name string }

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("eval: unknown entity %q", e.Name)
}

func (e *UnknownEntityError) Code() diag.Code { return diag.E_UNKNOWN_ENTITY }

// UnknownPropertyError indicates a resolved target template or capability
// has no property of the named key.
type UnknownPropertyError struct {
	Entity   string
	Property string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("eval: entity %q has no property %q", e.Entity, e.Property)
}

func (e *UnknownPropertyError) Code() diag.Code { return diag.E_UNKNOWN_PROPERTY }

// UnknownSlotError indicates get_ref_property named a requirement slot the
// originating entity does not declare.
type UnknownSlotError struct {
	Entity string
	Slot   string
}

func (e *UnknownSlotError) Error() string {
	return fmt.Sprintf("eval: entity %q has no requirement slot %q", e.Entity, e.Slot)
}

func (e *UnknownSlotError) Code() diag.Code { return diag.E_UNKNOWN_SLOT }

// UnknownCapabilityPropertyError indicates the three-argument form of
// get_ref_property named a capability, or a property within it, that does
// not exist on the resolved target.
type UnknownCapabilityPropertyError struct {
	Entity     string
	Capability string
	Property   string
}

func (e *UnknownCapabilityPropertyError) Error() string {
	return fmt.Sprintf("eval: entity %q has no capability %q property %q", e.Entity, e.Capability, e.Property)
}

func (e *UnknownCapabilityPropertyError) Code() diag.Code {
	return diag.E_UNKNOWN_CAPABILITY_PROPERTY
}

// ResolutionCycleError indicates deferred-function resolution recursed
// past the configured depth limit, implying a cycle among deferred values.
type ResolutionCycleError struct {
	Limit int
}

func (e *ResolutionCycleError) Error() string {
	return fmt.Sprintf("eval: resolution exceeded depth limit (%d); likely cyclic deferred values", e.Limit)
}

func (e *ResolutionCycleError) Code() diag.Code { return diag.E_RESOLUTION_CYCLE }
