package schema

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/tosca-go/tosca/diag"
	"github.com/tosca-go/tosca/internal/value"
)

// Operator is the closed set of constraint operators a PropertySchema may
// declare. Unknown operators are rejected at construction time via NewConstraint.
type Operator string

const (
	OpEqual           Operator = "equal"
	OpGreaterThan     Operator = "greater_than"
	OpGreaterOrEqual  Operator = "greater_or_equal"
	OpLessThan        Operator = "less_than"
	OpLessOrEqual     Operator = "less_or_equal"
	OpInRange         Operator = "in_range"
	OpValidValues     Operator = "valid_values"
	OpLength          Operator = "length"
	OpMinLength       Operator = "min_length"
	OpMaxLength       Operator = "max_length"
	OpPattern         Operator = "pattern"
)

// validOperators is the closed set recognized by NewConstraint.
var validOperators = map[Operator]bool{
	OpEqual: true, OpGreaterThan: true, OpGreaterOrEqual: true,
	OpLessThan: true, OpLessOrEqual: true, OpInRange: true,
	OpValidValues: true, OpLength: true, OpMinLength: true,
	OpMaxLength: true, OpPattern: true,
}

// Constraint is a single {op, arg} validation rule attached to a PropertySchema.
//
// Constraint is immutable after construction via [NewConstraint].
type Constraint struct {
	op  Operator
	arg any
}

// NewConstraint validates op against the closed operator set and returns a
// Constraint. It returns an UnknownConstraintError if op is not recognized.
func NewConstraint(op string, arg any) (Constraint, error) {
	o := Operator(op)
	if !validOperators[o] {
		return Constraint{}, &UnknownConstraintError{Operator: op}
	}
	return Constraint{op: o, arg: arg}, nil
}

// Op returns the constraint operator.
func (c Constraint) Op() Operator { return c.op }

// Arg returns the constraint's schema-declared argument.
func (c Constraint) Arg() any { return c.arg }

func (c Constraint) String() string {
	return fmt.Sprintf("%s(%v)", c.op, c.arg)
}

// Check evaluates the constraint against v. inclusiveLength selects strict
// (false, ">"/"<") vs inclusive (true, ">="/"<=") semantics for
// min_length/max_length.
func (c Constraint) Check(v any, inclusiveLength bool) (bool, error) {
	switch c.op {
	case OpEqual:
		order, err := value.ValueOrder(v, c.arg)
		if err != nil {
			return false, err
		}
		return order == 0, nil
	case OpGreaterThan:
		order, err := value.ValueOrder(v, c.arg)
		if err != nil {
			return false, err
		}
		return order > 0, nil
	case OpGreaterOrEqual:
		order, err := value.ValueOrder(v, c.arg)
		if err != nil {
			return false, err
		}
		return order >= 0, nil
	case OpLessThan:
		order, err := value.ValueOrder(v, c.arg)
		if err != nil {
			return false, err
		}
		return order < 0, nil
	case OpLessOrEqual:
		order, err := value.ValueOrder(v, c.arg)
		if err != nil {
			return false, err
		}
		return order <= 0, nil
	case OpInRange:
		bounds, ok := c.arg.([]any)
		if !ok || len(bounds) != 2 {
			return false, &InvalidConstraintError{Op: string(c.op), Reason: "in_range requires a two-element sequence"}
		}
		lo, err := value.ValueOrder(v, bounds[0])
		if err != nil {
			return false, err
		}
		hi, err := value.ValueOrder(v, bounds[1])
		if err != nil {
			return false, err
		}
		return lo >= 0 && hi < 0, nil
	case OpValidValues:
		values, ok := c.arg.([]any)
		if !ok {
			return false, &InvalidConstraintError{Op: string(c.op), Reason: "valid_values requires a sequence"}
		}
		for _, candidate := range values {
			if order, err := value.ValueOrder(v, candidate); err == nil && order == 0 {
				return true, nil
			}
		}
		return false, nil
	case OpLength:
		n, err := length(v)
		if err != nil {
			return false, err
		}
		want, err := argInt(c.arg)
		if err != nil {
			return false, err
		}
		return n == want, nil
	case OpMinLength:
		n, err := length(v)
		if err != nil {
			return false, err
		}
		want, err := argInt(c.arg)
		if err != nil {
			return false, err
		}
		if inclusiveLength {
			return n >= want, nil
		}
		return n > want, nil
	case OpMaxLength:
		n, err := length(v)
		if err != nil {
			return false, err
		}
		want, err := argInt(c.arg)
		if err != nil {
			return false, err
		}
		if inclusiveLength {
			return n <= want, nil
		}
		return n < want, nil
	case OpPattern:
		pattern, ok := c.arg.(string)
		if !ok {
			return false, &InvalidConstraintError{Op: string(c.op), Reason: "pattern requires a string argument"}
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false, &InvalidConstraintError{Op: string(c.op), Reason: err.Error()}
		}
		s, ok := v.(string)
		if !ok {
			return false, &InvalidConstraintError{Op: string(c.op), Reason: "pattern requires a string value"}
		}
		loc := re.FindStringIndex(s)
		return loc != nil && loc[0] == 0, nil
	default:
		return false, &UnknownConstraintError{Operator: string(c.op)}
	}
}

// length reports the length of a string, slice, or map value in the sense
// TOSCA's length/min_length/max_length operators use.
func length(v any) (int64, error) {
	switch s := v.(type) {
	case string:
		return int64(len([]rune(s))), nil
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return int64(rv.Len()), nil
		default:
			return 0, fmt.Errorf("schema: cannot compute length of %T", v)
		}
	}
}

func argInt(arg any) (int64, error) {
	n, ok := value.GetInt64(arg)
	if !ok {
		return 0, fmt.Errorf("schema: constraint argument %v is not an integer", arg)
	}
	return n, nil
}

// diagCode exposes the diag code for a constraint evaluation failure, used
// by the instance validator when converting a failed Check into an issue.
func (c Constraint) diagCode() diag.Code {
	return diag.E_CONSTRAINT_FAIL
}
