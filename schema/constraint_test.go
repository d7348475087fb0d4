package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tosca-go/tosca/schema"
)

func mustConstraint(t *testing.T, op string, arg any) schema.Constraint {
	t.Helper()
	c, err := schema.NewConstraint(op, arg)
	require.NoError(t, err)
	return c
}

func TestConstraint_UnknownOperatorRejected(t *testing.T) {
	_, err := schema.NewConstraint("not_a_real_op", 1)
	require.Error(t, err)
	var unknown *schema.UnknownConstraintError
	require.ErrorAs(t, err, &unknown)
}

func TestConstraint_ComparisonOperators(t *testing.T) {
	cases := []struct {
		op   string
		arg  any
		v    any
		want bool
	}{
		{"equal", 5, 5, true},
		{"equal", 5, 6, false},
		{"greater_than", 0, 1, true},
		{"greater_than", 1, 1, false},
		{"greater_or_equal", 1, 1, true},
		{"less_than", 10, 9, true},
		{"less_than", 10, 10, false},
		{"less_or_equal", 10, 10, true},
	}
	for _, tc := range cases {
		c := mustConstraint(t, tc.op, tc.arg)
		got, err := c.Check(tc.v, false)
		require.NoError(t, err)
		require.Equalf(t, tc.want, got, "%s(%v) against %v", tc.op, tc.arg, tc.v)
	}
}

func TestConstraint_InRangeIsHalfOpen(t *testing.T) {
	c := mustConstraint(t, "in_range", []any{1, 10})
	ok, err := c.Check(1, false)
	require.NoError(t, err)
	require.True(t, ok, "lower bound is inclusive")

	ok, err = c.Check(10, false)
	require.NoError(t, err)
	require.False(t, ok, "upper bound is exclusive")

	ok, err = c.Check(0, false)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestConstraint_ValidValues(t *testing.T) {
	c := mustConstraint(t, "valid_values", []any{"a", "b", "c"})
	ok, err := c.Check("b", false)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.Check("z", false)
	require.NoError(t, err)
	require.False(t, ok)
}

// §4.5/§9: min_length/max_length default to the source's strict semantics
// (">"/"<"), with an inclusive mode toggled by the caller.
func TestConstraint_MinMaxLengthStrictVsInclusive(t *testing.T) {
	min := mustConstraint(t, "min_length", 3)

	ok, err := min.Check("abc", false)
	require.NoError(t, err)
	require.False(t, ok, "strict min_length requires length > arg")

	ok, err = min.Check("abc", true)
	require.NoError(t, err)
	require.True(t, ok, "inclusive min_length allows length == arg")

	max := mustConstraint(t, "max_length", 3)
	ok, err = max.Check("abc", false)
	require.NoError(t, err)
	require.False(t, ok, "strict max_length requires length < arg")

	ok, err = max.Check("abc", true)
	require.NoError(t, err)
	require.True(t, ok, "inclusive max_length allows length == arg")
}

func TestConstraint_Length(t *testing.T) {
	c := mustConstraint(t, "length", 5)
	ok, err := c.Check("hello", false)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.Check([]any{1, 2, 3, 4, 5}, false)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestConstraint_PatternMatchesAtStart(t *testing.T) {
	c := mustConstraint(t, "pattern", "^[a-z]+$")
	ok, err := c.Check("hello", false)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.Check("Hello", false)
	require.NoError(t, err)
	require.False(t, ok)
}
