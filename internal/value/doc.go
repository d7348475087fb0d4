// Package value provides deterministic value comparison for the TOSCA
// library's constraint evaluator.
//
// # Internal Package
//
// This package is internal to the TOSCA module and is not importable by
// external consumers per Go's internal/ package semantics. It is used by
// [schema.Constraint.Check] for comparison-based operators (equal,
// greater_than, in_range, valid_values, ...).
//
// # Value Comparison
//
// The package implements a total order over supported types for
// deterministic comparisons in constraint validation:
//
//   - [TypeStrata] classifies values into ordered strata: Nil < Bool < Numeric < String < Slice
//   - [ValueOrder] compares two values, returning -1/0/1 for ordering
//   - [Less] is a convenience wrapper for sort operations
//
// Supported types for comparison:
//   - nil
//   - bool (false < true)
//   - integers: int, int8-64, uint, uint8-64, uintptr
//   - floats: float32, float64 (with special handling: -Inf < finite < +Inf < NaN)
//   - string and *regexp.Regexp (regexp compared via String())
//   - slices of supported types (lexicographic comparison)
//
// IMPORTANT: Only predeclared scalar types are supported. Named scalar types
// (e.g., type MyInt int) return InvalidStrata and will cause ValueOrder to error.
// This is intentional for consistency across all value extraction functions.
// All slices are supported structurally (via reflect), but their elements must be
// supported types.
//
// Maps, structs, and other complex types are intentionally unsupported. Callers
// should normalize to supported primitives before ordering.
//
// # Float Precision Warning
//
// When large integers (> 2^53) are coerced to float64, precision may be lost.
// This is inherent to IEEE 754 floating-point representation, not a library
// limitation. For example, json.Number("9007199254740993") as Float loses
// precision because 9007199254740993 > 2^53 (JavaScript's MAX_SAFE_INTEGER).
// Schemas requiring exact large integers should use Integer type.
//
// # Large Unsigned Integer Comparison
//
// [ValueOrder] supports comparing uint64 values that exceed math.MaxInt64.
// On 64-bit platforms, uintptr values exceeding MaxInt64 are also supported
// (on 32-bit platforms, uintptr cannot hold such values).
// The comparison algorithm handles:
//   - Both unsigned: compared as uint64
//   - Mixed signed/unsigned: negative signed is always less than unsigned;
//     non-negative signed is compared as uint64
//   - Integer vs float: exact comparison via [CompareInt64Float64] or [CompareUint64Float64]
//
// # Mixed Float/Integer Comparison
//
// For mixed float/integer comparisons, [ValueOrder] uses [CompareInt64Float64] and
// [CompareUint64Float64] to preserve transitivity for values > 2^53. These functions
// convert the float to integer (not vice versa) when the float is a whole number,
// avoiding the precision loss that occurs when large integers are converted to float64.
//
// This ensures the ordering relation remains transitive across all supported values:
//   - ValueOrder(uint64(2^53+1), float64(2^53)) returns 1 (greater), not 0
//   - ValueOrder(int64(2^53+1), float64(2^53)) returns 1 (greater), not 0
//
// # Thread Safety
//
// All functions in this package are stateless and safe for concurrent use.
// No global state is maintained.
//
// # Stdlib-Only Dependencies
//
// This package depends only on stdlib. It has no dependencies on other packages
// and can be imported by any layer.
package value
