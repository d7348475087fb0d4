// Package instance materializes runtime entities — node, capability,
// relation, interface-operation — from a schema [schema.TypeDescriptor]
// plus a template fragment. Instances are views: they borrow
// from their owning topology for the duration of a query and do not
// outlive it.
//
// # Subpackages
//
//   - [instance/path] provides the JSONPath-like addressing syntax used
//     in diagnostics.
//   - [instance/eval] resolves deferred property values (get_input,
//     get_property, get_ref_property) against a duck-typed topology view.
package instance
