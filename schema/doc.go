// Package schema loads and represents the TOSCA type hierarchy: the four
// entity kinds (nodes, capabilities, relations, interfaces), each a chain of
// types related by derived_from, merged parent-first into flat
// [TypeDescriptor] values.
//
// # Loading
//
// Schema documents are not parsed here; schema/load's Load and LoadInto
// build a [TypeHierarchy] from an already-decoded tree. This package
// operates purely on in-memory fragments (map[string]any), the same way
// the topology package decodes template documents.
//
// # Completion
//
// Within a kind, every type's derived_from chain is topologically sorted
// (schema/internal/complete) so parents are merged before children; the
// merge itself (schema/internal/complete) applies TOSCA's parent-first
// overlay: child mapping keys override parent keys, sequences concatenate
// parent-then-child, and scalars use the child's value.
package schema
