// Package load builds a [schema.TypeHierarchy] from an already-decoded
// schema document tree (a plain map[string]any, typically produced by
// adapter/yaml). It groups top-level entries by entity kind prefix,
// topologically sorts each kind's derived_from graph, merges each type's
// raw fragment with its parent's, and constructs the resulting
// TypeDescriptors.
package load
