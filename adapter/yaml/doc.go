// Package yaml parses TOSCA schema and topology documents into plain
// map[string]any trees, optionally tracking source spans for every mapping
// key and sequence element (see [WithSpanTracking]; off by default).
//
// This is the sole caller-visible parsing boundary: nothing downstream of
// this package touches goccy/go-yaml's ast types directly. Consumers
// (schema/load, topology) operate on the generic tree plus a
// [location.Span] lookup keyed by the same dot/bracket path syntax used by
// instance/path.
//
// Each parsed [Document] also carries a [source.Registry] with the raw
// bytes registered under its SourceID, so a caller can later configure a
// [diag.Renderer] with [diag.WithSourceProvider] to render source excerpts
// for issues collected while loading that document.
//
// # Architectural Boundary
//
// Adapters live at the outermost tier of the module, mirroring the
// library/consumer split used throughout:
//
//	adapter/yaml  ──imports──▶  location
//	adapter/yaml  ──imports──▶  internal/source
//
// Library packages (schema, instance, topology) never import adapter/yaml;
// they accept an already-decoded document plus a span lookup.
package yaml
