package location

// PositionRegistry provides byte-offset-to-position conversion.
//
// This interface is implemented by source content registries that perform
// the conversion. The YAML adapter does not call it: it records spans from
// the parser's line/column positions and exposes its registry on
// Document.Registry for callers that need byte-offset conversion.
//
// The primary implementation is internal/source.Registry.
//
// Design rationale:
//
//  1. Foundation tier placement: PositionRegistry is defined in location
//     (foundation tier) because the interface operates on location.Position and
//     location.SourceID — natural cohesion with the location package.
//
//  2. Decouples the adapter from any single registry implementation: callers
//     can use any PositionRegistry, not just internal/source.Registry. This
//     enables testing with mock registries.
type PositionRegistry interface {
	// PositionAt converts a byte offset to a Position for the given source.
	//
	// Returns a zero Position (check via IsZero()) if:
	//   - The source is not registered
	//   - The byte offset is out of range
	//   - The byte offset is negative
	//
	// The returned Position has:
	//   - Line: 1-based line number
	//   - Column: 1-based rune offset from line start
	//   - Byte: The input byteOffset (echoed back for convenience)
	PositionAt(source SourceID, byteOffset int) Position
}
