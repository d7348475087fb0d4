// Package path provides canonical JSONPath-like syntax for identifying
// positions within a bound topology.
//
// # Path Syntax
//
// Paths always start with "$" (the root) and consist of segments:
//
//	$                      — root document
//	$.wordpress            — node template access (dot notation for identifier-safe names)
//	$["db-1"]              — node template access (bracket notation for other names)
//	$.wordpress[host]      — requirement slot access
//	$.mysql_database{database_endpoint} — capability access
//
// # Escaping
//
// Names use RFC 8259 JSON escape sequences when bracket-quoted:
//
//	\\ for literal backslash
//	\" for literal double quote
//	\n \r \t for whitespace
//	\uXXXX for unicode escapes
//
// # Builder Pattern
//
// The [Builder] type is immutable; each method returns a new Builder with
// the appended segment. This enables safe concurrent use:
//
//	p := path.Root().Key("wordpress").Slot("host")
//	fmt.Println(p.String()) // $.wordpress[host]
//
// # Thread Safety
//
// All types in this package are immutable and safe for concurrent use.
// The zero value of Builder represents the root path ($); use [Root] for clarity.
package path
