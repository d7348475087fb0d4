package schema

import "strings"

// ShortName returns the last dot-separated segment of a fully qualified
// TOSCA type name, e.g. ShortName("tosca.nodes.WebApplication.WordPress")
// returns "WordPress".
func ShortName(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}

// stripKindPrefix removes the "tosca.<kind>." prefix from a qualified name,
// returning the remainder and whether the prefix matched.
func stripKindPrefix(qualified string, kind EntityKind) (string, bool) {
	prefix := kind.Prefix()
	if !strings.HasPrefix(qualified, prefix) {
		return "", false
	}
	return qualified[len(prefix):], true
}
