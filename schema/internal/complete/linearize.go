// Package complete implements the type-hierarchy completion steps shared by
// schema loading: linearizing derived_from chains into a safe processing
// order and merging a child's raw declaration over its parent's completed
// one.
package complete

import "sort"

// Linearize orders the keys of parents (qualified type name -> qualified
// parent type name, "" for a root type) so that every type appears after
// its parent. It repeatedly removes types whose parent is
// already resolved, absent from the map (an externally-defined root such as
// a builtin base type), or empty. If an entire pass removes nothing while
// types remain, the remainder forms one or more derivation cycles and
// Linearize returns the unresolved names alongside ok=false.
func Linearize(parents map[string]string) (order []string, cyclic []string, ok bool) {
	remaining := make(map[string]string, len(parents))
	for name, parent := range parents {
		remaining[name] = parent
	}
	resolved := make(map[string]bool, len(parents))
	order = make([]string, 0, len(parents))

	for len(remaining) > 0 {
		var removedThisPass []string
		for name, parent := range remaining {
			if parent == "" || resolved[parent] {
				removedThisPass = append(removedThisPass, name)
				continue
			}
			if _, parentIsLocal := parents[parent]; !parentIsLocal {
				removedThisPass = append(removedThisPass, name)
			}
		}
		if len(removedThisPass) == 0 {
			remainder := make([]string, 0, len(remaining))
			for name := range remaining {
				remainder = append(remainder, name)
			}
			sort.Strings(remainder)
			return order, remainder, false
		}
		sort.Strings(removedThisPass)
		for _, name := range removedThisPass {
			order = append(order, name)
			resolved[name] = true
			delete(remaining, name)
		}
	}
	return order, nil, true
}
