package complete

import (
	"fmt"

	"github.com/tosca-go/tosca/diag"
)

// Merge overlays child onto a deep copy of parent: mapping keys
// present in child override the parent's value at that key, recursing when
// both sides are mappings; sequences concatenate parent-then-child rather
// than replacing; scalars are replaced outright by the child's value. A key
// whose parent and child values are different shapes (e.g. a mapping
// overridden by a scalar) is reported as a Warning issue on col and the
// child's value wins. parent is never mutated.
func Merge(col *diag.Collector, typeName, key string, parent, child any) any {
	if parent == nil {
		return deepCopy(child)
	}
	if child == nil {
		return deepCopy(parent)
	}

	pm, pIsMap := parent.(map[string]any)
	cm, cIsMap := child.(map[string]any)
	if pIsMap && cIsMap {
		out := make(map[string]any, len(pm)+len(cm))
		for k, v := range pm {
			out[k] = deepCopy(v)
		}
		for k, v := range cm {
			out[k] = Merge(col, typeName, key+"."+k, pm[k], v)
		}
		return out
	}

	ps, pIsSeq := parent.([]any)
	cs, cIsSeq := child.([]any)
	if pIsSeq && cIsSeq {
		out := make([]any, 0, len(ps)+len(cs))
		for _, v := range ps {
			out = append(out, deepCopy(v))
		}
		for _, v := range cs {
			out = append(out, deepCopy(v))
		}
		return out
	}

	if (pIsMap || pIsSeq) && !sameShape(parent, child) {
		if col != nil {
			col.Collect(diag.NewIssue(diag.Warning, diag.E_SHAPE_MISMATCH,
				fmt.Sprintf("type %q: %q changes shape between parent and child; child value wins", typeName, key)).
				Build())
		}
	}
	return deepCopy(child)
}

func sameShape(a, b any) bool {
	_, aMap := a.(map[string]any)
	_, bMap := b.(map[string]any)
	if aMap != bMap {
		return false
	}
	_, aSeq := a.([]any)
	_, bSeq := b.([]any)
	return aSeq == bSeq
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = deepCopy(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = deepCopy(vv)
		}
		return out
	default:
		return v
	}
}
