package schema

// TypeHierarchy indexes completed TypeDescriptors by kind and name (spec
// §4.4). Lookup accepts either a fully qualified name or a short name; when
// a kind is not given explicitly, all four kinds are probed in a fixed
// order (nodes, capabilities, relations, interfaces).
type TypeHierarchy struct {
	byKind  [4]map[string]*TypeDescriptor // qualified name -> descriptor
	byShort [4]map[string]*TypeDescriptor // short name -> last-registered descriptor
}

// NewTypeHierarchy returns an empty TypeHierarchy.
func NewTypeHierarchy() *TypeHierarchy {
	h := &TypeHierarchy{}
	for i := range h.byKind {
		h.byKind[i] = make(map[string]*TypeDescriptor)
		h.byShort[i] = make(map[string]*TypeDescriptor)
	}
	return h
}

// Register adds a completed, sealed descriptor to the hierarchy. It returns
// a DuplicateTypeError if a type of the same kind and qualified name was
// already registered. A short-name collision within the kind is not an
// error: the most recently registered type wins that short name
// (qualified-name lookups remain unambiguous regardless).
func (h *TypeHierarchy) Register(t *TypeDescriptor) error {
	idx := int(t.Kind())
	if _, exists := h.byKind[idx][t.Name()]; exists {
		return &DuplicateTypeError{Kind: t.Kind(), Name: t.Name()}
	}
	h.byKind[idx][t.Name()] = t
	h.byShort[idx][t.ShortName()] = t
	return nil
}

// Get resolves name to a TypeDescriptor. If kinds is empty, all four kinds
// are probed in the fixed order (nodes, capabilities, relations,
// interfaces) and the first match wins. name is tried first as a fully
// qualified name and, failing that, as a short name (last-writer-wins on
// collision).
func (h *TypeHierarchy) Get(name string, kinds ...EntityKind) (*TypeDescriptor, bool) {
	probe := kindProbeOrder[:]
	if len(kinds) > 0 {
		probe = kinds
	}
	for _, k := range probe {
		idx := int(k)
		if t, ok := h.byKind[idx][name]; ok {
			return t, true
		}
	}
	for _, k := range probe {
		idx := int(k)
		if t, ok := h.byShort[idx][name]; ok {
			return t, true
		}
	}
	return nil, false
}

// GetKind resolves name within exactly one kind.
func (h *TypeHierarchy) GetKind(name string, kind EntityKind) (*TypeDescriptor, bool) {
	return h.Get(name, kind)
}

// All returns every registered descriptor of the given kind, in no
// particular order.
func (h *TypeHierarchy) All(kind EntityKind) []*TypeDescriptor {
	m := h.byKind[int(kind)]
	out := make([]*TypeDescriptor, 0, len(m))
	for _, t := range m {
		out = append(out, t)
	}
	return out
}

// Len returns the number of registered types of the given kind.
func (h *TypeHierarchy) Len(kind EntityKind) int {
	return len(h.byKind[int(kind)])
}
