package eval

// Resolve evaluates raw against topo, dispatching get_input/get_property/
// get_ref_property when raw is a single-key mapping naming one of those
// functions, and returning every other shape verbatim. parent
// is the NodeView that raw's owning property belongs to; it is only
// consulted by get_ref_property and may be nil otherwise.
func Resolve(topo Topology, raw any, parent NodeView, opts ...Option) (any, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	v, err := resolve(topo, raw, parent, cfg.maxDepth)
	if cyc, ok := err.(*ResolutionCycleError); ok {
		cyc.Limit = cfg.maxDepth
	}
	return v, err
}

func resolve(topo Topology, raw any, parent NodeView, depth int) (any, error) {
	m, ok := raw.(map[string]any)
	if !ok || len(m) != 1 {
		return raw, nil
	}

	var fn string
	var args any
	for k, v := range m {
		fn, args = k, v
	}

	switch fn {
	case "get_input":
		return resolveInput(topo, args, depth)
	case "get_property":
		return resolveProperty(topo, args, depth)
	case "get_ref_property":
		return resolveRefProperty(topo, args, parent, depth)
	default:
		return raw, nil
	}
}

func resolveInput(topo Topology, args any, depth int) (any, error) {
	name, ok := args.(string)
	if !ok {
		return nil, &InvalidDeferredFormError{Function: "get_input", Reason: "argument must be a string"}
	}
	input, ok := topo.Input(name)
	if !ok {
		return nil, &UnknownInputError{Name: name}
	}
	v, has := input.Value()
	if !has {
		return nil, nil
	}
	return descend(topo, v, nil, depth)
}

func resolveProperty(topo Topology, args any, depth int) (any, error) {
	seq, ok := args.([]any)
	if !ok || len(seq) != 2 {
		return nil, &InvalidDeferredFormError{Function: "get_property", Reason: "argument must be a two-element sequence [entity, property]"}
	}
	entityName, _ := seq[0].(string)
	propName, _ := seq[1].(string)

	target, ok := topo.Template(entityName)
	if !ok {
		return nil, &UnknownEntityError{Name: entityName}
	}
	rawVal, ok := target.DeclaredPropertyValue(propName)
	if !ok {
		return nil, &UnknownPropertyError{Entity: entityName, Property: propName}
	}
	return descend(topo, rawVal, target, depth)
}

func resolveRefProperty(topo Topology, args any, parent NodeView, depth int) (any, error) {
	seq, ok := args.([]any)
	if !ok || (len(seq) != 2 && len(seq) != 3) {
		return nil, &InvalidDeferredFormError{
			Function: "get_ref_property",
			Reason:   "argument must be a two- or three-element sequence [slot, property] or [slot, capability, property]",
		}
	}
	if parent == nil {
		return nil, &InvalidDeferredFormError{Function: "get_ref_property", Reason: "no originating entity in scope"}
	}
	slot, _ := seq[0].(string)

	targetName, ok := parent.RequirementTarget(slot)
	if !ok {
		return nil, &UnknownSlotError{Entity: parent.Name(), Slot: slot}
	}
	target, ok := topo.Template(targetName)
	if !ok {
		return nil, &UnknownEntityError{Name: targetName}
	}

	if len(seq) == 2 {
		propName, _ := seq[1].(string)
		rawVal, ok := target.DeclaredPropertyValue(propName)
		if !ok {
			return nil, &UnknownPropertyError{Entity: targetName, Property: propName}
		}
		return descend(topo, rawVal, target, depth)
	}

	capName, _ := seq[1].(string)
	propName, _ := seq[2].(string)
	cap, ok := target.Capability(capName)
	if !ok {
		return nil, &UnknownCapabilityPropertyError{Entity: targetName, Capability: capName, Property: propName}
	}
	rawVal, ok := cap.DeclaredPropertyValue(propName)
	if !ok {
		return nil, &UnknownCapabilityPropertyError{Entity: targetName, Capability: capName, Property: propName}
	}
	return descend(topo, rawVal, target, depth)
}

func descend(topo Topology, raw any, parent NodeView, depth int) (any, error) {
	if depth <= 0 {
		return nil, &ResolutionCycleError{Limit: DefaultMaxDepth}
	}
	return resolve(topo, raw, parent, depth-1)
}
