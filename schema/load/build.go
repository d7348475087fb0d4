package load

import (
	"fmt"
	"sort"

	"github.com/tosca-go/tosca/location"
	"github.com/tosca-go/tosca/schema"
)

// buildProperties converts a merged "properties" fragment into a
// name -> PropertySchema map.
func buildProperties(raw any) (map[string]schema.PropertySchema, error) {
	if raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("properties must be a mapping, got %T", raw)
	}
	out := make(map[string]schema.PropertySchema, len(m))
	for name, v := range m {
		ps, err := schema.ParsePropertySchema(name, v, location.Span{})
		if err != nil {
			return nil, err
		}
		out[name] = ps
	}
	return out, nil
}

// buildCapabilities converts a merged "capabilities" fragment into a
// name -> CapabilityRef map. Each entry may be a shorthand string (the
// capability type name) or a mapping with a "type" key.
func buildCapabilities(raw any) (map[string]schema.CapabilityRef, error) {
	if raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("capabilities must be a mapping, got %T", raw)
	}
	out := make(map[string]schema.CapabilityRef, len(m))
	for name, v := range m {
		switch t := v.(type) {
		case string:
			out[name] = schema.NewCapabilityRef(name, t)
		case map[string]any:
			typ, _ := t["type"].(string)
			out[name] = schema.NewCapabilityRef(name, typ)
		default:
			return nil, fmt.Errorf("capability %q must be a string or mapping, got %T", name, v)
		}
	}
	return out, nil
}

// buildRequirements converts a merged "requirements" fragment (an ordered
// sequence of single-key mappings) into an ordered RequirementSpec slice.
func buildRequirements(raw any) ([]schema.RequirementSpec, error) {
	if raw == nil {
		return nil, nil
	}
	seq, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("requirements must be a sequence, got %T", raw)
	}
	out := make([]schema.RequirementSpec, 0, len(seq))
	for _, entry := range seq {
		m, ok := entry.(map[string]any)
		if !ok || len(m) == 0 {
			return nil, fmt.Errorf("each requirement entry must be a non-empty mapping, got %v", entry)
		}
		name := soleKey(m)
		detail, _ := m[name].(map[string]any)

		capability, _ := detail["capability"].(string)
		node, _ := detail["node"].(string)
		relationship, _ := detail["relationship"].(string)
		lower := intField(detail, "lower_bound", 1)
		upper := intField(detail, "upper_bound", 1)

		out = append(out, schema.NewRequirementSpec(name, capability, node, relationship, lower, upper))
	}
	return out, nil
}

// buildInterfaces converts a merged "interfaces" fragment -- a sequence of
// interface type names, a single string, or a mapping of interface name to
// {type?, inputs?} -- into an interface-name -> interface-type-name map.
func buildInterfaces(raw any) (map[string]string, error) {
	if raw == nil {
		return nil, nil
	}
	switch t := raw.(type) {
	case string:
		return map[string]string{t: t}, nil
	case []any:
		out := make(map[string]string, len(t))
		for _, v := range t {
			name, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("interface sequence entries must be strings, got %T", v)
			}
			out[name] = name
		}
		return out, nil
	case map[string]any:
		out := make(map[string]string, len(t))
		for name, v := range t {
			switch detail := v.(type) {
			case string:
				// Shorthand form: `Standard: tosca.interfaces.Standard`.
				out[name] = detail
			case map[string]any:
				if typ, ok := detail["type"].(string); ok && typ != "" {
					out[name] = typ
					continue
				}
				out[name] = name
			default:
				out[name] = name
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("interfaces must be a string, sequence, or mapping, got %T", raw)
	}
}

// buildValidTargets converts a merged "valid_targets" fragment into a
// slice of type names.
func buildValidTargets(raw any) ([]string, error) {
	if raw == nil {
		return nil, nil
	}
	seq, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("valid_targets must be a sequence, got %T", raw)
	}
	out := make([]string, 0, len(seq))
	for _, v := range seq {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("valid_targets entries must be strings, got %T", v)
		}
		out = append(out, s)
	}
	return out, nil
}

// buildOperations converts an interface type's merged fragment (a mapping
// of operation name -> {description?, inputs?}) into an Operation map.
func buildOperations(frag map[string]any) (map[string]schema.Operation, error) {
	out := make(map[string]schema.Operation, len(frag))
	for name, v := range frag {
		if name == "derived_from" {
			continue
		}
		detail, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("operation %q must be a mapping, got %T", name, v)
		}
		desc, _ := detail["description"].(string)
		inputs, err := buildProperties(detail["inputs"])
		if err != nil {
			return nil, fmt.Errorf("operation %q inputs: %w", name, err)
		}
		out[name] = schema.NewOperation(name, desc, inputs)
	}
	return out, nil
}

func soleKey(m map[string]any) string {
	if len(m) == 1 {
		for k := range m {
			return k
		}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys[0]
}

func intField(m map[string]any, key string, def int) int {
	v, ok := m[key]
	if !ok {
		return def
	}
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case string:
		if t == "UNBOUNDED" {
			return -1
		}
		return def
	default:
		return def
	}
}
