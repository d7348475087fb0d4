package instance

import (
	"fmt"

	"github.com/google/uuid"
)

// Validate runs the node's structural checks and returns a list of
// human-readable messages (empty = valid). Validation never aborts on an
// individual failure; it accumulates every applicable message and returns
// them. Malformed structure (e.g. an ambiguous requirement entry) is
// reported as a message here rather than surfaced as an error, per the
// validator's accumulate-and-return contract.
func (n *NodeInstance) Validate(inclusiveLength bool) []string {
	var messages []string

	messages = append(messages, n.validateRequirements()...)
	messages = append(messages, n.validateProperties(inclusiveLength)...)
	messages = append(messages, n.validateInterfaces()...)

	return messages
}

func (n *NodeInstance) validateRequirements() []string {
	relations, err := n.Requirements()
	if err != nil {
		return []string{err.Error()}
	}
	var messages []string
	for _, r := range relations {
		if r.Bound() {
			if _, ok := r.Target(); !ok {
				messages = append(messages, fmt.Sprintf("requirement %q targets unknown template %q", r.Slot(), r.targetName))
			}
			continue
		}
		if _, ok := r.RelationType(); !ok {
			messages = append(messages, fmt.Sprintf("requirement %q is unbound with unresolvable relation type %q", r.Slot(), r.RelationTypeName()))
		}
	}
	return messages
}

func (n *NodeInstance) validateProperties(inclusiveLength bool) []string {
	var messages []string
	for p := range n.Properties() {
		if !p.HasRawValue() {
			if _, hasDefault := p.Schema().Default(); !hasDefault {
				if p.Schema().Required() {
					messages = append(messages, fmt.Sprintf("property %q is required but has no value and no default", p.Name()))
				}
				continue
			}
		}
		failures, err := p.Check(inclusiveLength)
		if err != nil {
			messages = append(messages, fmt.Sprintf("property %q: %v", p.Name(), err))
			continue
		}
		messages = append(messages, failures...)

		if msg, ok := checkUUIDType(p); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}

// checkUUIDType validates properties declared with the "uuid" scalar type
// (a common extension for resource-correlation identifiers, outside the
// OASIS built-in type set) against RFC 4122 syntax. Reports nothing for
// any other declared type, an absent value, or a value already rejected
// by Check.
func checkUUIDType(p *Property) (string, bool) {
	if p.Schema().Type() != "uuid" {
		return "", false
	}
	v, err := p.Value()
	if err != nil || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Sprintf("property %q declared type uuid but value is %T, not a string", p.Name(), v), true
	}
	if _, err := uuid.Parse(s); err != nil {
		return fmt.Sprintf("property %q is not a valid uuid: %v", p.Name(), err), true
	}
	return "", false
}

func (n *NodeInstance) validateInterfaces() []string {
	ops, err := n.Interfaces()
	if err != nil {
		return []string{err.Error()}
	}
	var messages []string
	for _, op := range ops {
		impl, ok := op.Implementation()
		if !ok || impl == "" {
			messages = append(messages, fmt.Sprintf("interface operation %q has no implementation", op.Name()))
		}
	}
	return messages
}
