package instance

import (
	"github.com/tosca-go/tosca/instance/eval"
	"github.com/tosca-go/tosca/schema"
)

// InterfaceOperationInstance is a materialized interface operation: its
// declared input schema, the template's fragment for it (if any), and the
// owning node's view for resolving deferred input values.
type InterfaceOperationInstance struct {
	name  string
	op    schema.Operation
	raw   map[string]any
	owner eval.NodeView
	topo  eval.Topology
}

func newInterfaceOperationInstance(name string, op schema.Operation, raw map[string]any, owner eval.NodeView, topo eval.Topology) *InterfaceOperationInstance {
	return &InterfaceOperationInstance{name: name, op: op, raw: raw, owner: owner, topo: topo}
}

// Name returns the operation name.
func (o *InterfaceOperationInstance) Name() string { return o.name }

// Operation returns the declared Operation schema.
func (o *InterfaceOperationInstance) Operation() schema.Operation { return o.op }

// Implementation returns the template's declared implementation
// reference, and whether one was present.
func (o *InterfaceOperationInstance) Implementation() (string, bool) {
	if o.raw == nil {
		return "", false
	}
	s, ok := o.raw["implementation"].(string)
	return s, ok
}

// Input materializes the named declared input, reading the template's
// interfaces[op_name].inputs[name] value if present.
func (o *InterfaceOperationInstance) Input(name string) (*Property, bool) {
	ps, ok := o.op.Input(name)
	if !ok {
		return nil, false
	}
	var raw any
	hasRaw := false
	if o.raw != nil {
		if inputs, ok2 := o.raw["inputs"].(map[string]any); ok2 {
			if v, ok3 := inputs[name]; ok3 {
				raw, hasRaw = v, true
			}
		}
	}
	return newProperty(name, ps, raw, hasRaw, o.owner, o.topo), true
}
