package topology

import (
	"github.com/tosca-go/tosca/instance/eval"
	"github.com/tosca-go/tosca/schema"
)

// Input is a declared topology input: its schema and, once bound, the
// caller-supplied value. It satisfies [eval.InputView].
type Input struct {
	name      string
	schema    schema.PropertySchema
	bound     any
	hasBound  bool
}

// Name returns the input's name.
func (in *Input) Name() string { return in.name }

// Schema returns the input's declared schema.
func (in *Input) Schema() schema.PropertySchema { return in.schema }

// Bound reports whether a value has been bound via BindInputs.
func (in *Input) Bound() bool { return in.hasBound }

// Value returns the input's effective value: the bound value if one was
// set, else the schema's declared default, else undefined (false).
func (in *Input) Value() (any, bool) {
	if in.hasBound {
		return in.bound, true
	}
	return in.schema.Default()
}

// Output is a declared topology output: its documentation and a
// (possibly deferred) value expression resolved against the topology.
type Output struct {
	name        string
	description string
	raw         any
	topo        eval.Topology
}

// Name returns the output's name.
func (out *Output) Name() string { return out.name }

// Description returns the output's documentation, if any.
func (out *Output) Description() string { return out.description }

// Value resolves the output's effective value.
func (out *Output) Value() (any, error) {
	if out.raw == nil {
		return nil, nil
	}
	return eval.Resolve(out.topo, out.raw, nil)
}
