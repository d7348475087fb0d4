// Package topology is the document façade: inputs, outputs, node
// templates, and input binding over a loaded type hierarchy.
// A Topology is created once per document load, is logically immutable
// after [Topology.BindInputs] completes, and may then be shared for
// concurrent reads.
package topology
