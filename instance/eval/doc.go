// Package eval resolves deferred property values (get_input, get_property,
// get_ref_property) against a topology. It depends only on small,
// duck-typed interfaces — Topology, NodeView, CapabilityView, InputView —
// so the instance and topology packages can implement them without either
// importing eval's caller, avoiding an import cycle between instance and
// topology.
package eval
