// Package tosca loads, validates, and resolves OASIS TOSCA Simple YAML
// Profile topology documents.
//
// A schema document declares node, capability, relationship, and interface
// types under single inheritance (derived_from); a topology document
// instantiates node templates against that schema, binds their requirements
// to capability-bearing targets, and exposes a lazy resolver for the three
// deferred value forms (get_input, get_property, get_ref_property).
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - location: Source positions, spans, and canonical paths
//	  - diag: Structured diagnostics with stable error codes
//	  - immutable: Read-only wrappers for safe data sharing
//
//	Core library tier:
//	  - schema: Type hierarchy, constraints, and schema-document loading
//	  - instance: Node/capability/relation materialization and validation
//	  - instance/eval: Deferred value resolution
//	  - topology: Topology-document binding and the read-shareable facade
//
//	Adapter tier:
//	  - adapter/yaml: Position-tracked YAML parsing
//
// # Entry Points
//
// Schema loading:
//
//	import "github.com/tosca-go/tosca/schema/load"
//
//	hierarchy, result, err := load.Load(ctx, "path/to/tosca_schema.yaml")
//	if err != nil {
//	    // I/O or internal error
//	}
//	if result.HasErrors() {
//	    // schema compilation errors: cyclic derivation, unknown base type, ...
//	}
//
// Topology binding:
//
//	import "github.com/tosca-go/tosca/topology"
//
//	topo, result, err := topology.Load(ctx, hierarchy, "path/to/topology.yaml")
//	if err != nil {
//	    // I/O or internal error
//	}
//	if err := topo.BindInputs(map[string]any{"cpus": 2}); err != nil {
//	    // InputAlreadyBoundError, UnknownInputError
//	}
//	node, err := topo.Node("wordpress")
//	failures := node.Validate()
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/tosca-go/tosca/diag]: Structured diagnostics
//   - [github.com/tosca-go/tosca/location]: Source location tracking
//   - [github.com/tosca-go/tosca/immutable]: Read-only data wrappers
//   - [github.com/tosca-go/tosca/schema]: Type hierarchy and constraints
//   - [github.com/tosca-go/tosca/schema/load]: Schema document loading
//   - [github.com/tosca-go/tosca/instance]: Node/capability/relation instances
//   - [github.com/tosca-go/tosca/instance/eval]: Deferred value resolution
//   - [github.com/tosca-go/tosca/topology]: Topology binding and facade
//   - [github.com/tosca-go/tosca/adapter/yaml]: YAML adapter
package tosca
