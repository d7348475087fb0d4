package load

import (
	"context"
	"fmt"
	"strings"

	"github.com/tosca-go/tosca/diag"
	"github.com/tosca-go/tosca/internal/trace"
	"github.com/tosca-go/tosca/location"
	"github.com/tosca-go/tosca/schema"
	"github.com/tosca-go/tosca/schema/internal/complete"
)

var kindOrder = [...]schema.EntityKind{
	schema.NodeKind, schema.CapabilityKind, schema.RelationKind, schema.InterfaceKind,
}

// Load parses root's top-level entries into a fresh TypeHierarchy (spec
// §4.1, §4.4). Entries are grouped by kind via their "tosca.<kind>." name
// prefix; each kind's derived_from graph is topologically sorted, and each
// type's raw fragment is merged with its parent's before being turned into
// a TypeDescriptor. Structural failures (a cyclic derivation chain, a
// malformed fragment, a duplicate type name) abort the load and return an
// error; shape-mismatch warnings during merge are collected on col but do
// not abort.
func Load(col *diag.Collector, root map[string]any, opts ...Option) (*schema.TypeHierarchy, error) {
	hier := schema.NewTypeHierarchy()
	if err := LoadInto(hier, col, root, opts...); err != nil {
		return nil, err
	}
	return hier, nil
}

// LoadInto loads root's type declarations into an existing hierarchy,
// registering new types alongside whatever it already holds. This is used
// to apply a topology document's own node_types/capability_types/
// relation_types extensions on top of a previously loaded base schema.
func LoadInto(hier *schema.TypeHierarchy, col *diag.Collector, root map[string]any, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	op := trace.Begin(context.Background(), cfg.logger, "tosca.schema.load")
	var retErr error
	defer func() {
		if op != nil {
			op.End(retErr)
		}
	}()

	for _, kind := range kindOrder {
		if err := loadKind(hier, col, root, kind, cfg); err != nil {
			retErr = err
			return err
		}
	}
	return nil
}

func loadKind(hier *schema.TypeHierarchy, col *diag.Collector, root map[string]any, kind schema.EntityKind, cfg *config) error {
	prefix := kind.Prefix()

	raw := make(map[string]map[string]any)
	parents := make(map[string]string)
	for key, val := range root {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		frag, ok := val.(map[string]any)
		if !ok {
			return &schema.SchemaParseError{Source: key, Err: fmt.Errorf("type fragment must be a mapping, got %T", val)}
		}
		raw[key] = frag
		parent, _ := frag["derived_from"].(string)
		parents[key] = parent
	}
	if len(raw) == 0 {
		return nil
	}

	order, cyclic, ok := complete.Linearize(parents)
	if !ok {
		err := &schema.CyclicDerivationError{Kind: kind, Names: cyclic}
		col.Collect(diag.NewIssue(diag.Fatal, diag.E_CYCLIC_DERIVATION, err.Error()).Build())
		return err
	}

	merged := make(map[string]map[string]any, len(order))
	for _, name := range order {
		frag := raw[name]
		parentName := parents[name]

		var parentArg any
		if parentFrag, ok := merged[parentName]; ok && parentName != "" {
			parentArg = parentFrag
		}

		mergedAny := complete.Merge(col, name, "", parentArg, any(frag))
		mergedFrag, _ := mergedAny.(map[string]any)
		merged[name] = mergedFrag

		span := cfg.spanAt(name)
		td, err := buildDescriptor(name, kind, parentName, mergedFrag, span)
		if err != nil {
			wrapped := &schema.SchemaParseError{Source: name, Err: err}
			col.Collect(diag.NewIssue(diag.Error, diag.E_DOCUMENT_PARSE, wrapped.Error()).WithSpan(span).Build())
			return wrapped
		}

		// parentName may name a type registered by an earlier, separate
		// Load/LoadInto call (e.g. a document's own node_types extending a
		// shared base schema) rather than one declared in this batch. Such
		// a parent never took part in the textual merge above, so its
		// fields are folded in here instead.
		if parentName != "" {
			if _, inBatch := merged[parentName]; !inBatch {
				if parent, ok := hier.GetKind(parentName, kind); ok {
					inheritExternal(td, parent, kind)
				}
			}
		}

		td.Seal()

		if err := hier.Register(td); err != nil {
			col.Collect(diag.NewIssue(diag.Error, diag.E_DUPLICATE_TYPE, err.Error()).WithSpan(span).Build())
			return err
		}
	}
	return nil
}

// inheritExternal folds parent's fields into td for keys td did not itself
// declare (own values always win); requirement/valid-target sequences are
// parent-then-own, matching the concatenation rule complete.Merge applies
// to same-document derivation.
func inheritExternal(td *schema.TypeDescriptor, parent *schema.TypeDescriptor, kind schema.EntityKind) {
	switch kind {
	case schema.NodeKind:
		props := parent.Properties()
		for k, v := range td.Properties() {
			props[k] = v
		}
		td.SetProperties(props)

		caps := parent.Capabilities()
		for k, v := range td.Capabilities() {
			caps[k] = v
		}
		td.SetCapabilities(caps)

		reqs := append(parent.Requirements(), td.Requirements()...)
		td.SetRequirements(reqs)

		ifaces := parent.Interfaces()
		for k, v := range td.Interfaces() {
			ifaces[k] = v
		}
		td.SetInterfaces(ifaces)

	case schema.CapabilityKind:
		props := parent.Properties()
		for k, v := range td.Properties() {
			props[k] = v
		}
		td.SetProperties(props)

	case schema.RelationKind:
		targets := append(parent.ValidTargets(), td.ValidTargets()...)
		td.SetValidTargets(targets)

		ifaces := parent.Interfaces()
		for k, v := range td.Interfaces() {
			ifaces[k] = v
		}
		td.SetInterfaces(ifaces)

	case schema.InterfaceKind:
		ops := parent.Operations()
		for k, v := range td.Operations() {
			ops[k] = v
		}
		td.SetOperations(ops)
	}
}

func buildDescriptor(name string, kind schema.EntityKind, parentName string, frag map[string]any, span location.Span) (*schema.TypeDescriptor, error) {
	td := schema.NewTypeDescriptor(name, kind, parentName, span)

	switch kind {
	case schema.NodeKind:
		props, err := buildProperties(frag["properties"])
		if err != nil {
			return nil, fmt.Errorf("properties: %w", err)
		}
		caps, err := buildCapabilities(frag["capabilities"])
		if err != nil {
			return nil, fmt.Errorf("capabilities: %w", err)
		}
		reqs, err := buildRequirements(frag["requirements"])
		if err != nil {
			return nil, fmt.Errorf("requirements: %w", err)
		}
		ifaces, err := buildInterfaces(frag["interfaces"])
		if err != nil {
			return nil, fmt.Errorf("interfaces: %w", err)
		}
		td.SetProperties(props)
		td.SetCapabilities(caps)
		td.SetRequirements(reqs)
		td.SetInterfaces(ifaces)

	case schema.CapabilityKind:
		props, err := buildProperties(frag["properties"])
		if err != nil {
			return nil, fmt.Errorf("properties: %w", err)
		}
		td.SetProperties(props)

	case schema.RelationKind:
		targets, err := buildValidTargets(frag["valid_targets"])
		if err != nil {
			return nil, fmt.Errorf("valid_targets: %w", err)
		}
		ifaces, err := buildInterfaces(frag["interfaces"])
		if err != nil {
			return nil, fmt.Errorf("interfaces: %w", err)
		}
		td.SetValidTargets(targets)
		td.SetInterfaces(ifaces)

	case schema.InterfaceKind:
		ops, err := buildOperations(frag)
		if err != nil {
			return nil, fmt.Errorf("operations: %w", err)
		}
		td.SetOperations(ops)
	}

	return td, nil
}
