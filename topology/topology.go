package topology

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/tosca-go/tosca/diag"
	"github.com/tosca-go/tosca/instance"
	"github.com/tosca-go/tosca/instance/eval"
	"github.com/tosca-go/tosca/internal/trace"
	"github.com/tosca-go/tosca/location"
	"github.com/tosca-go/tosca/schema"
	"github.com/tosca-go/tosca/schema/load"
)

// Topology is the parsed template document plus a reference to its type
// hierarchy. It is created once per document load, is logically
// immutable after [Topology.BindInputs] completes, and may then be shared
// for concurrent reads without external synchronization.
type Topology struct {
	mu sync.RWMutex

	sourceID location.SourceID
	version  string
	metadata map[string]string

	hierarchy *schema.TypeHierarchy
	inputs    map[string]*Input
	outputs   map[string]*Output
	templates map[string]*instance.NodeInstance
}

var _ eval.Topology = (*Topology)(nil)

// Load parses root (a decoded topology document) into a Topology: its own
// node_types/capability_types/relation_types extensions are registered on
// top of the base hierarchy (a fresh one if WithBaseHierarchy is not
// given), then inputs, outputs, and node_templates are materialized.
func Load(col *diag.Collector, sourceID location.SourceID, root map[string]any, opts ...Option) (*Topology, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	op := trace.Begin(context.Background(), cfg.logger, "tosca.topology.load",
	)
	var retErr error
	defer func() {
		if op != nil {
			op.End(retErr)
		}
	}()

	hier := cfg.hierarchy
	if hier == nil {
		hier = schema.NewTypeHierarchy()
	}

	extensions := documentTypeExtensions(root)
	if len(extensions) > 0 {
		if err := load.LoadInto(hier, col, extensions, load.WithIssueLimit(cfg.issueLimit)); err != nil {
			retErr = err
			return nil, err
		}
	}

	t := &Topology{
		sourceID:  sourceID,
		hierarchy: hier,
		inputs:    make(map[string]*Input),
		outputs:   make(map[string]*Output),
		templates: make(map[string]*instance.NodeInstance),
	}
	t.version, _ = root["tosca_definitions_version"].(string)
	t.metadata = stringMetadata(root)

	if err := t.loadInputs(root); err != nil {
		retErr = err
		return nil, err
	}
	t.loadOutputs(root)
	if err := t.loadTemplates(root); err != nil {
		retErr = err
		return nil, err
	}

	trace.DebugLazy(context.Background(), cfg.logger, "tosca.topology.load.templates", func() []slog.Attr {
		trees := make([]any, 0, len(t.templates))
		for _, n := range t.templates {
			trees = append(trees, n.DebugTree())
		}
		return []slog.Attr{slog.Any("templates", trees)}
	})

	return t, nil
}

// documentTypeExtensions collects a document's own node_types/
// capability_types/relation_types sections. relationship_types is accepted
// as an alias for relation_types, so documents written against either key
// load without a structural error.
func documentTypeExtensions(root map[string]any) map[string]any {
	out := make(map[string]any)
	for _, key := range []string{"node_types", "capability_types", "relation_types", "relationship_types"} {
		section, ok := root[key].(map[string]any)
		if !ok {
			continue
		}
		for name, frag := range section {
			out[name] = frag
		}
	}
	return out
}

func stringMetadata(root map[string]any) map[string]string {
	out := make(map[string]string, 4)
	for _, key := range []string{"description", "template_name", "template_author", "template_version"} {
		if s, ok := root[key].(string); ok {
			out[key] = s
		}
	}
	return out
}

func (t *Topology) loadInputs(root map[string]any) error {
	m, ok := root["inputs"].(map[string]any)
	if !ok {
		return nil
	}
	for name, v := range m {
		ps, err := schema.ParsePropertySchema(name, v, location.Span{})
		if err != nil {
			return err
		}
		t.inputs[name] = &Input{name: name, schema: ps}
	}
	return nil
}

func (t *Topology) loadOutputs(root map[string]any) {
	m, ok := root["outputs"].(map[string]any)
	if !ok {
		return
	}
	for name, v := range m {
		detail, _ := v.(map[string]any)
		desc, _ := detail["description"].(string)
		out := &Output{name: name, description: desc, topo: t}
		if detail != nil {
			out.raw = detail["value"]
		}
		t.outputs[name] = out
	}
}

func (t *Topology) loadTemplates(root map[string]any) error {
	m, ok := root["node_templates"].(map[string]any)
	if !ok {
		return nil
	}
	for name, v := range m {
		frag, _ := v.(map[string]any)
		typeName, _ := frag["type"].(string)
		typ, ok := t.hierarchy.GetKind(typeName, schema.NodeKind)
		if !ok {
			return &UnknownTemplateTypeError{Template: name, TypeName: typeName}
		}
		t.templates[name] = instance.NewNodeInstance(name, frag, typ, t.hierarchy, t, nil)
	}
	return nil
}

// Hierarchy returns the topology's type hierarchy.
func (t *Topology) Hierarchy() *schema.TypeHierarchy { return t.hierarchy }

// Version returns the tosca_definitions_version string.
func (t *Topology) Version() string { return t.version }

// Metadata returns the description/template_name/template_author/
// template_version metadata strings present on the document.
func (t *Topology) Metadata() map[string]string {
	out := make(map[string]string, len(t.metadata))
	for k, v := range t.metadata {
		out[k] = v
	}
	return out
}

// GetInput returns the named input, or false if not declared.
func (t *Topology) GetInput(name string) (*Input, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	in, ok := t.inputs[name]
	return in, ok
}

// GetOutput returns the named output, or false if not declared.
func (t *Topology) GetOutput(name string) (*Output, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out, ok := t.outputs[name]
	return out, ok
}

// GetTemplate returns the named node template, or false if not declared.
func (t *Topology) GetTemplate(name string) (*instance.NodeInstance, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.templates[name]
	return n, ok
}

// Inputs returns every declared input, sorted by name.
func (t *Topology) Inputs() []*Input {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return sortedValues(t.inputs, func(i *Input) string { return i.name })
}

// Outputs returns every declared output, sorted by name.
func (t *Topology) Outputs() []*Output {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return sortedValues(t.outputs, func(o *Output) string { return o.name })
}

// NodeTemplates returns every node template, sorted by name.
func (t *Topology) NodeTemplates() []*instance.NodeInstance {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return sortedValues(t.templates, func(n *instance.NodeInstance) string { return n.Name() })
}

func sortedValues[V any](m map[string]V, key func(V) string) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	return out
}

// BindInputs sets bound values for the given input names.
// Binding a name not declared as an input fails with UnknownInputError;
// binding an already-bound input fails with InputAlreadyBoundError. Either
// failure leaves previously applied bindings from the same call in place.
func (t *Topology) BindInputs(values map[string]any) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for name, v := range values {
		in, ok := t.inputs[name]
		if !ok {
			return &UnknownInputError{Name: name}
		}
		if in.hasBound {
			return &InputAlreadyBoundError{Name: name}
		}
		in.bound = v
		in.hasBound = true
	}
	return nil
}

// Template satisfies [eval.Topology].
func (t *Topology) Template(name string) (eval.NodeView, bool) {
	n, ok := t.GetTemplate(name)
	if !ok {
		return nil, false
	}
	return n.View(), true
}

// Input satisfies [eval.Topology].
func (t *Topology) Input(name string) (eval.InputView, bool) {
	return t.GetInput(name)
}
