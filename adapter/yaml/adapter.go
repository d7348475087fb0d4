package yaml

import (
	"fmt"

	goyaml "github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/tosca-go/tosca/instance/path"
	"github.com/tosca-go/tosca/internal/source"
	"github.com/tosca-go/tosca/location"
)

// Adapter parses YAML bytes into a generic document tree with optional
// source span tracking for every mapping key and sequence element.
//
// Thread Safety: Adapter is safe for concurrent Parse calls after
// construction. The only state shared between Parse calls is the registry
// set by [WithSourceRegistry], which synchronizes its own access.
type Adapter struct {
	trackSpans bool
	registry   *source.Registry
}

// Option configures Adapter behavior.
type Option func(*Adapter)

// WithSpanTracking enables source position capture for parsed elements.
// When enabled, [Document.Spans] is populated; otherwise it is empty.
func WithSpanTracking(track bool) Option {
	return func(a *Adapter) {
		a.trackSpans = track
	}
}

// WithSourceRegistry shares a [source.Registry] across every document the
// Adapter parses. Each successful [Adapter.Parse] registers the document's
// raw bytes under its sourceID, so the registry can later back a
// [diag.Renderer] (via [diag.WithSourceProvider]) to render source
// excerpts for issues collected across multiple documents. If omitted, each
// Parse call gets its own private registry, exposed on [Document.Registry].
func WithSourceRegistry(reg *source.Registry) Option {
	return func(a *Adapter) {
		a.registry = reg
	}
}

// NewAdapter creates a new YAML adapter with the given options.
func NewAdapter(opts ...Option) *Adapter {
	a := &Adapter{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Document is the result of parsing a YAML document: a generic tree
// (map[string]any / []any / scalars) plus a span lookup keyed by the same
// path syntax instance/path uses ("$.tosca.nodes.WebServer").
type Document struct {
	SourceID location.SourceID
	Root     map[string]any
	Spans    map[string]location.Span

	// Registry backs [diag.SourceProvider]/[diag.LineIndexProvider] for
	// rendering source excerpts against issues whose spans reference
	// SourceID, and implements [location.PositionRegistry] for converting
	// a raw byte offset back to a line/column position.
	Registry *source.Registry
}

// SpanAt returns the recorded span for p, or a zero Span if none was
// captured (span tracking disabled, or p was never visited).
func (d *Document) SpanAt(p path.Builder) location.Span {
	return d.Spans[p.String()]
}

// Parse decodes data as a single YAML document rooted at sourceID.
//
// The top-level document body must be a mapping; Parse returns
// ErrNotAMapping otherwise. Syntax errors are wrapped in [ParseError].
func (a *Adapter) Parse(sourceID location.SourceID, data []byte) (*Document, error) {
	var root any
	if err := goyaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Source: sourceID.String(), Err: err}
	}
	if root == nil {
		return nil, ErrEmptyDocument
	}
	m, ok := root.(map[string]any)
	if !ok {
		return nil, ErrNotAMapping
	}

	reg := a.registry
	if reg == nil {
		reg = source.NewRegistry()
	}
	if err := reg.Register(sourceID, data); err != nil {
		return nil, &ParseError{Source: sourceID.String(), Err: err}
	}

	doc := &Document{
		SourceID: sourceID,
		Root:     m,
		Spans:    make(map[string]location.Span),
		Registry: reg,
	}

	if a.trackSpans {
		if err := a.collectSpans(sourceID, data, doc); err != nil {
			return nil, &ParseError{Source: sourceID.String(), Err: err}
		}
	}

	return doc, nil
}

// collectSpans walks the YAML AST purely to capture key/element source
// positions; decoded values come from the goyaml.Unmarshal pass above.
func (a *Adapter) collectSpans(sourceID location.SourceID, data []byte, doc *Document) error {
	file, err := parser.ParseBytes(data, parser.ParseComments)
	if err != nil {
		return err
	}
	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return nil
	}
	walkSpans(file.Docs[0].Body, path.Root(), sourceID, doc.Spans)
	return nil
}

func walkSpans(node ast.Node, p path.Builder, sourceID location.SourceID, spans map[string]location.Span) {
	node = unwrapNode(node)
	if node == nil {
		return
	}
	switch n := node.(type) {
	case *ast.MappingNode:
		for _, mv := range n.Values {
			walkMappingValue(mv, p, sourceID, spans)
		}
	case *ast.MappingValueNode:
		walkMappingValue(n, p, sourceID, spans)
	case *ast.SequenceNode:
		for i, v := range n.Values {
			child := p.Index(i)
			recordSpan(v, child, sourceID, spans)
			walkSpans(v, child, sourceID, spans)
		}
	}
}

func walkMappingValue(mv *ast.MappingValueNode, p path.Builder, sourceID location.SourceID, spans map[string]location.Span) {
	if mv == nil {
		return
	}
	key, ok := keyText(unwrapNode(mv.Key))
	if !ok {
		return
	}
	child := p.Key(key)
	recordSpan(mv.Value, child, sourceID, spans)
	walkSpans(mv.Value, child, sourceID, spans)
}

func keyText(node ast.Node) (string, bool) {
	if s, ok := node.(*ast.StringNode); ok {
		return s.Value, true
	}
	tok := node.GetToken()
	if tok == nil {
		return "", false
	}
	return tok.Value, true
}

func recordSpan(node ast.Node, p path.Builder, sourceID location.SourceID, spans map[string]location.Span) {
	node = unwrapNode(node)
	if node == nil {
		return
	}
	tok := node.GetToken()
	if tok == nil || tok.Position == nil {
		return
	}
	spans[p.String()] = location.Point(sourceID, tok.Position.Line, tok.Position.Column)
}

// unwrapNode resolves TagNode and AnchorNode wrappers to the underlying value node.
func unwrapNode(node ast.Node) ast.Node {
	for {
		switch n := node.(type) {
		case *ast.TagNode:
			node = n.Value
		case *ast.AnchorNode:
			node = n.Value
		default:
			return node
		}
	}
}

// fragmentAt returns the mapping fragment at key within m, erroring if
// present but not a mapping, for descending into node_types/
// capability_types/etc. sections.
func fragmentAt(m map[string]any, key string) (map[string]any, bool, error) {
	raw, ok := m[key]
	if !ok {
		return nil, false, nil
	}
	frag, ok := raw.(map[string]any)
	if !ok {
		return nil, true, fmt.Errorf("yaml adapter: key %q is not a mapping", key)
	}
	return frag, true, nil
}

// FragmentAt is the exported form of fragmentAt; it descends into a named
// top-level section of a parsed document.
func FragmentAt(m map[string]any, key string) (map[string]any, bool, error) {
	return fragmentAt(m, key)
}
