package instance

import (
	"github.com/tosca-go/tosca/instance/path"
	"github.com/tosca-go/tosca/location"
)

// Provenance captures source location metadata for error reporting. All
// methods are safe to call on a nil receiver, so a RawTemplate with no
// tracked position can still be navigated without special-casing.
type Provenance struct {
	sourceName string
	path       path.Builder
	span       location.Span
}

// NewProvenance creates a Provenance with the given source information.
func NewProvenance(sourceName string, p path.Builder, span location.Span) *Provenance {
	return &Provenance{sourceName: sourceName, path: p, span: span}
}

// SourceName returns the name of the source document.
func (p *Provenance) SourceName() string {
	if p == nil {
		return ""
	}
	return p.sourceName
}

// Path returns this provenance's location within the source document.
func (p *Provenance) Path() path.Builder {
	if p == nil {
		return path.Root()
	}
	return p.path
}

// Span returns the source location span.
func (p *Provenance) Span() location.Span {
	if p == nil {
		return location.Span{}
	}
	return p.span
}

// AtKey returns a new Provenance with the path extended by a mapping key.
func (p *Provenance) AtKey(key string) *Provenance {
	if p == nil {
		return &Provenance{path: path.Root().Key(key)}
	}
	return &Provenance{sourceName: p.sourceName, path: p.path.Key(key), span: p.span}
}

// AtSlot returns a new Provenance with the path extended by a requirement slot.
func (p *Provenance) AtSlot(name string) *Provenance {
	if p == nil {
		return &Provenance{path: path.Root().Slot(name)}
	}
	return &Provenance{sourceName: p.sourceName, path: p.path.Slot(name), span: p.span}
}

// RawTemplate is a single node_templates entry before it has been bound to
// a type: its name, its decoded fragment, and optional provenance.
type RawTemplate struct {
	Name       string
	Data       map[string]any
	Provenance *Provenance
}
