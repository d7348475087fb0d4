package topology

import (
	"log/slog"

	"github.com/tosca-go/tosca/schema"
)

// Option configures a Load call.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	hierarchy  *schema.TypeHierarchy
	issueLimit int
}

func defaultConfig() *config {
	return &config{
		logger:     slog.Default(),
		issueLimit: 100,
	}
}

// WithLogger sets the structured logger used for operation tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBaseHierarchy supplies a previously loaded TypeHierarchy (e.g. a
// shared library schema) that the document's own node_types/
// capability_types/relation_types extensions are registered alongside.
// If not set, Load builds a fresh, empty hierarchy.
func WithBaseHierarchy(h *schema.TypeHierarchy) Option {
	return func(c *config) { c.hierarchy = h }
}

// WithIssueLimit is passed on to [load.WithIssueLimit] when the document's
// own type extensions are loaded; it does not bound how many diagnostics are
// collected, which is set by the limit of the [diag.Collector] passed to Load.
func WithIssueLimit(limit int) Option {
	return func(c *config) { c.issueLimit = limit }
}
