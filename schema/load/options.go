package load

import (
	"log/slog"

	"github.com/tosca-go/tosca/location"
)

// SpanLookup resolves the source span for a top-level schema document key
// (a fully qualified type name). Implementations may return a zero Span
// when position tracking was not enabled on the originating adapter.
type SpanLookup func(qualifiedName string) location.Span

// Option configures a Load call.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	issueLimit int
	spanAt     SpanLookup
}

func defaultConfig() *config {
	return &config{
		logger:     slog.Default(),
		issueLimit: 100,
		spanAt:     func(string) location.Span { return location.Span{} },
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

// WithIssueLimit stores a diagnostics limit in the load configuration
// (default 100). Load and LoadInto do not consult the stored value; how many
// diagnostics are kept is set by the limit of the [diag.Collector] passed in.
func WithIssueLimit(limit int) Option {
	return func(c *config) { c.issueLimit = limit }
}

// WithSpanLookup supplies a function from top-level document key to source
// span, typically backed by an adapter/yaml Document.
func WithSpanLookup(fn SpanLookup) Option {
	return func(c *config) {
		if fn != nil {
			c.spanAt = fn
		}
	}
}
