package yaml

import "errors"

// ErrEmptyDocument is returned when the input contains no YAML document.
var ErrEmptyDocument = errors.New("yaml adapter: empty document")

// ErrNotAMapping is returned when the top-level document body is not a mapping.
var ErrNotAMapping = errors.New("yaml adapter: top-level document is not a mapping")

// ParseError wraps a goccy/go-yaml syntax error with the offending source.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return "yaml adapter: parse " + e.Source + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
