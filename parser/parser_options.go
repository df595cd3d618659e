package parser

import (
	"fmt"
	"io"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger Logger

	// Source identification
	sourceName *string
}

// ParseWithOptions parses an OpenAPI document using functional options.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("openapi.yaml"),
//	    parser.WithLogger(logger),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{Logger: cfg.logger}

	var result *ParseResult
	var parseErr error
	switch {
	case cfg.filePath != nil:
		result, parseErr = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, parseErr = p.ParseReader(cfg.reader)
	default:
		result, parseErr = p.ParseBytes(cfg.bytes)
	}
	if parseErr != nil {
		return nil, parseErr
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	for _, set := range []bool{cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		return nil, fmt.Errorf("parser: must specify an input source (use WithFilePath, WithReader, or WithBytes)")
	case sources > 1:
		return nil, fmt.Errorf("parser: must specify exactly one input source")
	}
	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("parser: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("parser: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets the structured logger for debug output.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithSourceName overrides ParseResult.SourcePath, which is useful when
// parsing bytes or readers that have a meaningful name (e.g. inline MCP content).
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
