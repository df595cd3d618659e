package mcpserver

import (
	"fmt"
	"strings"

	"github.com/erraggy/oaspublisher/internal/config"
	"github.com/erraggy/oaspublisher/parser"
	"github.com/erraggy/oaspublisher/reconciler"
)

// maxInlineSize bounds inline document content.
const maxInlineSize = 10 << 20

// specInput represents the two ways an OAS document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
}

// resolve parses the document. Every call returns a fresh document since
// reconciliation modifies it in place.
func (s specInput) resolve(logger parser.Logger) (*parser.ParseResult, error) {
	switch {
	case s.File != "" && s.Content != "":
		return nil, fmt.Errorf("exactly one of file or content must be provided (got 2)")
	case s.File != "":
		return parser.ParseWithOptions(parser.WithFilePath(s.File), parser.WithLogger(logger))
	case s.Content != "":
		if len(s.Content) > maxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead",
				len(s.Content), maxInlineSize)
		}
		return parser.ParseWithOptions(parser.WithReader(strings.NewReader(s.Content)), parser.WithLogger(logger))
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided (got 0)")
	}
}

// policyInput overrides the configured extension lists. An omitted list keeps
// the configured value.
type policyInput struct {
	AlwaysIncludeTags        []string `json:"always_include_tags,omitempty"        jsonschema:"Tags that force-include schemas marked with x-publish-include"`
	RemoveObjectExtensions   []string `json:"remove_object_extensions,omitempty"   jsonschema:"Extensions removed from every component schema"`
	RemovePropertyExtensions []string `json:"remove_property_extensions,omitempty" jsonschema:"Extensions removed from schema properties"`
	IllegalExtensions        []string `json:"illegal_extensions,omitempty"         jsonschema:"Extensions that make reconciliation fail when found in a retained schema"`
}

// settings merges the per-call overrides over the server defaults and applies
// the release-folder default lists.
func (s *Server) settings(policy policyInput, releaseFolder string) *config.Config {
	cfg := s.defaults
	if releaseFolder != "" {
		cfg.ReleaseFolder = releaseFolder
	}
	if policy.AlwaysIncludeTags != nil {
		cfg.AlwaysIncludeTags = policy.AlwaysIncludeTags
	}
	if policy.RemoveObjectExtensions != nil {
		cfg.RemoveObjectExtensions = policy.RemoveObjectExtensions
	}
	if policy.RemovePropertyExtensions != nil {
		cfg.RemovePropertyExtensions = policy.RemovePropertyExtensions
	}
	if policy.IllegalExtensions != nil {
		cfg.IllegalExtensions = policy.IllegalExtensions
	}
	cfg.ApplyDefaults()
	return &cfg
}

// reconcile parses and reconciles spec under cfg's policy.
func (s *Server) reconcile(spec specInput, cfg *config.Config) (*parser.ParseResult, *reconciler.Result, error) {
	parsed, err := spec.resolve(s.logger)
	if err != nil {
		return nil, nil, err
	}
	result, err := reconciler.Reconcile(parsed.Document,
		reconciler.WithPolicy(cfg.Policy()),
		reconciler.WithLogger(s.logger),
	)
	if err != nil {
		return nil, nil, err
	}
	return parsed, result, nil
}
