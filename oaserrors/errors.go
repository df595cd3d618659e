package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration or missing input.
	ErrConfig = errors.New("configuration error")

	// ErrIllegalExtension indicates a retained schema carries a forbidden extension.
	ErrIllegalExtension = errors.New("illegal extension")

	// ErrAlreadyPublished indicates an attempt to change a published version.
	ErrAlreadyPublished = errors.New("already published")

	// ErrNotUpToDate indicates the document differs from its recorded snapshot.
	ErrNotUpToDate = errors.New("not up to date")
)

// ParseError represents a failure to parse an OpenAPI document.
// This includes YAML/JSON deserialization errors and structural issues.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and unusable version strings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// IllegalExtension is a single forbidden extension found in a retained schema.
type IllegalExtension struct {
	// Schema is the name of the retained component schema
	Schema string
	// Path locates the offending node inside the schema (empty for the schema itself),
	// e.g. "properties.owner" or "allOf[1].properties.id"
	Path string
	// Extension is the forbidden extension key
	Extension string
}

// String returns "illegal extension: <key> in schema <name>[ at <path>]".
func (v IllegalExtension) String() string {
	s := "illegal extension: " + v.Extension + " in schema " + v.Schema
	if v.Path != "" {
		s += " at " + v.Path
	}
	return s
}

// IllegalExtensionError reports every forbidden extension found in a document.
// It is always fatal: the document must be fixed at its source.
type IllegalExtensionError struct {
	Violations []IllegalExtension
}

// Error returns a human-readable error message naming every violation.
func (e *IllegalExtensionError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return "illegal extensions detected: [" + strings.Join(parts, ", ") + "]"
}

// Is reports whether target matches this error type.
func (e *IllegalExtensionError) Is(target error) bool {
	return target == ErrIllegalExtension
}

// Schemas returns the distinct schema names with violations, in report order.
func (e *IllegalExtensionError) Schemas() []string {
	seen := make(map[string]bool, len(e.Violations))
	names := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if !seen[v.Schema] {
			seen[v.Schema] = true
			names = append(names, v.Schema)
		}
	}
	return names
}

// AlreadyPublishedError is returned when a published version's snapshot would change.
type AlreadyPublishedError struct {
	// Version is the published version that was about to be overwritten
	Version string
}

// Error returns a human-readable error message.
func (e *AlreadyPublishedError) Error() string {
	return fmt.Sprintf("API version %s has been published, you cannot update it, you must change the version", e.Version)
}

// Is reports whether target matches this error type.
func (e *AlreadyPublishedError) Is(target error) bool {
	return target == ErrAlreadyPublished
}

// NotUpToDateError is returned when publishing a document that does not match
// the snapshot recorded for its version.
type NotUpToDateError struct {
	// Version is the document version being published
	Version string
	// Missing is true when no snapshot exists at all
	Missing bool
}

// Error returns a human-readable error message.
func (e *NotUpToDateError) Error() string {
	reason := "differs from the snapshot on disk"
	if e.Missing {
		reason = "has no snapshot on disk"
	}
	return fmt.Sprintf("API version %s %s: it must be recorded and committed before publishing", e.Version, reason)
}

// Is reports whether target matches this error type.
func (e *NotUpToDateError) Is(target error) bool {
	return target == ErrNotUpToDate
}
