package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ParseError{Path: "api.yaml", Message: "invalid syntax", Cause: errors.New("underlying error")}
		if msg := err.Error(); msg != "parse error in api.yaml: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		if !errors.Is(err, cause) {
			t.Error("errors.Is should find the cause")
		}
	})

	t.Run("Is matches sentinel", func(t *testing.T) {
		wrapped := fmt.Errorf("parser: %w", &ParseError{})
		if !errors.Is(wrapped, ErrParse) {
			t.Error("errors.Is(err, ErrParse) should be true")
		}
		if errors.Is(wrapped, ErrConfig) {
			t.Error("errors.Is(err, ErrConfig) should be false")
		}
	})
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "source", Value: "final.yaml", Message: "there is no source API file to process"}
	want := "configuration error for source (value: final.yaml): there is no source API file to process"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("errors.Is(err, ErrConfig) should be true")
	}
}

func TestIllegalExtensionError(t *testing.T) {
	err := &IllegalExtensionError{Violations: []IllegalExtension{
		{Schema: "Feature", Extension: "x-property-ref"},
		{Schema: "Feature", Path: "properties.owner", Extension: "x-property-ref"},
		{Schema: "Strategy", Path: "allOf[0]", Extension: "x-internal"},
	}}

	want := "illegal extensions detected: [" +
		"illegal extension: x-property-ref in schema Feature, " +
		"illegal extension: x-property-ref in schema Feature at properties.owner, " +
		"illegal extension: x-internal in schema Strategy at allOf[0]]"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}

	schemas := err.Schemas()
	if len(schemas) != 2 || schemas[0] != "Feature" || schemas[1] != "Strategy" {
		t.Errorf("unexpected schemas: %v", schemas)
	}

	var target *IllegalExtensionError
	if !errors.As(fmt.Errorf("reconciler: %w", err), &target) {
		t.Fatal("errors.As should find IllegalExtensionError")
	}
	if len(target.Violations) != 3 {
		t.Errorf("expected 3 violations, got %d", len(target.Violations))
	}
	if !errors.Is(err, ErrIllegalExtension) {
		t.Error("errors.Is(err, ErrIllegalExtension) should be true")
	}
}

func TestReleaseErrorsAreDistinct(t *testing.T) {
	published := &AlreadyPublishedError{Version: "1.1.1"}
	drift := &NotUpToDateError{Version: "1.1.1"}
	missing := &NotUpToDateError{Version: "1.1.1", Missing: true}

	if !errors.Is(published, ErrAlreadyPublished) || errors.Is(published, ErrNotUpToDate) {
		t.Error("AlreadyPublishedError should only match ErrAlreadyPublished")
	}
	if !errors.Is(drift, ErrNotUpToDate) || errors.Is(drift, ErrAlreadyPublished) {
		t.Error("NotUpToDateError should only match ErrNotUpToDate")
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"published", published, "API version 1.1.1 has been published, you cannot update it, you must change the version"},
		{"drift", drift, "API version 1.1.1 differs from the snapshot on disk: it must be recorded and committed before publishing"},
		{"missing", missing, "API version 1.1.1 has no snapshot on disk: it must be recorded and committed before publishing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("got %q, want %q", tt.err.Error(), tt.want)
			}
		})
	}
}
