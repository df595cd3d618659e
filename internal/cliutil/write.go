// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Label turns an identifier such as "already-published" or "release_folder"
// into a display label ("Already Published", "Release Folder").
func Label(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s))
	return cases.Title(language.English).String(s)
}

// Field writes an aligned "Label: value" line.
func Field(w io.Writer, label string, value any) {
	Writef(w, "%-14s %v\n", Label(label)+":", value)
}

// List writes a labelled, comma-separated list, or "none" when empty.
func List(w io.Writer, label string, values []string) {
	if len(values) == 0 {
		Field(w, label, "none")
		return
	}
	Field(w, label, strings.Join(values, ", "))
}
