package cliutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Hello, %s!", "World")
	assert.Equal(t, "Hello, World!", buf.String())
}

func TestWritef_MultipleArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d items, %v active", "Status", 42, true)
	assert.Equal(t, "Status: 42 items, true active", buf.String())
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestWritef_WriteError(t *testing.T) {
	assert.NotPanics(t, func() {
		Writef(errorWriter{}, "This will fail")
	})
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"already-published": "Already Published",
		"release_folder":    "Release Folder",
		"created":           "Created",
		" pruned ":          "Pruned",
		"":                  "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Label(in), in)
	}
}

func TestFieldAndList(t *testing.T) {
	var buf bytes.Buffer
	Field(&buf, "version", "1.2.0")
	List(&buf, "pruned", []string{"Orphan", "Unused"})
	List(&buf, "renamed", nil)

	assert.Equal(t,
		"Version:       1.2.0\n"+
			"Pruned:        Orphan, Unused\n"+
			"Renamed:       none\n",
		buf.String())
}
