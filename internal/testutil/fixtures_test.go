package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaspublisher/parser"
)

// TestNewEnricherDocument verifies the shared fixture parses into the expected shape.
func TestNewEnricherDocument(t *testing.T) {
	doc := NewEnricherDocument(t)

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, EnricherVersion, doc.Version())
	assert.Equal(t, []string{"EnrichedFeatures", "Orphan", "PublishEnvironment"}, SchemaNames(doc))
	require.Contains(t, doc.Paths, "/environments")
	require.NotNil(t, doc.Paths["/environments"].Post)
}

// TestWriteTempYAML verifies a written document parses back to the same schemas.
func TestWriteTempYAML(t *testing.T) {
	path := WriteTempYAML(t, NewEnricherDocument(t))

	_, err := os.Stat(path)
	require.NoError(t, err)

	result, err := parser.ParseWithOptions(parser.WithFilePath(path))
	require.NoError(t, err)
	assert.Equal(t, []string{"EnrichedFeatures", "Orphan", "PublishEnvironment"}, SchemaNames(result.Document))
}

func TestSchemaNames_NoComponents(t *testing.T) {
	assert.Empty(t, SchemaNames(&parser.Document{}))
}
