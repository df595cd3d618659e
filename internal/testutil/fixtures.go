// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/erraggy/oaspublisher/parser"
)

// EnricherVersion is info.version of EnricherYAML.
const EnricherVersion = "1.2.0"

// EnricherYAML is a small service document with two operations. GET /features/{id}
// returns EnrichedFeatures, POST /environments accepts PublishEnvironment, and
// Orphan is referenced by nothing.
const EnricherYAML = `openapi: 3.0.3
info:
  title: Feature Enricher
  version: 1.2.0
paths:
  /features/{id}:
    get:
      operationId: getFeatures
      parameters:
        - name: id
          in: path
          required: true
          schema:
            type: string
      responses:
        "200":
          description: enriched features
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/EnrichedFeatures'
  /environments:
    post:
      operationId: publishEnvironment
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/PublishEnvironment'
      responses:
        "204":
          description: published
components:
  schemas:
    EnrichedFeatures:
      type: object
      x-package: io.example.features
      properties:
        featureKeys:
          type: array
          items:
            type: string
    PublishEnvironment:
      type: object
      required:
        - environmentId
      properties:
        environmentId:
          type: string
          description: unique environment id
          x-basename: eId
    Orphan:
      type: object
      properties:
        name:
          type: string
`

// ParseYAML parses an inline document and fails the test on error.
func ParseYAML(t *testing.T, src string) *parser.Document {
	t.Helper()

	result, err := parser.ParseWithOptions(parser.WithBytes([]byte(src)))
	if err != nil {
		t.Fatalf("Failed to parse document: %v", err)
	}
	return result.Document
}

// NewEnricherDocument parses EnricherYAML into a fresh Document.
func NewEnricherDocument(t *testing.T) *parser.Document {
	t.Helper()
	return ParseYAML(t, EnricherYAML)
}

// WriteTempFile writes content to name inside a fresh temporary directory.
// Returns the path to the file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}

// WriteTempYAML renders a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempYAML(t *testing.T, doc *parser.Document) string {
	t.Helper()

	data, err := parser.MarshalYAML(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTempFile(t, "openapi.yaml", string(data))
}

// SchemaNames returns the sorted component schema names of doc.
func SchemaNames(doc *parser.Document) []string {
	var names []string
	for name := range doc.Schemas() {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
