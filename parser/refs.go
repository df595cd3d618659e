package parser

import (
	"net/url"
	"strings"
)

// SchemaRefPrefix is the JSON pointer prefix of the component schema dictionary.
const SchemaRefPrefix = "#/components/schemas/"

// SchemaName extracts the schema name from a reference path.
// Handles both URL-encoded and non-encoded refs. Returns "" for refs that do
// not point into the document's own schema dictionary.
func SchemaName(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, SchemaRefPrefix) {
		return strings.TrimPrefix(ref, SchemaRefPrefix)
	}

	decoded, err := url.PathUnescape(ref)
	if err == nil && strings.HasPrefix(decoded, SchemaRefPrefix) {
		return strings.TrimPrefix(decoded, SchemaRefPrefix)
	}

	return ""
}

// SchemaRef returns the reference path for a component schema name.
func SchemaRef(name string) string {
	return SchemaRefPrefix + name
}

// RefName returns the schema name referenced by s, or "" when s is nil or not a
// reference into the schema dictionary.
func (s *Schema) RefName() string {
	if s == nil {
		return ""
	}
	return SchemaName(s.Ref)
}
