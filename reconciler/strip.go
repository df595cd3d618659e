package reconciler

import (
	"slices"

	"github.com/erraggy/oaspublisher/parser"
)

// StrippedExtension records one extension removed from the document.
type StrippedExtension struct {
	// Schema is the component schema the extension was removed from
	Schema string
	// Path locates the node inside Schema ("" for the schema itself)
	Path string
	// Extension is the removed key
	Extension string
}

// StripExtensions removes the policy's object extensions from every component
// schema of doc, and the policy's property extensions from each schema's
// direct properties.
//
// Recursion into a schema's additionalProperties and allOf/oneOf/anyOf members
// only happens when the policy has property extensions configured; with an
// empty property set only the top-level object extensions are removed.
func StripExtensions(doc *parser.Document, policy Policy) []StrippedExtension {
	schemas := doc.Schemas()
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	slices.Sort(names)

	var stripped []StrippedExtension
	for _, name := range names {
		stripped = stripSchema(name, "", schemas[name], policy, stripped)
	}
	return stripped
}

func stripSchema(schemaName, path string, s *parser.Schema, policy Policy, stripped []StrippedExtension) []StrippedExtension {
	if s == nil {
		return stripped
	}

	for _, key := range s.ExtensionKeys() {
		if policy.StripsObjectExtension(key) && s.DeleteExtension(key) {
			stripped = append(stripped, StrippedExtension{Schema: schemaName, Path: path, Extension: key})
		}
	}

	if !policy.StripsProperties() {
		return stripped
	}

	for _, propName := range s.SortedPropertyNames() {
		prop := s.Properties[propName]
		for _, key := range prop.ExtensionKeys() {
			if policy.StripsPropertyExtension(key) && prop.DeleteExtension(key) {
				stripped = append(stripped, StrippedExtension{
					Schema:    schemaName,
					Path:      joinPath(path, "properties."+propName),
					Extension: key,
				})
			}
		}
	}

	if addProps := s.AdditionalPropertiesSchema(); addProps != nil {
		stripped = stripSchema(schemaName, joinPath(path, "additionalProperties"), addProps, policy, stripped)
	}
	for _, member := range s.Compositions() {
		stripped = stripSchema(schemaName, joinPath(path, member.Path()), member.Schema, policy, stripped)
	}
	return stripped
}
