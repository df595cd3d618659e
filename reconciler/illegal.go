package reconciler

import (
	"cmp"
	"slices"

	"github.com/erraggy/oaspublisher/oaserrors"
	"github.com/erraggy/oaspublisher/parser"
)

// DetectIllegalExtensions scans every component schema of doc for extension
// keys the policy forbids. The scan covers the schema's own extensions, each
// property's extensions, property additionalProperties schemas and
// allOf/oneOf/anyOf members, recursively. Every violation is collected; when
// there is at least one, an *oaserrors.IllegalExtensionError is returned.
func DetectIllegalExtensions(doc *parser.Document, policy Policy) error {
	var violations []oaserrors.IllegalExtension
	for name, s := range doc.Schemas() {
		violations = detectIllegal(name, "", s, policy, violations)
	}
	if len(violations) == 0 {
		return nil
	}

	slices.SortFunc(violations, func(a, b oaserrors.IllegalExtension) int {
		return cmp.Or(
			cmp.Compare(a.Schema, b.Schema),
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.Extension, b.Extension),
		)
	})
	return &oaserrors.IllegalExtensionError{Violations: violations}
}

func detectIllegal(schemaName, path string, s *parser.Schema, policy Policy, found []oaserrors.IllegalExtension) []oaserrors.IllegalExtension {
	if s == nil {
		return found
	}

	found = appendIllegal(schemaName, path, s, policy, found)

	for _, propName := range s.SortedPropertyNames() {
		prop := s.Properties[propName]
		if prop == nil {
			continue
		}
		propPath := joinPath(path, "properties."+propName)
		found = appendIllegal(schemaName, propPath, prop, policy, found)
		if addProps := prop.AdditionalPropertiesSchema(); addProps != nil {
			found = detectIllegal(schemaName, joinPath(propPath, "additionalProperties"), addProps, policy, found)
		}
	}

	for _, member := range s.Compositions() {
		found = detectIllegal(schemaName, joinPath(path, member.Path()), member.Schema, policy, found)
	}
	return found
}

func appendIllegal(schemaName, path string, s *parser.Schema, policy Policy, found []oaserrors.IllegalExtension) []oaserrors.IllegalExtension {
	for _, key := range s.ExtensionKeys() {
		if policy.IsIllegal(key) {
			found = append(found, oaserrors.IllegalExtension{Schema: schemaName, Path: path, Extension: key})
		}
	}
	return found
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}
