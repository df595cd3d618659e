package reconciler

import (
	"slices"
	"strings"

	"github.com/erraggy/oaspublisher/parser"
)

// PropertyRename records one property renamed through its x-basename marker.
type PropertyRename struct {
	// Schema is the component schema containing the property
	Schema string
	// Path locates the renamed property's parent inside Schema ("" for the
	// schema itself, e.g. "allOf[0]")
	Path string
	// From is the original property name
	From string
	// To is the new property name
	To string
	// Replaced is true when a property already named To was overwritten
	Replaced bool
}

// RenameShortenedProperties renames every property that carries the
// x-basename marker to the marker's value, in every component schema of doc.
//
// The old name moves into the description as "(old) - description", or
// becomes the description when there was none; a required entry for the old
// name is replaced by the new name. The marker is removed afterwards. All
// markers of a schema are read before any property moves, so a rename onto a
// name that is itself marked does not lose that property. The
// schema's own additionalProperties and allOf/oneOf/anyOf members are
// processed recursively.
func RenameShortenedProperties(doc *parser.Document) []PropertyRename {
	schemas := doc.Schemas()
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	slices.Sort(names)

	var renames []PropertyRename
	for _, name := range names {
		renames = renameProperties(name, "", schemas[name], renames)
	}
	return renames
}

func renameProperties(schemaName, path string, s *parser.Schema, renames []PropertyRename) []PropertyRename {
	if s == nil {
		return renames
	}

	// Every marker is read before the map is rewritten, so a property renamed
	// onto a name that is itself marked still gets its own rename.
	type pending struct {
		from, to string
		prop     *parser.Schema
	}
	var moves []pending
	for _, oldName := range s.SortedPropertyNames() {
		prop := s.Properties[oldName]
		newName, ok := prop.ExtensionString(RenameExtension)
		if !ok {
			continue
		}
		newName = strings.TrimSpace(newName)
		prop.DeleteExtension(RenameExtension)
		if newName == "" {
			continue
		}
		moves = append(moves, pending{from: oldName, to: newName, prop: prop})
	}
	if len(moves) == 0 {
		return recurseRename(schemaName, path, s, renames)
	}

	renamed := make(map[string]string, len(moves))
	for _, m := range moves {
		if m.to != m.from {
			delete(s.Properties, m.from)
			renamed[m.from] = m.to
		}
	}
	for _, m := range moves {
		rename := PropertyRename{Schema: schemaName, Path: path, From: m.from, To: m.to}
		if m.to != m.from {
			_, rename.Replaced = s.Properties[m.to]
			s.Properties[m.to] = m.prop
		}
		if m.prop.Description != "" {
			m.prop.Description = "(" + m.from + ") - " + m.prop.Description
		} else {
			m.prop.Description = m.from
		}
		renames = append(renames, rename)
	}
	s.Required = renameRequired(s.Required, renamed)

	return recurseRename(schemaName, path, s, renames)
}

// renameRequired maps every required entry through renamed, dropping
// duplicates and keeping positions.
func renameRequired(required []string, renamed map[string]string) []string {
	if len(required) == 0 || len(renamed) == 0 {
		return required
	}
	out := make([]string, 0, len(required))
	for _, name := range required {
		if to, ok := renamed[name]; ok {
			name = to
		}
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

func recurseRename(schemaName, path string, s *parser.Schema, renames []PropertyRename) []PropertyRename {
	if addProps := s.AdditionalPropertiesSchema(); addProps != nil {
		renames = renameProperties(schemaName, joinPath(path, "additionalProperties"), addProps, renames)
	}
	for _, member := range s.Compositions() {
		renames = renameProperties(schemaName, joinPath(path, member.Path()), member.Schema, renames)
	}
	return renames
}
