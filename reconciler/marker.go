package reconciler

import (
	"strings"

	"github.com/erraggy/oaspublisher/parser"
)

// includeMarker is the parsed value of a schema's publish-include extension.
type includeMarker struct {
	always bool
	tags   []string
}

// parseIncludeMarker reads the publish-include extension of s. Scalar values
// are read in their string form, so a YAML boolean true behaves like "true".
func parseIncludeMarker(s *parser.Schema) (includeMarker, bool) {
	raw, ok := s.ExtensionString(PublishIncludeExtension)
	if !ok {
		return includeMarker{}, false
	}
	if strings.TrimSpace(raw) == "true" {
		return includeMarker{always: true}, true
	}
	var m includeMarker
	for tag := range strings.SplitSeq(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			m.tags = append(m.tags, tag)
		}
	}
	return m, true
}

// matches reports whether the marker forces inclusion under p.
func (m includeMarker) matches(p Policy) bool {
	if m.always {
		return true
	}
	for _, tag := range m.tags {
		if p.forcesTag(tag) {
			return true
		}
	}
	return false
}

// indexIncludeMarkers parses every schema's marker once.
func indexIncludeMarkers(schemas map[string]*parser.Schema) map[string]includeMarker {
	index := make(map[string]includeMarker)
	for name, s := range schemas {
		if m, ok := parseIncludeMarker(s); ok {
			index[name] = m
		}
	}
	return index
}
