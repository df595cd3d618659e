package parser

import (
	"fmt"
	"slices"
)

// Schema represents a JSON Schema as used by OAS 3.x.
//
// Fields the reconciler traverses or rewrites are modelled explicitly.
// Validation keywords that are only carried through (minimum, pattern,
// discriminator, ...) live in Extra together with the x-* extensions.
type Schema struct {
	// JSON Schema Core
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Type validation
	Type    any    `yaml:"type,omitempty" json:"type,omitempty"` // string or []string (OAS 3.1+)
	Format  string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum    []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default any    `yaml:"default,omitempty" json:"default,omitempty"`
	Example any    `yaml:"example,omitempty" json:"example,omitempty"`

	// Object validation
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties any                `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"` // *Schema or bool

	// Array validation
	Items any `yaml:"items,omitempty" json:"items,omitempty"` // *Schema or bool (OAS 3.1+)

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	Not   *Schema   `yaml:"not,omitempty" json:"not,omitempty"`

	// OAS specific
	Nullable   bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	ReadOnly   bool `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly  bool `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	Deprecated bool `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	// and every keyword not modelled above
	Extra map[string]any `yaml:",inline" json:"-"`
}

// CompositionKind names one of the schema combinators.
type CompositionKind string

const (
	// CompositionAllOf is the allOf keyword
	CompositionAllOf CompositionKind = "allOf"
	// CompositionOneOf is the oneOf keyword
	CompositionOneOf CompositionKind = "oneOf"
	// CompositionAnyOf is the anyOf keyword
	CompositionAnyOf CompositionKind = "anyOf"
)

// CompositionMember is a single member of an allOf/oneOf/anyOf list.
type CompositionMember struct {
	Kind   CompositionKind
	Index  int
	Schema *Schema
}

// Path returns the member's location relative to its parent, e.g. "allOf[1]".
func (m CompositionMember) Path() string {
	return fmt.Sprintf("%s[%d]", m.Kind, m.Index)
}

// Compositions returns the non-nil allOf, oneOf and anyOf members, in that order.
func (s *Schema) Compositions() []CompositionMember {
	if s == nil {
		return nil
	}
	var members []CompositionMember
	add := func(kind CompositionKind, list []*Schema) {
		for i, member := range list {
			if member != nil {
				members = append(members, CompositionMember{Kind: kind, Index: i, Schema: member})
			}
		}
	}
	add(CompositionAllOf, s.AllOf)
	add(CompositionOneOf, s.OneOf)
	add(CompositionAnyOf, s.AnyOf)
	return members
}

// ItemsSchema returns Items when it is a schema, nil when absent or boolean.
func (s *Schema) ItemsSchema() *Schema {
	if s == nil {
		return nil
	}
	items, _ := s.Items.(*Schema)
	return items
}

// AdditionalPropertiesSchema returns AdditionalProperties when it is a schema,
// nil when absent or boolean.
func (s *Schema) AdditionalPropertiesSchema() *Schema {
	if s == nil {
		return nil
	}
	addProps, _ := s.AdditionalProperties.(*Schema)
	return addProps
}

// SortedPropertyNames returns a snapshot of the property names in sorted order.
// Callers may add or remove properties while ranging over the result.
func (s *Schema) SortedPropertyNames() []string {
	if s == nil || len(s.Properties) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// HasExtension reports whether the schema carries the given extension key.
func (s *Schema) HasExtension(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s.Extra[key]
	return ok
}

// Extension returns the raw value of an extension and whether it was present.
func (s *Schema) Extension(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.Extra[key]
	return v, ok
}

// ExtensionString returns the string form of a scalar extension value.
// Booleans and numbers are formatted (true becomes "true"); objects and lists
// are reported as absent.
func (s *Schema) ExtensionString(key string) (string, bool) {
	v, ok := s.Extension(key)
	if !ok || v == nil {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case map[string]any, []any:
		return "", false
	default:
		return fmt.Sprint(val), true
	}
}

// ExtensionKeys returns the sorted x-* keys present on the schema.
func (s *Schema) ExtensionKeys() []string {
	if s == nil {
		return nil
	}
	var keys []string
	for k := range s.Extra {
		if IsExtensionKey(k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// DeleteExtension removes an extension and reports whether it was present.
func (s *Schema) DeleteExtension(key string) bool {
	if !s.HasExtension(key) {
		return false
	}
	delete(s.Extra, key)
	if len(s.Extra) == 0 {
		s.Extra = nil
	}
	return true
}

// IsRequired reports whether name is listed in Required.
func (s *Schema) IsRequired(name string) bool {
	return s != nil && slices.Contains(s.Required, name)
}

// RemoveRequired drops name from Required and reports whether it was listed.
func (s *Schema) RemoveRequired(name string) bool {
	if s == nil {
		return false
	}
	idx := slices.Index(s.Required, name)
	if idx < 0 {
		return false
	}
	s.Required = slices.Delete(s.Required, idx, idx+1)
	return true
}

// ReplaceRequired swaps oldName for newName in Required, keeping its position.
// If newName is already required the old entry is simply removed.
// Returns false when oldName was not required.
func (s *Schema) ReplaceRequired(oldName, newName string) bool {
	if s == nil {
		return false
	}
	idx := slices.Index(s.Required, oldName)
	if idx < 0 {
		return false
	}
	if slices.Contains(s.Required, newName) {
		return s.RemoveRequired(oldName)
	}
	s.Required[idx] = newName
	return true
}

// IsExtensionKey returns true if the key starts with "x-".
func IsExtensionKey(key string) bool {
	return len(key) >= 2 && key[0] == 'x' && key[1] == '-'
}
