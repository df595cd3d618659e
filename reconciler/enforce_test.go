package reconciler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaspublisher/internal/testutil"
)

const renameYAML = `openapi: 3.0.3
info: {title: Rename, version: "1"}
components:
  schemas:
    Org:
      required: [organisationId, name]
      properties:
        organisationId:
          type: string
          format: uuid
          x-basename: oId
        name:
          type: string
          description: display name
          x-basename: n
        plain: {type: string}
        same:
          type: string
          x-basename: same
      additionalProperties:
        properties:
          longValue: {type: integer, x-basename: lv}
      anyOf:
        - properties:
            memberName: {type: string, x-basename: mn}
`

func TestRenameShortenedProperties(t *testing.T) {
	doc := testutil.ParseYAML(t, renameYAML)

	renames := RenameShortenedProperties(doc)

	assert.Equal(t, []PropertyRename{
		{Schema: "Org", From: "name", To: "n"},
		{Schema: "Org", From: "organisationId", To: "oId"},
		{Schema: "Org", From: "same", To: "same"},
		{Schema: "Org", Path: "additionalProperties", From: "longValue", To: "lv"},
		{Schema: "Org", Path: "anyOf[0]", From: "memberName", To: "mn"},
	}, renames)

	org := doc.Schemas()["Org"]
	assert.Equal(t, []string{"oId", "n"}, org.Required)
	assert.ElementsMatch(t, []string{"oId", "n", "plain", "same"}, org.SortedPropertyNames())

	assert.Equal(t, "organisationId", org.Properties["oId"].Description)
	assert.Equal(t, "uuid", org.Properties["oId"].Format)
	assert.Equal(t, "(name) - display name", org.Properties["n"].Description)
	assert.Equal(t, "same", org.Properties["same"].Description)
	assert.Nil(t, org.Properties["oId"].Extra)

	assert.Contains(t, org.AdditionalPropertiesSchema().Properties, "lv")
	assert.Contains(t, org.AnyOf[0].Properties, "mn")
}

func TestRenameShortenedProperties_Collision(t *testing.T) {
	doc := testutil.ParseYAML(t, `openapi: 3.0.3
info: {title: Rename, version: "1"}
components:
  schemas:
    S:
      required: [id, identifier]
      properties:
        id: {type: integer}
        identifier: {type: string, x-basename: id}
`)
	renames := RenameShortenedProperties(doc)
	require.Len(t, renames, 1)
	assert.True(t, renames[0].Replaced)

	s := doc.Schemas()["S"]
	assert.Equal(t, []string{"id"}, s.Required)
	assert.Equal(t, "string", s.Properties["id"].Type)
	assert.NotContains(t, s.Properties, "identifier")
}

func TestRenameShortenedProperties_Chained(t *testing.T) {
	doc := testutil.ParseYAML(t, `openapi: 3.0.3
info: {title: Rename, version: "1"}
components:
  schemas:
    S:
      required: [a, b]
      properties:
        a: {type: string, x-basename: b}
        b: {type: integer, x-basename: c}
`)
	renames := RenameShortenedProperties(doc)
	assert.Equal(t, []PropertyRename{
		{Schema: "S", From: "a", To: "b"},
		{Schema: "S", From: "b", To: "c"},
	}, renames)

	s := doc.Schemas()["S"]
	require.Len(t, s.Properties, 2)
	assert.Equal(t, "string", s.Properties["b"].Type)
	assert.Equal(t, "a", s.Properties["b"].Description)
	assert.Equal(t, "integer", s.Properties["c"].Type)
	assert.Equal(t, "b", s.Properties["c"].Description)
	assert.Equal(t, []string{"b", "c"}, s.Required)
}

const stripYAML = `openapi: 3.0.3
info: {title: Strip, version: "1"}
components:
  schemas:
    S:
      x-package: io.example
      x-publish-include: "true"
      x-keep: yes
      properties:
        p: {type: string, x-basename: q, x-other: 1}
      additionalProperties:
        x-package: nested
        properties:
          inner: {x-basename: i}
      allOf:
        - x-package: member
`

func TestStripExtensions_WithPropertySet(t *testing.T) {
	doc := testutil.ParseYAML(t, stripYAML)
	policy := NewPolicy(nil, []string{"x-package"}, []string{"x-basename"}, nil)

	stripped := StripExtensions(doc, policy)

	assert.Equal(t, []StrippedExtension{
		{Schema: "S", Extension: "x-package"},
		{Schema: "S", Extension: "x-publish-include"},
		{Schema: "S", Path: "properties.p", Extension: "x-basename"},
		{Schema: "S", Path: "additionalProperties", Extension: "x-package"},
		{Schema: "S", Path: "additionalProperties.properties.inner", Extension: "x-basename"},
		{Schema: "S", Path: "allOf[0]", Extension: "x-package"},
	}, stripped)

	s := doc.Schemas()["S"]
	assert.Equal(t, []string{"x-keep"}, s.ExtensionKeys())
	assert.Equal(t, []string{"x-other"}, s.Properties["p"].ExtensionKeys())
	assert.Empty(t, s.AllOf[0].ExtensionKeys())
}

func TestStripExtensions_ObjectOnlyDoesNotRecurse(t *testing.T) {
	doc := testutil.ParseYAML(t, stripYAML)
	policy := NewPolicy(nil, []string{"x-package"}, nil, nil)

	stripped := StripExtensions(doc, policy)

	assert.Equal(t, []StrippedExtension{
		{Schema: "S", Extension: "x-package"},
		{Schema: "S", Extension: "x-publish-include"},
	}, stripped)

	s := doc.Schemas()["S"]
	assert.True(t, s.AdditionalPropertiesSchema().HasExtension("x-package"))
	assert.True(t, s.AllOf[0].HasExtension("x-package"))
	assert.True(t, s.Properties["p"].HasExtension("x-basename"))
}

func TestDetectIllegalExtensions_None(t *testing.T) {
	doc := testutil.ParseYAML(t, stripYAML)
	assert.NoError(t, DetectIllegalExtensions(doc, NewPolicy(nil, nil, nil, []string{"x-property-ref"})))
}
