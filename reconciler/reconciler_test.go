package reconciler

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaspublisher/internal/testutil"
	"github.com/erraggy/oaspublisher/oaserrors"
	"github.com/erraggy/oaspublisher/parser"
)

func defaultPolicy() Policy {
	return NewPolicy(nil, DefaultObjectExtensions, DefaultPropertyExtensions, DefaultIllegalExtensions)
}

func TestReconcile_Enricher(t *testing.T) {
	doc := testutil.NewEnricherDocument(t)

	result, err := Reconcile(doc, WithPolicy(defaultPolicy()))
	require.NoError(t, err)

	assert.Equal(t, []string{"EnrichedFeatures", "PublishEnvironment"}, result.Reachable)
	assert.Equal(t, []string{"EnrichedFeatures", "PublishEnvironment"}, testutil.SchemaNames(doc))
	assert.Equal(t, []string{"Orphan"}, result.Pruned)
	assert.True(t, result.HasPruned())

	require.Len(t, result.Renamed, 1)
	assert.Equal(t, PropertyRename{Schema: "PublishEnvironment", From: "environmentId", To: "eId"}, result.Renamed[0])

	env := doc.Schemas()["PublishEnvironment"]
	require.Contains(t, env.Properties, "eId")
	assert.NotContains(t, env.Properties, "environmentId")
	assert.Equal(t, []string{"eId"}, env.Required)
	assert.Equal(t, "(environmentId) - unique environment id", env.Properties["eId"].Description)
	assert.False(t, env.Properties["eId"].HasExtension(RenameExtension))

	assert.False(t, doc.Schemas()["EnrichedFeatures"].HasExtension("x-package"))
	assert.Contains(t, result.Stripped, StrippedExtension{Schema: "EnrichedFeatures", Extension: "x-package"})
}

func TestReconcile_IllegalExtensionsAreExhaustive(t *testing.T) {
	doc := testutil.ParseYAML(t, `openapi: 3.0.3
info: {title: Illegal, version: "1"}
paths:
  /a:
    get:
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema: {$ref: '#/components/schemas/A'}
components:
  schemas:
    A:
      x-property-ref: top
      properties:
        owner:
          x-property-ref: owner
          x-basename: o
        map:
          additionalProperties:
            properties:
              deep: {x-property-ref: deep}
      allOf:
        - $ref: '#/components/schemas/B'
        - properties:
            id: {x-property-ref: id}
    B:
      oneOf:
        - x-property-ref: variant
    Unused:
      x-property-ref: ignored
`)

	_, err := Reconcile(doc, WithPolicy(defaultPolicy()))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrIllegalExtension)

	var illegal *oaserrors.IllegalExtensionError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, []oaserrors.IllegalExtension{
		{Schema: "A", Path: "", Extension: "x-property-ref"},
		{Schema: "A", Path: "allOf[1].properties.id", Extension: "x-property-ref"},
		{Schema: "A", Path: "properties.map.additionalProperties.properties.deep", Extension: "x-property-ref"},
		{Schema: "A", Path: "properties.owner", Extension: "x-property-ref"},
		{Schema: "B", Path: "oneOf[0]", Extension: "x-property-ref"},
	}, illegal.Violations)
	assert.Equal(t, []string{"A", "B"}, illegal.Schemas())

	// detection runs before renaming: the original property name is kept
	assert.Contains(t, doc.Schemas()["A"].Properties, "owner")
	// unused schemas were pruned before the scan
	assert.NotContains(t, doc.Schemas(), "Unused")
}

func TestReconcile_NilDocument(t *testing.T) {
	_, err := Reconcile(nil)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
}

func TestReconcile_InvalidOption(t *testing.T) {
	failing := func(*reconcileConfig) error { return assert.AnError }
	_, err := Reconcile(&parser.Document{}, failing)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestReconcile_LogsPrunedSchemas(t *testing.T) {
	var buf bytes.Buffer
	logger := parser.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))

	_, err := Reconcile(testutil.NewEnricherDocument(t), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "API has unused schema objects")
	assert.Contains(t, buf.String(), "Orphan")
	assert.Contains(t, buf.String(), "title=\"Feature Enricher\"")
}

func TestReconcile_EveryRetainedSchemaIsReachable(t *testing.T) {
	doc := testutil.ParseYAML(t, graphYAML)
	policy := NewPolicy([]string{"audit"}, nil, nil, nil)
	reach := ComputeReachable(testutil.ParseYAML(t, graphYAML), policy)

	result, err := Reconcile(doc, WithPolicy(policy))
	require.NoError(t, err)

	assert.Equal(t, reach.Sorted(), testutil.SchemaNames(doc))
	assert.Equal(t, []string{"Orphan", "PatchOnly"}, result.Pruned)
}

func TestPrune_NoComponents(t *testing.T) {
	assert.Empty(t, Prune(&parser.Document{}, Reachability{}))
}
