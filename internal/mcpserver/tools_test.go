package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaspublisher/internal/testutil"
	"github.com/erraggy/oaspublisher/parser"
)

func enricherSpec() specInput {
	return specInput{Content: testutil.EnricherYAML}
}

func TestReconcileTool_Inline(t *testing.T) {
	s := New(nil, nil)

	result, output, err := s.handleReconcile(context.Background(), &mcp.CallToolRequest{}, reconcileInput{
		Spec:            enricherSpec(),
		IncludeDocument: true,
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "Feature Enricher", output.Title)
	assert.Equal(t, testutil.EnricherVersion, output.Version)
	assert.Equal(t, []string{"EnrichedFeatures", "PublishEnvironment"}, output.Reachable)
	assert.Equal(t, []string{"Orphan"}, output.Pruned)
	assert.Equal(t, []renameOutput{{Schema: "PublishEnvironment", From: "environmentId", To: "eId"}}, output.Renamed)
	assert.Empty(t, output.Recorded)

	// Without a release folder no default strip lists apply.
	assert.Contains(t, output.Document, "x-package")
	assert.Contains(t, output.Document, "eId")
	assert.NotContains(t, output.Document, "Orphan")
}

func TestReconcileTool_IllegalExtension(t *testing.T) {
	s := New(nil, nil)

	result, _, err := s.handleReconcile(context.Background(), &mcp.CallToolRequest{}, reconcileInput{
		Spec:   enricherSpec(),
		Policy: policyInput{IllegalExtensions: []string{"x-package"}},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	text := result.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, text, "x-package")
	assert.Contains(t, text, "EnrichedFeatures")
}

func TestReconcileTool_Output(t *testing.T) {
	s := New(nil, nil)
	out := filepath.Join(t.TempDir(), "dist", "api.json")

	result, output, err := s.handleReconcile(context.Background(), &mcp.CallToolRequest{}, reconcileInput{
		Spec:   enricherSpec(),
		Output: out,
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, out, output.WrittenTo)
	assert.Empty(t, output.Document)

	parsed, err := parser.ParseWithOptions(parser.WithFilePath(out))
	require.NoError(t, err)
	assert.Equal(t, parser.SourceFormatJSON, parsed.SourceFormat)
	assert.Equal(t, []string{"EnrichedFeatures", "PublishEnvironment"}, testutil.SchemaNames(parsed.Document))
}

func TestReleaseTools_Lifecycle(t *testing.T) {
	s := New(nil, nil)
	folder := t.TempDir()
	ctx := context.Background()

	// Publishing before recording fails.
	result, _, err := s.handlePublish(ctx, &mcp.CallToolRequest{}, publishInput{Spec: enricherSpec(), ReleaseFolder: folder})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	result, rec, err := s.handleReconcile(ctx, &mcp.CallToolRequest{}, reconcileInput{Spec: enricherSpec(), ReleaseFolder: folder})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "created", rec.Recorded)
	assert.Positive(t, rec.Stripped)

	snapshot, err := os.ReadFile(filepath.Join(folder, testutil.EnricherVersion+".yaml"))
	require.NoError(t, err)
	assert.NotContains(t, string(snapshot), "x-package")
	assert.NotContains(t, string(snapshot), "x-basename")

	_, ledger, err := s.handleLedger(ctx, &mcp.CallToolRequest{}, ledgerInput{ReleaseFolder: folder})
	require.NoError(t, err)
	assert.Empty(t, ledger.Latest)
	assert.Equal(t, []ledgerVersion{{Version: testutil.EnricherVersion, State: stateKnown}}, ledger.Versions)

	result, pub, err := s.handlePublish(ctx, &mcp.CallToolRequest{}, publishInput{Spec: enricherSpec(), ReleaseFolder: folder})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, publishOutput{Version: testutil.EnricherVersion, Outcome: "published"}, pub)

	_, pub, err = s.handlePublish(ctx, &mcp.CallToolRequest{}, publishInput{Spec: enricherSpec(), ReleaseFolder: folder})
	require.NoError(t, err)
	assert.Equal(t, "already-published", pub.Outcome)

	_, ledger, err = s.handleLedger(ctx, &mcp.CallToolRequest{}, ledgerInput{ReleaseFolder: folder})
	require.NoError(t, err)
	assert.Equal(t, testutil.EnricherVersion, ledger.Latest)
	assert.Equal(t, []ledgerVersion{{Version: testutil.EnricherVersion, State: statePublished}}, ledger.Versions)
}

func TestReleaseTools_RequireFolder(t *testing.T) {
	s := New(nil, nil)

	result, _, err := s.handlePublish(context.Background(), &mcp.CallToolRequest{}, publishInput{Spec: enricherSpec()})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	result, _, err = s.handleLedger(context.Background(), &mcp.CallToolRequest{}, ledgerInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestLedgerTool_EmptyFolder(t *testing.T) {
	s := New(nil, nil)

	result, ledger, err := s.handleLedger(context.Background(), &mcp.CallToolRequest{}, ledgerInput{ReleaseFolder: t.TempDir()})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Empty(t, ledger.Latest)
	assert.Empty(t, ledger.Versions)
}
