package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaspublisher/internal/testutil"
	"github.com/erraggy/oaspublisher/oaserrors"
	"github.com/erraggy/oaspublisher/parser"
	"github.com/erraggy/oaspublisher/release"
)

// captureOutput redirects the command streams for the duration of the test and
// isolates it in an empty working directory.
func captureOutput(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	t.Chdir(t.TempDir())

	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	t.Cleanup(func() { stdout, stderr = prevOut, prevErr })
	return out, errOut
}

func writeEnricher(t *testing.T) string {
	t.Helper()
	return testutil.WriteTempFile(t, "openapi.yaml", testutil.EnricherYAML)
}

func TestSetupReconcileFlags(t *testing.T) {
	fs, flags := SetupReconcileFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.Output)
		assert.Empty(t, flags.ReleaseFolder)
		assert.False(t, flags.Quiet)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-r", "releases", "-o", "dist/api.json", "--include-tags", "audit,events", "-q", "openapi.yaml"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "releases", flags.ReleaseFolder)
		assert.Equal(t, "dist/api.json", flags.Output)
		assert.Equal(t, "audit,events", flags.IncludeTags)
		assert.True(t, flags.Quiet)
		assert.Equal(t, "openapi.yaml", fs.Arg(0))
	})

	t.Run("long flags", func(t *testing.T) {
		fs2, flags2 := SetupReconcileFlags()
		args := []string{"--release-folder", "out", "--output", "api.yaml", "--illegal-extensions", "x-a", "--quiet"}
		require.NoError(t, fs2.Parse(args))

		assert.Equal(t, "out", flags2.ReleaseFolder)
		assert.Equal(t, "api.yaml", flags2.Output)
		assert.Equal(t, "x-a", flags2.IllegalExtensions)
		assert.True(t, flags2.Quiet)
	})
}

func TestLoadSettings(t *testing.T) {
	captureOutput(t)

	cfg, err := loadSettings(&PolicyFlags{
		ReleaseFolder:     "releases",
		IncludeTags:       "audit, events",
		IllegalExtensions: "x-forbidden",
		Quiet:             true,
	}, "openapi.yaml")
	require.NoError(t, err)

	assert.Equal(t, "openapi.yaml", cfg.Source)
	assert.Equal(t, []string{"audit", "events"}, cfg.AlwaysIncludeTags)
	assert.Equal(t, []string{"x-forbidden"}, cfg.IllegalExtensions)
	assert.Equal(t, []string{"x-basename"}, cfg.RemovePropertyExtensions)
	assert.Equal(t, "disabled", cfg.LogLevel)
}

func TestHandleReconcile(t *testing.T) {
	_, errOut := captureOutput(t)
	source := writeEnricher(t)
	folder := filepath.Join(t.TempDir(), "releases")
	output := filepath.Join(t.TempDir(), "api.json")

	err := HandleReconcile([]string{"--log-level", "error", "-r", folder, "-o", output, source})
	require.NoError(t, err)

	summary := errOut.String()
	assert.Contains(t, summary, "Pruned:        Orphan")
	assert.Contains(t, summary, "PublishEnvironment.environmentId -> eId")
	assert.Contains(t, summary, "Snapshot:      Created")

	ledger, err := release.ReadLedger(folder)
	require.NoError(t, err)
	assert.Equal(t, []string{testutil.EnricherVersion}, ledger.Versions)

	exported, err := parser.ParseWithOptions(parser.WithFilePath(output))
	require.NoError(t, err)
	assert.Equal(t, []string{"EnrichedFeatures", "PublishEnvironment"}, testutil.SchemaNames(exported.Document))
}

func TestHandleReconcile_IllegalExtension(t *testing.T) {
	captureOutput(t)
	source := writeEnricher(t)

	err := HandleReconcile([]string{"-q", "--illegal-extensions", "x-package", source})
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrIllegalExtension)
}

func TestHandleReconcile_NoSource(t *testing.T) {
	captureOutput(t)

	err := HandleReconcile([]string{"-q"})
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
	assert.ErrorContains(t, err, "no source document")

	err = HandlePublish([]string{"-q", "-r", t.TempDir()})
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
}

func TestHandleReconcile_Help(t *testing.T) {
	captureOutput(t)
	assert.NoError(t, HandleReconcile([]string{"--help"}))
}

func TestHandlePublish(t *testing.T) {
	out, errOut := captureOutput(t)
	source := writeEnricher(t)
	folder := t.TempDir()

	err := HandlePublish([]string{"-q", "-r", folder, source})
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrNotUpToDate)

	require.NoError(t, HandleReconcile([]string{"-q", "-r", folder, source}))
	require.NoError(t, HandlePublish([]string{"--log-level", "error", "-r", folder, source}))
	assert.Contains(t, errOut.String(), "Outcome:       Published")

	require.NoError(t, HandleLedger([]string{folder}))
	assert.Contains(t, out.String(), "Latest:        "+testutil.EnricherVersion)
	assert.Contains(t, out.String(), "Published")

	// Changing the published version's content is rejected.
	changed := testutil.WriteTempFile(t, "openapi.yaml",
		testutil.EnricherYAML+"    Extra:\n      type: object\n      x-publish-include: \"true\"\n")
	err = HandleReconcile([]string{"-q", "-r", folder, changed})
	assert.ErrorIs(t, err, oaserrors.ErrAlreadyPublished)
}

func TestHandlePublish_RequiresFolder(t *testing.T) {
	captureOutput(t)
	err := HandlePublish([]string{"-q", writeEnricher(t)})
	assert.ErrorContains(t, err, "requires a release folder")
}

func TestHandleLedger(t *testing.T) {
	t.Run("requires folder", func(t *testing.T) {
		captureOutput(t)
		assert.Error(t, HandleLedger(nil))
	})

	t.Run("empty folder", func(t *testing.T) {
		out, _ := captureOutput(t)
		require.NoError(t, HandleLedger([]string{t.TempDir()}))
		assert.Equal(t, "Latest:        none\nNo versions recorded\n", out.String())
	})

	t.Run("known version", func(t *testing.T) {
		out, _ := captureOutput(t)
		folder := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(folder, release.LedgerFileName),
			[]byte(`{"versions":["1.0.0"],"published":[]}`), 0o600))

		require.NoError(t, HandleLedger([]string{folder}))
		assert.Contains(t, out.String(), "1.0.0")
		assert.Contains(t, out.String(), "Known")
	})
}

func TestHandleMCP_RejectsArguments(t *testing.T) {
	captureOutput(t)
	assert.Error(t, HandleMCP([]string{"extra"}))
}
