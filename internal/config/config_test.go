package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaspublisher/oaserrors"
	"github.com/erraggy/oaspublisher/reconciler"
)

// chdir moves the test into an empty directory so no stray .env or config
// file is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.ConfigFile)
	assert.Empty(t, cfg.ReleaseFolder)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Nil(t, cfg.RemoveObjectExtensions)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "publisher.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
source: api/openapi.yaml
release-folder: releases
always-include-tags: [audit, " events "]
remove-object-extensions: x-package, x-internal
illegal-extensions:
  - x-property-ref
log-level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, "api/openapi.yaml", cfg.Source)
	assert.Equal(t, "releases", cfg.ReleaseFolder)
	assert.Equal(t, []string{"audit", "events"}, cfg.AlwaysIncludeTags)
	assert.Equal(t, []string{"x-package", "x-internal"}, cfg.RemoveObjectExtensions)
	assert.Equal(t, []string{"x-property-ref"}, cfg.IllegalExtensions)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_DefaultConfigFileInWorkingDir(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".oaspublisher.yaml"),
		[]byte("release-folder: out\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.ReleaseFolder)
	assert.NotEmpty(t, cfg.ConfigFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "publisher.yaml")
	require.NoError(t, os.WriteFile(path, []byte("release-folder: from-file\n"), 0o600))
	t.Setenv("OASPUBLISHER_RELEASE_FOLDER", "from-env")
	t.Setenv("OASPUBLISHER_REMOVE_PROPERTY_EXTENSIONS", "x-basename, ,x-short")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.ReleaseFolder)
	assert.Equal(t, []string{"x-basename", "x-short"}, cfg.RemovePropertyExtensions)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("OASPUBLISHER_RECONCILED_API=dist/api.yaml\n"), 0o600))
	// godotenv.Load sets process env; make sure it is cleaned up.
	t.Setenv("OASPUBLISHER_RECONCILED_API", "")
	require.NoError(t, os.Unsetenv("OASPUBLISHER_RECONCILED_API"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dist/api.yaml", cfg.ReconciledAPI)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := chdir(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
}

func TestApplyDefaults(t *testing.T) {
	t.Run("without release folder", func(t *testing.T) {
		cfg := &Config{}
		cfg.ApplyDefaults()
		assert.Empty(t, cfg.RemoveObjectExtensions)
		assert.Empty(t, cfg.RemovePropertyExtensions)
		assert.Empty(t, cfg.IllegalExtensions)
	})

	t.Run("with release folder", func(t *testing.T) {
		cfg := &Config{ReleaseFolder: "releases", IllegalExtensions: []string{"x-forbidden"}}
		cfg.ApplyDefaults()
		assert.Equal(t, reconciler.DefaultObjectExtensions, cfg.RemoveObjectExtensions)
		assert.Equal(t, reconciler.DefaultPropertyExtensions, cfg.RemovePropertyExtensions)
		assert.Equal(t, []string{"x-forbidden"}, cfg.IllegalExtensions)
		assert.Empty(t, cfg.AlwaysIncludeTags)

		policy := cfg.Policy()
		assert.True(t, policy.IsIllegal("x-forbidden"))
		assert.False(t, policy.IsIllegal("x-property-ref"))
		assert.True(t, policy.StripsPropertyExtension("x-basename"))
	})
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , "))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a,b ,"))
}
