package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "catalog", cfg.Storage.Bucket)
	assert.Equal(t, "file", cfg.Catalog.Source)
	assert.Equal(t, 300, cfg.Catalog.CacheTTLSeconds)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.False(t, cfg.Collection.Strict)
	assert.True(t, cfg.Collection.Backup)
	assert.Empty(t, cfg.Resolver.NameSubstitutions)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "storage")
	t.Setenv("STORAGE_BUCKET", "snapshots")
	t.Setenv("COLLECTION_STRICT", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "storage", cfg.Catalog.Source)
	assert.Equal(t, "snapshots", cfg.Storage.Bucket)
	assert.True(t, cfg.Collection.Strict)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	// registered first so the value .env overloads is restored afterwards
	t.Setenv("SERVER_PORT", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9090\n"), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	yaml := `
catalog:
  path: /srv/scryfall
log:
  level: debug
resolver:
  alternate_set_codes:
    mbp3: [pmei]
  artist_substitutions:
    Ron Spenser: Ron Spencer
  name_substitutions:
    - old: Jotun
      new: Jötun
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/scryfall", cfg.Catalog.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"pmei"}, cfg.Resolver.AlternateSetCodes["mbp3"])
	assert.Equal(t, "Ron Spencer", cfg.Resolver.ArtistSubstitutions["ron spenser"])

	tables := cfg.ResolverTables()
	assert.Len(t, tables.NameSubstitutions, 3)
	assert.Equal(t, "Jötun", tables.NameSubstitutions[2].New)
	assert.Equal(t, []string{"pmei"}, tables.AlternateSetCodes["mbp"])
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("catalog: [unterminated"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
