package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys_GetSet(t *testing.T) {
	cfg := &Config{}

	// Defaults before anything is set
	for key, want := range map[string]string{
		"output.colour": "auto",
		"scan.hidden":   "false",
		"batch.abort":   "false",
	} {
		got, err := cfg.Get(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
		assert.False(t, cfg.IsSet(key), key)
	}

	require.NoError(t, cfg.Set("output.colour", "false"))
	require.NoError(t, cfg.Set("scan.hidden", "true"))
	require.NoError(t, cfg.Set("batch.abort", "TRUE"))

	got, err := cfg.Get("output.colour")
	require.NoError(t, err)
	assert.Equal(t, "false", got)
	assert.True(t, cfg.IsSet("output.colour"))
	assert.True(t, cfg.ScanHidden())
	assert.True(t, cfg.BatchAbort())

	// auto clears the explicit colour choice
	require.NoError(t, cfg.Set("output.colour", "auto"))
	assert.False(t, cfg.IsSet("output.colour"))
	assert.Nil(t, cfg.Colour())
}

func TestSet_Invalid(t *testing.T) {
	cfg := &Config{}

	err := cfg.Set("scan.hidden", "yes")
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = cfg.Set("output.colour", "sometimes")
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = cfg.Set("no.such.key", "true")
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, err = cfg.Get("no.such.key")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestAll_CoversValidKeys(t *testing.T) {
	cfg := &Config{}
	all := cfg.All()

	for _, key := range ValidKeys() {
		_, ok := all[key]
		assert.True(t, ok, "All() missing %s", key)
	}
	assert.Len(t, all, len(ValidKeys()))
}

func TestSaveLoad_GlobalScope(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadScope(ScopeGlobal)
	require.NoError(t, err)
	require.NoError(t, cfg.Set("batch.abort", "true"))
	require.NoError(t, cfg.Save())

	_, err = os.Stat(GlobalPath())
	require.NoError(t, err, "Save should create the global config file")

	loaded, err := LoadScope(ScopeGlobal)
	require.NoError(t, err)
	assert.True(t, loaded.BatchAbort())
	assert.Equal(t, ScopeGlobal, loaded.Scope())
}

func TestLoad_PrefersLocal(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	global, err := LoadScope(ScopeGlobal)
	require.NoError(t, err)
	require.NoError(t, global.Set("scan.hidden", "true"))
	require.NoError(t, global.Save())

	local := &Config{}
	require.NoError(t, local.Set("scan.hidden", "false"))
	require.NoError(t, local.SaveScope(ScopeLocal))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, cfg.Scope())
	assert.False(t, cfg.ScanHidden())
	assert.True(t, cfg.IsSet("scan.hidden"), "local value should be explicit, not default")
}

func TestLoadScope_Malformed(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".ftag"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".ftag", "config.yaml"), []byte("output: [broken"), 0644))

	_, err := LoadScope(ScopeGlobal)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed config file")
}
