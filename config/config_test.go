/*
File    : tron/config/config_test.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsRemainingDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("print_pointer: \"=> \"\n"), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "=> ", cfg.PrintPointer)
	assert.Equal(t, defaultMaxCallDepth, cfg.MaxCallDepth)
}

func TestLoad_FullFileOverridesAllFields(t *testing.T) {
	dir := t.TempDir()
	contents := "print_pointer: \">> \"\nimport_paths:\n  - ./lib\n  - ./vendor\nmax_call_depth: 50\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(contents), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ">> ", cfg.PrintPointer)
	assert.Equal(t, []string{"./lib", "./vendor"}, cfg.ImportPaths)
	assert.Equal(t, 50, cfg.MaxCallDepth)
}

func TestLoad_MalformedFileIsError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("print_pointer: [unterminated\n"), 0o644))
	chdir(t, dir)

	_, err := Load()
	assert.Error(t, err)
}
