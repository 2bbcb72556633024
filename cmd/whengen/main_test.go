package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whengen/internal/config"
)

func TestCollectInputs_WalksDirectories(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.whengo"), []byte("package p\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "a.whengo"), []byte("package q\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain.go"), []byte("package p\n"), 0o644))

	inputs, err := collectInputs([]string{dir}, config.Default())

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "b.whengo"),
		filepath.Join(dir, "sub", "a.whengo"),
	}, inputs)
}

func TestCollectInputs_ExplicitFileKeepsSuffixCheck(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "main.whengo")
	require.NoError(t, os.WriteFile(in, []byte("package p\n"), 0o644))

	inputs, err := collectInputs([]string{in}, config.Default())

	require.NoError(t, err)
	assert.Equal(t, []string{in}, inputs)
}

func TestCollectInputs_RejectsExplicitFileWithWrongSuffix(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(in, []byte("package p\n"), 0o644))

	_, err := collectInputs([]string{in}, config.Default())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `.whengo`)
}

func TestCollectInputs_MissingPath(t *testing.T) {
	_, err := collectInputs([]string{filepath.Join(t.TempDir(), "nope")}, config.Default())

	require.Error(t, err)
}
