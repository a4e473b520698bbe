package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlkit-dev/htmlkit/internal/errors"
)

// chdir moves the working directory for the duration of the test so
// the default-file lookup can be controlled.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadConversionsMissingDefaultTolerated(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	chdir(t, t.TempDir())

	names, err := LoadConversions()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLoadConversionsDefaultFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"conversions": ["a", "b"]}`), 0o644))
	chdir(t, dir)

	names, err := LoadConversions()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestLoadConversionsExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"conversions": ["only"]}`), 0o644))
	t.Setenv(EnvConfigPath, path)

	names, err := LoadConversions()
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, names)
}

func TestLoadConversionsMissingExplicitFails(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "nope.json"))

	_, err := LoadConversions()
	require.Error(t, err)

	var herr *errors.Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, "H001", herr.Code)
}

func TestLoadConversionsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"conversions": [`), 0o644))
	t.Setenv(EnvConfigPath, path)

	_, err := LoadConversions()
	require.Error(t, err)

	var herr *errors.Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, "H002", herr.Code)
}

func TestLoadConversionsEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	t.Setenv(EnvConfigPath, path)

	names, err := LoadConversions()
	require.NoError(t, err)
	assert.Empty(t, names)
}
