package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Dark, s.Theme)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", gjson.GetBytes(data, "theme").String())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark","window":{"width":800}}`), 0644))

	require.NoError(t, Settings{Theme: Light}.Save(path))
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Light, s.Theme)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(800), gjson.GetBytes(data, "window.width").Int())
}

func TestLoadUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"solarized"}`), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Dark, s.Theme)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme("Light")
	require.NoError(t, err)
	assert.Equal(t, Light, theme)

	_, err = ParseTheme("blue")
	assert.Error(t, err)
}
