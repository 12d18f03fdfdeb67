package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AWCY-Arms/awcy-nfo/pkg/errors"
)

// isolate keeps the user config out of the merge
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))
	xdg.Reload()
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := load(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, cfg.Render.Style)
	assert.Empty(t, cfg.Render.Header)
	assert.Empty(t, cfg.Output.Dir)
	assert.True(t, cfg.Log.File)
}

func TestLoadProjectFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	content := "[render]\nstyle = \"minimal\"\n\n[log]\nfile = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".awcy-nfo.toml"), []byte(content), 0644))

	cfg, err := load(dir)
	require.NoError(t, err)
	assert.Equal(t, "minimal", cfg.Render.Style)
	assert.False(t, cfg.Log.File)
}

func TestLoadUserFile(t *testing.T) {
	isolate(t)
	path, err := UserConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("[render]\nheader = \"block\"\n"), 0644))

	cfg, err := load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "block", cfg.Render.Header)
}

func TestLoadEnvWins(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "awcy-nfo.toml"),
		[]byte("[render]\nstyle = \"minimal\"\n"), 0644))
	t.Setenv("AWCY_NFO_RENDER_STYLE", "classic")

	cfg, err := load(dir)
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Render.Style)
}

func TestLoadBadProjectFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".awcy-nfo.toml"),
		[]byte("not toml ["), 0644))

	_, err := load(dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestGenerateContent(t *testing.T) {
	content := GenerateContent()

	assert.Contains(t, content, "[render]")
	assert.Contains(t, content, "# style = ")
	assert.Contains(t, content, "# file = true")
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "["),
			"uncommented value line: %q", line)
	}
}

func TestDump(t *testing.T) {
	isolate(t)
	cfg, err := load(t.TempDir())
	require.NoError(t, err)
	cfg.Render.Style = "minimal"

	out, err := cfg.Dump()
	require.NoError(t, err)
	assert.Contains(t, out, "[render]")
	assert.Contains(t, out, "style = 'minimal'")
}
