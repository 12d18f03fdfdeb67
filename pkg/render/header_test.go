package render

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AWCY-Arms/awcy-nfo/pkg/errors"
	"github.com/AWCY-Arms/awcy-nfo/pkg/style"
	"github.com/AWCY-Arms/awcy-nfo/pkg/template"
)

func headerReadMe(t *testing.T, source string, override style.Sheet, headerParam string) *ReadMe {
	t.Helper()
	doc, err := template.Parse([]byte(source))
	require.NoError(t, err)
	return NewReadMe(doc, override, testDefaults(t), headerParam, zerolog.Nop())
}

func TestLoadHeaderChain(t *testing.T) {
	t.Run("parameter file wins", func(t *testing.T) {
		art := writeFile(t, filepath.Join(t.TempDir(), "custom.txt"), "ART\n")
		r := headerReadMe(t, "header: classic\n", style.Sheet{}, art)
		data, err := r.loadHeader()
		require.NoError(t, err)
		assert.Equal(t, "ART\n", string(data))
	})

	t.Run("parameter file with uppercase path", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "Headers")
		art := writeFile(t, filepath.Join(dir, "Custom.txt"), "ART\n")
		r := headerReadMe(t, "header: classic\n", style.Sheet{}, art)
		data, err := r.loadHeader()
		require.NoError(t, err)
		assert.Equal(t, "ART\n", string(data))
	})

	t.Run("parameter resource", func(t *testing.T) {
		r := headerReadMe(t, "x: y\n", style.Sheet{}, "block")
		data, err := r.loadHeader()
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})

	t.Run("invalid parameter falls to template", func(t *testing.T) {
		r := headerReadMe(t, "header: block\n", style.Sheet{}, "no-such-header")
		data, err := r.loadHeader()
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})

	t.Run("style attribute", func(t *testing.T) {
		r := headerReadMe(t, "x: y\n", style.Sheet{"header": "block"}, "")
		data, err := r.loadHeader()
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})

	t.Run("default fallback", func(t *testing.T) {
		r := headerReadMe(t, "x: y\n", style.Sheet{}, "")
		data, err := r.loadHeader()
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})

	t.Run("broken default is fatal", func(t *testing.T) {
		doc, err := template.Parse([]byte("x: y\n"))
		require.NoError(t, err)
		defaults := style.Sheet{"header": "no-such-header"}
		r := NewReadMe(doc, style.Sheet{}, defaults, "", zerolog.Nop())
		_, err = r.loadHeader()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrHeaderNotFound))
	})
}

func TestHeaderAlignment(t *testing.T) {
	t.Run("template wins", func(t *testing.T) {
		r := headerReadMe(t, "header_alignment: Left\n", style.Sheet{"header_alignment": "right"}, "")
		align, err := r.headerAlignment()
		require.NoError(t, err)
		assert.Equal(t, "left", align)
	})

	t.Run("invalid template falls to style", func(t *testing.T) {
		r := headerReadMe(t, "header_alignment: diagonal\n", style.Sheet{"header_alignment": "right"}, "")
		align, err := r.headerAlignment()
		require.NoError(t, err)
		assert.Equal(t, "right", align)
	})

	t.Run("default fallback", func(t *testing.T) {
		r := headerReadMe(t, "x: y\n", style.Sheet{}, "")
		align, err := r.headerAlignment()
		require.NoError(t, err)
		assert.Equal(t, "center", align)
	})

	t.Run("invalid default is fatal", func(t *testing.T) {
		doc, err := template.Parse([]byte("x: y\n"))
		require.NoError(t, err)
		r := NewReadMe(doc, style.Sheet{}, style.Sheet{}, "", zerolog.Nop())
		_, err = r.headerAlignment()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrStyleDefaultMissing))
	})
}

func TestMakeHeaderKeepsWidth(t *testing.T) {
	r := headerReadMe(t, "header: classic\nheader_alignment: center\n", style.Sheet{}, "")
	require.NoError(t, r.makeHeader())
	require.NotEmpty(t, r.lines)

	for i, line := range r.lines {
		require.True(t, strings.HasSuffix(line, "\n"), "line %d", i)
		if line == "\n" {
			continue
		}
		assert.Len(t, line, 81, "line %d: %q", i, line)
	}
	assert.Contains(t, strings.Join(r.lines, ""), "..:: Are We Cool Yet? ::..")
}

func TestHeaderFile(t *testing.T) {
	assert.Equal(t, "classic.txt", headerFile("Classic"))
	assert.Equal(t, "classic.txt", headerFile(" classic.txt "))
	assert.Equal(t, "block.txt", headerFile("BLOCK"))
}
